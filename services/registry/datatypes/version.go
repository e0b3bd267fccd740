// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package datatypes

// VersionStatus classifies a release line's support state.
type VersionStatus string

const (
	VersionStatusLatest      VersionStatus = "latest"
	VersionStatusSupported   VersionStatus = "supported"
	VersionStatusDeprecated  VersionStatus = "deprecated"
	VersionStatusUnsupported VersionStatus = "unsupported"
)

// VersionInfo describes one known SDK release line.
//
// One instance exists per release label. Records are immutable once
// resolved and cached indefinitely within the TTL window.
type VersionInfo struct {
	// Version is the release label, e.g. "sdk-53".
	Version string `json:"version"`

	// ReleaseDate is the ISO date the release shipped.
	ReleaseDate string `json:"release_date"`

	Status VersionStatus `json:"status"`

	// SupportEndDate is set once a sunset date is announced.
	SupportEndDate string `json:"support_end_date,omitempty"`

	Changelog string `json:"changelog,omitempty"`

	// ModuleVersions maps module name to the module version shipped with
	// this release.
	ModuleVersions map[string]string `json:"module_versions,omitempty"`
}
