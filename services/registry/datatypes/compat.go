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

// ModuleCompatibility records how one module fares on a given SDK version.
type ModuleCompatibility struct {
	Supported   bool     `json:"supported"`
	Version     string   `json:"version,omitempty"`
	Issues      []string `json:"issues,omitempty"`
	Workarounds []string `json:"workarounds,omitempty"`
	Alternative string   `json:"alternative,omitempty"`
}

// PlatformSupport records how one platform fares on a given SDK version.
type PlatformSupport struct {
	Supported      bool     `json:"supported"`
	MinimumVersion string   `json:"minimum_version,omitempty"`
	Limitations    []string `json:"limitations,omitempty"`
	KnownIssues    []string `json:"known_issues,omitempty"`
}

// CompatibilityMatrix is the scored module/platform summary for one SDK
// version. OverallScore is clamped to [0,100].
type CompatibilityMatrix struct {
	SDKVersion   string                         `json:"sdk_version"`
	Modules      map[string]ModuleCompatibility `json:"modules"`
	Platforms    map[Platform]PlatformSupport   `json:"platforms"`
	OverallScore int                            `json:"overall_score"`
}
