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

// ArtifactKind names one of the three recognized configuration templates.
type ArtifactKind string

const (
	// ArtifactAppManifest is the app.json manifest template.
	ArtifactAppManifest ArtifactKind = "app-manifest"

	// ArtifactBuildConfig is the eas.json build/submit template.
	ArtifactBuildConfig ArtifactKind = "build-config"

	// ArtifactBundlerConfig is the metro.config.js template.
	ArtifactBundlerConfig ArtifactKind = "bundler-config"
)

// ProjectContext carries the caller's project shape into template and
// suggestion synthesis. It is supplied fresh per call and never persisted.
type ProjectContext struct {
	Name             string     `json:"name,omitempty"`
	Platforms        []Platform `json:"platforms,omitempty"`
	SDKVersion       string     `json:"sdk_version,omitempty"`
	BundleIdentifier string     `json:"bundle_identifier,omitempty"`
	PackageName      string     `json:"package_name,omitempty"`
	BuildProfile     string     `json:"build_profile,omitempty"`
}

// HasPlatform reports whether the context requests the given platform.
func (c ProjectContext) HasPlatform(p Platform) bool {
	for _, candidate := range c.Platforms {
		if candidate == p {
			return true
		}
	}
	return false
}

// ConfigTemplate is a generated configuration artifact plus the outcome of
// its structural validation. Validation failures are data, never errors:
// generation always succeeds and callers decide how to react.
type ConfigTemplate struct {
	Content          string       `json:"content"`
	ValidationErrors []string     `json:"validation_errors"`
	Suggestions      []string     `json:"suggestions"`
	Kind             ArtifactKind `json:"kind"`
	SchemaVersion    string       `json:"schema_version,omitempty"`
}
