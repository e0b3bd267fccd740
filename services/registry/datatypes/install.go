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

// PermissionDetail pairs a namespaced permission name with its
// human-readable description.
type PermissionDetail struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PermissionRequirements is the per-module permission summary, optionally
// filtered to a single platform.
type PermissionRequirements struct {
	Module   string             `json:"module"`
	Platform Platform           `json:"platform,omitempty"`
	Required []PermissionDetail `json:"required"`
	Optional []PermissionDetail `json:"optional"`
}

// InstallOptions shapes installation step generation.
type InstallOptions struct {
	// Platform narrows configuration steps to one platform when set.
	Platform Platform `json:"platform,omitempty"`

	// ProjectType is "managed" (default) or "bare".
	ProjectType string `json:"project_type,omitempty"`

	// TypeScript adds type-setup notes when true.
	TypeScript bool `json:"typescript,omitempty"`
}

// InstallationPlan is the generated installation walkthrough for one
// module. Unknown modules still get install commands; the configuration
// and note lists are simply empty.
type InstallationPlan struct {
	Module             string   `json:"module"`
	InstallCommands    []string `json:"install_commands"`
	ConfigurationSteps []string `json:"configuration_steps"`
	Notes              []string `json:"notes"`
}
