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

// SnackConfig is a composed, sandbox-ready example: resolved dependencies
// plus generated code for the requested modules and platforms.
type SnackConfig struct {
	Dependencies map[string]string `json:"dependencies"`
	Code         string            `json:"code"`
	Name         string            `json:"name"`
	Description  string            `json:"description,omitempty"`
	Platforms    []Platform        `json:"platforms"`
	SDKVersion   string            `json:"sdk_version"`
}

// SnackResult adds the shareable URLs and the sandbox compatibility score
// (clamped to [0,100]) for a composed snack.
type SnackResult struct {
	URL                string            `json:"url"`
	EmbedURL           string            `json:"embed_url"`
	WebPlayerURL       string            `json:"web_player_url"`
	Dependencies       map[string]string `json:"dependencies"`
	CompatibilityScore int               `json:"compatibility_score"`
	SupportedPlatforms []Platform        `json:"supported_platforms"`
}
