// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package templates

import (
	"encoding/json"
	"fmt"

	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

// minEasCliVersion is the oldest eas-cli the generated profiles assume.
const minEasCliVersion = "12.0.0"

// knownProfiles are the build profile names the generated eas.json ships.
var knownProfiles = map[string]bool{
	"development": true,
	"preview":     true,
	"production":  true,
}

// generateBuildConfig builds an eas.json with the standard three-profile
// layout. Submit configuration is emitted per requested platform.
func (g *Generator) generateBuildConfig(project datatypes.ProjectContext) datatypes.ConfigTemplate {
	var errs, suggestions []string

	if project.BuildProfile != "" && !knownProfiles[project.BuildProfile] {
		errs = append(errs, fmt.Sprintf("unknown build profile %q (known: development, preview, production)", project.BuildProfile))
	}

	wantIOS := len(project.Platforms) == 0 || project.HasPlatform(datatypes.PlatformIOS)
	wantAndroid := len(project.Platforms) == 0 || project.HasPlatform(datatypes.PlatformAndroid)

	build := map[string]any{
		"development": map[string]any{
			"developmentClient": true,
			"distribution":      "internal",
		},
		"preview": map[string]any{
			"distribution": "internal",
		},
		"production": map[string]any{
			"autoIncrement": true,
		},
	}

	config := map[string]any{
		"cli": map[string]any{
			"version":          ">= " + minEasCliVersion,
			"appVersionSource": "remote",
		},
		"build": build,
	}

	submit := map[string]any{}
	if wantIOS {
		submit["ios"] = map[string]any{
			"appleId":     "<your-apple-id>",
			"ascAppId":    "<your-app-store-connect-app-id>",
			"appleTeamId": "<your-apple-team-id>",
		}
		suggestions = append(suggestions, "Fill in the ios submit block with your App Store Connect identifiers.")
	}
	if wantAndroid {
		submit["android"] = map[string]any{
			"serviceAccountKeyPath": "./google-service-account.json",
			"track":                 "internal",
		}
		suggestions = append(suggestions, "Point android.serviceAccountKeyPath at your Google service account key.")
	}
	if len(submit) > 0 {
		config["submit"] = map[string]any{"production": submit}
	}

	suggestions = append(suggestions,
		"Set a larger ios resourceClass on the production profile if builds run out of memory.")

	content, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		errs = append(errs, "build config serialization failed: "+err.Error())
	}

	return datatypes.ConfigTemplate{
		Content:          string(content),
		ValidationErrors: errs,
		Suggestions:      suggestions,
	}
}
