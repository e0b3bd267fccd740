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

	"github.com/AleutianAI/SDKCompass/pkg/validation"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

// projectIDPlaceholder marks the EAS project id the caller must fill in.
const projectIDPlaceholder = "<your-eas-project-id>"

// generateAppManifest builds an app.json manifest. Platform sections are
// emitted for the requested platforms; with no platforms in the context,
// ios and android are assumed.
func (g *Generator) generateAppManifest(project datatypes.ProjectContext) datatypes.ConfigTemplate {
	var errs, suggestions []string

	// An empty name is emitted as-is; the structural validator reports it.
	name := project.Name
	slug := slugify(project.Name)

	wantIOS := len(project.Platforms) == 0 || project.HasPlatform(datatypes.PlatformIOS)
	wantAndroid := len(project.Platforms) == 0 || project.HasPlatform(datatypes.PlatformAndroid)
	wantWeb := project.HasPlatform(datatypes.PlatformWeb)

	expo := map[string]any{
		"name":               name,
		"slug":               slug,
		"version":            "1.0.0",
		"orientation":        "portrait",
		"icon":               "./assets/icon.png",
		"userInterfaceStyle": "automatic",
		"splash": map[string]any{
			"image":           "./assets/splash.png",
			"resizeMode":      "contain",
			"backgroundColor": "#ffffff",
		},
		"assetBundlePatterns": []string{"**/*"},
		"runtimeVersion": map[string]any{
			"policy": "appVersion",
		},
		"updates": map[string]any{
			"url": fmt.Sprintf("https://u.expo.dev/%s", projectIDPlaceholder),
		},
		"extra": map[string]any{
			"eas": map[string]any{
				"projectId": projectIDPlaceholder,
			},
		},
	}

	if wantIOS {
		bundleID := project.BundleIdentifier
		if bundleID == "" {
			bundleID = "com.example." + identifierSegment(slug)
			suggestions = append(suggestions, "Set ios.bundleIdentifier; a placeholder was generated.")
		} else if err := validation.ValidateBundleIdentifier(bundleID); err != nil {
			errs = append(errs, err.Error())
		}
		expo["ios"] = map[string]any{
			"supportsTablet":   true,
			"bundleIdentifier": bundleID,
		}
	}
	if wantAndroid {
		pkg := project.PackageName
		if pkg == "" {
			pkg = "com.example." + identifierSegment(slug)
			suggestions = append(suggestions, "Set android.package; a placeholder was generated.")
		} else if err := validation.ValidateBundleIdentifier(pkg); err != nil {
			errs = append(errs, err.Error())
		}
		expo["android"] = map[string]any{
			"adaptiveIcon": map[string]any{
				"foregroundImage": "./assets/adaptive-icon.png",
				"backgroundColor": "#ffffff",
			},
			"package": pkg,
		}
	}
	if wantWeb {
		expo["web"] = map[string]any{
			"bundler": "metro",
			"favicon": "./assets/favicon.png",
		}
	}

	suggestions = append(suggestions, "Replace "+projectIDPlaceholder+" with the project id from `eas init`.")

	content, err := json.MarshalIndent(map[string]any{"expo": expo}, "", "  ")
	if err != nil {
		// Only reachable with unmarshalable values, which the map above
		// never contains.
		errs = append(errs, "manifest serialization failed: "+err.Error())
	}

	return datatypes.ConfigTemplate{
		Content:          string(content),
		ValidationErrors: errs,
		Suggestions:      suggestions,
	}
}

// identifierSegment turns a slug into a single reverse-DNS segment.
func identifierSegment(slug string) string {
	seg := ""
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			seg += string(r)
		}
	}
	if seg == "" || (seg[0] >= '0' && seg[0] <= '9') {
		seg = "app" + seg
	}
	return seg
}
