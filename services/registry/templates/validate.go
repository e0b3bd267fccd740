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
	"strings"

	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

// ==== Structural Validators ====
//
// Each artifact kind carries its own validator over the produced content.
// Validators return (errors, suggestions) as data; they never fail the
// generation call.

// validateArtifact dispatches to the per-kind validator.
func validateArtifact(kind datatypes.ArtifactKind, content string) (errs, suggestions []string) {
	switch kind {
	case datatypes.ArtifactAppManifest:
		return validateAppManifest(content)
	case datatypes.ArtifactBuildConfig:
		return validateBuildConfig(content)
	case datatypes.ArtifactBundlerConfig:
		return validateBundlerConfig(content)
	}
	return nil, nil
}

// validateAppManifest requires expo.name and expo.slug, and recommends the
// icon, splash, and EAS project-id fields when absent.
func validateAppManifest(content string) ([]string, []string) {
	var errs, suggestions []string

	var doc map[string]any
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return []string{"app manifest is not valid JSON: " + err.Error()}, nil
	}
	expo, _ := doc["expo"].(map[string]any)
	if expo == nil {
		return []string{`app manifest must nest its fields under an "expo" object`}, nil
	}
	str := func(key string) string {
		s, _ := expo[key].(string)
		return s
	}

	if str("name") == "" {
		errs = append(errs, "expo.name must be a non-empty string")
	}
	if str("slug") == "" {
		errs = append(errs, "expo.slug must be a non-empty string")
	}

	if str("icon") == "" {
		suggestions = append(suggestions, "Add expo.icon; store submissions are rejected without an app icon.")
	}
	if _, ok := expo["splash"]; !ok {
		suggestions = append(suggestions, "Add an expo.splash block to avoid a blank launch screen.")
	}
	if !hasProjectID(expo) {
		suggestions = append(suggestions, "Run `eas init` and set extra.eas.projectId to link the project.")
	}
	return errs, suggestions
}

func hasProjectID(expo map[string]any) bool {
	extra, _ := expo["extra"].(map[string]any)
	eas, _ := extra["eas"].(map[string]any)
	id, _ := eas["projectId"].(string)
	return id != ""
}

// validateBuildConfig requires a build section and recommends a CLI-version
// pin and a production profile when absent.
func validateBuildConfig(content string) ([]string, []string) {
	var errs, suggestions []string

	var doc map[string]any
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return []string{"build config is not valid JSON: " + err.Error()}, nil
	}

	build, ok := doc["build"].(map[string]any)
	if !ok {
		errs = append(errs, `build config must declare a "build" section`)
	}

	cli, _ := doc["cli"].(map[string]any)
	if v, _ := cli["version"].(string); v == "" {
		suggestions = append(suggestions, "Pin cli.version so every machine runs a compatible eas-cli.")
	}
	if _, ok := build["production"]; !ok {
		suggestions = append(suggestions, "Add a production build profile; store builds should not reuse internal-distribution profiles.")
	}
	return errs, suggestions
}

// validateBundlerConfig requires the default-config import and an export
// statement, and recommends alias configuration when absent.
func validateBundlerConfig(content string) ([]string, []string) {
	var errs, suggestions []string

	if !strings.Contains(content, "expo/metro-config") {
		errs = append(errs, "bundler config must import the default config from 'expo/metro-config'")
	}
	if !strings.Contains(content, "module.exports") {
		errs = append(errs, "bundler config must export the config object")
	}
	if !strings.Contains(content, "resolver.alias") {
		suggestions = append(suggestions, "Configure resolver.alias to shorten deep relative imports.")
	}
	return errs, suggestions
}
