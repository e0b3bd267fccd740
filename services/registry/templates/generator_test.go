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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Expo App!", "my-expo-app"},
		{"hello", "hello"},
		{"--Weird__Name--", "weird-name"},
		{"App 2.0", "app-2-0"},
		{"", "my-expo-app"},
		{"!!!", "my-expo-app"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, slugify(tc.in), "input %q", tc.in)
	}
}

func TestGenerateUnknownKind(t *testing.T) {
	g := NewGenerator(nil)

	_, err := g.Generate("dockerfile", datatypes.ProjectContext{})
	assert.ErrorIs(t, err, ErrUnknownArtifact)
}

// decodeManifest unmarshals a generated app.json and returns the expo map.
func decodeManifest(t *testing.T, content string) map[string]any {
	t.Helper()
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(content), &doc))
	expo, ok := doc["expo"].(map[string]any)
	require.True(t, ok, "manifest must nest under expo")
	return expo
}

func TestGenerateAppManifestDefaults(t *testing.T) {
	g := NewGenerator(nil)

	tpl, err := g.Generate(datatypes.ArtifactAppManifest, datatypes.ProjectContext{Name: "Field Notes"})
	require.NoError(t, err)
	assert.Equal(t, datatypes.ArtifactAppManifest, tpl.Kind)
	assert.Empty(t, tpl.ValidationErrors)

	expo := decodeManifest(t, tpl.Content)
	assert.Equal(t, "Field Notes", expo["name"])
	assert.Equal(t, "field-notes", expo["slug"])

	// No platforms requested: ios and android assumed, web omitted.
	assert.Contains(t, expo, "ios")
	assert.Contains(t, expo, "android")
	assert.NotContains(t, expo, "web")
}

func TestGenerateAppManifestWebOnlyWhenRequested(t *testing.T) {
	g := NewGenerator(nil)

	tpl, err := g.Generate(datatypes.ArtifactAppManifest, datatypes.ProjectContext{
		Name:      "Field Notes",
		Platforms: []datatypes.Platform{datatypes.PlatformWeb},
	})
	require.NoError(t, err)

	expo := decodeManifest(t, tpl.Content)
	assert.Contains(t, expo, "web")
	assert.NotContains(t, expo, "ios")
	assert.NotContains(t, expo, "android")
}

func TestGenerateAppManifestBundleIdentifier(t *testing.T) {
	g := NewGenerator(nil)

	tpl, err := g.Generate(datatypes.ArtifactAppManifest, datatypes.ProjectContext{
		Name:             "Field Notes",
		BundleIdentifier: "dev.aleutian.fieldnotes",
	})
	require.NoError(t, err)
	assert.Empty(t, tpl.ValidationErrors)

	expo := decodeManifest(t, tpl.Content)
	ios := expo["ios"].(map[string]any)
	assert.Equal(t, "dev.aleutian.fieldnotes", ios["bundleIdentifier"])
}

func TestGenerateAppManifestInvalidBundleIdentifier(t *testing.T) {
	g := NewGenerator(nil)

	tpl, err := g.Generate(datatypes.ArtifactAppManifest, datatypes.ProjectContext{
		Name:             "Field Notes",
		BundleIdentifier: "not a bundle id",
	})
	require.NoError(t, err, "validation failures are data, not errors")
	assert.NotEmpty(t, tpl.ValidationErrors)
}

func TestGenerateAppManifestSchemaVersion(t *testing.T) {
	g := NewGenerator(nil)

	tpl, err := g.Generate(datatypes.ArtifactAppManifest, datatypes.ProjectContext{SDKVersion: "52"})
	require.NoError(t, err)
	assert.Equal(t, "sdk-52", tpl.SchemaVersion)
}

func TestGenerateAppManifestEmptyNameIsValidationError(t *testing.T) {
	g := NewGenerator(nil)

	tpl, err := g.Generate(datatypes.ArtifactAppManifest, datatypes.ProjectContext{})
	require.NoError(t, err, "validation failures are data, not errors")
	assert.Contains(t, tpl.ValidationErrors, "expo.name must be a non-empty string")

	// The slug falls back to the default, so it never fails alongside.
	assert.NotContains(t, tpl.ValidationErrors, "expo.slug must be a non-empty string")
}

func TestValidateAppManifestMalformedContent(t *testing.T) {
	errs, _ := validateAppManifest("{not json")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "not valid JSON")

	errs, suggestions := validateAppManifest(`{"expo": {}}`)
	assert.Contains(t, errs, "expo.name must be a non-empty string")
	assert.Contains(t, errs, "expo.slug must be a non-empty string")
	assert.Len(t, suggestions, 3, "icon, splash, and project id are all recommended")

	errs, _ = validateAppManifest(`{"name": "top-level"}`)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], `"expo" object`)
}

func TestValidateBuildConfigMissingSections(t *testing.T) {
	errs, suggestions := validateBuildConfig("{}")
	assert.Contains(t, errs, `build config must declare a "build" section`)
	require.Len(t, suggestions, 2)
	assert.Contains(t, suggestions[0], "cli.version")
	assert.Contains(t, suggestions[1], "production build profile")

	errs, suggestions = validateBuildConfig(
		`{"cli": {"version": ">= 12.0.0"}, "build": {"production": {}}}`)
	assert.Empty(t, errs)
	assert.Empty(t, suggestions)
}

func TestValidateBundlerConfigRequiredStatements(t *testing.T) {
	errs, suggestions := validateBundlerConfig("")
	assert.Contains(t, errs, "bundler config must import the default config from 'expo/metro-config'")
	assert.Contains(t, errs, "bundler config must export the config object")
	require.Len(t, suggestions, 1)
	assert.Contains(t, suggestions[0], "resolver.alias")
}

func TestGenerateBundlerConfigRecommendsAlias(t *testing.T) {
	g := NewGenerator(nil)

	tpl, err := g.Generate(datatypes.ArtifactBundlerConfig, datatypes.ProjectContext{Name: "P"})
	require.NoError(t, err)
	assert.Empty(t, tpl.ValidationErrors)

	var found bool
	for _, s := range tpl.Suggestions {
		if strings.Contains(s, "resolver.alias") {
			found = true
		}
	}
	assert.True(t, found, "generated bundler config never sets aliases, so the recommendation must fire")
}

func TestGenerateBuildConfigProfiles(t *testing.T) {
	g := NewGenerator(nil)

	tpl, err := g.Generate(datatypes.ArtifactBuildConfig, datatypes.ProjectContext{})
	require.NoError(t, err)
	assert.Empty(t, tpl.ValidationErrors)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(tpl.Content), &doc))

	build, ok := doc["build"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, build, "development")
	assert.Contains(t, build, "preview")
	assert.Contains(t, build, "production")

	dev := build["development"].(map[string]any)
	assert.Equal(t, true, dev["developmentClient"])
}

func TestGenerateBuildConfigUnknownProfile(t *testing.T) {
	g := NewGenerator(nil)

	tpl, err := g.Generate(datatypes.ArtifactBuildConfig, datatypes.ProjectContext{BuildProfile: "staging"})
	require.NoError(t, err)
	assert.NotEmpty(t, tpl.ValidationErrors)
}

func TestGenerateBuildConfigSubmitBlocks(t *testing.T) {
	g := NewGenerator(nil)

	tpl, err := g.Generate(datatypes.ArtifactBuildConfig, datatypes.ProjectContext{
		Platforms: []datatypes.Platform{datatypes.PlatformIOS},
	})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(tpl.Content), &doc))

	submit := doc["submit"].(map[string]any)
	production := submit["production"].(map[string]any)
	assert.Contains(t, production, "ios")
	assert.NotContains(t, production, "android")
}

func TestGenerateBundlerConfig(t *testing.T) {
	g := NewGenerator(nil)

	plain, err := g.Generate(datatypes.ArtifactBundlerConfig, datatypes.ProjectContext{})
	require.NoError(t, err)
	assert.Contains(t, plain.Content, "expo/metro-config")
	assert.NotContains(t, plain.Content, "unstable_enablePackageExports")

	web, err := g.Generate(datatypes.ArtifactBundlerConfig, datatypes.ProjectContext{
		Platforms: []datatypes.Platform{datatypes.PlatformWeb},
	})
	require.NoError(t, err)
	assert.Contains(t, web.Content, "unstable_enablePackageExports")
}
