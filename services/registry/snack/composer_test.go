// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package snack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

// fixedClock pins time so generated snack ids are reproducible.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func newTestComposer() *Composer {
	return NewComposer(fixedClock{now: time.Unix(1700000000, 0)}, nil)
}

func TestResolveDependenciesAlwaysPinsRuntime(t *testing.T) {
	c := newTestComposer()

	deps := c.ResolveDependencies(nil, "sdk-53")
	assert.Equal(t, map[string]string{"expo": "~53.0.0"}, deps)
}

func TestResolveDependenciesDropsBlockedPackages(t *testing.T) {
	c := newTestComposer()

	deps := c.ResolveDependencies([]string{
		"expo-camera",
		"@react-native-firebase/app",
		"react-native-ble-plx",
		"react-native-nfc-manager",
	}, "sdk-53")

	assert.Contains(t, deps, "expo-camera")
	assert.NotContains(t, deps, "@react-native-firebase/app")
	assert.NotContains(t, deps, "react-native-ble-plx")
	assert.NotContains(t, deps, "react-native-nfc-manager")
}

func TestResolveDependenciesMergesPeers(t *testing.T) {
	c := newTestComposer()

	deps := c.ResolveDependencies([]string{"@react-navigation/native"}, "sdk-53")

	assert.Equal(t, "^7.0.0", deps["@react-navigation/native"])
	assert.Equal(t, "~4.10.0", deps["react-native-screens"])
	assert.Equal(t, "5.4.0", deps["react-native-safe-area-context"])
}

func TestResolveDependenciesUnknownPackageWildcard(t *testing.T) {
	c := newTestComposer()

	deps := c.ResolveDependencies([]string{"left-pad"}, "sdk-53")
	assert.Equal(t, "*", deps["left-pad"])
}

func TestComposeDefaults(t *testing.T) {
	c := newTestComposer()

	config := c.Compose("", "", nil, nil, "")

	assert.Equal(t, "Example Snack", config.Name)
	assert.Equal(t, []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid}, config.Platforms)
	assert.Equal(t, "sdk-53", config.SDKVersion)
	assert.Contains(t, config.Dependencies, "expo")
	assert.NotEmpty(t, config.Code)
}

func TestGeneratePlatformSpecificCode(t *testing.T) {
	c := newTestComposer()

	code := c.GeneratePlatformSpecificCode("Camera Demo", []string{"expo-camera", "react-native-ble-plx"},
		[]datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformWeb})

	assert.Contains(t, code, "import * as Camera from 'expo-camera';")
	assert.NotContains(t, code, "ble-plx", "blocked packages never get import lines")
	assert.Contains(t, code, "ios: 'Running on ios',")
	assert.Contains(t, code, "web: 'Running on web',")
	assert.Contains(t, code, "default: 'Unsupported platform',")
	assert.Contains(t, code, "<Text style={styles.title}>Camera Demo</Text>")
}

func TestGenerateSnackURLIsDeterministicUnderFixedClock(t *testing.T) {
	c := newTestComposer()
	config := c.Compose("Camera Demo", "", []string{"expo-camera"}, nil, "sdk-53")

	first := c.GenerateSnackURL(config)
	second := c.GenerateSnackURL(config)

	assert.Equal(t, first.URL, second.URL)
	assert.Contains(t, first.URL, "https://snack.expo.dev/")
	assert.Contains(t, first.EmbedURL, "/embedded/")
	assert.Contains(t, first.WebPlayerURL, "/web-player/")
}

func TestCalculateSnackCompatibility(t *testing.T) {
	twoPlatforms := []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid}
	allPlatforms := append(twoPlatforms, datatypes.PlatformWeb)

	deps := func(n int) map[string]string {
		m := make(map[string]string, n)
		for i := 0; i < n; i++ {
			m[string(rune('a'+i))] = "*"
		}
		return m
	}

	tests := []struct {
		name   string
		config datatypes.SnackConfig
		want   int
	}{
		{
			name: "lean config on two platforms",
			config: datatypes.SnackConfig{
				Dependencies: deps(2),
				Platforms:    twoPlatforms,
				SDKVersion:   "sdk-53",
			},
			want: 85,
		},
		{
			name: "all platforms with web bonus",
			config: datatypes.SnackConfig{
				Dependencies: deps(2),
				Platforms:    allPlatforms,
				SDKVersion:   "sdk-53",
			},
			want: 100,
		},
		{
			name: "heavy dependency set",
			config: datatypes.SnackConfig{
				Dependencies: deps(11),
				Platforms:    twoPlatforms,
				SDKVersion:   "sdk-53",
			},
			want: 65,
		},
		{
			name: "moderate dependency set",
			config: datatypes.SnackConfig{
				Dependencies: deps(6),
				Platforms:    twoPlatforms,
				SDKVersion:   "sdk-53",
			},
			want: 75,
		},
		{
			name: "stale runtime",
			config: datatypes.SnackConfig{
				Dependencies: deps(2),
				Platforms:    twoPlatforms,
				SDKVersion:   "sdk-51",
			},
			want: 75,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := calculateSnackCompatibility(tc.config)
			require.Equal(t, tc.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestImportName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"expo-camera", "Camera"},
		{"expo-image-picker", "ImagePicker"},
		{"@react-navigation/native", "Native"},
		{"react-native-maps", "ReactNativeMaps"},
		{"expo-", "Module"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, importName(tc.in), "input %q", tc.in)
	}
}
