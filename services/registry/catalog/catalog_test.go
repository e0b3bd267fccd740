// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"latest", fmt.Sprintf("sdk-%d", LatestSDK)},
		{"", fmt.Sprintf("sdk-%d", LatestSDK)},
		{"sdk-52", "sdk-52"},
		{"52", "sdk-52"},
		{"52.0.0", "sdk-52"},
		{"49.1", "sdk-49"},
		{"SDK-51", "sdk-51"},
		{"garbage", "garbage"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeVersion(tc.in), "input %q", tc.in)
	}
}

func TestSDKNumber(t *testing.T) {
	assert.Equal(t, 53, SDKNumber("sdk-53"))
	assert.Equal(t, 52, SDKNumber("52.0.0"))
	assert.Equal(t, LatestSDK, SDKNumber("latest"))
	assert.Equal(t, 0, SDKNumber("garbage"))
}

func TestCompareVersions(t *testing.T) {
	assert.Equal(t, -1, CompareVersions("1.2.3", "1.3.0"))
	assert.Equal(t, 0, CompareVersions("2.0", "2.0.0"))
	assert.Equal(t, 1, CompareVersions("10.0.0", "9.9.9"))

	// Range sigils from the module pin tables are stripped before compare.
	assert.Equal(t, -1, CompareVersions("~15.0.0", "~16.1.0"))
	assert.Equal(t, 0, CompareVersions("^2.0.0", "2.0"))
	assert.Equal(t, -1, CompareVersions("*", "1.0.0"))
}

func TestLookupFallbacks(t *testing.T) {
	// Unknown modules are never errors: every accessor has a fallback.
	platforms := Platforms("not-a-real-module")
	assert.Equal(t, []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid}, platforms)
	assert.Empty(t, Permissions("not-a-real-module"))
	assert.Empty(t, Methods("not-a-real-module"))
	assert.False(t, IsCore("not-a-real-module"))
	assert.Nil(t, Deprecation("not-a-real-module"))
}

func TestDeprecationRecords(t *testing.T) {
	rec := Deprecation("expo-av")
	require.NotNil(t, rec)
	assert.Equal(t, "sdk-51", rec.Since)
	assert.Equal(t, "expo-video", rec.Replacement)

	// The returned record is a copy.
	rec.Replacement = "mutated"
	assert.Equal(t, "expo-video", Deprecation("expo-av").Replacement)
}

func TestLookupDeprecatedCall(t *testing.T) {
	call, ok := LookupDeprecatedCall("Camera", "requestPermissionsAsync")
	require.True(t, ok)
	assert.Equal(t, "expo-camera", call.Module)
	assert.Equal(t, "sdk-49", call.DeprecatedSince)

	_, ok = LookupDeprecatedCall("Camera", "takePictureAsync")
	assert.False(t, ok)
}

func TestVersionPopulatesModuleVersions(t *testing.T) {
	info, ok := Version("sdk-53")
	require.True(t, ok)
	assert.NotEmpty(t, info.ModuleVersions)
	assert.Contains(t, info.ModuleVersions, "expo-camera")

	_, ok = Version("sdk-1")
	assert.False(t, ok)
}

func TestVersionReturnsIndependentCopies(t *testing.T) {
	info, ok := Version("sdk-53")
	require.True(t, ok)
	info.ModuleVersions["expo-camera"] = "mutated"

	again, ok := Version("sdk-53")
	require.True(t, ok)
	assert.NotEqual(t, "mutated", again.ModuleVersions["expo-camera"],
		"callers must not be able to corrupt the release table")
}

func TestMigrationKnowledge(t *testing.T) {
	k, ok := Migration("sdk-50", "sdk-51")
	require.True(t, ok)
	assert.Contains(t, k.DeprecatedModules, "expo-av")

	_, ok = Migration("sdk-40", "sdk-41")
	assert.False(t, ok)
}

func TestSnackLookup(t *testing.T) {
	// Core modules pin to the SDK release version.
	pkg := SnackLookup("expo-camera", "sdk-53")
	assert.True(t, pkg.Core)
	assert.Equal(t, "expo-camera", pkg.Package)
	assert.NotEqual(t, "*", pkg.Version)

	// Known third-party packages carry their pinned version.
	pkg = SnackLookup("react-native-maps", "sdk-53")
	assert.False(t, pkg.Core)
	assert.Equal(t, "1.18.0", pkg.Version)

	// Unknown names degrade to wildcard.
	pkg = SnackLookup("left-pad", "sdk-53")
	assert.Equal(t, "*", pkg.Version)
}

func TestRuntimePin(t *testing.T) {
	assert.Equal(t, "~53.0.0", RuntimePin("sdk-53"))
	assert.Equal(t, "~52.0.0", RuntimePin("52"))
	assert.Equal(t, fmt.Sprintf("~%d.0.0", LatestSDK), RuntimePin("garbage"))
}

func TestSandboxBlocked(t *testing.T) {
	assert.True(t, SandboxBlocked("react-native-ble-plx"))
	assert.False(t, SandboxBlocked("react-native-maps"))
}
