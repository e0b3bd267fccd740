// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package compat

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/SDKCompass/services/registry/catalog"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
	"github.com/AleutianAI/SDKCompass/services/registry/modules"
	"github.com/AleutianAI/SDKCompass/services/registry/sources"
)

func newTestChecker(t *testing.T) *Checker {
	t.Helper()
	resolver := modules.NewResolver(sources.NewDefaultAggregator(nil), nil, nil, nil)
	return NewChecker(resolver, nil, nil)
}

func TestGetCompatibilityMatrixCoversRoster(t *testing.T) {
	c := newTestChecker(t)

	matrix, err := c.GetCompatibilityMatrix(context.Background(), "sdk-53")
	require.NoError(t, err)

	assert.Equal(t, "sdk-53", matrix.SDKVersion)
	assert.Len(t, matrix.Modules, len(catalog.ModuleNames()))
	for _, name := range catalog.ModuleNames() {
		assert.Contains(t, matrix.Modules, name)
	}
}

func TestGetCompatibilityMatrixPlatforms(t *testing.T) {
	c := newTestChecker(t)

	matrix, err := c.GetCompatibilityMatrix(context.Background(), "latest")
	require.NoError(t, err)

	require.Len(t, matrix.Platforms, 3)
	assert.True(t, matrix.Platforms[datatypes.PlatformIOS].Supported)
	assert.True(t, matrix.Platforms[datatypes.PlatformAndroid].Supported)
	assert.True(t, matrix.Platforms[datatypes.PlatformWeb].Supported)
	assert.NotEmpty(t, matrix.Platforms[datatypes.PlatformWeb].Limitations)
}

func TestGetCompatibilityMatrixScoreBounds(t *testing.T) {
	c := newTestChecker(t)

	for _, version := range []string{"sdk-49", "sdk-51", "sdk-53"} {
		matrix, err := c.GetCompatibilityMatrix(context.Background(), version)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, matrix.OverallScore, 0, "version %s", version)
		assert.LessOrEqual(t, matrix.OverallScore, 100, "version %s", version)
	}
}

func TestGetCompatibilityMatrixDeprecatedModules(t *testing.T) {
	c := newTestChecker(t)

	matrix, err := c.GetCompatibilityMatrix(context.Background(), "sdk-53")
	require.NoError(t, err)

	av := matrix.Modules["expo-av"]
	assert.False(t, av.Supported)
	assert.Equal(t, "expo-video", av.Alternative)
	assert.NotEmpty(t, av.Issues)
	assert.Contains(t, av.Workarounds, "migrate to expo-video")

	scanner := matrix.Modules["expo-barcode-scanner"]
	assert.False(t, scanner.Supported)
	assert.Equal(t, "expo-camera", scanner.Alternative)

	// expo-permissions has no replacement, so no workaround either.
	perms := matrix.Modules["expo-permissions"]
	assert.False(t, perms.Supported)
	assert.Empty(t, perms.Alternative)
	assert.Empty(t, perms.Workarounds)
}

func TestGetCompatibilityMatrixSupportedModule(t *testing.T) {
	c := newTestChecker(t)

	matrix, err := c.GetCompatibilityMatrix(context.Background(), "sdk-53")
	require.NoError(t, err)

	camera := matrix.Modules["expo-camera"]
	assert.True(t, camera.Supported)
	assert.NotEmpty(t, camera.Version)
	assert.Empty(t, camera.Issues)
}

func TestGetCompatibilityMatrixFlagsOutdatedPins(t *testing.T) {
	c := newTestChecker(t)

	matrix, err := c.GetCompatibilityMatrix(context.Background(), "sdk-51")
	require.NoError(t, err)

	// expo-camera ships an older pin on sdk-51 than on the current release.
	camera := matrix.Modules["expo-camera"]
	assert.True(t, camera.Supported)
	require.NotEmpty(t, camera.Issues)
	assert.Contains(t, camera.Issues[0], "pinned at")

	// On the current release the pins match and no issue fires.
	current, err := c.GetCompatibilityMatrix(context.Background(), "sdk-53")
	require.NoError(t, err)
	assert.Empty(t, current.Modules["expo-camera"].Issues)
}

func TestGetCompatibilityMatrixIsCached(t *testing.T) {
	c := newTestChecker(t)

	first, err := c.GetCompatibilityMatrix(context.Background(), "sdk-52")
	require.NoError(t, err)
	second, err := c.GetCompatibilityMatrix(context.Background(), "52")
	require.NoError(t, err)

	assert.Same(t, first, second, "normalized versions share one cached matrix")
}

func TestGetCompatibilityMatrixUnsupportedVersionIssues(t *testing.T) {
	c := newTestChecker(t)

	matrix, err := c.GetCompatibilityMatrix(context.Background(), "sdk-49")
	require.NoError(t, err)

	for platform, support := range matrix.Platforms {
		assert.NotEmpty(t, support.KnownIssues, "platform %s on an out-of-window release", platform)
	}
}
