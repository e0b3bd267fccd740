// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package deprecation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

func TestAnalyzeCodeDetectsDeprecatedImport(t *testing.T) {
	a := newTestAnalyzer(t)

	code := `
import { Video } from 'expo-av';
import * as Haptics from 'expo-haptics';
`
	result, err := a.AnalyzeCodeForDeprecatedUsage(context.Background(), code, "latest")
	require.NoError(t, err)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "expo-av", result.Warnings[0].Module)
	assert.Equal(t, datatypes.ItemKindModule, result.Warnings[0].ItemKind)
	assert.Contains(t, result.Suggestions, "Replace expo-av with expo-video")
	assert.True(t, result.MigrationRequired)
}

func TestAnalyzeCodeDetectsDeprecatedCallSite(t *testing.T) {
	a := newTestAnalyzer(t)

	code := `
import * as Permissions from 'expo-permissions';

async function ask() {
  const { status } = await Permissions.askAsync(Permissions.CAMERA);
  return status;
}
`
	result, err := a.AnalyzeCodeForDeprecatedUsage(context.Background(), code, "latest")
	require.NoError(t, err)

	var call *datatypes.DeprecationWarning
	for i := range result.Warnings {
		if result.Warnings[i].ItemKind == datatypes.ItemKindMethod {
			call = &result.Warnings[i]
		}
	}
	require.NotNil(t, call, "call-site warning expected")
	assert.Equal(t, "expo-permissions", call.Module)
	assert.Equal(t, "askAsync", call.ItemName)
	assert.Equal(t, datatypes.SeverityError, call.Severity)
	assert.True(t, result.MigrationRequired)
}

func TestAnalyzeCodeDeduplicatesFindings(t *testing.T) {
	a := newTestAnalyzer(t)

	code := `
const av1 = require('expo-av');
const av2 = require('expo-av');
Camera.requestPermissionsAsync();
Camera.requestPermissionsAsync();
`
	result, err := a.AnalyzeCodeForDeprecatedUsage(context.Background(), code, "latest")
	require.NoError(t, err)

	moduleWarnings := 0
	callWarnings := 0
	for _, w := range result.Warnings {
		switch w.ItemKind {
		case datatypes.ItemKindModule:
			moduleWarnings++
		case datatypes.ItemKindMethod:
			callWarnings++
		}
	}
	assert.Equal(t, 1, moduleWarnings, "duplicate imports collapse to one warning")
	assert.Equal(t, 1, callWarnings, "duplicate call sites collapse to one warning")
}

func TestAnalyzeCodeCleanSnippet(t *testing.T) {
	a := newTestAnalyzer(t)

	code := `
import * as Haptics from 'expo-haptics';

export function buzz() {
  return Haptics.impactAsync();
}
`
	result, err := a.AnalyzeCodeForDeprecatedUsage(context.Background(), code, "latest")
	require.NoError(t, err)

	assert.NotNil(t, result.Warnings)
	assert.Empty(t, result.Warnings)
	assert.Empty(t, result.Suggestions)
	assert.False(t, result.MigrationRequired)
}
