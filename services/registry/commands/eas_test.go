// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBuildCommandDefaults(t *testing.T) {
	s := NewSynthesizer(nil)

	// "all" platform and "development" profile are both CLI defaults and
	// drop out of the flag set; the development client switch stays.
	result, err := s.GenerateBuildCommand("all", "development", nil)
	require.NoError(t, err)

	assert.Equal(t, "eas build --development-client", result.Command)
	assert.Equal(t, "15-30 minutes", result.EstimatedTime)
	assert.NotEmpty(t, result.DocumentationURL)
}

func TestGenerateBuildCommandExplicitPlatformAndProfile(t *testing.T) {
	s := NewSynthesizer(nil)

	result, err := s.GenerateBuildCommand("ios", "preview", nil)
	require.NoError(t, err)

	assert.Equal(t, "eas build --platform ios --profile preview", result.Command)
	assert.Equal(t, "15-25 minutes", result.EstimatedTime)
}

func TestGenerateBuildCommandInvalidPlatform(t *testing.T) {
	s := NewSynthesizer(nil)

	_, err := s.GenerateBuildCommand("windows", "production", nil)
	assert.ErrorIs(t, err, ErrInvalidPlatform)
}

func TestGenerateBuildCommandEmptyPlatformMeansAll(t *testing.T) {
	s := NewSynthesizer(nil)

	result, err := s.GenerateBuildCommand("", "production", nil)
	require.NoError(t, err)
	assert.Equal(t, "eas build --profile production", result.Command)
}

func TestGenerateSubmitCommandKeepsPlatformForAll(t *testing.T) {
	s := NewSynthesizer(nil)

	result, err := s.GenerateSubmitCommand("all", "", nil)
	require.NoError(t, err)

	// submit spells out the platform even for "all".
	assert.Equal(t, "eas submit --latest --platform all", result.Command)
	assert.Equal(t, "5-10 minutes", result.EstimatedTime)
}

func TestGenerateUpdateCommand(t *testing.T) {
	s := NewSynthesizer(nil)

	result, err := s.GenerateUpdateCommand("all", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "eas update --auto", result.Command)
}

func TestGenerateCredentialsCommand(t *testing.T) {
	s := NewSynthesizer(nil)

	result, err := s.GenerateCredentialsCommand("android", nil)
	require.NoError(t, err)
	assert.Equal(t, "eas credentials --platform android", result.Command)
	assert.Equal(t, "interactive", result.EstimatedTime)
}

func TestExtraFlagsOverrideDefaults(t *testing.T) {
	s := NewSynthesizer(nil)

	result, err := s.GenerateBuildCommand("android", "preview", map[string]string{
		"profile":         "production",
		"non-interactive": "true",
	})
	require.NoError(t, err)

	assert.Equal(t, "eas build --non-interactive --platform android --profile production", result.Command)
}

func TestPrerequisitesPerPlatform(t *testing.T) {
	s := NewSynthesizer(nil)

	ios, err := s.GenerateBuildCommand("ios", "production", nil)
	require.NoError(t, err)
	assert.Contains(t, ios.Prerequisites, "Apple Developer account with an active membership")
	assert.NotContains(t, ios.Prerequisites, "Google service account key with Play Console access")

	all, err := s.GenerateBuildCommand("all", "production", nil)
	require.NoError(t, err)
	assert.Contains(t, all.Prerequisites, "Apple Developer account with an active membership")
	assert.Contains(t, all.Prerequisites, "Google service account key with Play Console access")

	// Update never touches the stores, so no store prerequisites.
	update, err := s.GenerateUpdateCommand("all", "", nil)
	require.NoError(t, err)
	assert.NotContains(t, update.Prerequisites, "Apple Developer account with an active membership")
}
