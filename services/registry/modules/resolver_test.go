// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package modules

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
	"github.com/AleutianAI/SDKCompass/services/registry/sources"
)

// countingRegistry counts registry lookups so tests can prove cache hits
// never touch the providers.
type countingRegistry struct {
	inner *sources.StaticRegistry
	calls int
}

func (p *countingRegistry) PackageInfo(ctx context.Context, module, sdkVersion string) (sources.RegistryInfo, error) {
	p.calls++
	return p.inner.PackageInfo(ctx, module, sdkVersion)
}

func newTestResolver(t *testing.T) (*Resolver, *countingRegistry) {
	t.Helper()
	reg := &countingRegistry{inner: sources.NewStaticRegistry()}
	agg := sources.NewAggregator(reg, sources.NewStaticRepository(), sources.NewStaticDocs(), nil)
	return NewResolver(agg, nil, nil, nil), reg
}

func TestResolveKnownModule(t *testing.T) {
	r, _ := newTestResolver(t)

	m, err := r.Resolve(context.Background(), "expo-camera", "sdk-53")
	require.NoError(t, err)

	assert.Equal(t, "expo-camera", m.Name)
	assert.Equal(t, "sdk-53", m.SDKVersion)
	assert.Equal(t, datatypes.ClassificationCore, m.Classification)
	assert.Equal(t, "npx expo install expo-camera", m.Installation)
	assert.True(t, m.SupportsPlatform(datatypes.PlatformWeb))
	assert.NotEmpty(t, m.Methods)
	assert.False(t, m.LastResolved.IsZero())
}

func TestResolveIsIdempotentWithoutSecondFetch(t *testing.T) {
	r, reg := newTestResolver(t)

	first, err := r.Resolve(context.Background(), "expo-camera", "latest")
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), "expo-camera", "latest")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, reg.calls, "second resolve must be served from cache")
}

func TestResolveVersionAliasesShareCacheEntry(t *testing.T) {
	r, reg := newTestResolver(t)

	_, err := r.Resolve(context.Background(), "expo-camera", "latest")
	require.NoError(t, err)
	_, err = r.Resolve(context.Background(), "expo-camera", "sdk-53")
	require.NoError(t, err)
	_, err = r.Resolve(context.Background(), "expo-camera", "")
	require.NoError(t, err)

	assert.Equal(t, 1, reg.calls, "latest, sdk-53, and empty all normalize to one key")
}

func TestResolveUnknownModuleFallbacks(t *testing.T) {
	r, _ := newTestResolver(t)

	m, err := r.Resolve(context.Background(), "some-community-lib", "sdk-53")
	require.NoError(t, err)

	assert.Equal(t, datatypes.ClassificationCommunity, m.Classification)
	assert.Equal(t, []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid}, m.Platforms)
	assert.Empty(t, m.Permissions)
	assert.Empty(t, m.Methods)
}

func TestResolveDeprecatedClassificationWins(t *testing.T) {
	r, _ := newTestResolver(t)

	// expo-av is core but deprecated; deprecated wins.
	m, err := r.Resolve(context.Background(), "expo-av", "sdk-53")
	require.NoError(t, err)

	assert.Equal(t, datatypes.ClassificationDeprecated, m.Classification)
	require.NotNil(t, m.Deprecation)
	assert.Equal(t, "expo-video", m.Deprecation.Replacement)
}

func TestGetPermissionRequirementsPlatformFilter(t *testing.T) {
	r, _ := newTestResolver(t)

	unfiltered := r.GetPermissionRequirements("expo-camera", "")
	require.NotEmpty(t, unfiltered.Required)

	ios := r.GetPermissionRequirements("expo-camera", datatypes.PlatformIOS)
	for _, p := range ios.Required {
		assert.False(t, strings.HasPrefix(p.Name, "android."), "ios filter kept %s", p.Name)
	}

	android := r.GetPermissionRequirements("expo-camera", datatypes.PlatformAndroid)
	for _, p := range android.Required {
		assert.False(t, strings.HasPrefix(p.Name, "NS"), "android filter kept %s", p.Name)
	}

	web := r.GetPermissionRequirements("expo-camera", datatypes.PlatformWeb)
	assert.Empty(t, web.Required)
	assert.Empty(t, web.Optional)
}

func TestGetPermissionRequirementsMethodOnlyAreOptional(t *testing.T) {
	r, _ := newTestResolver(t)

	reqs := r.GetPermissionRequirements("expo-camera", "")

	required := make(map[string]bool)
	for _, p := range reqs.Required {
		required[p.Name] = true
	}
	for _, p := range reqs.Optional {
		assert.False(t, required[p.Name], "permission %s listed as both required and optional", p.Name)
	}
}

func TestGenerateInstallationSteps(t *testing.T) {
	r, _ := newTestResolver(t)

	plan := r.GenerateInstallationSteps("expo-camera", datatypes.InstallOptions{})
	require.NotEmpty(t, plan.InstallCommands)
	assert.Equal(t, "npx expo install expo-camera", plan.InstallCommands[0])
	assert.NotEmpty(t, plan.ConfigurationSteps)

	// Bare projects get the pod install step.
	bare := r.GenerateInstallationSteps("expo-camera", datatypes.InstallOptions{ProjectType: "bare"})
	assert.Contains(t, bare.InstallCommands, "npx pod-install")

	// Platform filter narrows configuration steps.
	ios := r.GenerateInstallationSteps("expo-camera", datatypes.InstallOptions{Platform: datatypes.PlatformIOS})
	for _, step := range ios.ConfigurationSteps {
		assert.NotContains(t, step, "prebuild")
	}
}

func TestGenerateInstallationStepsUnknownModule(t *testing.T) {
	r, _ := newTestResolver(t)

	plan := r.GenerateInstallationSteps("left-pad", datatypes.InstallOptions{})
	assert.Equal(t, []string{"npx expo install left-pad"}, plan.InstallCommands)
	assert.Empty(t, plan.ConfigurationSteps)
}
