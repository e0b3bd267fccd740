// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package sources

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRegistry wraps StaticRegistry and counts lookups.
type countingRegistry struct {
	inner *StaticRegistry
	calls int
}

func (p *countingRegistry) PackageInfo(ctx context.Context, module, sdkVersion string) (RegistryInfo, error) {
	p.calls++
	return p.inner.PackageInfo(ctx, module, sdkVersion)
}

// failingDocs always fails.
type failingDocs struct{}

func (failingDocs) DocumentationInfo(ctx context.Context, module string) (DocsInfo, error) {
	return DocsInfo{}, errors.New("docs index unavailable")
}

func TestFetchMergesAllThreeSources(t *testing.T) {
	a := NewDefaultAggregator(nil)

	record, err := a.Fetch(context.Background(), "expo-camera", "sdk-53")
	require.NoError(t, err)

	assert.Equal(t, "expo-camera", record.PackageName)
	assert.NotEmpty(t, record.Version)
	assert.NotEmpty(t, record.Description)
	assert.Contains(t, record.DocumentationURL, "docs.expo.dev")
	assert.Contains(t, record.RepositoryURL, "github.com/expo/expo")
}

func TestFetchUnknownModuleSucceeds(t *testing.T) {
	a := NewDefaultAggregator(nil)

	record, err := a.Fetch(context.Background(), "left-pad", "sdk-53")
	require.NoError(t, err)

	assert.Equal(t, "left-pad", record.PackageName)
	assert.Equal(t, "*", record.Version)
}

func TestFetchIsAllOrNothing(t *testing.T) {
	a := NewAggregator(NewStaticRegistry(), NewStaticRepository(), failingDocs{}, nil)

	_, err := a.Fetch(context.Background(), "expo-camera", "sdk-53")
	require.Error(t, err)

	// The error names the module and failed source, and unwraps to the
	// sentinel.
	var fetchErr *FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "expo-camera", fetchErr.Module)
	assert.Equal(t, "documentation", fetchErr.Source)
	assert.ErrorIs(t, err, ErrUpstreamFetch)
}

func TestFetchCancelledContext(t *testing.T) {
	a := NewDefaultAggregator(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Fetch(ctx, "expo-camera", "sdk-53")
	assert.Error(t, err)
}

func TestCountingProviderSeesOneCallPerFetch(t *testing.T) {
	reg := &countingRegistry{inner: NewStaticRegistry()}
	a := NewAggregator(reg, NewStaticRepository(), NewStaticDocs(), nil)

	_, err := a.Fetch(context.Background(), "expo-location", "sdk-53")
	require.NoError(t, err)
	assert.Equal(t, 1, reg.calls)
}
