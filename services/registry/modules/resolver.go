// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package modules builds complete Module records from aggregated provider
// data plus the static catalog tables, and answers permission and
// installation queries about them.
package modules

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AleutianAI/SDKCompass/pkg/logging"
	"github.com/AleutianAI/SDKCompass/services/registry/cache"
	"github.com/AleutianAI/SDKCompass/services/registry/catalog"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
	"github.com/AleutianAI/SDKCompass/services/registry/observability"
	"github.com/AleutianAI/SDKCompass/services/registry/sources"
)

// ModuleTTL bounds how long a resolved Module is served from cache.
const ModuleTTL = time.Hour

// Resolver turns (module name, SDK version) into a canonical Module
// record.
//
// # Caching
//
// Results are cached per (name, normalized version) key for ModuleTTL.
// Cached records are immutable; a refresh builds a fresh record and
// replaces the entry. Concurrent misses for the same key may duplicate
// aggregation work; last writer wins, which is safe.
type Resolver struct {
	aggregator *sources.Aggregator
	store      *cache.Store[*datatypes.Module]
	clock      cache.Clock
	logger     *logging.Logger
}

// NewResolver creates a Resolver over the given aggregator. The cache
// store and clock are injectable for tests; nil values get production
// defaults.
func NewResolver(aggregator *sources.Aggregator, store *cache.Store[*datatypes.Module], clock cache.Clock, logger *logging.Logger) *Resolver {
	if clock == nil {
		clock = cache.SystemClock{}
	}
	if store == nil {
		store = cache.NewWithClock[*datatypes.Module](ModuleTTL, clock)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Resolver{
		aggregator: aggregator,
		store:      store,
		clock:      clock,
		logger:     logger,
	}
}

// Resolve returns the Module record for (name, version). version defaults
// to "latest" when empty. On a cache hit within the TTL the cached record
// is returned without touching the providers; otherwise the three-source
// aggregation runs and the merged record is enriched from the catalog.
func (r *Resolver) Resolve(ctx context.Context, name, version string) (*datatypes.Module, error) {
	if version == "" {
		version = "latest"
	}
	normalized := catalog.NormalizeVersion(version)
	key := name + "@" + normalized

	if m, ok := r.store.Get(key); ok {
		observability.Default().CacheHits.WithLabelValues("module").Inc()
		r.logger.Debug("module cache hit", "module", name, "sdk_version", normalized)
		return m, nil
	}
	observability.Default().CacheMisses.WithLabelValues("module").Inc()

	start := time.Now()
	record, err := r.aggregator.Fetch(ctx, name, normalized)
	if err != nil {
		observability.Default().Resolutions.WithLabelValues("error").Inc()
		return nil, err
	}
	observability.Default().Resolutions.WithLabelValues("success").Inc()
	observability.Default().ResolutionSeconds.Observe(time.Since(start).Seconds())

	m := r.build(name, normalized, record)
	r.store.Put(key, m)
	r.logger.Info("module resolved",
		"module", name,
		"sdk_version", normalized,
		"classification", m.Classification,
	)
	return m, nil
}

// build assembles the full Module entity from the merged provider record
// and the static tables. Unrecognized modules get the documented
// fallbacks: ios+android platforms, no permissions, empty catalogs.
func (r *Resolver) build(name, sdkVersion string, record sources.Record) *datatypes.Module {
	m := &datatypes.Module{
		Name:             name,
		PackageName:      record.PackageName,
		Description:      record.Description,
		Version:          record.Version,
		SDKVersion:       sdkVersion,
		Installation:     fmt.Sprintf("npx expo install %s", record.PackageName),
		Platforms:        catalog.Platforms(name),
		Permissions:      catalog.Permissions(name),
		Dependencies:     record.Dependencies,
		Methods:          catalog.Methods(name),
		Constants:        catalog.Constants(name),
		Types:            catalog.Types(name),
		Examples:         catalog.Examples(name),
		DocumentationURL: record.DocumentationURL,
		RepositoryURL:    record.RepositoryURL,
		LastResolved:     r.clock.Now(),
		Deprecation:      catalog.Deprecation(name),
	}
	if e, ok := catalog.Lookup(name); ok && len(e.PeerDeps) > 0 {
		m.PeerDependencies = make(map[string]string, len(e.PeerDeps))
		for k, v := range e.PeerDeps {
			m.PeerDependencies[k] = v
		}
	}

	switch {
	case m.Deprecation != nil:
		m.Classification = datatypes.ClassificationDeprecated
	case catalog.IsCore(name):
		m.Classification = datatypes.ClassificationCore
	default:
		m.Classification = datatypes.ClassificationCommunity
	}
	return m
}

// IsCore reports whether the module name is on the SDK-maintained
// allow-list. The snack composer keys its dependency classification off
// this.
func (r *Resolver) IsCore(name string) bool {
	return catalog.IsCore(name)
}

// =============================================================================
// Permission Requirements
// =============================================================================

// permissionDescriptions maps namespaced permission names to caller-facing
// descriptions. Unknown permissions get a generated fallback.
var permissionDescriptions = map[string]string{
	"android.permission.CAMERA":                 "Access the device camera",
	"android.permission.RECORD_AUDIO":           "Record audio with the microphone",
	"android.permission.ACCESS_FINE_LOCATION":   "Access precise device location",
	"android.permission.ACCESS_COARSE_LOCATION": "Access approximate device location",
	"android.permission.POST_NOTIFICATIONS":     "Post notifications (Android 13+)",
	"android.permission.SCHEDULE_EXACT_ALARM":   "Schedule exact alarms for notification triggers",
	"android.permission.READ_CONTACTS":          "Read the contact store",
	"android.permission.WRITE_CONTACTS":         "Modify the contact store",
	"android.permission.READ_MEDIA_IMAGES":      "Read images from the media library",
	"android.permission.READ_MEDIA_VIDEO":       "Read videos from the media library",
	"android.permission.ACTIVITY_RECOGNITION":   "Detect physical activity for the pedometer",
	"android.permission.VIBRATE":                "Control the vibration motor",
	"NSCameraUsageDescription":                  "Why the app needs camera access (Info.plist)",
	"NSMicrophoneUsageDescription":              "Why the app needs microphone access (Info.plist)",
	"NSLocationWhenInUseUsageDescription":       "Why the app needs location while in use (Info.plist)",
	"NSContactsUsageDescription":                "Why the app needs contact access (Info.plist)",
	"NSPhotoLibraryUsageDescription":            "Why the app needs photo library access (Info.plist)",
	"NSMotionUsageDescription":                  "Why the app needs motion data (Info.plist)",
	"NSFaceIDUsageDescription":                  "Why the app uses Face ID (Info.plist)",
}

// GetPermissionRequirements returns the required and optional permissions
// for a module. Base module permissions are required; permissions that
// only specific methods demand are optional. When platform is non-empty,
// both lists are filtered through the per-platform predicate: web strips
// everything, ios strips Android manifest entries, android strips iOS
// Info.plist keys.
func (r *Resolver) GetPermissionRequirements(module string, platform datatypes.Platform) datatypes.PermissionRequirements {
	base := catalog.Permissions(module)
	baseSet := make(map[string]bool, len(base))
	for _, p := range base {
		baseSet[p] = true
	}

	var optional []string
	seen := make(map[string]bool)
	for _, method := range catalog.Methods(module) {
		for _, p := range method.RequiredPermissions {
			if !baseSet[p] && !seen[p] {
				seen[p] = true
				optional = append(optional, p)
			}
		}
	}

	if platform != "" {
		base = filterPermissions(base, platform)
		optional = filterPermissions(optional, platform)
	}

	return datatypes.PermissionRequirements{
		Module:   module,
		Platform: platform,
		Required: describePermissions(base),
		Optional: describePermissions(optional),
	}
}

// filterPermissions applies the per-platform permission predicate.
func filterPermissions(perms []string, platform datatypes.Platform) []string {
	var out []string
	for _, p := range perms {
		switch platform {
		case datatypes.PlatformWeb:
			// Browsers prompt at call time; no manifest permissions.
			continue
		case datatypes.PlatformIOS:
			if strings.HasPrefix(p, "android.") {
				continue
			}
		case datatypes.PlatformAndroid:
			if strings.HasPrefix(p, "NS") {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}

func describePermissions(perms []string) []datatypes.PermissionDetail {
	details := make([]datatypes.PermissionDetail, 0, len(perms))
	for _, p := range perms {
		desc, ok := permissionDescriptions[p]
		if !ok {
			desc = fmt.Sprintf("Required by the module (%s)", p)
		}
		details = append(details, datatypes.PermissionDetail{Name: p, Description: desc})
	}
	return details
}
