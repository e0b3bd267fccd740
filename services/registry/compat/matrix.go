// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package compat scores SDK versions against the module roster and the
// supported platform set.
package compat

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/AleutianAI/SDKCompass/pkg/logging"
	"github.com/AleutianAI/SDKCompass/services/registry/cache"
	"github.com/AleutianAI/SDKCompass/services/registry/catalog"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
	"github.com/AleutianAI/SDKCompass/services/registry/modules"
	"github.com/AleutianAI/SDKCompass/services/registry/observability"
)

// MatrixTTL bounds how long a computed matrix is served from cache.
const MatrixTTL = time.Hour

// Checker computes per-version compatibility matrices over the module
// roster.
type Checker struct {
	resolver *modules.Resolver
	store    *cache.Store[*datatypes.CompatibilityMatrix]
	logger   *logging.Logger
}

// NewChecker creates a Checker. The cache store and logger are injectable;
// nil values get production defaults.
func NewChecker(resolver *modules.Resolver, store *cache.Store[*datatypes.CompatibilityMatrix], logger *logging.Logger) *Checker {
	if store == nil {
		store = cache.New[*datatypes.CompatibilityMatrix](MatrixTTL)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Checker{
		resolver: resolver,
		store:    store,
		logger:   logger,
	}
}

// platformBaselines is the static per-platform support table applied to
// every SDK version.
var platformBaselines = map[datatypes.Platform]datatypes.PlatformSupport{
	datatypes.PlatformIOS: {
		Supported:      true,
		MinimumVersion: "iOS 13.4",
	},
	datatypes.PlatformAndroid: {
		Supported:      true,
		MinimumVersion: "Android 6.0 (API 23)",
	},
	datatypes.PlatformWeb: {
		Supported: true,
		Limitations: []string{
			"Native-only modules render no-op fallbacks",
			"Push notifications require a service worker",
		},
	},
}

// GetCompatibilityMatrix builds the scored module and platform summary for
// one SDK version. The module roster is the full catalog; each module is
// resolved tolerantly, so a provider failure marks that module unsupported
// instead of failing the matrix. The overall score averages the supported
// module percentage with the supported platform percentage, rounded.
func (c *Checker) GetCompatibilityMatrix(ctx context.Context, version string) (*datatypes.CompatibilityMatrix, error) {
	normalized := catalog.NormalizeVersion(version)

	if m, ok := c.store.Get(normalized); ok {
		observability.Default().CacheHits.WithLabelValues("matrix").Inc()
		return m, nil
	}
	observability.Default().CacheMisses.WithLabelValues("matrix").Inc()

	roster := catalog.ModuleNames()
	sort.Strings(roster)

	matrix := &datatypes.CompatibilityMatrix{
		SDKVersion: normalized,
		Modules:    make(map[string]datatypes.ModuleCompatibility, len(roster)),
		Platforms:  make(map[datatypes.Platform]datatypes.PlatformSupport, len(platformBaselines)),
	}

	supported := 0
	for _, name := range roster {
		entry := c.checkModule(ctx, name, normalized)
		if entry.Supported {
			supported++
		}
		matrix.Modules[name] = entry
	}

	platformsSupported := 0
	for platform, baseline := range platformBaselines {
		support := baseline
		if info, ok := catalog.Version(normalized); ok && info.Status == datatypes.VersionStatusUnsupported {
			support.KnownIssues = append(support.KnownIssues,
				"SDK version is out of its support window; platform fixes are no longer backported")
		}
		if support.Supported {
			platformsSupported++
		}
		matrix.Platforms[platform] = support
	}

	modulePct := 0.0
	if len(roster) > 0 {
		modulePct = float64(supported) / float64(len(roster)) * 100
	}
	platformPct := float64(platformsSupported) / float64(len(platformBaselines)) * 100
	matrix.OverallScore = int(math.Round((modulePct + platformPct) / 2))

	c.store.Put(normalized, matrix)
	c.logger.Info("compatibility matrix computed",
		"sdk_version", normalized,
		"modules_supported", supported,
		"modules_total", len(roster),
		"score", matrix.OverallScore,
	)
	return matrix, nil
}

// checkModule resolves one roster entry for the matrix. Resolution errors
// degrade to an unsupported row naming the failure; deprecated modules are
// unsupported rows carrying the replacement.
func (c *Checker) checkModule(ctx context.Context, name, version string) datatypes.ModuleCompatibility {
	m, err := c.resolver.Resolve(ctx, name, version)
	if err != nil {
		c.logger.Warn("module resolution failed during matrix build", "module", name, "error", err)
		return datatypes.ModuleCompatibility{
			Supported: false,
			Issues:    []string{"module metadata could not be resolved: " + err.Error()},
		}
	}

	entry := datatypes.ModuleCompatibility{
		Supported: !m.IsDeprecated(),
		Version:   catalog.VersionFor(name, version),
	}
	// Supported modules pinned behind the current release get an issue
	// naming the newer version.
	if entry.Supported {
		current := catalog.VersionFor(name, fmt.Sprintf("sdk-%d", catalog.LatestSDK))
		if entry.Version != "*" && current != "*" && catalog.CompareVersions(entry.Version, current) < 0 {
			entry.Issues = append(entry.Issues,
				fmt.Sprintf("pinned at %s; the current SDK ships %s", entry.Version, current))
		}
	}
	if m.Deprecation != nil {
		entry.Issues = append(entry.Issues, "deprecated since "+m.Deprecation.Since+": "+m.Deprecation.Reason)
		entry.Alternative = m.Deprecation.Replacement
		if m.Deprecation.Replacement != "" {
			entry.Workarounds = append(entry.Workarounds, "migrate to "+m.Deprecation.Replacement)
		}
	}
	return entry
}
