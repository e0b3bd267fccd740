// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package deprecation detects deprecated API usage and synthesizes
// cross-version migration guides.
package deprecation

import (
	"context"
	"fmt"
	"time"

	"github.com/AleutianAI/SDKCompass/pkg/logging"
	"github.com/AleutianAI/SDKCompass/services/registry/cache"
	"github.com/AleutianAI/SDKCompass/services/registry/catalog"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
	"github.com/AleutianAI/SDKCompass/services/registry/modules"
)

// GuideTTL bounds how long a generated migration guide is served from
// cache.
const GuideTTL = time.Hour

// Analyzer computes deprecation warnings and migration guides on top of
// the module resolver.
type Analyzer struct {
	resolver *modules.Resolver
	guides   *cache.Store[*datatypes.MigrationGuide]
	logger   *logging.Logger
}

// NewAnalyzer creates an Analyzer. The guide cache and logger are
// injectable; nil values get production defaults.
func NewAnalyzer(resolver *modules.Resolver, guides *cache.Store[*datatypes.MigrationGuide], logger *logging.Logger) *Analyzer {
	if guides == nil {
		guides = cache.New[*datatypes.MigrationGuide](GuideTTL)
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Analyzer{
		resolver: resolver,
		guides:   guides,
		logger:   logger,
	}
}

// severityOf grades a deprecation by its age: the further behind the
// current SDK the deprecating release is, the more urgent the warning.
// diff >= 3 majors -> error, diff >= 1 -> warning, else info.
func severityOf(deprecatedSince string) datatypes.Severity {
	diff := catalog.LatestSDK - catalog.SDKNumber(deprecatedSince)
	switch {
	case diff >= 3:
		return datatypes.SeverityError
	case diff >= 1:
		return datatypes.SeverityWarning
	default:
		return datatypes.SeverityInfo
	}
}

// DetectDeprecatedAPIs resolves the module and emits one warning per
// deprecated item: the module itself (severity error), each method with a
// deprecated availability marker (severity by age), and each deprecated
// constant (severity warning). A module with no deprecation records
// yields an empty slice, not an error.
func (a *Analyzer) DetectDeprecatedAPIs(ctx context.Context, name, version string) ([]datatypes.DeprecationWarning, error) {
	m, err := a.resolver.Resolve(ctx, name, version)
	if err != nil {
		return nil, err
	}

	warnings := []datatypes.DeprecationWarning{}

	if m.Deprecation != nil {
		w := datatypes.DeprecationWarning{
			Module:          m.Name,
			ItemKind:        datatypes.ItemKindModule,
			ItemName:        m.Name,
			DeprecatedSince: m.Deprecation.Since,
			Replacement:     m.Deprecation.Replacement,
			Severity:        datatypes.SeverityError,
			Message:         fmt.Sprintf("%s is deprecated since %s: %s", m.Name, m.Deprecation.Since, m.Deprecation.Reason),
		}
		warnings = append(warnings, w)
	}

	for _, method := range m.Methods {
		if method.Availability.Deprecated == "" {
			continue
		}
		warnings = append(warnings, datatypes.DeprecationWarning{
			Module:          m.Name,
			ItemKind:        datatypes.ItemKindMethod,
			ItemName:        method.Name,
			DeprecatedSince: method.Availability.Deprecated,
			Replacement:     method.Availability.Replacement,
			Severity:        severityOf(method.Availability.Deprecated),
			Message:         fmt.Sprintf("%s.%s is deprecated since %s", m.Name, method.Name, method.Availability.Deprecated),
			MigrationURL:    method.Availability.MigrationURL,
		})
	}

	for _, c := range m.Constants {
		if !c.Deprecated {
			continue
		}
		warnings = append(warnings, datatypes.DeprecationWarning{
			Module:          m.Name,
			ItemKind:        datatypes.ItemKindConstant,
			ItemName:        c.Name,
			DeprecatedSince: m.SDKVersion,
			Severity:        datatypes.SeverityWarning,
			Message:         fmt.Sprintf("%s constant %s is deprecated", m.Name, c.Name),
		})
	}

	return warnings, nil
}
