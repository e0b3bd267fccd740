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
	"fmt"

	"github.com/AleutianAI/SDKCompass/services/registry/catalog"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
	"github.com/AleutianAI/SDKCompass/services/registry/observability"
)

// GenerateMigrationGuide synthesizes the upgrade plan between two SDK
// versions. Guides are cached by the (from, to) pair and immutable once
// built.
//
// The guide always opens with the two baseline steps (upgrade the SDK,
// update dependencies) and adds one step per breaking change, numbered
// contiguously from 1. Effort: no combined changes -> low, up to three ->
// medium, more -> high.
func (a *Analyzer) GenerateMigrationGuide(from, to string) *datatypes.MigrationGuide {
	fromLabel := catalog.NormalizeVersion(from)
	toLabel := catalog.NormalizeVersion(to)
	key := fromLabel + "->" + toLabel

	if g, ok := a.guides.Get(key); ok {
		observability.Default().CacheHits.WithLabelValues("migration").Inc()
		return g
	}
	observability.Default().CacheMisses.WithLabelValues("migration").Inc()

	knowledge, known := catalog.Migration(fromLabel, toLabel)
	if !known {
		a.logger.Debug("no migration knowledge for version pair", "from", fromLabel, "to", toLabel)
	}

	steps := []datatypes.MigrationStep{
		{
			Step:        1,
			Title:       fmt.Sprintf("Upgrade the SDK to %s", toLabel),
			Description: "Bump the expo package and let the installer align native module versions.",
			Commands: []string{
				fmt.Sprintf("npx expo install expo@^%d.0.0", catalog.SDKNumber(toLabel)),
			},
			VerificationSteps: []string{
				"npx expo-doctor",
			},
		},
		{
			Step:        2,
			Title:       "Update dependencies to matching versions",
			Description: "Re-pin every SDK module to the versions the new release ships.",
			Commands: []string{
				"npx expo install --fix",
			},
			VerificationSteps: []string{
				"npx expo start --clear",
			},
		},
	}

	for _, change := range knowledge.BreakingChanges {
		step := datatypes.MigrationStep{
			Step:        len(steps) + 1,
			Title:       fmt.Sprintf("Migrate %s", change.Module),
			Description: fmt.Sprintf("%s %s", change.Description, change.RequiredAction),
		}
		if change.Before != "" && change.After != "" {
			step.FileChanges = []string{
				fmt.Sprintf("before: %s", change.Before),
				fmt.Sprintf("after:  %s", change.After),
			}
		}
		step.VerificationSteps = []string{
			fmt.Sprintf("Exercise the %s code paths on every target platform.", change.Module),
		}
		steps = append(steps, step)
	}

	total := len(knowledge.BreakingChanges) + len(knowledge.DeprecatedModules)
	effort := datatypes.EffortLow
	switch {
	case total > 3:
		effort = datatypes.EffortHigh
	case total > 0:
		effort = datatypes.EffortMedium
	}

	guide := &datatypes.MigrationGuide{
		FromVersion:       fromLabel,
		ToVersion:         toLabel,
		BreakingChanges:   append([]datatypes.BreakingChange{}, knowledge.BreakingChanges...),
		DeprecatedModules: append([]string{}, knowledge.DeprecatedModules...),
		Steps:             steps,
		EstimatedEffort:   effort,
		Notes:             knowledge.Notes,
	}

	a.guides.Put(key, guide)
	a.logger.Info("migration guide generated",
		"from", fromLabel,
		"to", toLabel,
		"breaking_changes", len(guide.BreakingChanges),
		"effort", effort,
	)
	return guide
}
