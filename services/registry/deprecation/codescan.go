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
	"fmt"
	"regexp"

	"github.com/AleutianAI/SDKCompass/services/registry/catalog"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

// ==== Code Scanning ====
//
// The scanner is lexical, not a parser. It extracts imported module names
// and receiver.method() call sites with two regexes and checks both
// against the catalog tables. Good enough for advisory output; it never
// fails on malformed input.

var (
	// from 'expo-camera' / from "expo-camera" / require('expo-camera')
	importPattern = regexp.MustCompile(`(?:from\s+|require\s*\(\s*)['"]([@a-z0-9][a-z0-9.\-/]*)['"]`)
	// Camera.requestPermissionsAsync(
	callPattern = regexp.MustCompile(`(\w+)\.(\w+)\s*\(`)
)

// AnalyzeCodeForDeprecatedUsage scans a source snippet for deprecated
// imports and call sites against the given SDK version. Each imported
// module known to the registry is checked for module-level deprecations,
// and each receiver.method() call is checked against the known deprecated
// call table. MigrationRequired is set when any finding reaches severity
// error.
func (a *Analyzer) AnalyzeCodeForDeprecatedUsage(ctx context.Context, code, version string) (*datatypes.CodeScanResult, error) {
	result := &datatypes.CodeScanResult{
		Warnings:    []datatypes.DeprecationWarning{},
		Suggestions: []string{},
	}

	seen := make(map[string]bool)
	for _, m := range importPattern.FindAllStringSubmatch(code, -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true

		warnings, err := a.DetectDeprecatedAPIs(ctx, name, version)
		if err != nil {
			return nil, err
		}
		// Only module-level findings apply here; method-level warnings fire
		// below when the call site is actually present.
		for _, w := range warnings {
			if w.ItemKind != datatypes.ItemKindModule {
				continue
			}
			result.Warnings = append(result.Warnings, w)
			if w.Replacement != "" {
				result.Suggestions = append(result.Suggestions,
					fmt.Sprintf("Replace %s with %s", w.Module, w.Replacement))
			}
		}
	}

	seenCalls := make(map[string]bool)
	for _, m := range callPattern.FindAllStringSubmatch(code, -1) {
		receiver, method := m[1], m[2]
		call, ok := catalog.LookupDeprecatedCall(receiver, method)
		if !ok {
			continue
		}
		site := receiver + "." + method
		if seenCalls[site] {
			continue
		}
		seenCalls[site] = true

		result.Warnings = append(result.Warnings, datatypes.DeprecationWarning{
			Module:          call.Module,
			ItemKind:        datatypes.ItemKindMethod,
			ItemName:        method,
			DeprecatedSince: call.DeprecatedSince,
			Replacement:     call.Replacement,
			Severity:        severityOf(call.DeprecatedSince),
			Message:         fmt.Sprintf("%s() is deprecated since %s", site, call.DeprecatedSince),
			MigrationURL:    call.MigrationURL,
		})
		if call.Replacement != "" {
			result.Suggestions = append(result.Suggestions,
				fmt.Sprintf("Replace %s() with %s", site, call.Replacement))
		}
	}

	for _, w := range result.Warnings {
		if w.Severity == datatypes.SeverityError {
			result.MigrationRequired = true
			break
		}
	}

	a.logger.Debug("code scan complete",
		"imports", len(seen),
		"warnings", len(result.Warnings),
		"migration_required", result.MigrationRequired,
	)
	return result, nil
}
