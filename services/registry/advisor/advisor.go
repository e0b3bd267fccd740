// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package advisor runs heuristic optimization checks over generated
// configuration artifacts.
package advisor

import (
	"sort"
	"strings"

	"github.com/AleutianAI/SDKCompass/pkg/logging"
	"github.com/AleutianAI/SDKCompass/services/registry/catalog"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

// Advisor evaluates artifact content against a fixed per-kind rule set
// plus cross-cutting project rules.
type Advisor struct {
	logger *logging.Logger
}

// NewAdvisor creates an Advisor. A nil logger gets the process default.
func NewAdvisor(logger *logging.Logger) *Advisor {
	if logger == nil {
		logger = logging.Default()
	}
	return &Advisor{logger: logger}
}

// Suggest inspects the artifact content and the project context and
// returns the matched suggestions sorted by priority, high first. The
// checks are string-level heuristics over the generated content: the
// advisor never parses, so malformed content simply matches fewer rules.
func (a *Advisor) Suggest(kind datatypes.ArtifactKind, content string, project datatypes.ProjectContext) []datatypes.OptimizationSuggestion {
	suggestions := []datatypes.OptimizationSuggestion{}

	switch kind {
	case datatypes.ArtifactAppManifest:
		suggestions = append(suggestions, a.checkAppManifest(content)...)
	case datatypes.ArtifactBuildConfig:
		suggestions = append(suggestions, a.checkBuildConfig(content, project)...)
	case datatypes.ArtifactBundlerConfig:
		suggestions = append(suggestions, a.checkBundlerConfig(content, project)...)
	}
	suggestions = append(suggestions, a.checkProject(project)...)

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority.Rank() < suggestions[j].Priority.Rank()
	})

	a.logger.Debug("advisor run complete", "kind", kind, "suggestions", len(suggestions))
	return suggestions
}

func (a *Advisor) checkAppManifest(content string) []datatypes.OptimizationSuggestion {
	var out []datatypes.OptimizationSuggestion
	if !strings.Contains(content, "assetBundlePatterns") {
		out = append(out, datatypes.OptimizationSuggestion{
			Category:         datatypes.CategoryPerformance,
			Priority:         datatypes.PriorityMedium,
			Title:            "Bundle assets with the binary",
			Description:      "Without assetBundlePatterns the app downloads assets on first launch; bundle them to speed up cold start.",
			DocumentationURL: "https://docs.expo.dev/versions/latest/config/app/#assetbundlepatterns",
		})
	}
	if !strings.Contains(content, `"icon"`) {
		out = append(out, datatypes.OptimizationSuggestion{
			Category:    datatypes.CategoryMaintainability,
			Priority:    datatypes.PriorityHigh,
			Title:       "Set an app icon",
			Description: "Store submissions are rejected without an icon; set expo.icon in the manifest.",
		})
	}
	return out
}

func (a *Advisor) checkBuildConfig(content string, project datatypes.ProjectContext) []datatypes.OptimizationSuggestion {
	var out []datatypes.OptimizationSuggestion
	if !strings.Contains(content, "resourceClass") {
		out = append(out, datatypes.OptimizationSuggestion{
			Category:         datatypes.CategoryPerformance,
			Priority:         datatypes.PriorityMedium,
			Title:            "Pin a build resource class",
			Description:      "Production iOS builds on the default resource class can hit memory limits; set build.production.ios.resourceClass explicitly.",
			DocumentationURL: "https://docs.expo.dev/build-reference/infrastructure/",
		})
	}
	if project.HasPlatform(datatypes.PlatformAndroid) && !strings.Contains(content, "buildType") {
		out = append(out, datatypes.OptimizationSuggestion{
			Category:    datatypes.CategoryPerformance,
			Priority:    datatypes.PriorityMedium,
			Title:       "Choose an Android build type",
			Description: "Set build.production.android.buildType to app-bundle for Play Store submissions; the default APK is larger.",
			FixCommand:  `eas build --platform android --profile production`,
		})
	}
	return out
}

func (a *Advisor) checkBundlerConfig(content string, project datatypes.ProjectContext) []datatypes.OptimizationSuggestion {
	var out []datatypes.OptimizationSuggestion
	if project.HasPlatform(datatypes.PlatformWeb) && !strings.Contains(content, "unstable_enablePackageExports") {
		out = append(out, datatypes.OptimizationSuggestion{
			Category:    datatypes.CategoryCompatibility,
			Priority:    datatypes.PriorityHigh,
			Title:       "Enable package exports resolution for web",
			Description: "Web builds need package-exports resolution so libraries pick their browser entry points; enable resolver.unstable_enablePackageExports.",
		})
	}
	return out
}

// checkProject holds the cross-cutting rules applied to every artifact
// kind.
func (a *Advisor) checkProject(project datatypes.ProjectContext) []datatypes.OptimizationSuggestion {
	var out []datatypes.OptimizationSuggestion
	if project.SDKVersion == "" {
		return out
	}
	if catalog.LatestSDK-catalog.SDKNumber(project.SDKVersion) >= 2 {
		out = append(out, datatypes.OptimizationSuggestion{
			Category:         datatypes.CategorySecurity,
			Priority:         datatypes.PriorityHigh,
			Title:            "Upgrade the SDK version",
			Description:      "The project targets an SDK at least two majors behind the current release; older SDKs stop receiving security patches.",
			FixCommand:       "npx expo install expo@latest && npx expo install --fix",
			DocumentationURL: "https://docs.expo.dev/workflow/upgrading-expo-sdk-walkthrough/",
		})
	}
	return out
}
