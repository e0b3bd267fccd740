// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package snack composes shareable sandbox examples: a resolved dependency
// set, generated starter code, and the snack.expo.dev URLs.
package snack

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/AleutianAI/SDKCompass/pkg/logging"
	"github.com/AleutianAI/SDKCompass/services/registry/cache"
	"github.com/AleutianAI/SDKCompass/services/registry/catalog"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

const snackHost = "https://snack.expo.dev"

// Composer builds snack configurations and shareable URLs. The clock is
// injectable so generated snack ids are deterministic in tests.
type Composer struct {
	clock  cache.Clock
	logger *logging.Logger
}

// NewComposer creates a Composer. Nil arguments get production defaults.
func NewComposer(clock cache.Clock, logger *logging.Logger) *Composer {
	if clock == nil {
		clock = cache.SystemClock{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Composer{clock: clock, logger: logger}
}

// ResolveDependencies maps requested module names to a sandbox dependency
// set. The core runtime pin is always present; packages on the sandbox
// block-list are silently dropped (the sandbox cannot load custom native
// code), and peer dependencies of kept packages are merged in.
func (c *Composer) ResolveDependencies(moduleNames []string, sdkVersion string) map[string]string {
	sdkLabel := catalog.NormalizeVersion(sdkVersion)
	deps := map[string]string{
		"expo": catalog.RuntimePin(sdkLabel),
	}
	for _, name := range moduleNames {
		pkg := catalog.SnackLookup(name, sdkLabel)
		if catalog.SandboxBlocked(pkg.Package) {
			c.logger.Debug("dropping sandbox-blocked package", "package", pkg.Package)
			continue
		}
		deps[pkg.Package] = pkg.Version
		for peer, version := range pkg.PeerDeps {
			if catalog.SandboxBlocked(peer) {
				continue
			}
			if _, exists := deps[peer]; !exists {
				deps[peer] = version
			}
		}
	}
	return deps
}

// Compose builds the full snack configuration: resolved dependencies plus
// generated starter code. Platforms default to ios+android when the caller
// names none.
func (c *Composer) Compose(name, description string, moduleNames []string, platforms []datatypes.Platform, sdkVersion string) datatypes.SnackConfig {
	if name == "" {
		name = "Example Snack"
	}
	if len(platforms) == 0 {
		platforms = []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid}
	}
	sdkLabel := catalog.NormalizeVersion(sdkVersion)

	return datatypes.SnackConfig{
		Name:         name,
		Description:  description,
		Dependencies: c.ResolveDependencies(moduleNames, sdkLabel),
		Code:         c.GeneratePlatformSpecificCode(name, moduleNames, platforms),
		Platforms:    platforms,
		SDKVersion:   sdkLabel,
	}
}

// GeneratePlatformSpecificCode emits a runnable App component: one import
// line per requested module, a Platform.select branch per requested
// platform, and a minimal render tree titled after the snack.
func (c *Composer) GeneratePlatformSpecificCode(title string, moduleNames []string, platforms []datatypes.Platform) string {
	var b strings.Builder
	b.WriteString("import React from 'react';\n")
	b.WriteString("import { Platform, StyleSheet, Text, View } from 'react-native';\n")
	for _, name := range moduleNames {
		pkg := catalog.SnackLookup(name, "")
		if catalog.SandboxBlocked(pkg.Package) {
			continue
		}
		fmt.Fprintf(&b, "import * as %s from '%s';\n", importName(name), pkg.Package)
	}
	b.WriteString("\n")

	b.WriteString("const platformNote = Platform.select({\n")
	for _, p := range platforms {
		fmt.Fprintf(&b, "  %s: 'Running on %s',\n", p, p)
	}
	b.WriteString("  default: 'Unsupported platform',\n")
	b.WriteString("});\n\n")

	b.WriteString("export default function App() {\n")
	b.WriteString("  return (\n")
	b.WriteString("    <View style={styles.container}>\n")
	fmt.Fprintf(&b, "      <Text style={styles.title}>%s</Text>\n", title)
	b.WriteString("      <Text>{platformNote}</Text>\n")
	b.WriteString("    </View>\n")
	b.WriteString("  );\n")
	b.WriteString("}\n\n")

	b.WriteString("const styles = StyleSheet.create({\n")
	b.WriteString("  container: { flex: 1, alignItems: 'center', justifyContent: 'center' },\n")
	b.WriteString("  title: { fontSize: 20, fontWeight: 'bold', marginBottom: 8 },\n")
	b.WriteString("});\n")
	return b.String()
}

// GenerateSnackURL mints an opaque snack id and returns the shareable,
// embedded, and web-player URLs plus the sandbox compatibility score.
func (c *Composer) GenerateSnackURL(config datatypes.SnackConfig) datatypes.SnackResult {
	seed := fmt.Sprintf("%s|%d", config.Name, c.clock.Now().UnixNano())
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed)).String()

	result := datatypes.SnackResult{
		URL:                fmt.Sprintf("%s/%s", snackHost, id),
		EmbedURL:           fmt.Sprintf("%s/embedded/%s", snackHost, id),
		WebPlayerURL:       fmt.Sprintf("%s/web-player/%s", snackHost, id),
		Dependencies:       config.Dependencies,
		CompatibilityScore: calculateSnackCompatibility(config),
		SupportedPlatforms: config.Platforms,
	}
	c.logger.Info("snack url generated",
		"name", config.Name,
		"dependencies", len(config.Dependencies),
		"score", result.CompatibilityScore,
	)
	return result
}

// calculateSnackCompatibility scores how well a configuration fits the
// sandbox. Start at 100; heavy dependency sets, narrow platform coverage,
// and stale SDK majors cost points, and web support earns a small bonus.
// The result is clamped to [0,100].
func calculateSnackCompatibility(config datatypes.SnackConfig) int {
	score := 100

	switch deps := len(config.Dependencies); {
	case deps > 10:
		score -= 20
	case deps > 5:
		score -= 10
	}

	for _, p := range config.Platforms {
		if p == datatypes.PlatformWeb {
			score += 5
			break
		}
	}
	if len(config.Platforms) < 3 {
		score -= 15
	}

	if catalog.LatestSDK-catalog.SDKNumber(config.SDKVersion) >= 2 {
		score -= 10
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

// importName derives a JS identifier from a module name: the last path or
// hyphen segment, capitalized. expo-camera -> Camera,
// @react-navigation/native -> Native.
func importName(module string) string {
	seg := module
	if i := strings.LastIndexByte(seg, '/'); i >= 0 {
		seg = seg[i+1:]
	}
	seg = strings.TrimPrefix(seg, "expo-")
	parts := strings.Split(seg, "-")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]) + part[1:])
	}
	if b.Len() == 0 {
		return "Module"
	}
	return b.String()
}
