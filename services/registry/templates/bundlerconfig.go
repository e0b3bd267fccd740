// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package templates

import (
	"strings"

	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

// generateBundlerConfig builds a metro.config.js. The base skeleton is the
// stock expo/metro-config setup; a web resolver block is appended when the
// project targets web.
func (g *Generator) generateBundlerConfig(project datatypes.ProjectContext) datatypes.ConfigTemplate {
	var b strings.Builder
	b.WriteString("// Learn more: https://docs.expo.dev/guides/customizing-metro/\n")
	b.WriteString("const { getDefaultConfig } = require('expo/metro-config');\n")
	b.WriteString("\n")
	b.WriteString("const config = getDefaultConfig(__dirname);\n")
	b.WriteString("\n")

	if project.HasPlatform(datatypes.PlatformWeb) {
		b.WriteString("// Resolve the web entry points of packages that ship them.\n")
		b.WriteString("config.resolver.unstable_enablePackageExports = true;\n")
		b.WriteString("config.resolver.sourceExts.push('mjs');\n")
		b.WriteString("\n")
	}

	b.WriteString("// Add asset extensions here, e.g.:\n")
	b.WriteString("// config.resolver.assetExts.push('db');\n")
	b.WriteString("\n")
	b.WriteString("module.exports = config;\n")

	var suggestions []string
	if project.HasPlatform(datatypes.PlatformWeb) {
		suggestions = append(suggestions,
			"Web builds use the metro bundler; make sure app.json sets web.bundler to \"metro\".")
	}

	return datatypes.ConfigTemplate{
		Content:     b.String(),
		Suggestions: suggestions,
	}
}
