// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package templates synthesizes project configuration artifacts: the app
// manifest (app.json), the build configuration (eas.json), and the bundler
// configuration (metro.config.js).
//
// Generation never fails for a recognized artifact kind. Structural
// problems in the produced content are reported through the template's
// validation_errors and suggestions lists; only an unrecognized kind is an
// error.
package templates

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/AleutianAI/SDKCompass/pkg/logging"
	"github.com/AleutianAI/SDKCompass/services/registry/catalog"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
	"github.com/AleutianAI/SDKCompass/services/registry/observability"
)

// ErrUnknownArtifact is returned when the requested template kind is not
// one of app-manifest, build-config, or bundler-config.
var ErrUnknownArtifact = errors.New("unknown artifact kind")

// defaultSlug is used when the project name slugifies to nothing.
const defaultSlug = "my-expo-app"

// Generator builds configuration templates from a project context.
type Generator struct {
	logger *logging.Logger
}

// NewGenerator creates a Generator. A nil logger gets the process default.
func NewGenerator(logger *logging.Logger) *Generator {
	if logger == nil {
		logger = logging.Default()
	}
	return &Generator{logger: logger}
}

// Generate dispatches on the artifact kind, then runs that kind's
// structural validator over the produced content. The returned template
// always carries non-nil validation_errors and suggestions lists.
func (g *Generator) Generate(kind datatypes.ArtifactKind, project datatypes.ProjectContext) (datatypes.ConfigTemplate, error) {
	var tpl datatypes.ConfigTemplate
	switch kind {
	case datatypes.ArtifactAppManifest:
		tpl = g.generateAppManifest(project)
	case datatypes.ArtifactBuildConfig:
		tpl = g.generateBuildConfig(project)
	case datatypes.ArtifactBundlerConfig:
		tpl = g.generateBundlerConfig(project)
	default:
		return datatypes.ConfigTemplate{}, fmt.Errorf("%w: %q", ErrUnknownArtifact, kind)
	}

	verrs, vsugs := validateArtifact(kind, tpl.Content)
	tpl.ValidationErrors = append(tpl.ValidationErrors, verrs...)
	tpl.Suggestions = append(tpl.Suggestions, vsugs...)

	if tpl.ValidationErrors == nil {
		tpl.ValidationErrors = []string{}
	}
	if tpl.Suggestions == nil {
		tpl.Suggestions = []string{}
	}
	tpl.Kind = kind
	tpl.SchemaVersion = catalog.NormalizeVersion(project.SDKVersion)

	observability.Default().TemplatesGenerated.WithLabelValues(string(kind)).Inc()
	g.logger.Debug("template generated",
		"kind", kind,
		"validation_errors", len(tpl.ValidationErrors),
	)
	return tpl, nil
}

var nonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)

// slugify lowercases the name, collapses every non-alphanumeric run into a
// single hyphen, and trims leading/trailing hyphens. An empty result falls
// back to defaultSlug.
func slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonSlugRuns.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return defaultSlug
	}
	return slug
}
