// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers contains the Gin HTTP handlers for the registry API.
// Handlers are closures over their engine dependencies, constructed once
// during route setup.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/SDKCompass/services/registry/commands"
	"github.com/AleutianAI/SDKCompass/services/registry/sources"
	"github.com/AleutianAI/SDKCompass/services/registry/templates"
)

// respondError maps engine errors onto HTTP statuses:
//
//   - invalid arguments (bad platform, unknown artifact kind) -> 400
//   - upstream provider failures -> 502
//   - everything else -> 500
//
// Validation findings over generated content never reach this path; they
// travel as data inside 200 responses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInvalidPlatform),
		errors.Is(err, templates.ErrUnknownArtifact):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, sources.ErrUpstreamFetch):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// respondBadRequest reports a request binding or identifier validation
// failure.
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
