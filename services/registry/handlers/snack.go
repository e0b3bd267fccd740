// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
	"github.com/AleutianAI/SDKCompass/services/registry/snack"
)

// composeRequest binds /v1/snack/compose.
type composeRequest struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Modules     []string             `json:"modules" binding:"omitempty,dive,modulename"`
	Platforms   []datatypes.Platform `json:"platforms"`
	SDKVersion  string               `json:"sdk_version" binding:"omitempty,versionlabel"`
}

// ComposeSnack builds the sandbox configuration for the requested modules
// and platforms.
func ComposeSnack(composer *snack.Composer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req composeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		config := composer.Compose(req.Name, req.Description, req.Modules, req.Platforms, req.SDKVersion)
		c.JSON(http.StatusOK, config)
	}
}

// SnackURL mints the shareable URLs and sandbox compatibility score for a
// composed snack configuration.
func SnackURL(composer *snack.Composer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var config datatypes.SnackConfig
		if err := c.ShouldBindJSON(&config); err != nil {
			respondBadRequest(c, err)
			return
		}
		c.JSON(http.StatusOK, composer.GenerateSnackURL(config))
	}
}
