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

	"github.com/AleutianAI/SDKCompass/pkg/validation"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
	"github.com/AleutianAI/SDKCompass/services/registry/modules"
)

// resolveQuery binds /v1/modules/resolve query parameters.
type resolveQuery struct {
	Name    string `form:"name" binding:"required,modulename"`
	Version string `form:"version" binding:"omitempty,versionlabel"`
}

// ResolveModule returns the canonical module record for (name, version).
// Version defaults to "latest".
func ResolveModule(resolver *modules.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q resolveQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			respondBadRequest(c, err)
			return
		}
		m, err := resolver.Resolve(c.Request.Context(), q.Name, q.Version)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

// GetPermissions returns the required/optional permission summary for a
// module, optionally filtered to one platform via ?platform=.
func GetPermissions(resolver *modules.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, err := validation.SanitizeModuleName(c.Param("name"))
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		platform := datatypes.Platform(c.Query("platform"))
		c.JSON(http.StatusOK, resolver.GetPermissionRequirements(name, platform))
	}
}

// GenerateInstall returns the installation walkthrough for a module.
func GenerateInstall(resolver *modules.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		name, err := validation.SanitizeModuleName(c.Param("name"))
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		var opts datatypes.InstallOptions
		if err := c.ShouldBindJSON(&opts); err != nil && c.Request.ContentLength > 0 {
			respondBadRequest(c, err)
			return
		}
		c.JSON(http.StatusOK, resolver.GenerateInstallationSteps(name, opts))
	}
}
