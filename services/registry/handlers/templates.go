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
	"github.com/AleutianAI/SDKCompass/services/registry/templates"
)

// GenerateTemplate builds one configuration artifact from the posted
// project context. Structural problems in the generated content are data
// in the 200 response; only an unknown artifact kind is a 400.
func GenerateTemplate(generator *templates.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		kind := datatypes.ArtifactKind(c.Param("kind"))

		var project datatypes.ProjectContext
		if err := c.ShouldBindJSON(&project); err != nil && c.Request.ContentLength > 0 {
			respondBadRequest(c, err)
			return
		}

		tpl, err := generator.Generate(kind, project)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, tpl)
	}
}
