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
	"github.com/AleutianAI/SDKCompass/services/registry/compat"
)

// CompatibilityMatrix returns the scored module/platform summary for one
// SDK version.
func CompatibilityMatrix(checker *compat.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		version, err := validation.SanitizeVersionLabel(c.Param("version"))
		if err != nil {
			respondBadRequest(c, err)
			return
		}
		matrix, err := checker.GetCompatibilityMatrix(c.Request.Context(), version)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, matrix)
	}
}
