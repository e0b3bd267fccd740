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

	"github.com/AleutianAI/SDKCompass/services/registry/advisor"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

// advisorRequest binds /v1/advisor/suggestions.
type advisorRequest struct {
	Kind    datatypes.ArtifactKind   `json:"kind" binding:"required"`
	Content string                   `json:"content"`
	Project datatypes.ProjectContext `json:"project"`
}

// AdvisorSuggestions runs the optimization heuristics over an artifact and
// returns the matched suggestions, highest priority first.
func AdvisorSuggestions(adv *advisor.Advisor) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req advisorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		suggestions := adv.Suggest(req.Kind, req.Content, req.Project)
		c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
	}
}
