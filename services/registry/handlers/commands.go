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
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/SDKCompass/services/registry/commands"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

// commandRequest binds /v1/commands/:operation.
type commandRequest struct {
	Platform   string            `json:"platform"`
	Profile    string            `json:"profile"`
	ExtraFlags map[string]string `json:"extra_flags"`
}

// SynthesizeCommand builds one EAS CLI invocation for the operation named
// in the path.
func SynthesizeCommand(synth *commands.Synthesizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req commandRequest
		if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
			respondBadRequest(c, err)
			return
		}

		var (
			result datatypes.EasCommandResult
			err    error
		)
		switch op := datatypes.Operation(c.Param("operation")); op {
		case datatypes.OperationBuild:
			result, err = synth.GenerateBuildCommand(req.Platform, req.Profile, req.ExtraFlags)
		case datatypes.OperationSubmit:
			result, err = synth.GenerateSubmitCommand(req.Platform, req.Profile, req.ExtraFlags)
		case datatypes.OperationUpdate:
			result, err = synth.GenerateUpdateCommand(req.Platform, req.Profile, req.ExtraFlags)
		case datatypes.OperationCredentials:
			result, err = synth.GenerateCredentialsCommand(req.Platform, req.ExtraFlags)
		default:
			respondBadRequest(c, fmt.Errorf("unknown operation %q (expected build, submit, update, or credentials)", op))
			return
		}
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
