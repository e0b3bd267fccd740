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

	"github.com/AleutianAI/SDKCompass/services/registry/deprecation"
)

// scanRequest binds /v1/deprecations/scan.
type scanRequest struct {
	Module  string `json:"module" binding:"required,modulename"`
	Version string `json:"version" binding:"omitempty,versionlabel"`
}

// ScanModule returns the deprecation warnings for one module at a version.
// A clean module yields an empty warnings list, not an error.
func ScanModule(analyzer *deprecation.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req scanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		warnings, err := analyzer.DetectDeprecatedAPIs(c.Request.Context(), req.Module, req.Version)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"warnings": warnings})
	}
}

// codeScanRequest binds /v1/deprecations/code-scan.
type codeScanRequest struct {
	Code    string `json:"code" binding:"required"`
	Version string `json:"version" binding:"omitempty,versionlabel"`
}

// ScanCode runs the lexical deprecation scanner over a source snippet.
func ScanCode(analyzer *deprecation.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req codeScanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		result, err := analyzer.AnalyzeCodeForDeprecatedUsage(c.Request.Context(), req.Code, req.Version)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// migrationRequest binds /v1/migration/guide.
type migrationRequest struct {
	From string `json:"from" binding:"required,versionlabel"`
	To   string `json:"to" binding:"required,versionlabel"`
}

// MigrationGuide returns the synthesized upgrade plan between two SDK
// versions.
func MigrationGuide(analyzer *deprecation.Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req migrationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, err)
			return
		}
		c.JSON(http.StatusOK, analyzer.GenerateMigrationGuide(req.From, req.To))
	}
}
