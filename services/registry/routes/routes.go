// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/SDKCompass/services/registry/advisor"
	"github.com/AleutianAI/SDKCompass/services/registry/commands"
	"github.com/AleutianAI/SDKCompass/services/registry/compat"
	"github.com/AleutianAI/SDKCompass/services/registry/deprecation"
	"github.com/AleutianAI/SDKCompass/services/registry/handlers"
	"github.com/AleutianAI/SDKCompass/services/registry/middleware"
	"github.com/AleutianAI/SDKCompass/services/registry/modules"
	"github.com/AleutianAI/SDKCompass/services/registry/snack"
	"github.com/AleutianAI/SDKCompass/services/registry/templates"
)

// Engines bundles the constructed engine components the routes close over.
type Engines struct {
	Resolver  *modules.Resolver
	Analyzer  *deprecation.Analyzer
	Checker   *compat.Checker
	Generator *templates.Generator
	Commands  *commands.Synthesizer
	Composer  *snack.Composer
	Advisor   *advisor.Advisor
}

// SetupRoutes registers every endpoint on the router. The API key is
// enforced on the /v1 group only; health and metrics stay open for probes
// and scrapers.
func SetupRoutes(router *gin.Engine, engines Engines, apiKey string) {
	handlers.RegisterValidators()

	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	v1.Use(middleware.RequestID())
	v1.Use(middleware.APIKeyAuth(apiKey))
	{
		mods := v1.Group("/modules")
		{
			mods.GET("/resolve", handlers.ResolveModule(engines.Resolver))
			mods.GET("/:name/permissions", handlers.GetPermissions(engines.Resolver))
			mods.POST("/:name/install", handlers.GenerateInstall(engines.Resolver))
		}

		deprecations := v1.Group("/deprecations")
		{
			deprecations.POST("/scan", handlers.ScanModule(engines.Analyzer))
			deprecations.POST("/code-scan", handlers.ScanCode(engines.Analyzer))
		}
		v1.POST("/migration/guide", handlers.MigrationGuide(engines.Analyzer))

		v1.GET("/compatibility/:version", handlers.CompatibilityMatrix(engines.Checker))
		v1.POST("/templates/:kind", handlers.GenerateTemplate(engines.Generator))
		v1.POST("/commands/:operation", handlers.SynthesizeCommand(engines.Commands))

		snacks := v1.Group("/snack")
		{
			snacks.POST("/compose", handlers.ComposeSnack(engines.Composer))
			snacks.POST("/url", handlers.SnackURL(engines.Composer))
		}

		v1.POST("/advisor/suggestions", handlers.AdvisorSuggestions(engines.Advisor))
	}
}
