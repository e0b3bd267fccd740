// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package registry assembles the SDK metadata service: the module
// resolver, deprecation analyzer, compatibility checker, template
// generator, command synthesizer, snack composer, and advisor, wired
// behind one Gin HTTP surface.
//
// # Usage
//
//	cfg := registry.Config{Port: 12310}
//	svc, err := registry.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Fatal(svc.Run())
package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/AleutianAI/SDKCompass/pkg/logging"
	"github.com/AleutianAI/SDKCompass/services/registry/advisor"
	"github.com/AleutianAI/SDKCompass/services/registry/cache"
	"github.com/AleutianAI/SDKCompass/services/registry/commands"
	"github.com/AleutianAI/SDKCompass/services/registry/compat"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
	"github.com/AleutianAI/SDKCompass/services/registry/deprecation"
	"github.com/AleutianAI/SDKCompass/services/registry/modules"
	"github.com/AleutianAI/SDKCompass/services/registry/routes"
	"github.com/AleutianAI/SDKCompass/services/registry/snack"
	"github.com/AleutianAI/SDKCompass/services/registry/sources"
	"github.com/AleutianAI/SDKCompass/services/registry/templates"
)

// serviceName is the identity reported to the tracing backend.
const serviceName = "sdkcompass-registry"

// =============================================================================
// Interface Definition
// =============================================================================

// Service defines the contract for the registry service.
//
// Implementations must be safe for concurrent use. Run() blocks and should
// only be called once per instance.
type Service interface {
	// Run starts the HTTP server and blocks until shutdown or error.
	Run() error

	// Router returns the underlying Gin engine for testing. Callers must
	// not modify the router.
	Router() *gin.Engine
}

// =============================================================================
// Configuration
// =============================================================================

// Config holds registry service configuration. All fields have defaults
// applied by New(); the zero value is a runnable local configuration.
type Config struct {
	// Port is the HTTP server port. Default: 12310
	Port int

	// APIKey, when set, is required on /v1 requests via the X-Api-Key
	// header. Empty disables authentication.
	APIKey string

	// OTelEndpoint is the OpenTelemetry collector endpoint. Empty disables
	// tracing.
	OTelEndpoint string

	// GinMode sets the Gin framework mode: "debug", "release", or "test".
	GinMode string

	// ModuleTTL overrides the resolver cache TTL. Default: 1 hour.
	ModuleTTL time.Duration

	// Logging configures the structured logger.
	Logging logging.Config
}

// =============================================================================
// Implementation
// =============================================================================

// service implements Service for production use. All fields are read-only
// after New() returns.
type service struct {
	config        Config
	router        *gin.Engine
	logger        *logging.Logger
	tracerCleanup func(context.Context)
}

// New creates a registry Service: logger, provider aggregator, engine
// components, optional tracer, and the HTTP router.
func New(cfg Config) (Service, error) {
	cfg = applyConfigDefaults(cfg)

	logger := logging.New(cfg.Logging)

	s := &service{
		config: cfg,
		logger: logger,
	}

	if cfg.OTelEndpoint != "" {
		cleanup, err := s.initTracer()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize tracer: %w", err)
		}
		s.tracerCleanup = cleanup
	}

	aggregator := sources.NewDefaultAggregator(logger)
	moduleStore := cache.New[*datatypes.Module](cfg.ModuleTTL)
	resolver := modules.NewResolver(aggregator, moduleStore, nil, logger)

	engines := routes.Engines{
		Resolver:  resolver,
		Analyzer:  deprecation.NewAnalyzer(resolver, nil, logger),
		Checker:   compat.NewChecker(resolver, nil, logger),
		Generator: templates.NewGenerator(logger),
		Commands:  commands.NewSynthesizer(logger),
		Composer:  snack.NewComposer(nil, logger),
		Advisor:   advisor.NewAdvisor(logger),
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	s.router = gin.New()
	s.router.Use(gin.Recovery())
	if cfg.OTelEndpoint != "" {
		s.router.Use(otelgin.Middleware(serviceName))
	}
	routes.SetupRoutes(s.router, engines, cfg.APIKey)

	return s, nil
}

// Run starts the HTTP server and blocks until it stops. Cleanup of the
// tracer and log file is automatic on return.
func (s *service) Run() error {
	defer s.cleanup()

	addr := fmt.Sprintf(":%d", s.config.Port)
	s.logger.Info("starting registry server", "port", s.config.Port)

	return s.router.Run(addr)
}

// Router returns the underlying Gin engine for testing.
func (s *service) Router() *gin.Engine {
	return s.router
}

// =============================================================================
// Private Initialization Methods
// =============================================================================

// applyConfigDefaults fills in missing configuration values.
func applyConfigDefaults(cfg Config) Config {
	if cfg.Port == 0 {
		cfg.Port = 12310
	}
	if cfg.ModuleTTL == 0 {
		cfg.ModuleTTL = modules.ModuleTTL
	}
	if cfg.Logging.Service == "" {
		cfg.Logging.Service = serviceName
	}
	return cfg
}

// initTracer sets up the OTLP trace exporter against the configured
// collector. Uses an insecure gRPC connection, appropriate for internal
// networks.
func (s *service) initTracer() (func(context.Context), error) {
	ctx := context.Background()

	conn, err := grpc.NewClient(s.config.OTelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC connection: %w", err)
	}

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))

	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{}))

	cleanup := func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			s.logger.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}
	return cleanup, nil
}

// cleanup releases resources held by the service.
func (s *service) cleanup() {
	if s.tracerCleanup != nil {
		s.tracerCleanup(context.Background())
	}
	if err := s.logger.Close(); err != nil {
		s.logger.Warn("logger close error", "error", err)
	}
}

// =============================================================================
// Compile-time Interface Compliance
// =============================================================================

var _ Service = (*service)(nil)
