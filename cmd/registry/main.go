// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command registry starts the SDKCompass metadata HTTP server.
//
// Configuration is read from an optional YAML file, then overridden by
// environment variables.
//
// # Environment Variables
//
//   - REGISTRY_PORT: HTTP server port (default: 12310)
//   - REGISTRY_API_KEY: API key required on /v1 requests (optional)
//   - REGISTRY_CONFIG: path to a YAML config file (optional)
//   - REGISTRY_LOG_DIR: log file directory (optional)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OpenTelemetry collector (optional)
//   - GIN_MODE: debug, release, or test
//
// # Usage
//
//	# Build
//	go build -o registry ./cmd/registry
//
//	# Run
//	REGISTRY_PORT=12310 ./registry
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/SDKCompass/pkg/logging"
	"github.com/AleutianAI/SDKCompass/services/registry"
)

// fileConfig is the YAML shape of the optional config file.
type fileConfig struct {
	Port         int    `yaml:"port"`
	APIKey       string `yaml:"api_key"`
	OTelEndpoint string `yaml:"otel_endpoint"`
	GinMode      string `yaml:"gin_mode"`
	LogDir       string `yaml:"log_dir"`
	LogLevel     string `yaml:"log_level"`
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	svc, err := registry.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create registry service: %v", err)
	}

	if err := svc.Run(); err != nil {
		log.Fatalf("Registry server error: %v", err)
	}
}

// loadConfig merges the optional YAML file with environment overrides.
func loadConfig() (registry.Config, error) {
	var fc fileConfig
	if path := os.Getenv("REGISTRY_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return registry.Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return registry.Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg := registry.Config{
		Port:         getEnvInt("REGISTRY_PORT", fc.Port),
		APIKey:       getEnvString("REGISTRY_API_KEY", fc.APIKey),
		OTelEndpoint: getEnvString("OTEL_EXPORTER_OTLP_ENDPOINT", fc.OTelEndpoint),
		GinMode:      getEnvString("GIN_MODE", fc.GinMode),
		Logging: logging.Config{
			Level:   parseLogLevel(getEnvString("REGISTRY_LOG_LEVEL", fc.LogLevel)),
			LogDir:  getEnvString("REGISTRY_LOG_DIR", fc.LogDir),
			Service: "registry",
		},
	}
	return cfg, nil
}

func parseLogLevel(level string) logging.Level {
	switch level {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

// getEnvString returns the environment variable value or a default.
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as int or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
