// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes defines the shared entity model for the SDK registry:
// modules, versions, deprecation warnings, migration guides, compatibility
// matrices, generated artifacts, and the request/response records the HTTP
// surface binds to.
//
// Every entity produced by the engine is immutable after creation. A cache
// refresh replaces the stored value; nothing is patched in place.
package datatypes

import "time"

// Platform identifies a runtime target for an SDK module.
type Platform string

const (
	PlatformIOS       Platform = "ios"
	PlatformAndroid   Platform = "android"
	PlatformWeb       Platform = "web"
	PlatformUniversal Platform = "universal"
)

// Classification buckets a module by ownership and lifecycle.
type Classification string

const (
	// ClassificationCore marks modules maintained as part of the SDK.
	ClassificationCore Classification = "core"

	// ClassificationCommunity marks third-party maintained modules.
	ClassificationCommunity Classification = "community"

	// ClassificationDeprecated marks modules with an active deprecation
	// record, regardless of ownership.
	ClassificationDeprecated Classification = "deprecated"
)

// DeprecationRecord captures why and when a module was deprecated.
type DeprecationRecord struct {
	// Reason is a human-readable explanation.
	Reason string `json:"reason"`

	// Replacement names the successor module, when one exists.
	Replacement string `json:"replacement,omitempty"`

	// Since is the SDK version label that introduced the deprecation.
	Since string `json:"since"`
}

// Parameter describes a single method parameter.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description,omitempty"`
}

// Availability describes when a method became available and, optionally,
// when it was deprecated.
type Availability struct {
	Since        string `json:"since"`
	Deprecated   string `json:"deprecated,omitempty"`
	Replacement  string `json:"replacement,omitempty"`
	MigrationURL string `json:"migration_url,omitempty"`
}

// Method describes a single callable exposed by a module.
type Method struct {
	Name                string       `json:"name"`
	Signature           string       `json:"signature"`
	Description         string       `json:"description,omitempty"`
	Parameters          []Parameter  `json:"parameters,omitempty"`
	ReturnType          string       `json:"return_type"`
	Examples            []string     `json:"examples,omitempty"`
	Platforms           []Platform   `json:"platforms,omitempty"`
	Availability        Availability `json:"availability"`
	RequiredPermissions []string     `json:"required_permissions,omitempty"`
}

// Constant describes a named constant exported by a module.
type Constant struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty"`
}

// TypeDef describes a named type exported by a module.
type TypeDef struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Module is the canonical record for a named SDK module at a given version.
//
// # Lifecycle
//
// Created by the resolver on first resolution of (name, version), cached
// with a 1-hour TTL, and replaced wholesale on refresh. Callers must treat
// the record as read-only.
type Module struct {
	Name             string            `json:"name"`
	PackageName      string            `json:"package_name"`
	Description      string            `json:"description,omitempty"`
	Version          string            `json:"version"`
	SDKVersion       string            `json:"sdk_version"`
	Installation     string            `json:"installation"`
	Platforms        []Platform        `json:"platforms"`
	Permissions      []string          `json:"permissions,omitempty"`
	Dependencies     map[string]string `json:"dependencies,omitempty"`
	PeerDependencies map[string]string `json:"peer_dependencies,omitempty"`
	Methods          []Method          `json:"methods,omitempty"`
	Constants        []Constant        `json:"constants,omitempty"`
	Types            []TypeDef         `json:"types,omitempty"`
	Examples         []string          `json:"examples,omitempty"`
	DocumentationURL string            `json:"documentation_url,omitempty"`
	RepositoryURL    string            `json:"repository_url,omitempty"`
	LastResolved     time.Time         `json:"last_resolved"`
	Classification   Classification    `json:"classification"`

	// Deprecation is non-nil only for deprecated modules.
	Deprecation *DeprecationRecord `json:"deprecation,omitempty"`
}

// IsDeprecated reports whether the module carries a deprecation record.
func (m *Module) IsDeprecated() bool {
	return m.Deprecation != nil
}

// SupportsPlatform reports whether the module supports the given platform.
// Universal support matches every platform.
func (m *Module) SupportsPlatform(p Platform) bool {
	for _, candidate := range m.Platforms {
		if candidate == p || candidate == PlatformUniversal {
			return true
		}
	}
	return false
}
