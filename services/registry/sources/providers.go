// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package sources aggregates module metadata from three independent
// providers: the package registry, the source repository, and the
// documentation index.
//
// The providers are interfaces so tests (and future real upstream clients)
// can be injected. The bundled implementations are simulated: they answer
// from the static catalog with a rate limiter in front, standing in for
// real npm/GitHub/docs clients without network transport.
package sources

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/time/rate"

	"github.com/AleutianAI/SDKCompass/services/registry/catalog"
)

// RegistryInfo is the partial record the package registry contributes.
type RegistryInfo struct {
	PackageName  string            `json:"package_name"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// RepositoryInfo is the partial record the source repository contributes.
type RepositoryInfo struct {
	URL           string `json:"url"`
	DefaultBranch string `json:"default_branch"`
	LastActivity  string `json:"last_activity,omitempty"`
}

// DocsInfo is the partial record the documentation index contributes.
type DocsInfo struct {
	Description      string `json:"description"`
	DocumentationURL string `json:"documentation_url"`
}

// RegistryProvider answers package registry lookups.
type RegistryProvider interface {
	PackageInfo(ctx context.Context, module, sdkVersion string) (RegistryInfo, error)
}

// RepositoryProvider answers source repository lookups.
type RepositoryProvider interface {
	RepositoryInfo(ctx context.Context, module string) (RepositoryInfo, error)
}

// DocsProvider answers documentation index lookups.
type DocsProvider interface {
	DocumentationInfo(ctx context.Context, module string) (DocsInfo, error)
}

// =============================================================================
// Simulated Providers
// =============================================================================

// defaultRate bounds simulated provider throughput, mirroring the request
// budget a real upstream would impose.
var defaultRate = rate.NewLimiter(rate.Limit(50), 100)

// StaticRegistry is the simulated package registry. It resolves package
// names and versions from the catalog tables.
type StaticRegistry struct {
	limiter *rate.Limiter
}

// NewStaticRegistry creates the simulated registry provider.
func NewStaticRegistry() *StaticRegistry {
	return &StaticRegistry{limiter: defaultRate}
}

// PackageInfo returns the registry view of a module. Unknown modules get a
// synthetic record (name as package, version "*"): the registry knows
// about every published package, so a miss here is not an error.
func (p *StaticRegistry) PackageInfo(ctx context.Context, module, sdkVersion string) (RegistryInfo, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return RegistryInfo{}, err
	}
	info := RegistryInfo{
		PackageName: module,
		Version:     catalog.VersionFor(module, sdkVersion),
	}
	if e, ok := catalog.Lookup(module); ok {
		info.PackageName = e.Package
		if len(e.PeerDeps) > 0 {
			info.Dependencies = make(map[string]string, len(e.PeerDeps))
			for k, v := range e.PeerDeps {
				info.Dependencies[k] = v
			}
		}
	}
	return info, nil
}

// StaticRepository is the simulated source repository provider.
type StaticRepository struct {
	limiter *rate.Limiter
}

// NewStaticRepository creates the simulated repository provider.
func NewStaticRepository() *StaticRepository {
	return &StaticRepository{limiter: defaultRate}
}

// RepositoryInfo returns the canonical repository location for a module.
func (p *StaticRepository) RepositoryInfo(ctx context.Context, module string) (RepositoryInfo, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return RepositoryInfo{}, err
	}
	if catalog.IsCore(module) {
		return RepositoryInfo{
			URL:           fmt.Sprintf("https://github.com/expo/expo/tree/main/packages/%s", module),
			DefaultBranch: "main",
		}, nil
	}
	return RepositoryInfo{
		URL:           fmt.Sprintf("https://github.com/search?q=%s", module),
		DefaultBranch: "main",
	}, nil
}

// StaticDocs is the simulated documentation index provider.
type StaticDocs struct {
	limiter *rate.Limiter
}

// NewStaticDocs creates the simulated documentation provider.
func NewStaticDocs() *StaticDocs {
	return &StaticDocs{limiter: defaultRate}
}

// DocumentationInfo returns the description and docs URL for a module.
func (p *StaticDocs) DocumentationInfo(ctx context.Context, module string) (DocsInfo, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return DocsInfo{}, err
	}
	info := DocsInfo{
		Description:      fmt.Sprintf("Community package %s", module),
		DocumentationURL: fmt.Sprintf("https://docs.expo.dev/versions/latest/sdk/%s/", docSlug(module)),
	}
	if e, ok := catalog.Lookup(module); ok {
		info.Description = e.Description
	}
	return info, nil
}

// docSlug strips the expo- prefix the docs site omits from its paths.
func docSlug(module string) string {
	return strings.TrimPrefix(module, "expo-")
}
