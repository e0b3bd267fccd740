// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package sources

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/SDKCompass/pkg/logging"
)

// Record is the merged canonical record the three providers produce for
// one module. Field provenance follows a fixed precedence and is assigned
// explicitly in merge(), not by overwrite order.
type Record struct {
	PackageName      string
	Version          string
	Dependencies     map[string]string
	Description      string
	DocumentationURL string
	RepositoryURL    string
}

// Aggregator fans one module lookup out to the three providers
// concurrently and merges the partial records.
//
// Failure of any one lookup fails the whole resolution: the caller gets a
// FetchError naming the module and the failed source, never a partially
// merged record.
type Aggregator struct {
	registry   RegistryProvider
	repository RepositoryProvider
	docs       DocsProvider
	logger     *logging.Logger
}

// NewAggregator wires an Aggregator from the three providers. A nil
// logger falls back to the package default.
func NewAggregator(registry RegistryProvider, repository RepositoryProvider, docs DocsProvider, logger *logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.Default()
	}
	return &Aggregator{
		registry:   registry,
		repository: repository,
		docs:       docs,
		logger:     logger,
	}
}

// NewDefaultAggregator wires an Aggregator over the bundled simulated
// providers.
func NewDefaultAggregator(logger *logging.Logger) *Aggregator {
	return NewAggregator(NewStaticRegistry(), NewStaticRepository(), NewStaticDocs(), logger)
}

// Fetch performs the three provider lookups concurrently and waits for
// all of them. The context is shared: the first failure cancels the
// remaining lookups.
func (a *Aggregator) Fetch(ctx context.Context, module, sdkVersion string) (Record, error) {
	var (
		reg  RegistryInfo
		repo RepositoryInfo
		doc  DocsInfo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		info, err := a.registry.PackageInfo(gctx, module, sdkVersion)
		if err != nil {
			return &FetchError{Module: module, Source: "registry", Err: err}
		}
		reg = info
		return nil
	})
	g.Go(func() error {
		info, err := a.repository.RepositoryInfo(gctx, module)
		if err != nil {
			return &FetchError{Module: module, Source: "repository", Err: err}
		}
		repo = info
		return nil
	})
	g.Go(func() error {
		info, err := a.docs.DocumentationInfo(gctx, module)
		if err != nil {
			return &FetchError{Module: module, Source: "documentation", Err: err}
		}
		doc = info
		return nil
	})

	if err := g.Wait(); err != nil {
		a.logger.Warn("module aggregation failed", "module", module, "error", err)
		return Record{}, err
	}

	return merge(reg, repo, doc), nil
}

// merge assigns each canonical field from its owning source. The
// assignment table is deliberately explicit so the precedence (registry
// for identity, documentation for prose, repository for location) stays
// auditable.
func merge(reg RegistryInfo, repo RepositoryInfo, doc DocsInfo) Record {
	return Record{
		// From the package registry.
		PackageName:  reg.PackageName,
		Version:      reg.Version,
		Dependencies: reg.Dependencies,

		// From the documentation index.
		Description:      doc.Description,
		DocumentationURL: doc.DocumentationURL,

		// From the source repository.
		RepositoryURL: repo.URL,
	}
}
