// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides Prometheus metrics for the registry.
//
// # Description
//
// Counters and histograms for module resolutions, cache traffic, and
// artifact synthesis. Metrics are exposed via the /metrics endpoint and
// registered on the default registry at first use.
//
// # Thread Safety
//
// All metric operations are thread-safe via Prometheus's internal locking.
package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "sdkcompass"

// Metrics holds all Prometheus metrics for the registry engine.
//
// # Fields
//
//   - Resolutions: counter of module resolutions by status (success, error)
//   - ResolutionSeconds: histogram of aggregation latency
//   - CacheHits / CacheMisses: counters by entity kind (module, version,
//     migration, matrix)
//   - TemplatesGenerated: counter by artifact kind
//   - CommandsSynthesized: counter by operation
type Metrics struct {
	Resolutions         *prometheus.CounterVec
	ResolutionSeconds   prometheus.Histogram
	CacheHits           *prometheus.CounterVec
	CacheMisses         *prometheus.CounterVec
	TemplatesGenerated  *prometheus.CounterVec
	CommandsSynthesized *prometheus.CounterVec
}

var (
	defaultMetrics *Metrics
	initOnce       sync.Once
)

// Default returns the process-wide Metrics instance, registering it on
// the default Prometheus registry on first call.
func Default() *Metrics {
	initOnce.Do(func() {
		defaultMetrics = &Metrics{
			Resolutions: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "module_resolutions_total",
				Help:      "Module resolutions by status.",
			}, []string{"status"}),
			ResolutionSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "module_resolution_seconds",
				Help:      "Latency of three-source module aggregation.",
				Buckets:   prometheus.DefBuckets,
			}),
			CacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_hits_total",
				Help:      "TTL cache hits by entity kind.",
			}, []string{"entity"}),
			CacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_misses_total",
				Help:      "TTL cache misses by entity kind.",
			}, []string{"entity"}),
			TemplatesGenerated: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "templates_generated_total",
				Help:      "Configuration templates generated by artifact kind.",
			}, []string{"kind"}),
			CommandsSynthesized: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "commands_synthesized_total",
				Help:      "EAS commands synthesized by operation.",
			}, []string{"operation"}),
		}
	})
	return defaultMetrics
}
