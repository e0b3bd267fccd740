// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package datatypes

// Severity grades a deprecation warning. Ordered info < warning < error.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Rank returns the numeric order of the severity for comparisons:
// info=0, warning=1, error=2.
func (s Severity) Rank() int {
	switch s {
	case SeverityError:
		return 2
	case SeverityWarning:
		return 1
	default:
		return 0
	}
}

// ItemKind identifies what a deprecation warning refers to.
type ItemKind string

const (
	ItemKindModule   ItemKind = "module"
	ItemKindMethod   ItemKind = "method"
	ItemKindProperty ItemKind = "property"
	ItemKindConstant ItemKind = "constant"
)

// DeprecationWarning is one deprecation finding at module, method,
// property, or constant granularity. Severity is always derived from the
// deprecation age, never stored input.
type DeprecationWarning struct {
	Module          string   `json:"module"`
	ItemKind        ItemKind `json:"item_kind"`
	ItemName        string   `json:"item_name"`
	DeprecatedSince string   `json:"deprecated_since"`
	Replacement     string   `json:"replacement,omitempty"`
	RemovalDate     string   `json:"removal_date,omitempty"`
	Severity        Severity `json:"severity"`
	Message         string   `json:"message"`
	MigrationURL    string   `json:"migration_url,omitempty"`
}

// ChangeKind classifies a breaking change.
type ChangeKind string

const (
	ChangeKindRemoved  ChangeKind = "removed"
	ChangeKindRenamed  ChangeKind = "renamed"
	ChangeKindBehavior ChangeKind = "behavior"
	ChangeKindConfig   ChangeKind = "config"
)

// BreakingChange documents one incompatibility between two SDK versions.
type BreakingChange struct {
	Module         string     `json:"module"`
	Kind           ChangeKind `json:"kind"`
	Description    string     `json:"description"`
	RequiredAction string     `json:"required_action"`
	Before         string     `json:"before,omitempty"`
	After          string     `json:"after,omitempty"`
}

// MigrationStep is one ordered step in a migration guide. Step numbers are
// contiguous starting at 1.
type MigrationStep struct {
	Step              int      `json:"step"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Commands          []string `json:"commands,omitempty"`
	FileChanges       []string `json:"file_changes,omitempty"`
	VerificationSteps []string `json:"verification_steps,omitempty"`
}

// Effort buckets the expected migration work.
type Effort string

const (
	EffortLow    Effort = "low"
	EffortMedium Effort = "medium"
	EffortHigh   Effort = "high"
)

// MigrationGuide is the synthesized plan for moving between two SDK
// versions. Guides are keyed and cached by the (from, to) pair and are
// immutable once built.
type MigrationGuide struct {
	FromVersion       string           `json:"from_version"`
	ToVersion         string           `json:"to_version"`
	BreakingChanges   []BreakingChange `json:"breaking_changes"`
	DeprecatedModules []string         `json:"deprecated_modules"`
	Steps             []MigrationStep  `json:"steps"`
	EstimatedEffort   Effort           `json:"estimated_effort"`
	Notes             string           `json:"notes,omitempty"`
}

// CodeScanResult aggregates deprecation findings for a code snippet.
type CodeScanResult struct {
	Warnings          []DeprecationWarning `json:"warnings"`
	Suggestions       []string             `json:"suggestions"`
	MigrationRequired bool                 `json:"migration_required"`
}
