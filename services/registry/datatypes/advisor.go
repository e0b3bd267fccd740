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

// SuggestionCategory groups optimization suggestions by concern.
type SuggestionCategory string

const (
	CategoryPerformance     SuggestionCategory = "performance"
	CategorySecurity        SuggestionCategory = "security"
	CategoryCompatibility   SuggestionCategory = "compatibility"
	CategoryMaintainability SuggestionCategory = "maintainability"
)

// SuggestionPriority orders suggestions: high before medium before low.
type SuggestionPriority string

const (
	PriorityHigh   SuggestionPriority = "high"
	PriorityMedium SuggestionPriority = "medium"
	PriorityLow    SuggestionPriority = "low"
)

// Rank returns the sort order of the priority: high=0, medium=1, low=2.
func (p SuggestionPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// OptimizationSuggestion is one heuristic finding over a generated
// artifact. Lists of suggestions are always sorted high, medium, low.
type OptimizationSuggestion struct {
	Category         SuggestionCategory `json:"category"`
	Priority         SuggestionPriority `json:"priority"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	FixCommand       string             `json:"fix_command,omitempty"`
	DocumentationURL string             `json:"documentation_url,omitempty"`
}
