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

// Operation names an EAS CLI operation the synthesizer understands.
type Operation string

const (
	OperationBuild       Operation = "build"
	OperationSubmit      Operation = "submit"
	OperationUpdate      Operation = "update"
	OperationCredentials Operation = "credentials"
)

// EasCommandResult is one synthesized EAS CLI invocation with everything a
// caller needs to run it: the command string, prerequisites, the flag set
// that produced it, and a coarse duration estimate.
type EasCommandResult struct {
	Command          string            `json:"command"`
	Description      string            `json:"description"`
	Prerequisites    []string          `json:"prerequisites"`
	Flags            map[string]string `json:"flags"`
	EstimatedTime    string            `json:"estimated_time"`
	DocumentationURL string            `json:"documentation_url"`
}
