// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides input validation utilities for caller-supplied
// identifiers.
//
// This package contains validators for values that end up in cache keys,
// generated file content, or synthesized command strings. Validating at the
// edge keeps injection-shaped input out of the engine.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// modulePattern matches Expo module names and scoped npm packages.
// Allows: lowercase letters, digits, hyphens, dots, slashes and a leading @.
// Max length: 100 characters.
var modulePattern = regexp.MustCompile(`^@?[a-z0-9][a-z0-9.\-/]{0,99}$`)

// versionPattern matches SDK version labels: "latest", "sdk-53", or a plain
// semver-ish "53.0.0".
var versionPattern = regexp.MustCompile(`^(latest|sdk-\d{1,3}|\d{1,3}(\.\d{1,3}){0,2})$`)

// bundleIDPattern matches reverse-DNS bundle identifiers / Android package
// names like "com.example.app".
var bundleIDPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*(\.[a-zA-Z][a-zA-Z0-9_]*)+$`)

// ValidateModuleName validates an SDK module or npm package name.
//
// Valid names:
//   - 1-100 characters
//   - lowercase letters, digits, dots, hyphens, slashes
//   - optional leading @ for scoped packages
//
// Returns an error if the name is invalid.
//
// Example:
//
//	if err := validation.ValidateModuleName(name); err != nil {
//	    return nil, fmt.Errorf("invalid module: %w", err)
//	}
func ValidateModuleName(name string) error {
	if name == "" {
		return fmt.Errorf("module name cannot be empty")
	}
	if !modulePattern.MatchString(name) {
		return fmt.Errorf("invalid module name: %q (must be lowercase alphanumeric with .-/ and optional @scope)", name)
	}
	return nil
}

// ValidateVersionLabel validates an SDK version label.
//
// Accepted forms: "latest", "sdk-NN", "NN", "NN.N", "NN.N.N".
func ValidateVersionLabel(version string) error {
	if version == "" {
		return fmt.Errorf("version label cannot be empty")
	}
	if !versionPattern.MatchString(version) {
		return fmt.Errorf("invalid version label: %q (expected \"latest\", \"sdk-NN\", or a dotted number)", version)
	}
	return nil
}

// ValidateBundleIdentifier validates an iOS bundle identifier or Android
// package name (reverse-DNS, at least two segments).
func ValidateBundleIdentifier(id string) error {
	if id == "" {
		return fmt.Errorf("bundle identifier cannot be empty")
	}
	if !bundleIDPattern.MatchString(id) {
		return fmt.Errorf("invalid bundle identifier: %q (expected reverse-DNS form like com.example.app)", id)
	}
	return nil
}

// SanitizeModuleName normalizes and validates a module name.
// Returns the lowercase trimmed name if valid, or an error if invalid.
func SanitizeModuleName(name string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if err := ValidateModuleName(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}

// SanitizeVersionLabel normalizes and validates a version label.
// Returns the lowercase trimmed label if valid, or an error if invalid.
func SanitizeVersionLabel(version string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(version))
	if err := ValidateVersionLabel(normalized); err != nil {
		return "", err
	}
	return normalized, nil
}
