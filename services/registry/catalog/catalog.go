// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package catalog holds the static SDK knowledge tables: per-module
// platform support, permissions, method/constant/type listings, deprecation
// records, version history, and migration knowledge.
//
// The tables are deliberately partial. An unknown module name is never an
// error; every accessor has an explicit fallback branch (ios+android
// platforms, empty permissions, empty method list, community
// classification). The tables are package-level immutable maps: nothing in
// this package mutates them after init, and callers receive copies of
// slice-valued entries.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// LatestSDK is the newest SDK major this build knows about. It anchors the
// deprecation-age severity heuristic and the "latest" version alias.
const LatestSDK = 53

// DefaultPlatforms is the platform fallback for unknown modules.
func DefaultPlatforms() []string {
	return []string{"ios", "android"}
}

// NormalizeVersion canonicalizes an SDK version label to "sdk-NN" form.
// "latest" maps to the newest known release; a bare or dotted number keeps
// its major ("52.0.0" -> "sdk-52"). Unparseable labels are returned
// unchanged so lookups fall through to the unknown-entity branch.
func NormalizeVersion(label string) string {
	label = strings.ToLower(strings.TrimSpace(label))
	switch {
	case label == "" || label == "latest":
		return fmt.Sprintf("sdk-%d", LatestSDK)
	case strings.HasPrefix(label, "sdk-"):
		return label
	}
	major := label
	if i := strings.IndexByte(label, '.'); i >= 0 {
		major = label[:i]
	}
	if _, err := strconv.Atoi(major); err == nil {
		return "sdk-" + major
	}
	return label
}

// SDKNumber extracts the numeric major from a version label, or 0 when the
// label carries no number.
func SDKNumber(label string) int {
	label = NormalizeVersion(label)
	n, err := strconv.Atoi(strings.TrimPrefix(label, "sdk-"))
	if err != nil {
		return 0
	}
	return n
}

// CompareVersions compares two dotted version strings semver-style.
// Returns -1, 0, or +1. Range sigils ("~1.2.0", "^1.2.0") and a missing
// leading "v" are normalized away first; "*" and empty compare as v0.0.0.
func CompareVersions(a, b string) int {
	return semver.Compare(canonical(a), canonical(b))
}

func canonical(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimLeft(v, "~^=> ")
	if v == "" || v == "*" {
		return "v0.0.0"
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	// semver requires major.minor.patch; pad short forms.
	switch strings.Count(v, ".") {
	case 0:
		v += ".0.0"
	case 1:
		v += ".0"
	}
	return v
}
