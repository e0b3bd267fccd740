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
	"errors"
	"fmt"
)

// ErrUpstreamFetch is the sentinel wrapped by every FetchError so callers
// can classify upstream failures with errors.Is.
var ErrUpstreamFetch = errors.New("upstream fetch failed")

// FetchError reports that resolving a module failed because one of the
// three provider lookups failed. The whole resolution fails; there is no
// partial-merge fallback.
type FetchError struct {
	// Module is the module name whose resolution failed.
	Module string

	// Source names the provider that failed: "registry", "repository",
	// or "documentation".
	Source string

	// Err is the underlying provider error.
	Err error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch module %q: %s lookup: %v", e.Module, e.Source, e.Err)
}

// Unwrap exposes the provider error and the ErrUpstreamFetch sentinel.
func (e *FetchError) Unwrap() []error {
	return []error{ErrUpstreamFetch, e.Err}
}
