// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/AleutianAI/SDKCompass/pkg/validation"
)

// RegisterValidators installs the custom binding validators used by the
// request structs: "modulename" and "versionlabel". Safe to call more than
// once; re-registration overwrites the previous function.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("modulename", func(fl validator.FieldLevel) bool {
		return validation.ValidateModuleName(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("versionlabel", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		return validation.ValidateVersionLabel(s) == nil
	})
}
