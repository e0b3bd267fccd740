// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package validation

import (
	"strings"
	"testing"
)

func TestValidateModuleName(t *testing.T) {
	valid := []string{
		"expo-camera",
		"@react-navigation/native",
		"react-native-maps",
		"a",
	}
	for _, name := range valid {
		if err := ValidateModuleName(name); err != nil {
			t.Errorf("ValidateModuleName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{
		"",
		"Expo-Camera",
		"module name",
		"-leading-hyphen",
		"@",
		"a" + strings.Repeat("b", 100),
	}
	for _, name := range invalid {
		if err := ValidateModuleName(name); err == nil {
			t.Errorf("ValidateModuleName(%q) = nil, want error", name)
		}
	}
}

func TestValidateVersionLabel(t *testing.T) {
	valid := []string{"latest", "sdk-53", "53", "53.0", "53.0.0"}
	for _, v := range valid {
		if err := ValidateVersionLabel(v); err != nil {
			t.Errorf("ValidateVersionLabel(%q) = %v, want nil", v, err)
		}
	}

	invalid := []string{"", "sdk-", "v53", "53.0.0.0", "newest"}
	for _, v := range invalid {
		if err := ValidateVersionLabel(v); err == nil {
			t.Errorf("ValidateVersionLabel(%q) = nil, want error", v)
		}
	}
}

func TestValidateBundleIdentifier(t *testing.T) {
	valid := []string{"com.example.app", "dev.expo.client", "com.my_org.app2"}
	for _, id := range valid {
		if err := ValidateBundleIdentifier(id); err != nil {
			t.Errorf("ValidateBundleIdentifier(%q) = %v, want nil", id, err)
		}
	}

	invalid := []string{"", "app", "com.", ".com.app", "com.1app", "com app"}
	for _, id := range invalid {
		if err := ValidateBundleIdentifier(id); err == nil {
			t.Errorf("ValidateBundleIdentifier(%q) = nil, want error", id)
		}
	}
}

func TestSanitizeModuleName(t *testing.T) {
	got, err := SanitizeModuleName("  Expo-Camera  ")
	if err != nil {
		t.Fatalf("SanitizeModuleName returned error: %v", err)
	}
	if got != "expo-camera" {
		t.Fatalf("SanitizeModuleName = %q, want %q", got, "expo-camera")
	}

	if _, err := SanitizeModuleName("not valid!"); err == nil {
		t.Fatal("SanitizeModuleName accepted invalid input")
	}
}

func TestSanitizeVersionLabel(t *testing.T) {
	got, err := SanitizeVersionLabel(" LATEST ")
	if err != nil {
		t.Fatalf("SanitizeVersionLabel returned error: %v", err)
	}
	if got != "latest" {
		t.Fatalf("SanitizeVersionLabel = %q, want %q", got, "latest")
	}
}
