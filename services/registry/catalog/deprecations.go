// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package catalog

import (
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

// deprecatedModules maps module name to its deprecation record.
var deprecatedModules = map[string]datatypes.DeprecationRecord{
	"expo-av": {
		Reason:      "Split into focused expo-audio and expo-video packages",
		Replacement: "expo-video",
		Since:       "sdk-51",
	},
	"expo-barcode-scanner": {
		Reason:      "Barcode scanning moved into expo-camera",
		Replacement: "expo-camera",
		Since:       "sdk-50",
	},
	"expo-permissions": {
		Reason:      "Permission requests moved to per-module APIs",
		Replacement: "",
		Since:       "sdk-41",
	},
}

// Deprecation returns the deprecation record for a module, or nil when the
// module is not deprecated.
func Deprecation(name string) *datatypes.DeprecationRecord {
	if rec, ok := deprecatedModules[name]; ok {
		out := rec
		return &out
	}
	return nil
}

// DeprecatedCall is one known deprecated receiver.method() call site.
type DeprecatedCall struct {
	Module          string
	DeprecatedSince string
	Replacement     string
	MigrationURL    string
}

type callKey struct {
	receiver string
	method   string
}

// deprecatedCalls is keyed by the (receiver, method) pair as it appears in
// caller source, e.g. Camera.requestPermissionsAsync().
var deprecatedCalls = map[callKey]DeprecatedCall{
	{"Camera", "requestPermissionsAsync"}: {
		Module:          "expo-camera",
		DeprecatedSince: "sdk-49",
		Replacement:     "Camera.requestCameraPermissionsAsync",
		MigrationURL:    "https://docs.expo.dev/versions/latest/sdk/camera/#permissions",
	},
	{"Location", "requestPermissionsAsync"}: {
		Module:          "expo-location",
		DeprecatedSince: "sdk-50",
		Replacement:     "Location.requestForegroundPermissionsAsync",
		MigrationURL:    "https://docs.expo.dev/versions/latest/sdk/location/#permissions",
	},
	{"Notifications", "presentNotificationAsync"}: {
		Module:          "expo-notifications",
		DeprecatedSince: "sdk-51",
		Replacement:     "Notifications.scheduleNotificationAsync",
	},
	{"Permissions", "askAsync"}: {
		Module:          "expo-permissions",
		DeprecatedSince: "sdk-41",
		Replacement:     "per-module request*PermissionsAsync methods",
	},
}

// LookupDeprecatedCall returns the deprecation record for a
// receiver.method() call site, if one is known.
func LookupDeprecatedCall(receiver, method string) (DeprecatedCall, bool) {
	c, ok := deprecatedCalls[callKey{receiver, method}]
	return c, ok
}
