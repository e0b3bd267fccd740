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

import "fmt"

// SnackPackage describes how one requested module maps into a sandbox
// dependency set.
type SnackPackage struct {
	Package  string
	Version  string
	Core     bool
	PeerDeps map[string]string
}

// thirdPartyPackages maps community module names to their sandbox
// dependency records. Core modules are derived from the module table and
// do not appear here.
var thirdPartyPackages = map[string]SnackPackage{
	"react-native-maps": {
		Package: "react-native-maps",
		Version: "1.18.0",
	},
	"react-native-reanimated": {
		Package: "react-native-reanimated",
		Version: "~3.17.0",
	},
	"react-native-gesture-handler": {
		Package: "react-native-gesture-handler",
		Version: "~2.24.0",
	},
	"react-native-svg": {
		Package: "react-native-svg",
		Version: "15.11.0",
	},
	"@react-navigation/native": {
		Package: "@react-navigation/native",
		Version: "^7.0.0",
		PeerDeps: map[string]string{
			"react-native-screens":           "~4.10.0",
			"react-native-safe-area-context": "5.4.0",
		},
	},
	"@react-native-firebase/app": {
		Package: "@react-native-firebase/app",
		Version: "^21.0.0",
	},
	"react-native-ble-plx": {
		Package: "react-native-ble-plx",
		Version: "^3.2.0",
	},
	"react-native-nfc-manager": {
		Package: "react-native-nfc-manager",
		Version: "^3.16.0",
	},
}

// sandboxBlocked lists packages that require custom native code and can
// never run inside the Snack sandbox.
var sandboxBlocked = map[string]bool{
	"@react-native-firebase/app": true,
	"react-native-ble-plx":       true,
	"react-native-nfc-manager":   true,
}

// SnackLookup resolves a requested module name to a sandbox dependency
// record. Core modules map to their catalog package pinned to the SDK
// release; unknown names are treated as third-party at "*".
func SnackLookup(name, sdkLabel string) SnackPackage {
	if e, ok := modules[name]; ok {
		return SnackPackage{
			Package:  e.Package,
			Version:  VersionFor(name, sdkLabel),
			Core:     true,
			PeerDeps: e.PeerDeps,
		}
	}
	if p, ok := thirdPartyPackages[name]; ok {
		return p
	}
	return SnackPackage{Package: name, Version: "*"}
}

// SandboxBlocked reports whether a package is on the sandbox-unsupported
// block-list.
func SandboxBlocked(pkg string) bool {
	return sandboxBlocked[pkg]
}

// RuntimePin returns the core runtime dependency pin for an SDK label,
// e.g. "~53.0.0" for sdk-53.
func RuntimePin(sdkLabel string) string {
	major := SDKNumber(sdkLabel)
	if major == 0 {
		major = LatestSDK
	}
	return fmt.Sprintf("~%d.0.0", major)
}
