// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package modules

import (
	"fmt"
	"sort"

	"github.com/AleutianAI/SDKCompass/services/registry/catalog"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

// configSteps holds platform-specific post-install configuration per
// module. Modules without an entry need no manual configuration.
var configSteps = map[string]map[datatypes.Platform][]string{
	"expo-camera": {
		datatypes.PlatformIOS: {
			"Add NSCameraUsageDescription and NSMicrophoneUsageDescription to app.json under ios.infoPlist.",
		},
		datatypes.PlatformAndroid: {
			"The config plugin adds CAMERA and RECORD_AUDIO permissions; run npx expo prebuild on bare projects.",
		},
		datatypes.PlatformWeb: {
			"Camera access on web requires a secure (https) origin.",
		},
	},
	"expo-location": {
		datatypes.PlatformIOS: {
			"Add NSLocationWhenInUseUsageDescription to app.json under ios.infoPlist.",
			"Background location additionally needs the location UIBackgroundModes entry.",
		},
		datatypes.PlatformAndroid: {
			"Declare ACCESS_FINE_LOCATION in app.json under android.permissions.",
		},
	},
	"expo-notifications": {
		datatypes.PlatformIOS: {
			"Enable the Push Notifications capability for the bundle identifier.",
		},
		datatypes.PlatformAndroid: {
			"Provide a notification icon via the expo-notifications config plugin.",
		},
	},
	"expo-media-library": {
		datatypes.PlatformIOS: {
			"Add NSPhotoLibraryUsageDescription to app.json under ios.infoPlist.",
		},
	},
	"expo-secure-store": {
		datatypes.PlatformIOS: {
			"Add NSFaceIDUsageDescription if requireAuthentication is used.",
		},
	},
}

// usageNotes holds additional caller-facing notes per module.
var usageNotes = map[string][]string{
	"expo-camera": {
		"Use the useCameraPermissions hook; the component renders nothing until permission is granted.",
	},
	"expo-notifications": {
		"Push tokens require a physical device; simulators only support local notifications.",
	},
	"expo-sqlite": {
		"Web support needs the wa-sqlite worker; enable it via the metro config.",
	},
	"expo-av": {
		"expo-av is deprecated; new projects should start with expo-audio and expo-video.",
	},
}

// GenerateInstallationSteps builds the installation walkthrough for a
// module. Unknown modules still get install commands (the registry can
// install anything); their configuration and note lists are empty.
func (r *Resolver) GenerateInstallationSteps(module string, opts datatypes.InstallOptions) datatypes.InstallationPlan {
	pkg := module
	var peers []string
	if e, ok := catalog.Lookup(module); ok {
		pkg = e.Package
		for dep := range e.PeerDeps {
			peers = append(peers, dep)
		}
		sort.Strings(peers)
	}

	commands := []string{fmt.Sprintf("npx expo install %s", pkg)}
	if len(peers) > 0 {
		cmd := "npx expo install"
		for _, dep := range peers {
			cmd += " " + dep
		}
		commands = append(commands, cmd)
	}
	if opts.ProjectType == "bare" {
		commands = append(commands, "npx pod-install")
	}

	var steps []string
	if perPlatform, ok := configSteps[module]; ok {
		if opts.Platform != "" {
			steps = append(steps, perPlatform[opts.Platform]...)
		} else {
			// Stable platform order when no filter is given.
			for _, p := range []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid, datatypes.PlatformWeb} {
				steps = append(steps, perPlatform[p]...)
			}
		}
	}

	notes := append([]string(nil), usageNotes[module]...)
	if opts.TypeScript {
		notes = append(notes, "Type declarations ship with the package; no @types install is needed.")
	}

	return datatypes.InstallationPlan{
		Module:             module,
		InstallCommands:    commands,
		ConfigurationSteps: steps,
		Notes:              notes,
	}
}
