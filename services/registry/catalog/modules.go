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

// ModuleEntry is the static knowledge record for one known module.
type ModuleEntry struct {
	Package     string
	Description string
	Platforms   []datatypes.Platform
	Permissions []string
	PeerDeps    map[string]string

	// Versions maps SDK label to the module version shipped with that
	// release. Missing labels fall back to Latest.
	Versions map[string]string
	Latest   string

	Examples []string
}

// coreModules is the fixed allow-list of SDK-maintained module names.
var coreModules = map[string]bool{
	"expo-camera":          true,
	"expo-location":        true,
	"expo-notifications":   true,
	"expo-file-system":     true,
	"expo-secure-store":    true,
	"expo-sqlite":          true,
	"expo-contacts":        true,
	"expo-sensors":         true,
	"expo-haptics":         true,
	"expo-media-library":   true,
	"expo-font":            true,
	"expo-device":          true,
	"expo-constants":       true,
	"expo-linking":         true,
	"expo-av":              true,
	"expo-barcode-scanner": true,
	"expo-permissions":     true,
}

// IsCore reports whether the module is SDK-maintained.
func IsCore(name string) bool {
	return coreModules[name]
}

// modules is the per-module knowledge table. Permission names are
// namespaced: Android manifest permissions keep their
// "android.permission.*" prefix and iOS Info.plist keys keep their "NS*"
// prefix, so per-platform filtering can strip the other platform's entries.
var modules = map[string]ModuleEntry{
	"expo-camera": {
		Package:     "expo-camera",
		Description: "Camera preview, photo capture, and video recording",
		Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid, datatypes.PlatformWeb},
		Permissions: []string{
			"android.permission.CAMERA",
			"android.permission.RECORD_AUDIO",
			"NSCameraUsageDescription",
			"NSMicrophoneUsageDescription",
		},
		Versions: map[string]string{
			"sdk-53": "~16.1.0",
			"sdk-52": "~16.0.0",
			"sdk-51": "~15.0.0",
			"sdk-50": "~14.1.0",
			"sdk-49": "~13.4.0",
		},
		Latest: "~16.1.0",
		Examples: []string{
			"const [permission, requestPermission] = useCameraPermissions();",
			"<CameraView style={styles.camera} facing={facing} />",
		},
	},
	"expo-location": {
		Package:     "expo-location",
		Description: "Geolocation, geocoding, and geofencing",
		Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid, datatypes.PlatformWeb},
		Permissions: []string{
			"android.permission.ACCESS_FINE_LOCATION",
			"android.permission.ACCESS_COARSE_LOCATION",
			"NSLocationWhenInUseUsageDescription",
		},
		Versions: map[string]string{
			"sdk-53": "~18.1.0",
			"sdk-52": "~18.0.0",
			"sdk-51": "~17.0.0",
			"sdk-50": "~16.5.0",
			"sdk-49": "~16.1.0",
		},
		Latest: "~18.1.0",
		Examples: []string{
			"const location = await Location.getCurrentPositionAsync({});",
		},
	},
	"expo-notifications": {
		Package:     "expo-notifications",
		Description: "Local and push notification scheduling and handling",
		Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
		Permissions: []string{
			"android.permission.POST_NOTIFICATIONS",
			"android.permission.SCHEDULE_EXACT_ALARM",
		},
		PeerDeps: map[string]string{
			"expo-device": "*",
		},
		Versions: map[string]string{
			"sdk-53": "~0.31.0",
			"sdk-52": "~0.29.0",
			"sdk-51": "~0.28.0",
			"sdk-50": "~0.27.0",
			"sdk-49": "~0.20.0",
		},
		Latest: "~0.31.0",
		Examples: []string{
			"await Notifications.scheduleNotificationAsync({ content, trigger });",
		},
	},
	"expo-file-system": {
		Package:     "expo-file-system",
		Description: "Sandboxed file storage with upload and download support",
		Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
		Versions: map[string]string{
			"sdk-53": "~18.1.0",
			"sdk-52": "~18.0.0",
			"sdk-51": "~17.0.0",
		},
		Latest: "~18.1.0",
	},
	"expo-secure-store": {
		Package:     "expo-secure-store",
		Description: "Encrypted key-value storage backed by Keychain/Keystore",
		Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
		Permissions: []string{
			"NSFaceIDUsageDescription",
		},
		Versions: map[string]string{
			"sdk-53": "~14.2.0",
			"sdk-52": "~14.0.0",
			"sdk-51": "~13.0.0",
		},
		Latest: "~14.2.0",
	},
	"expo-sqlite": {
		Package:     "expo-sqlite",
		Description: "SQLite database with a modern async API",
		Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid, datatypes.PlatformWeb},
		Versions: map[string]string{
			"sdk-53": "~15.2.0",
			"sdk-52": "~15.0.0",
			"sdk-51": "~14.0.0",
		},
		Latest: "~15.2.0",
	},
	"expo-contacts": {
		Package:     "expo-contacts",
		Description: "Read and write access to the system contact store",
		Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
		Permissions: []string{
			"android.permission.READ_CONTACTS",
			"android.permission.WRITE_CONTACTS",
			"NSContactsUsageDescription",
		},
		Versions: map[string]string{
			"sdk-53": "~14.2.0",
			"sdk-52": "~14.0.0",
		},
		Latest: "~14.2.0",
	},
	"expo-sensors": {
		Package:     "expo-sensors",
		Description: "Accelerometer, gyroscope, magnetometer, and pedometer",
		Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid, datatypes.PlatformWeb},
		Permissions: []string{
			"android.permission.ACTIVITY_RECOGNITION",
			"NSMotionUsageDescription",
		},
		Versions: map[string]string{
			"sdk-53": "~14.1.0",
			"sdk-52": "~14.0.0",
		},
		Latest: "~14.1.0",
	},
	"expo-haptics": {
		Package:     "expo-haptics",
		Description: "Haptic feedback via the system vibration engine",
		Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
		Permissions: []string{
			"android.permission.VIBRATE",
		},
		Versions: map[string]string{
			"sdk-53": "~14.1.0",
			"sdk-52": "~14.0.0",
		},
		Latest: "~14.1.0",
	},
	"expo-media-library": {
		Package:     "expo-media-library",
		Description: "Access to the device photo and video library",
		Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
		Permissions: []string{
			"android.permission.READ_MEDIA_IMAGES",
			"android.permission.READ_MEDIA_VIDEO",
			"NSPhotoLibraryUsageDescription",
		},
		Versions: map[string]string{
			"sdk-53": "~17.1.0",
			"sdk-52": "~17.0.0",
		},
		Latest: "~17.1.0",
	},
	"expo-font": {
		Package:     "expo-font",
		Description: "Custom font loading",
		Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid, datatypes.PlatformWeb},
		Versions: map[string]string{
			"sdk-53": "~13.3.0",
			"sdk-52": "~13.0.0",
		},
		Latest: "~13.3.0",
	},
	"expo-device": {
		Package:     "expo-device",
		Description: "Device model, OS, and hardware metadata",
		Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid, datatypes.PlatformWeb},
		Versions: map[string]string{
			"sdk-53": "~7.1.0",
			"sdk-52": "~7.0.0",
		},
		Latest: "~7.1.0",
	},
	"expo-constants": {
		Package:     "expo-constants",
		Description: "App manifest and environment constants",
		Platforms:   []datatypes.Platform{datatypes.PlatformUniversal},
		Versions: map[string]string{
			"sdk-53": "~17.1.0",
			"sdk-52": "~17.0.0",
		},
		Latest: "~17.1.0",
	},
	"expo-linking": {
		Package:     "expo-linking",
		Description: "Deep links and URL handling",
		Platforms:   []datatypes.Platform{datatypes.PlatformUniversal},
		Versions: map[string]string{
			"sdk-53": "~7.1.0",
			"sdk-52": "~7.0.0",
		},
		Latest: "~7.1.0",
	},
	"expo-av": {
		Package:     "expo-av",
		Description: "Audio and video playback (superseded by expo-audio and expo-video)",
		Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid, datatypes.PlatformWeb},
		Permissions: []string{
			"android.permission.RECORD_AUDIO",
			"NSMicrophoneUsageDescription",
		},
		Versions: map[string]string{
			"sdk-53": "~15.1.0",
			"sdk-52": "~15.0.0",
			"sdk-51": "~14.0.0",
		},
		Latest: "~15.1.0",
	},
	"expo-barcode-scanner": {
		Package:     "expo-barcode-scanner",
		Description: "Barcode scanning (folded into expo-camera)",
		Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
		Permissions: []string{
			"android.permission.CAMERA",
			"NSCameraUsageDescription",
		},
		Versions: map[string]string{
			"sdk-50": "~12.9.0",
			"sdk-49": "~12.5.0",
		},
		Latest: "~12.9.0",
	},
	"expo-permissions": {
		Package:     "expo-permissions",
		Description: "Centralized permission requests (replaced by per-module APIs)",
		Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
		Versions: map[string]string{
			"sdk-49": "~14.2.0",
		},
		Latest: "~14.2.0",
	},
}

// Lookup returns the knowledge entry for a module name. The second return
// is false for unknown modules; callers must then use the documented
// fallbacks rather than treating the miss as an error.
func Lookup(name string) (ModuleEntry, bool) {
	e, ok := modules[name]
	return e, ok
}

// Platforms returns the supported platforms for a module, defaulting to
// ios+android for unknown names.
func Platforms(name string) []datatypes.Platform {
	if e, ok := modules[name]; ok && len(e.Platforms) > 0 {
		out := make([]datatypes.Platform, len(e.Platforms))
		copy(out, e.Platforms)
		return out
	}
	return []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid}
}

// Permissions returns the namespaced permission names a module requires.
// Unknown modules require none.
func Permissions(name string) []string {
	e, ok := modules[name]
	if !ok || len(e.Permissions) == 0 {
		return nil
	}
	out := make([]string, len(e.Permissions))
	copy(out, e.Permissions)
	return out
}

// VersionFor returns the module version shipped with the given SDK label,
// falling back to the newest known version and finally "*".
func VersionFor(name, sdkLabel string) string {
	e, ok := modules[name]
	if !ok {
		return "*"
	}
	if v, ok := e.Versions[NormalizeVersion(sdkLabel)]; ok {
		return v
	}
	if e.Latest != "" {
		return e.Latest
	}
	return "*"
}

// ModuleNames returns every known module name. The slice is freshly
// allocated; callers may sort it.
func ModuleNames() []string {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	return names
}
