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

// methodCatalog lists the documented methods per module. Only a subset of
// modules has a method listing; unknown modules resolve with an empty one.
var methodCatalog = map[string][]datatypes.Method{
	"expo-camera": {
		{
			Name:        "requestCameraPermissionsAsync",
			Signature:   "requestCameraPermissionsAsync(): Promise<PermissionResponse>",
			Description: "Prompts for camera access and resolves with the grant state.",
			ReturnType:  "Promise<PermissionResponse>",
			Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid, datatypes.PlatformWeb},
			Availability: datatypes.Availability{
				Since: "sdk-41",
			},
			RequiredPermissions: []string{"android.permission.CAMERA", "NSCameraUsageDescription"},
		},
		{
			Name:        "requestPermissionsAsync",
			Signature:   "requestPermissionsAsync(): Promise<PermissionResponse>",
			Description: "Legacy combined camera+microphone permission prompt.",
			ReturnType:  "Promise<PermissionResponse>",
			Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
			Availability: datatypes.Availability{
				Since:        "sdk-38",
				Deprecated:   "sdk-49",
				Replacement:  "requestCameraPermissionsAsync",
				MigrationURL: "https://docs.expo.dev/versions/latest/sdk/camera/#permissions",
			},
		},
		{
			Name:        "takePictureAsync",
			Signature:   "takePictureAsync(options?: CameraPictureOptions): Promise<CameraCapturedPicture>",
			Description: "Captures a photo from the active preview.",
			Parameters: []datatypes.Parameter{
				{Name: "options", Type: "CameraPictureOptions", Required: false, Description: "Quality, exif, and base64 options."},
			},
			ReturnType: "Promise<CameraCapturedPicture>",
			Platforms:  []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid, datatypes.PlatformWeb},
			Availability: datatypes.Availability{
				Since: "sdk-38",
			},
			Examples: []string{
				"const photo = await cameraRef.current.takePictureAsync({ quality: 0.8 });",
			},
		},
		{
			Name:        "recordAsync",
			Signature:   "recordAsync(options?: CameraRecordingOptions): Promise<{ uri: string }>",
			Description: "Records video until stopRecording is called.",
			Parameters: []datatypes.Parameter{
				{Name: "options", Type: "CameraRecordingOptions", Required: false, Default: "{}"},
			},
			ReturnType: "Promise<{ uri: string }>",
			Platforms:  []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
			Availability: datatypes.Availability{
				Since: "sdk-38",
			},
			RequiredPermissions: []string{"android.permission.RECORD_AUDIO", "NSMicrophoneUsageDescription"},
		},
	},
	"expo-location": {
		{
			Name:        "requestForegroundPermissionsAsync",
			Signature:   "requestForegroundPermissionsAsync(): Promise<PermissionResponse>",
			Description: "Prompts for while-in-use location access.",
			ReturnType:  "Promise<PermissionResponse>",
			Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid, datatypes.PlatformWeb},
			Availability: datatypes.Availability{
				Since: "sdk-41",
			},
			RequiredPermissions: []string{"android.permission.ACCESS_FINE_LOCATION", "NSLocationWhenInUseUsageDescription"},
		},
		{
			Name:        "requestPermissionsAsync",
			Signature:   "requestPermissionsAsync(): Promise<PermissionResponse>",
			Description: "Legacy combined foreground+background permission prompt.",
			ReturnType:  "Promise<PermissionResponse>",
			Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
			Availability: datatypes.Availability{
				Since:        "sdk-38",
				Deprecated:   "sdk-50",
				Replacement:  "requestForegroundPermissionsAsync",
				MigrationURL: "https://docs.expo.dev/versions/latest/sdk/location/#permissions",
			},
		},
		{
			Name:        "getCurrentPositionAsync",
			Signature:   "getCurrentPositionAsync(options?: LocationOptions): Promise<LocationObject>",
			Description: "Resolves with a single location fix.",
			Parameters: []datatypes.Parameter{
				{Name: "options", Type: "LocationOptions", Required: false, Description: "Accuracy and staleness options."},
			},
			ReturnType: "Promise<LocationObject>",
			Platforms:  []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid, datatypes.PlatformWeb},
			Availability: datatypes.Availability{
				Since: "sdk-38",
			},
		},
		{
			Name:        "watchPositionAsync",
			Signature:   "watchPositionAsync(options: LocationOptions, callback: LocationCallback): Promise<LocationSubscription>",
			Description: "Streams location updates to the callback until the subscription is removed.",
			Parameters: []datatypes.Parameter{
				{Name: "options", Type: "LocationOptions", Required: true},
				{Name: "callback", Type: "LocationCallback", Required: true},
			},
			ReturnType: "Promise<LocationSubscription>",
			Platforms:  []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid, datatypes.PlatformWeb},
			Availability: datatypes.Availability{
				Since: "sdk-38",
			},
		},
	},
	"expo-notifications": {
		{
			Name:        "requestPermissionsAsync",
			Signature:   "requestPermissionsAsync(request?: NotificationPermissionsRequest): Promise<NotificationPermissionsStatus>",
			Description: "Prompts for notification permissions.",
			ReturnType:  "Promise<NotificationPermissionsStatus>",
			Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
			Availability: datatypes.Availability{
				Since: "sdk-40",
			},
			RequiredPermissions: []string{"android.permission.POST_NOTIFICATIONS"},
		},
		{
			Name:        "scheduleNotificationAsync",
			Signature:   "scheduleNotificationAsync(request: NotificationRequestInput): Promise<string>",
			Description: "Schedules a local notification and resolves with its identifier.",
			Parameters: []datatypes.Parameter{
				{Name: "request", Type: "NotificationRequestInput", Required: true},
			},
			ReturnType: "Promise<string>",
			Platforms:  []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
			Availability: datatypes.Availability{
				Since: "sdk-40",
			},
		},
		{
			Name:        "presentNotificationAsync",
			Signature:   "presentNotificationAsync(content: NotificationContentInput): Promise<string>",
			Description: "Immediately presents a notification without scheduling.",
			ReturnType:  "Promise<string>",
			Platforms:   []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
			Availability: datatypes.Availability{
				Since:       "sdk-40",
				Deprecated:  "sdk-51",
				Replacement: "scheduleNotificationAsync",
			},
		},
	},
	"expo-secure-store": {
		{
			Name:        "setItemAsync",
			Signature:   "setItemAsync(key: string, value: string, options?: SecureStoreOptions): Promise<void>",
			Description: "Stores a value under key in the platform secure store.",
			Parameters: []datatypes.Parameter{
				{Name: "key", Type: "string", Required: true},
				{Name: "value", Type: "string", Required: true},
				{Name: "options", Type: "SecureStoreOptions", Required: false},
			},
			ReturnType: "Promise<void>",
			Platforms:  []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
			Availability: datatypes.Availability{
				Since: "sdk-38",
			},
		},
		{
			Name:       "getItemAsync",
			Signature:  "getItemAsync(key: string, options?: SecureStoreOptions): Promise<string | null>",
			ReturnType: "Promise<string | null>",
			Platforms:  []datatypes.Platform{datatypes.PlatformIOS, datatypes.PlatformAndroid},
			Availability: datatypes.Availability{
				Since: "sdk-38",
			},
		},
	},
}

// constantCatalog lists documented constants per module.
var constantCatalog = map[string][]datatypes.Constant{
	"expo-camera": {
		{Name: "CameraType", Type: "enum", Description: "Front or back camera selector.", Deprecated: true},
		{Name: "FlashMode", Type: "enum", Description: "Flash behavior for capture."},
	},
	"expo-location": {
		{Name: "Accuracy", Type: "enum", Description: "Requested fix accuracy, Lowest through BestForNavigation."},
		{Name: "ActivityType", Type: "enum", Description: "Hint for platform location batching."},
	},
	"expo-notifications": {
		{Name: "AndroidImportance", Type: "enum", Description: "Notification channel importance levels."},
	},
	"expo-sensors": {
		{Name: "DeviceMotionOrientation", Type: "enum", Description: "Device orientation constants."},
	},
}

// typeCatalog lists documented exported types per module.
var typeCatalog = map[string][]datatypes.TypeDef{
	"expo-camera": {
		{Name: "CameraCapturedPicture", Description: "Result of takePictureAsync: uri, dimensions, optional exif/base64."},
		{Name: "CameraPictureOptions", Description: "Capture options: quality, base64, exif, skipProcessing."},
	},
	"expo-location": {
		{Name: "LocationObject", Description: "A location fix: coords, timestamp, mocked flag."},
		{Name: "LocationOptions", Description: "Accuracy, distanceInterval, and timeInterval settings."},
	},
	"expo-notifications": {
		{Name: "NotificationRequestInput", Description: "Content and trigger for a scheduled notification."},
	},
}

// Methods returns the documented methods for a module. Unknown modules
// yield an empty listing by design.
func Methods(name string) []datatypes.Method {
	src := methodCatalog[name]
	out := make([]datatypes.Method, len(src))
	copy(out, src)
	return out
}

// Constants returns the documented constants for a module.
func Constants(name string) []datatypes.Constant {
	src := constantCatalog[name]
	out := make([]datatypes.Constant, len(src))
	copy(out, src)
	return out
}

// Types returns the documented exported types for a module.
func Types(name string) []datatypes.TypeDef {
	src := typeCatalog[name]
	out := make([]datatypes.TypeDef, len(src))
	copy(out, src)
	return out
}

// Examples returns usage snippets for a module, empty for unknown names.
func Examples(name string) []string {
	e, ok := modules[name]
	if !ok {
		return nil
	}
	out := make([]string, len(e.Examples))
	copy(out, e.Examples)
	return out
}
