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
	"fmt"

	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

// versionHistory holds the known SDK release lines.
var versionHistory = map[string]datatypes.VersionInfo{
	"sdk-53": {
		Version:     "sdk-53",
		ReleaseDate: "2025-04-30",
		Status:      datatypes.VersionStatusLatest,
		Changelog:   "New Architecture enabled by default; edge-to-edge Android layout; React 19.",
	},
	"sdk-52": {
		Version:     "sdk-52",
		ReleaseDate: "2024-11-12",
		Status:      datatypes.VersionStatusSupported,
		Changelog:   "New Architecture opt-in stabilized; expo-video out of beta; DOM components.",
	},
	"sdk-51": {
		Version:        "sdk-51",
		ReleaseDate:    "2024-05-07",
		Status:         datatypes.VersionStatusSupported,
		SupportEndDate: "2025-05-07",
		Changelog:      "expo-av deprecated in favor of expo-audio/expo-video; bridgeless mode preview.",
	},
	"sdk-50": {
		Version:        "sdk-50",
		ReleaseDate:    "2024-01-18",
		Status:         datatypes.VersionStatusDeprecated,
		SupportEndDate: "2025-01-18",
		Changelog:      "expo-barcode-scanner deprecated; Fingerprint runtime versions; SQLite next API.",
	},
	"sdk-49": {
		Version:        "sdk-49",
		ReleaseDate:    "2023-06-28",
		Status:         datatypes.VersionStatusUnsupported,
		SupportEndDate: "2024-06-28",
		Changelog:      "Last SDK with classic updates; expo-camera legacy permission API deprecated.",
	},
}

// moduleVersionsByRelease is derived from the module table once at init so
// Version never rescans it. Keyed by release label.
var moduleVersionsByRelease = buildModuleVersions()

func buildModuleVersions() map[string]map[string]string {
	byRelease := make(map[string]map[string]string, len(versionHistory))
	for label := range versionHistory {
		pins := make(map[string]string, len(modules))
		for name := range modules {
			pins[name] = VersionFor(name, label)
		}
		byRelease[label] = pins
	}
	return byRelease
}

// Version returns the release record for a (normalized) version label. The
// ModuleVersions map is a copy of the precomputed per-release table, so
// callers may mutate it freely.
func Version(label string) (datatypes.VersionInfo, bool) {
	normalized := NormalizeVersion(label)
	info, ok := versionHistory[normalized]
	if !ok {
		return datatypes.VersionInfo{}, false
	}
	pins := moduleVersionsByRelease[normalized]
	info.ModuleVersions = make(map[string]string, len(pins))
	for name, v := range pins {
		info.ModuleVersions[name] = v
	}
	return info, true
}

// VersionLabels returns every known release label.
func VersionLabels() []string {
	labels := make([]string, 0, len(versionHistory))
	for label := range versionHistory {
		labels = append(labels, label)
	}
	return labels
}

// MigrationKnowledge is the static change record for one version pair.
type MigrationKnowledge struct {
	BreakingChanges   []datatypes.BreakingChange
	DeprecatedModules []string
	Notes             string
}

// migrationKnowledge is keyed by "<from>-><to>" using normalized labels.
// Pairs without an entry fall back to the baseline-steps-only guide.
var migrationKnowledge = map[string]MigrationKnowledge{
	"sdk-49->sdk-50": {
		BreakingChanges: []datatypes.BreakingChange{
			{
				Module:         "expo-barcode-scanner",
				Kind:           datatypes.ChangeKindRemoved,
				Description:    "expo-barcode-scanner is deprecated; scanning moved into expo-camera.",
				RequiredAction: "Replace BarCodeScanner usage with CameraView barcode events.",
				Before:         "<BarCodeScanner onBarCodeScanned={handle} />",
				After:          "<CameraView onBarcodeScanned={handle} barcodeScannerSettings={{ barcodeTypes: ['qr'] }} />",
			},
			{
				Module:         "expo-sqlite",
				Kind:           datatypes.ChangeKindRenamed,
				Description:    "The next-generation SQLite API moved to the package root.",
				RequiredAction: "Import from expo-sqlite/next or migrate to the new openDatabaseAsync API.",
			},
		},
		DeprecatedModules: []string{"expo-barcode-scanner"},
		Notes:             "Classic updates were removed in SDK 50; projects must use EAS Update.",
	},
	"sdk-50->sdk-51": {
		BreakingChanges: []datatypes.BreakingChange{
			{
				Module:         "expo-av",
				Kind:           datatypes.ChangeKindBehavior,
				Description:    "expo-av is deprecated; audio and video playback split into dedicated packages.",
				RequiredAction: "Migrate Video components to expo-video and Audio.Sound to expo-audio.",
				Before:         "import { Video } from 'expo-av';",
				After:          "import { VideoView, useVideoPlayer } from 'expo-video';",
			},
		},
		DeprecatedModules: []string{"expo-av"},
	},
	"sdk-51->sdk-52": {
		BreakingChanges: []datatypes.BreakingChange{
			{
				Module:         "expo-camera",
				Kind:           datatypes.ChangeKindRenamed,
				Description:    "The legacy Camera component export was removed; CameraView is the only surface.",
				RequiredAction: "Replace Camera with CameraView and the useCameraPermissions hook.",
				Before:         "import { Camera } from 'expo-camera/legacy';",
				After:          "import { CameraView, useCameraPermissions } from 'expo-camera';",
			},
			{
				Module:         "expo-notifications",
				Kind:           datatypes.ChangeKindBehavior,
				Description:    "Push notification tokens require an explicit projectId on bare projects.",
				RequiredAction: "Pass projectId to getExpoPushTokenAsync.",
			},
		},
		DeprecatedModules: nil,
	},
	"sdk-52->sdk-53": {
		BreakingChanges: []datatypes.BreakingChange{
			{
				Module:         "expo-file-system",
				Kind:           datatypes.ChangeKindBehavior,
				Description:    "The New Architecture is enabled by default and the legacy FileSystem API is frozen.",
				RequiredAction: "Validate native modules against the New Architecture; adopt the new FileSystem API.",
			},
			{
				Module:         "expo-av",
				Kind:           datatypes.ChangeKindRemoved,
				Description:    "expo-av Video is no longer maintained on the New Architecture.",
				RequiredAction: "Finish the expo-video migration before upgrading.",
			},
			{
				Module:         "expo-constants",
				Kind:           datatypes.ChangeKindConfig,
				Description:    "Constants.manifest was removed.",
				RequiredAction: "Read app config through Constants.expoConfig.",
				Before:         "Constants.manifest.extra",
				After:          "Constants.expoConfig?.extra",
			},
			{
				Module:         "expo-notifications",
				Kind:           datatypes.ChangeKindBehavior,
				Description:    "Android 15 edge-to-edge changes notification deep-link handling.",
				RequiredAction: "Re-test notification taps that open deep links on Android 15.",
			},
		},
		DeprecatedModules: nil,
		Notes:             "SDK 53 ships React 19; third-party libraries may need updates.",
	},
}

// Migration returns the static change knowledge for a version pair, using
// normalized labels. Unknown pairs return ok=false; the analyzer then
// emits the baseline guide.
func Migration(from, to string) (MigrationKnowledge, bool) {
	key := fmt.Sprintf("%s->%s", NormalizeVersion(from), NormalizeVersion(to))
	k, ok := migrationKnowledge[key]
	return k, ok
}
