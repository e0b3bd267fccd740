// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package commands synthesizes runnable EAS CLI invocations for the build,
// submit, update, and credentials operations.
package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AleutianAI/SDKCompass/pkg/logging"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
	"github.com/AleutianAI/SDKCompass/services/registry/observability"
)

// Synthesizer builds EAS CLI command strings from operation parameters.
// It holds no state beyond the logger; every call is pure over its inputs.
type Synthesizer struct {
	logger *logging.Logger
}

// NewSynthesizer creates a Synthesizer. A nil logger gets the process
// default.
func NewSynthesizer(logger *logging.Logger) *Synthesizer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Synthesizer{logger: logger}
}

// validPlatforms is the accepted platform argument set for every operation.
var validPlatforms = map[string]bool{
	"ios":     true,
	"android": true,
	"all":     true,
}

// commonPrerequisites apply to every synthesized command.
var commonPrerequisites = []string{
	"Install the EAS CLI: npm install -g eas-cli",
	"Authenticate: eas login",
	"Configure the project: eas build:configure (creates eas.json)",
}

var docsURLs = map[datatypes.Operation]string{
	datatypes.OperationBuild:       "https://docs.expo.dev/build/setup/",
	datatypes.OperationSubmit:      "https://docs.expo.dev/submit/introduction/",
	datatypes.OperationUpdate:      "https://docs.expo.dev/eas-update/introduction/",
	datatypes.OperationCredentials: "https://docs.expo.dev/app-signing/managed-credentials/",
}

// GenerateBuildCommand synthesizes `eas build`. The platform flag is
// omitted for "all" (the CLI default); the profile flag is omitted for
// "development" and that profile additionally pins the development client.
func (s *Synthesizer) GenerateBuildCommand(platform, profile string, extra map[string]string) (datatypes.EasCommandResult, error) {
	flags, err := baseFlags(datatypes.OperationBuild, platform, profile)
	if err != nil {
		return datatypes.EasCommandResult{}, err
	}
	if profile == "development" {
		flags["development-client"] = "true"
	}
	mergeFlags(flags, extra)

	result := datatypes.EasCommandResult{
		Command:       renderCommand("eas build", flags),
		Description:   fmt.Sprintf("Build the app for %s with the %s profile.", platformLabel(platform), profileLabel(profile)),
		Prerequisites: prerequisitesFor(platform, true),
		Flags:         flags,
		EstimatedTime: buildEstimate(platform),
	}
	return s.finish(datatypes.OperationBuild, result), nil
}

// GenerateSubmitCommand synthesizes `eas submit`. Unlike the other
// operations, submit always carries an explicit platform flag: the store
// uploads differ per platform even for "all".
func (s *Synthesizer) GenerateSubmitCommand(platform, profile string, extra map[string]string) (datatypes.EasCommandResult, error) {
	flags, err := baseFlags(datatypes.OperationSubmit, platform, profile)
	if err != nil {
		return datatypes.EasCommandResult{}, err
	}
	flags["latest"] = "true"
	mergeFlags(flags, extra)

	result := datatypes.EasCommandResult{
		Command:       renderCommand("eas submit", flags),
		Description:   fmt.Sprintf("Submit the latest %s build to the store(s).", platformLabel(platform)),
		Prerequisites: prerequisitesFor(platform, true),
		Flags:         flags,
		EstimatedTime: "5-10 minutes",
	}
	return s.finish(datatypes.OperationSubmit, result), nil
}

// GenerateUpdateCommand synthesizes `eas update` with automatic branch and
// message derivation.
func (s *Synthesizer) GenerateUpdateCommand(platform, profile string, extra map[string]string) (datatypes.EasCommandResult, error) {
	flags, err := baseFlags(datatypes.OperationUpdate, platform, profile)
	if err != nil {
		return datatypes.EasCommandResult{}, err
	}
	flags["auto"] = "true"
	mergeFlags(flags, extra)

	result := datatypes.EasCommandResult{
		Command:       renderCommand("eas update", flags),
		Description:   "Publish an over-the-air update to the current branch.",
		Prerequisites: prerequisitesFor(platform, false),
		Flags:         flags,
		EstimatedTime: "1-3 minutes",
	}
	return s.finish(datatypes.OperationUpdate, result), nil
}

// GenerateCredentialsCommand synthesizes `eas credentials` for interactive
// credential management.
func (s *Synthesizer) GenerateCredentialsCommand(platform string, extra map[string]string) (datatypes.EasCommandResult, error) {
	flags, err := baseFlags(datatypes.OperationCredentials, platform, "")
	if err != nil {
		return datatypes.EasCommandResult{}, err
	}
	mergeFlags(flags, extra)

	result := datatypes.EasCommandResult{
		Command:       renderCommand("eas credentials", flags),
		Description:   fmt.Sprintf("Inspect and manage signing credentials for %s.", platformLabel(platform)),
		Prerequisites: prerequisitesFor(platform, false),
		Flags:         flags,
		EstimatedTime: "interactive",
	}
	return s.finish(datatypes.OperationCredentials, result), nil
}

// baseFlags validates the platform and assembles the platform/profile flag
// pair per the omission rules.
func baseFlags(op datatypes.Operation, platform, profile string) (map[string]string, error) {
	if platform == "" {
		platform = "all"
	}
	if !validPlatforms[platform] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPlatform, platform)
	}

	flags := map[string]string{}
	// "all" is the CLI default everywhere except submit, which uploads per
	// store and needs the platform spelled out.
	if platform != "all" || op == datatypes.OperationSubmit {
		flags["platform"] = platform
	}
	if profile != "" && profile != "development" {
		flags["profile"] = profile
	}
	return flags, nil
}

// mergeFlags overlays caller extras; on collision the caller wins.
func mergeFlags(flags, extra map[string]string) {
	for k, v := range extra {
		flags[k] = v
	}
}

// renderCommand assembles the final command string. Flags are emitted in
// sorted order so output is deterministic; flags valued "true" render as
// bare switches.
func renderCommand(base string, flags map[string]string) string {
	keys := make([]string, 0, len(flags))
	for k := range flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(base)
	for _, k := range keys {
		if flags[k] == "true" {
			fmt.Fprintf(&b, " --%s", k)
		} else {
			fmt.Fprintf(&b, " --%s %s", k, flags[k])
		}
	}
	return b.String()
}

func prerequisitesFor(platform string, storeAccess bool) []string {
	prereqs := append([]string{}, commonPrerequisites...)
	if !storeAccess {
		return prereqs
	}
	if platform == "ios" || platform == "all" || platform == "" {
		prereqs = append(prereqs, "Apple Developer account with an active membership")
	}
	if platform == "android" || platform == "all" || platform == "" {
		prereqs = append(prereqs, "Google service account key with Play Console access")
	}
	return prereqs
}

func buildEstimate(platform string) string {
	switch platform {
	case "ios":
		return "15-25 minutes"
	case "android":
		return "10-20 minutes"
	default:
		return "15-30 minutes"
	}
}

func platformLabel(platform string) string {
	if platform == "" || platform == "all" {
		return "all platforms"
	}
	return platform
}

func profileLabel(profile string) string {
	if profile == "" {
		return "development"
	}
	return profile
}

func (s *Synthesizer) finish(op datatypes.Operation, result datatypes.EasCommandResult) datatypes.EasCommandResult {
	result.DocumentationURL = docsURLs[op]
	observability.Default().CommandsSynthesized.WithLabelValues(string(op)).Inc()
	s.logger.Debug("command synthesized", "operation", op, "command", result.Command)
	return result
}
