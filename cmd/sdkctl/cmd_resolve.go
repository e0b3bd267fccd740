// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"github.com/spf13/cobra"

	"github.com/AleutianAI/SDKCompass/pkg/validation"
	"github.com/AleutianAI/SDKCompass/services/registry/modules"
	"github.com/AleutianAI/SDKCompass/services/registry/sources"
)

var (
	resolveVersion     string
	resolvePermissions bool

	resolveCmd = &cobra.Command{
		Use:   "resolve [module]",
		Short: "Resolve a module's canonical metadata record",
		Long: `Resolves a module against the registry, repository, and documentation
sources and prints the merged record.

Examples:
  sdkctl resolve expo-camera
  sdkctl resolve expo-location --version sdk-52
  sdkctl resolve expo-camera --permissions`,
		Args: cobra.ExactArgs(1),
		RunE: runResolveCommand,
	}
)

func init() {
	resolveCmd.Flags().StringVar(&resolveVersion, "version", "latest",
		"SDK version label (latest, sdk-NN, or NN.N.N)")
	resolveCmd.Flags().BoolVar(&resolvePermissions, "permissions", false,
		"Print the permission summary instead of the full record")
	rootCmd.AddCommand(resolveCmd)
}

func runResolveCommand(cmd *cobra.Command, args []string) error {
	name, err := validation.SanitizeModuleName(args[0])
	if err != nil {
		return err
	}

	logger := cliLogger()
	resolver := modules.NewResolver(sources.NewDefaultAggregator(logger), nil, nil, logger)

	if resolvePermissions {
		return printJSON(resolver.GetPermissionRequirements(name, ""))
	}

	m, err := resolver.Resolve(cmd.Context(), name, resolveVersion)
	if err != nil {
		return err
	}
	return printJSON(m)
}
