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
	"github.com/AleutianAI/SDKCompass/services/registry/deprecation"
	"github.com/AleutianAI/SDKCompass/services/registry/modules"
	"github.com/AleutianAI/SDKCompass/services/registry/sources"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [from] [to]",
	Short: "Generate the migration guide between two SDK versions",
	Long: `Synthesizes the ordered upgrade plan between two SDK versions,
including known breaking changes and the estimated effort.

Examples:
  sdkctl migrate sdk-51 sdk-53
  sdkctl migrate 52 latest`,
	Args: cobra.ExactArgs(2),
	RunE: runMigrateCommand,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrateCommand(cmd *cobra.Command, args []string) error {
	from, err := validation.SanitizeVersionLabel(args[0])
	if err != nil {
		return err
	}
	to, err := validation.SanitizeVersionLabel(args[1])
	if err != nil {
		return err
	}

	logger := cliLogger()
	resolver := modules.NewResolver(sources.NewDefaultAggregator(logger), nil, nil, logger)
	analyzer := deprecation.NewAnalyzer(resolver, nil, logger)

	return printJSON(analyzer.GenerateMigrationGuide(from, to))
}
