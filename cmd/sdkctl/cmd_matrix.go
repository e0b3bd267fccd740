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
	"github.com/AleutianAI/SDKCompass/services/registry/compat"
	"github.com/AleutianAI/SDKCompass/services/registry/modules"
	"github.com/AleutianAI/SDKCompass/services/registry/sources"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix [version]",
	Short: "Print the compatibility matrix for an SDK version",
	Long: `Scores an SDK version against the module roster and the supported
platform set.

Examples:
  sdkctl matrix sdk-53
  sdkctl matrix latest`,
	Args: cobra.ExactArgs(1),
	RunE: runMatrixCommand,
}

func init() {
	rootCmd.AddCommand(matrixCmd)
}

func runMatrixCommand(cmd *cobra.Command, args []string) error {
	version, err := validation.SanitizeVersionLabel(args[0])
	if err != nil {
		return err
	}

	logger := cliLogger()
	resolver := modules.NewResolver(sources.NewDefaultAggregator(logger), nil, nil, logger)
	checker := compat.NewChecker(resolver, nil, logger)

	matrix, err := checker.GetCompatibilityMatrix(cmd.Context(), version)
	if err != nil {
		return err
	}
	return printJSON(matrix)
}
