// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command sdkctl queries the SDK knowledge engine from the terminal
// without a running server: module resolution, migration guides,
// compatibility matrices, and EAS command synthesis.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/SDKCompass/pkg/logging"
)

var (
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "sdkctl",
		Short: "Query SDK module metadata, migrations, and build tooling",
		Long: `sdkctl runs the SDKCompass knowledge engine locally.

Examples:
  sdkctl resolve expo-camera
  sdkctl resolve expo-camera --version sdk-52
  sdkctl migrate sdk-51 sdk-53
  sdkctl matrix sdk-53
  sdkctl command build --platform ios --profile preview`,
	}
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable debug logging")
}

// cliLogger builds the logger for CLI runs: quiet unless --verbose.
func cliLogger() *logging.Logger {
	level := logging.LevelWarn
	if verbose {
		level = logging.LevelDebug
	}
	return logging.New(logging.Config{
		Level:   level,
		Service: "sdkctl",
	})
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
