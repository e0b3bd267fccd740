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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/SDKCompass/services/registry/commands"
	"github.com/AleutianAI/SDKCompass/services/registry/datatypes"
)

var (
	commandPlatform string
	commandProfile  string
	commandFlags    map[string]string

	commandCmd = &cobra.Command{
		Use:   "command [operation]",
		Short: "Synthesize an EAS CLI invocation",
		Long: `Builds a runnable EAS CLI command for one of: build, submit,
update, credentials.

Examples:
  sdkctl command build --platform ios --profile preview
  sdkctl command submit --platform android
  sdkctl command update
  sdkctl command build --flag local=true`,
		Args: cobra.ExactArgs(1),
		RunE: runCommandCommand,
	}
)

func init() {
	commandCmd.Flags().StringVarP(&commandPlatform, "platform", "p", "all",
		"Target platform: ios, android, or all")
	commandCmd.Flags().StringVar(&commandProfile, "profile", "development",
		"Build profile: development, preview, or production")
	commandCmd.Flags().StringToStringVar(&commandFlags, "flag", nil,
		"Extra CLI flags as key=value pairs (caller wins on collision)")
	rootCmd.AddCommand(commandCmd)
}

func runCommandCommand(cmd *cobra.Command, args []string) error {
	synth := commands.NewSynthesizer(cliLogger())

	var (
		result datatypes.EasCommandResult
		err    error
	)
	switch op := datatypes.Operation(args[0]); op {
	case datatypes.OperationBuild:
		result, err = synth.GenerateBuildCommand(commandPlatform, commandProfile, commandFlags)
	case datatypes.OperationSubmit:
		result, err = synth.GenerateSubmitCommand(commandPlatform, commandProfile, commandFlags)
	case datatypes.OperationUpdate:
		result, err = synth.GenerateUpdateCommand(commandPlatform, commandProfile, commandFlags)
	case datatypes.OperationCredentials:
		result, err = synth.GenerateCredentialsCommand(commandPlatform, commandFlags)
	default:
		return fmt.Errorf("unknown operation %q (expected build, submit, update, or credentials)", op)
	}
	if err != nil {
		return err
	}
	return printJSON(result)
}
