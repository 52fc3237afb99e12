/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package biometric

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpsGate/OpsGate/cli/display"
	"github.com/OpsGate/OpsGate/cli/login"
	"github.com/OpsGate/OpsGate/common/schema"
)

var modalities = []string{schema.BiometricFace, schema.BiometricVoice, schema.BiometricFingerprint}

// Register returns the root biometric command with subcommands.
func Register() *cobra.Command {
	bioCmd := &cobra.Command{
		Use:     "biometric",
		Aliases: []string{"bio"},
		Short:   "Manage biometric authentication",
		Long:    "Biometric commands: enroll, verify, enable, disable",
	}

	bioCmd.AddCommand(enrollCmd())
	bioCmd.AddCommand(verifyCmd())
	bioCmd.AddCommand(toggleCmd("enable", true))
	bioCmd.AddCommand(toggleCmd("disable", false))

	return bioCmd
}

// checkModality validates the biometric type before any network traffic
func checkModality(arg string) (string, error) {
	modality := strings.ToLower(arg)
	for _, m := range modalities {
		if modality == m {
			return modality, nil
		}
	}
	return "", fmt.Errorf("unknown biometric type %q (must be one of %s)",
		arg, strings.Join(modalities, ", "))
}

func enrollCmd() *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "enroll <type>",
		Short: "enroll a biometric sample",
		Long:  "enroll the user for the specified biometric type; the sample may be provided from a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modality, err := checkModality(args[0])
			if err != nil {
				return err
			}

			var sample string
			if dataFile != "" {
				data, rErr := os.ReadFile(dataFile)
				if rErr != nil {
					return fmt.Errorf("unable to read sample file: %w", rErr)
				}
				sample = string(data)
			}

			c := login.Connect()
			return display.Result(c.Enroll(modality, sample))
		},
	}

	cmd.Flags().StringVarP(&dataFile, "data", "d", "", "File containing the sample payload (optional)")
	return cmd
}

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <type>",
		Short: "verify against an enrolled sample",
		Long:  "verify the user against the stored sample for the specified biometric type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modality, err := checkModality(args[0])
			if err != nil {
				return err
			}
			c := login.Connect()
			return display.Result(c.Verify(modality))
		},
	}
}

func toggleCmd(use string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <type>",
		Short: use + " a biometric type",
		Long:  use + " the specified biometric type for the authenticated user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modality, err := checkModality(args[0])
			if err != nil {
				return err
			}
			c := login.Connect()
			return display.Result(c.Toggle(modality, enabled))
		},
	}
}
