//
// Copyright (c) 2024-2025 Tenebris Technologies Inc.
// See LICENSE file for details
//

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpsGate/OpsGate/cli/functions/biometric"
	"github.com/OpsGate/OpsGate/cli/functions/command"
	"github.com/OpsGate/OpsGate/cli/functions/login"
	"github.com/OpsGate/OpsGate/cli/functions/logout"
	"github.com/OpsGate/OpsGate/cli/functions/version"
	"github.com/OpsGate/OpsGate/cli/functions/whoami"
	"github.com/OpsGate/OpsGate/cli/global"
)

func main() {
	var err error

	// Get the name of this binary, eliminating any path information
	progName := os.Args[0]
	progName = progName[strings.LastIndex(progName, "/")+1:]

	// Initialize the root command
	rootCmd := &cobra.Command{
		Use:   progName,
		Short: global.Description,
		Long:  global.LongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fmt.Errorf("A subcommand is required\n")
		},
	}

	// Disable completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add the functions
	rootCmd.AddCommand(login.Register())
	rootCmd.AddCommand(logout.Register())
	rootCmd.AddCommand(whoami.Register())
	rootCmd.AddCommand(biometric.Register())
	rootCmd.AddCommand(command.Register())
	rootCmd.AddCommand(version.Register())

	// Execute the CLI
	err = rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
