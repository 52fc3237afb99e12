/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpsGate/OpsGate/cli/display"
	"github.com/OpsGate/OpsGate/cli/login"
	"github.com/OpsGate/OpsGate/common/schema"
	"github.com/OpsGate/OpsGate/common/schema/commands"
)

// Register returns the root command management command with subcommands.
func Register() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "command",
		Aliases: []string{"cmd", "commands"},
		Short:   "Manage operational commands",
		Long:    "Command management: list, create, execute",
	}

	cmd.AddCommand(listCmd())
	cmd.AddCommand(createCmd())
	cmd.AddCommand(executeCmd())

	return cmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := login.Connect()
			return display.Result(c.Commands())
		},
	}
}

func createCmd() *cobra.Command {
	var name, description, command, category string
	var disabled bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new command",
		Long: "Register a new command with the server. Category must be one of: " +
			strings.Join(commands.Categories(), ", "),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := schema.CreateCommandRequest{
				Name:        name,
				Description: description,
				Command:     command,
				Category:    category,
			}
			if disabled {
				enabled := false
				req.IsEnabled = &enabled
			}
			c := login.Connect()
			return display.Result(c.CreateCommand(req))
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Command name (required)")
	cmd.Flags().StringVarP(&command, "command", "c", "", "Command line to run (required)")
	cmd.Flags().StringVarP(&category, "category", "C", "", "Category (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description (optional)")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "Register the command as disabled")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("command")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func executeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "execute <command_id>",
		Short: "Execute a command by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid command ID %q", args[0])
			}
			c := login.Connect()
			return display.Result(c.ExecuteCommand(id))
		},
	}
}
