/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package whoami

import (
	"github.com/spf13/cobra"

	"github.com/OpsGate/OpsGate/cli/display"
	"github.com/OpsGate/OpsGate/cli/login"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "show the current user",
		Long:  "display the profile of the authenticated user, including biometric status",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := login.Connect()
			return display.Result(c.CurrentUser())
		},
	}
}
