/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package login

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/OpsGate/OpsGate/cli/login"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "authenticate with the server",
		Long:  "authenticate with the server and store the session token, replacing any existing session",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := login.ConnectFresh()

			profile, err := c.CurrentUser()
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s\n", profile.Username)

			if expiry, err := c.TokenExpiry(); err == nil && !expiry.IsZero() {
				fmt.Printf("Session expires %s\n", expiry.Local().Format(time.RFC1123))
			}
			return nil
		},
	}
}
