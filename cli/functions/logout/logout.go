/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package logout

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpsGate/OpsGate/cli/login"
)

func Register() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "end the current session",
		Long:  "sign out from the server and remove the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := login.Stored()
			if !ok {
				fmt.Println("No session stored")
				return nil
			}

			// The stored token is removed even if the server is unreachable
			if err := c.Logout(); err != nil {
				fmt.Printf("Sign-out request failed: %s\n", err.Error())
				fmt.Println("Stored session removed")
				return nil
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}
