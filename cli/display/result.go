/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package display

import (
	"errors"
	"fmt"

	"github.com/OpsGate/OpsGate/cli/global"
	"github.com/OpsGate/OpsGate/client"
)

// Result pretty-prints a successful API response to stdout. Backend errors
// are reported with their HTTP status; transport errors pass through.
func Result(v any, err error) error {
	if err != nil {
		if client.IsAuthExpired(err) {
			return errors.New("not authenticated, please run login")
		}
		var se *client.StatusError
		if errors.As(err, &se) {
			return fmt.Errorf("server response: HTTP %d: %s", se.Code, se.Details)
		}
		return err
	}

	global.Pretty(v)
	return nil
}
