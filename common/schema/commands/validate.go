/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package commands

import (
	"errors"
	"fmt"

	"github.com/OpsGate/OpsGate/common/schema"
)

// Validate checks a command registration request before it is sent.
// The backend enforces its own rules; this catches the errors the contract
// pins down (required fields and the category enumeration) without a
// network round trip.
func Validate(req schema.CreateCommandRequest) error {

	if req.Name == "" {
		return errors.New("command name is required")
	}

	if req.Command == "" {
		return errors.New("command line is required")
	}

	if !ValidCategory(req.Category) {
		return fmt.Errorf("invalid category %q (valid: %v)", req.Category, Categories())
	}

	return nil
}
