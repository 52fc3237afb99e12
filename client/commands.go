/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package client

import (
	"net/http"

	"github.com/OpsGate/OpsGate/common/schema"
	"github.com/OpsGate/OpsGate/common/schema/commands"
)

// Commands returns the registered commands in the order the backend
// reports them
func (c *Client) Commands() ([]schema.CommandRecord, error) {
	var resp []schema.CommandRecord
	err := c.call(http.MethodGet, schema.EndpointCommands, nil, &resp)
	return resp, err
}

// CreateCommand registers a new command. The request is validated locally
// first: name and command line are required and the category must be one of
// the fixed enumeration. Valid requests are forwarded unchanged.
func (c *Client) CreateCommand(req schema.CreateCommandRequest) (schema.CommandRecord, error) {
	var resp schema.CommandRecord

	if err := commands.Validate(req); err != nil {
		return resp, err
	}

	err := c.call(http.MethodPost, schema.EndpointCommands, req, &resp)
	return resp, err
}

// ExecuteCommand asks the backend to run the command with the given ID and
// returns the execution result verbatim
func (c *Client) ExecuteCommand(commandID int64) (schema.ExecuteResponse, error) {
	var resp schema.ExecuteResponse
	err := c.call(http.MethodPost, schema.EndpointCommandExecute, schema.ExecuteCommandRequest{CommandID: commandID}, &resp)
	return resp, err
}
