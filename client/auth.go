/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package client

import (
	"errors"
	"net/http"

	"github.com/OpsGate/OpsGate/common/schema"
)

// Login authenticates with the backend. On success the access token is
// stored in the session before the method returns, so subsequent calls
// carry it.
func (c *Client) Login(username string, password string) (schema.LoginResponse, error) {
	var resp schema.LoginResponse

	err := c.call(http.MethodPost, schema.EndpointLogin, schema.NewLoginRequest(username, password), &resp)
	if err != nil {
		return resp, err
	}

	if resp.AccessToken == "" {
		return resp, errors.New("server returned an empty token")
	}

	c.session.SetToken(resp.AccessToken)
	return resp, nil
}

// CurrentUser returns the profile of the authenticated user
func (c *Client) CurrentUser() (schema.UserProfile, error) {
	var resp schema.UserProfile
	err := c.call(http.MethodGet, schema.EndpointMe, nil, &resp)
	return resp, err
}

// Logout sends the sign-out request and clears the session regardless of
// the outcome of the network call. A token the server may already consider
// revoked is not worth keeping, and a stale "logged in" state is worse
// than an extra login. The network error, if any, is still returned.
func (c *Client) Logout() error {
	defer c.session.Clear()
	return c.call(http.MethodPost, schema.EndpointLogout, nil, nil)
}
