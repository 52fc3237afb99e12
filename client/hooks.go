/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package client

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// RequestHook mutates an outgoing request before it is sent. Returning an
// error aborts the request.
type RequestHook func(*http.Request) error

// ResponseHook inspects a response after the body has been read. The body
// is not available through the hook; hooks act on status and headers.
type ResponseHook func(*http.Response) error

// RegisterRequestHook appends a hook to the request chain. Hooks run in
// registration order, after the built-in bearer token and request ID hooks.
// Register hooks before issuing requests; the chains are not guarded
// against concurrent mutation.
func (c *Client) RegisterRequestHook(h RequestHook) {
	c.reqHooks = append(c.reqHooks, h)
}

// RegisterResponseHook appends a hook to the response chain. Hooks run in
// registration order, after the built-in auth failure hook.
func (c *Client) RegisterResponseHook(h ResponseHook) {
	c.respHooks = append(c.respHooks, h)
}

// bearerTokenHook sets the Authorization header if a token is stored.
// Without a token the header is simply omitted; rejecting unauthenticated
// calls is the backend's job.
func (c *Client) bearerTokenHook(req *http.Request) error {
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	return nil
}

// requestIDHook tags each request so client and server logs can be
// correlated
func (c *Client) requestIDHook(req *http.Request) error {
	req.Header.Set("X-Request-ID", uuid.New().String())
	return nil
}

// authFailureHook clears the session and notifies the caller when the
// backend rejects the token. Both operations are idempotent, so concurrent
// 401 responses repeating the sequence is safe.
func (c *Client) authFailureHook(resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized {
		c.session.Clear()
		if c.authExpired != nil {
			c.authExpired()
		}
	}
	return nil
}
