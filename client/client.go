/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package client implements the OpsGate API client. It wraps one configured
// HTTP client, injects the session bearer token on every request, reacts to
// authentication failures, and exposes typed methods per backend endpoint.
//
// The client performs exactly one network call per method and propagates
// every failure to the caller. There is no retry, backoff, or queuing.
package client

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/OpsGate/OpsGate/common/interfaces"
	"github.com/OpsGate/OpsGate/common/null"
	"github.com/OpsGate/OpsGate/common/session"
)

const (
	// EnvServerURL selects the backend base URL when no option is supplied
	EnvServerURL = "OPSGATE_SERVER"

	// DefaultServerURL is used when neither an option nor the environment
	// provides a base URL
	DefaultServerURL = "http://127.0.0.1:8000"
)

type Client struct {
	serverURL   string
	httpClient  *http.Client
	session     interfaces.Session
	logger      interfaces.Logger
	authExpired func()
	reqHooks    []RequestHook
	respHooks   []ResponseHook
}

// New returns a configured Client. The base URL is resolved from options,
// then the OPSGATE_SERVER environment variable, then the local default.
func New(options ...func(*Client) error) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{},
		logger:     null.Logger(),
	}

	// Built-in interception is installed ahead of any hooks registered by
	// options or later calls so that the ordering guarantee holds: bearer
	// token and request ID on the way out, auth failure handling on the
	// way back.
	c.reqHooks = []RequestHook{c.bearerTokenHook, c.requestIDHook}
	c.respHooks = []ResponseHook{c.authFailureHook}

	for _, option := range options {
		err := option(c)
		if err != nil {
			return nil, err
		}
	}

	if c.serverURL == "" {
		c.serverURL = os.Getenv(EnvServerURL)
	}
	if c.serverURL == "" {
		c.serverURL = DefaultServerURL
	}
	c.serverURL = strings.TrimRight(c.serverURL, "/")

	if c.session == nil {
		c.session = session.NewMemory()
	}
	return c, nil
}

// WithServerURL sets the backend base URL
func WithServerURL(serverURL string) func(*Client) error {
	return func(c *Client) error {
		if serverURL == "" {
			return errors.New("server URL is empty")
		}
		c.serverURL = serverURL
		return nil
	}
}

// WithSession injects the token store. The default is an in-memory store;
// callers that need persistence supply their own implementation.
func WithSession(s interfaces.Session) func(*Client) error {
	return func(c *Client) error {
		if s == nil {
			return errors.New("session is nil")
		}
		c.session = s
		return nil
	}
}

// WithHTTPClient replaces the underlying HTTP client, e.g. to set a
// timeout or a custom transport
func WithHTTPClient(h *http.Client) func(*Client) error {
	return func(c *Client) error {
		if h == nil {
			return errors.New("http client is nil")
		}
		c.httpClient = h
		return nil
	}
}

// WithLogger sets the logger used for debug tracing
func WithLogger(logger interfaces.Logger) func(*Client) error {
	return func(c *Client) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		c.logger = logger
		return nil
	}
}

// WithAuthExpiredFunc registers a callback invoked after a 401 response has
// cleared the session. A UI would navigate to its login view here; the CLI
// prints a re-login hint. The callback runs once per 401 response; because
// clearing the session is idempotent, concurrent in-flight requests that
// each receive a 401 simply repeat the same safe sequence.
func WithAuthExpiredFunc(f func()) func(*Client) error {
	return func(c *Client) error {
		c.authExpired = f
		return nil
	}
}

// ServerURL returns the resolved backend base URL
func (c *Client) ServerURL() string {
	return c.serverURL
}

// Session returns the token store in use
func (c *Client) Session() interfaces.Session {
	return c.session
}
