/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/OpsGate/OpsGate/common/schema"
)

// ErrNoSession is returned by operations that need a stored token when
// the session is empty
var ErrNoSession = errors.New("no session token stored")

// StatusError is returned when the backend responds with a non-2xx status.
// Body holds the raw response so callers can inspect backend-provided
// detail; Status and Details are filled in when the body parses as the
// standard error shape.
type StatusError struct {
	Code    int
	Status  string
	Details string
	Body    []byte
}

func newStatusError(code int, body []byte) *StatusError {
	e := &StatusError{Code: code, Body: body}

	var resp schema.GenericResponse
	if json.Unmarshal(body, &resp) == nil {
		e.Status = resp.Status
		e.Details = resp.Details
	}
	return e
}

func (e *StatusError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("server returned HTTP %d: %s", e.Code, e.Details)
	}
	return fmt.Sprintf("server returned HTTP %d", e.Code)
}

// AuthExpiredError indicates the backend rejected the token (HTTP 401).
// By the time a caller sees this error the session has been cleared and the
// auth-expired callback has fired.
type AuthExpiredError struct {
	StatusError
}

func newAuthExpiredError(code int, body []byte) *AuthExpiredError {
	return &AuthExpiredError{StatusError: *newStatusError(code, body)}
}

// IsAuthExpired reports whether err is (or wraps) an AuthExpiredError
func IsAuthExpired(err error) bool {
	var e *AuthExpiredError
	return errors.As(err, &e)
}
