/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package client

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reports the expiry time of the stored access token without
// verifying its signature. Verification belongs to the backend; the client
// only peeks at the claims so the CLI can tell the user a login is about to
// go stale. A zero time with a nil error means the token carries no expiry.
func (c *Client) TokenExpiry() (time.Time, error) {
	token := c.session.Token()
	if token == "" {
		return time.Time{}, ErrNoSession
	}

	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, nil
	}
	return claims.ExpiresAt.Time, nil
}
