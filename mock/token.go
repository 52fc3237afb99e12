/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package mock

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/OpsGate/OpsGate/common/schema"
)

const accessTokenLife = 60 * time.Minute

// CustomClaims includes jwt.RegisteredClaims and adds the token purpose
type CustomClaims struct {
	jwt.RegisteredClaims
	Purpose string `json:"purpose"`
}

// createToken issues an access token for the subject
func (s *Server) createToken(subject string) (string, error) {

	// Set NotBefore 5 minutes in the past to allow for clock skew
	now := time.Now()
	claims := CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-5 * time.Minute)),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenLife)),
			Issuer:    "opsgate-mock",
			ID:        "T-" + uuid.New().String(),
		},
		Purpose: "access",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// validateToken validates the supplied token and returns the subject
func (s *Server) validateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtKey, nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		if claims.Purpose == "access" {
			return claims.Subject, nil
		}
	}
	return "", errors.New("invalid token")
}

// authFunc is the userver authentication callback for protected routes.
// On success the authenticated username is passed through to the handler.
func (s *Server) authFunc(_ string, authHeader string) (bool, []byte, any) {
	tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || tokenString == "" {
		return false, authFailBody(), nil
	}

	username, err := s.validateToken(tokenString)
	if err != nil {
		return false, authFailBody(), nil
	}

	s.mu.Lock()
	_, exists := s.users[username]
	s.mu.Unlock()
	if !exists {
		return false, authFailBody(), nil
	}

	return true, nil, username
}

func authFailBody() []byte {
	body, _ := json.Marshal(schema.GenericResponse{
		Status:  schema.APIStatusError,
		Code:    http.StatusUnauthorized,
		Details: "authentication failed",
	})
	return body
}
