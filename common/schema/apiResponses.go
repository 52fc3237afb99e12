/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

import (
	"time"
)

// By design, there is some redundancy in the API response structures.
// More specific structures make the API easier to understand and give the
// client typed return values instead of generic maps.

// GenericResponse is used for responses that don't require a specific
// structure (logout acknowledgments, error bodies, etc.)
type GenericResponse struct {
	Status  string `json:"status"`            // API status - see APIStatusOK / APIStatusError
	Code    int    `json:"code"`              // HTTP status code
	Details string `json:"details,omitempty"` // Optional response details
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"` // "bearer"
}

// UserProfile is returned by GET /auth/me. Biometric maps a modality name
// to its enabled state for the authenticated user.
type UserProfile struct {
	ID        int64           `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email,omitempty"`
	Biometric map[string]bool `json:"biometric,omitempty"`
}

type EnrollResponse struct {
	Success       bool   `json:"success"`
	BiometricType string `json:"biometric_type"`
	Details       string `json:"details,omitempty"`
}

// VerifyResponse mirrors the shape produced by the backend's recognition
// services: a match decision plus the scores behind it.
type VerifyResponse struct {
	Success       bool    `json:"success"`
	BiometricType string  `json:"biometric_type,omitempty"`
	Confidence    float64 `json:"confidence"`
	Similarity    float64 `json:"similarity"`
	Threshold     float64 `json:"threshold"`
}

type ToggleResponse struct {
	BiometricType string `json:"biometric_type"`
	Enabled       bool   `json:"enabled"`
}

// CommandRecord is a registered executable action
type CommandRecord struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Command     string    `json:"command"`
	Category    string    `json:"category"`
	IsEnabled   bool      `json:"is_enabled"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// ExecuteResponse carries the result of a command execution. The exact
// content is owned by the backend; the client does not interpret it.
type ExecuteResponse struct {
	Success     bool   `json:"success"`
	ExecutionID string `json:"execution_id,omitempty"`
	Stdout      string `json:"stdout,omitempty"`
	Stderr      string `json:"stderr,omitempty"`
	ExitCode    int    `json:"exit_code"`
}
