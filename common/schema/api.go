/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package schema defines the wire contract between the OpsGate backend and
// its clients. The shapes are owned by the backend; this package exists so
// that the client and the mock server agree on field names.
package schema

// API status strings used in response bodies
const (
	APIStatusOK    = "ok"
	APIStatusError = "error"
)

// Endpoints exposed by the backend
const (
	EndpointLogin          = "/auth/login"
	EndpointMe             = "/auth/me"
	EndpointLogout         = "/auth/logout"
	EndpointEnroll         = "/biometric/enroll"
	EndpointVerify         = "/biometric/verify"
	EndpointToggle         = "/biometric/toggle"
	EndpointCommands       = "/commands"
	EndpointCommandExecute = "/commands/execute"
)

// Biometric modalities the backend understands. The set is owned by the
// backend; these constants cover the modalities it ships with.
const (
	BiometricFace        = "face"
	BiometricVoice       = "voice"
	BiometricFingerprint = "fingerprint"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// NewLoginRequest creates a new login request with the supplied credentials
func NewLoginRequest(username string, password string) LoginRequest {
	return LoginRequest{
		Username: username,
		Password: password,
	}
}

// BiometricRequest is used for both enrollment and verification.
// EnrollmentData carries the opaque sample payload (base64 media) and is
// omitted for verification requests.
type BiometricRequest struct {
	BiometricType  string `json:"biometric_type"`
	EnrollmentData string `json:"enrollment_data,omitempty"`
}

type ToggleRequest struct {
	BiometricType string `json:"biometric_type"`
	Enabled       bool   `json:"enabled"`
}

// CreateCommandRequest registers a new command with the backend.
// Category must be one of the values accepted by commands.ValidCategory.
type CreateCommandRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Command     string `json:"command"`
	Category    string `json:"category"`
	IsEnabled   *bool  `json:"is_enabled,omitempty"` // nil leaves the default to the backend
}

type ExecuteCommandRequest struct {
	CommandID int64 `json:"command_id"`
}
