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

// Enroll submits a biometric sample for the given modality.
// enrollmentData is the opaque sample payload; it may be empty when the
// capture happens on the backend side.
func (c *Client) Enroll(biometricType string, enrollmentData string) (schema.EnrollResponse, error) {
	var resp schema.EnrollResponse

	if biometricType == "" {
		return resp, errors.New("biometric type is required")
	}

	req := schema.BiometricRequest{
		BiometricType:  biometricType,
		EnrollmentData: enrollmentData,
	}
	err := c.call(http.MethodPost, schema.EndpointEnroll, req, &resp)
	return resp, err
}

// Verify asks the backend to verify the user against the stored sample for
// the given modality. The match decision and scores are backend-owned; the
// client does not interpret them.
func (c *Client) Verify(biometricType string) (schema.VerifyResponse, error) {
	var resp schema.VerifyResponse

	if biometricType == "" {
		return resp, errors.New("biometric type is required")
	}

	err := c.call(http.MethodPost, schema.EndpointVerify, schema.BiometricRequest{BiometricType: biometricType}, &resp)
	return resp, err
}

// Toggle enables or disables a biometric modality for the user
func (c *Client) Toggle(biometricType string, enabled bool) (schema.ToggleResponse, error) {
	var resp schema.ToggleResponse

	if biometricType == "" {
		return resp, errors.New("biometric type is required")
	}

	req := schema.ToggleRequest{
		BiometricType: biometricType,
		Enabled:       enabled,
	}
	err := c.call(http.MethodPut, schema.EndpointToggle, req, &resp)
	return resp, err
}
