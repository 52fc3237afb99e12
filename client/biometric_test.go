/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpsGate/OpsGate/common/schema"
)

func TestEnroll(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, schema.EndpointEnroll, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"biometric_type":"voice"}`))
	}))
	defer ts.Close()

	c, err := New(WithServerURL(ts.URL))
	require.NoError(t, err)

	resp, err := c.Enroll(schema.BiometricVoice, "b64-sample")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, schema.BiometricVoice, resp.BiometricType)
	assert.Equal(t, "voice", got["biometric_type"])
	assert.Equal(t, "b64-sample", got["enrollment_data"])
}

func TestEnrollWithoutData(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success":true,"biometric_type":"face"}`))
	}))
	defer ts.Close()

	c, err := New(WithServerURL(ts.URL))
	require.NoError(t, err)

	_, err = c.Enroll(schema.BiometricFace, "")
	require.NoError(t, err)

	// The optional payload is omitted, not sent as an empty string
	_, present := got["enrollment_data"]
	assert.False(t, present)
}

func TestEnrollRequiresType(t *testing.T) {
	c, err := New(WithServerURL("http://127.0.0.1:1"))
	require.NoError(t, err)

	_, err = c.Enroll("", "data")
	assert.Error(t, err)
}

func TestVerify(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, schema.EndpointVerify, r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"confidence":91.5,"similarity":0.915,"threshold":0.35}`))
	}))
	defer ts.Close()

	c, err := New(WithServerURL(ts.URL))
	require.NoError(t, err)

	resp, err := c.Verify(schema.BiometricVoice)
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.InDelta(t, 91.5, resp.Confidence, 0.001)
	assert.InDelta(t, 0.915, resp.Similarity, 0.001)
	assert.InDelta(t, 0.35, resp.Threshold, 0.001)

	assert.Equal(t, "voice", got["biometric_type"])
	_, present := got["enrollment_data"]
	assert.False(t, present, "verification sends the type tag only")
}

func TestToggle(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, schema.EndpointToggle, r.URL.Path)
		assert.Equal(t, http.MethodPut, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"biometric_type":"face","enabled":false}`))
	}))
	defer ts.Close()

	c, err := New(WithServerURL(ts.URL))
	require.NoError(t, err)

	resp, err := c.Toggle(schema.BiometricFace, false)
	require.NoError(t, err)
	assert.Equal(t, schema.BiometricFace, resp.BiometricType)
	assert.False(t, resp.Enabled)

	assert.Equal(t, "face", got["biometric_type"])
	assert.Equal(t, false, got["enabled"])
}
