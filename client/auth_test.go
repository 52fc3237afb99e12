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
	"github.com/OpsGate/OpsGate/common/session"
)

func TestLoginStoresToken(t *testing.T) {
	var gotBody schema.LoginRequest
	var lastAuth string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case schema.EndpointLogin:
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"T","token_type":"bearer"}`))
		default:
			lastAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`{"id":1,"username":"alice"}`))
		}
	}))
	defer ts.Close()

	s := session.NewMemory()
	c, err := New(WithServerURL(ts.URL), WithSession(s))
	require.NoError(t, err)

	resp, err := c.Login("alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "T", resp.AccessToken)
	assert.Equal(t, schema.LoginRequest{Username: "alice", Password: "hunter2"}, gotBody)

	// Token stored before Login returned; subsequent requests use it
	assert.Equal(t, "T", s.Token())
	_, err = c.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "Bearer T", lastAuth)
}

func TestLoginRejectedLeavesSessionEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","code":401,"details":"authentication failed"}`))
	}))
	defer ts.Close()

	s := session.NewMemory()
	c, err := New(WithServerURL(ts.URL), WithSession(s))
	require.NoError(t, err)

	_, err = c.Login("alice", "wrong")
	require.Error(t, err)
	assert.True(t, IsAuthExpired(err))
	assert.Empty(t, s.Token())
}

func TestLoginEmptyTokenIsAnError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token_type":"bearer"}`))
	}))
	defer ts.Close()

	s := session.NewMemory()
	c, err := New(WithServerURL(ts.URL), WithSession(s))
	require.NoError(t, err)

	_, err = c.Login("alice", "hunter2")
	require.Error(t, err)
	assert.Empty(t, s.Token())
}

func TestLogoutClearsSession(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, schema.EndpointLogout, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{"status":"ok","code":200}`))
	}))
	defer ts.Close()

	s := session.NewMemory()
	s.SetToken("T")

	c, err := New(WithServerURL(ts.URL), WithSession(s))
	require.NoError(t, err)

	require.NoError(t, c.Logout())
	assert.Empty(t, s.Token())
}

func TestLogoutClearsSessionOnNetworkFailure(t *testing.T) {
	s := session.NewMemory()
	s.SetToken("T")

	c, err := New(WithServerURL("http://127.0.0.1:1"), WithSession(s))
	require.NoError(t, err)

	// The error propagates but the local session is cleared anyway
	err = c.Logout()
	require.Error(t, err)
	assert.Empty(t, s.Token())
}
