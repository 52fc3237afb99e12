/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpsGate/OpsGate/common/schema"
	"github.com/OpsGate/OpsGate/common/session"
)

func TestServerURLResolution(t *testing.T) {
	t.Setenv(EnvServerURL, "")

	c, err := New()
	require.NoError(t, err)
	assert.Equal(t, DefaultServerURL, c.ServerURL())

	t.Setenv(EnvServerURL, "http://env.example:9000")
	c, err = New()
	require.NoError(t, err)
	assert.Equal(t, "http://env.example:9000", c.ServerURL())

	// An explicit option wins over the environment
	c, err = New(WithServerURL("http://opt.example:9001/"))
	require.NoError(t, err)
	assert.Equal(t, "http://opt.example:9001", c.ServerURL(), "trailing slash trimmed")
}

func TestBearerTokenHeader(t *testing.T) {
	var gotAuth string
	var gotRequestID string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"username":"alice"}`))
	}))
	defer ts.Close()

	s := session.NewMemory()
	c, err := New(WithServerURL(ts.URL), WithSession(s))
	require.NoError(t, err)

	// No token stored: the Authorization header must be absent
	_, err = c.CurrentUser()
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.NotEmpty(t, gotRequestID, "every request carries a request ID")

	// Token stored: the header carries the exact stored value
	s.SetToken("secret-token-T")
	_, err = c.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token-T", gotAuth)
}

func TestAuthFailureClearsSessionAndFiresCallback(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","code":401,"details":"token expired"}`))
	}))
	defer ts.Close()

	s := session.NewMemory()
	s.SetToken("stale")

	fired := 0
	c, err := New(
		WithServerURL(ts.URL),
		WithSession(s),
		WithAuthExpiredFunc(func() { fired++ }))
	require.NoError(t, err)

	// A 401 from any endpoint clears the token and fires the callback once
	_, err = c.CurrentUser()
	require.Error(t, err)
	assert.True(t, IsAuthExpired(err))
	assert.Empty(t, s.Token())
	assert.Equal(t, 1, fired)

	var se *AuthExpiredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.Code)
	assert.Equal(t, "token expired", se.Details)

	// A second 401, from a different endpoint, fires the callback again
	// (once per response)
	s.SetToken("stale-again")
	_, err = c.Commands()
	require.Error(t, err)
	assert.True(t, IsAuthExpired(err))
	assert.Empty(t, s.Token())
	assert.Equal(t, 2, fired)
}

func TestStatusErrorCarriesBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","code":400,"details":"bad request"}`))
	}))
	defer ts.Close()

	c, err := New(WithServerURL(ts.URL))
	require.NoError(t, err)

	_, err = c.Verify(schema.BiometricFace)
	require.Error(t, err)
	assert.False(t, IsAuthExpired(err))

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadRequest, se.Code)
	assert.Equal(t, schema.APIStatusError, se.Status)
	assert.Equal(t, "bad request", se.Details)
	assert.NotEmpty(t, se.Body)
}

func TestTransportErrorPropagates(t *testing.T) {
	// Nothing listens here
	c, err := New(WithServerURL("http://127.0.0.1:1"))
	require.NoError(t, err)

	_, err = c.Commands()
	require.Error(t, err)
	assert.False(t, IsAuthExpired(err))
}

func TestHookRegistrationOrder(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	s := session.NewMemory()
	s.SetToken("T")

	c, err := New(WithServerURL(ts.URL), WithSession(s))
	require.NoError(t, err)

	var order []string
	c.RegisterRequestHook(func(req *http.Request) error {
		// Built-in hooks have already run by the time caller hooks do
		assert.Equal(t, "Bearer T", req.Header.Get("Authorization"))
		order = append(order, "req-1")
		return nil
	})
	c.RegisterRequestHook(func(req *http.Request) error {
		order = append(order, "req-2")
		return nil
	})
	c.RegisterResponseHook(func(resp *http.Response) error {
		order = append(order, "resp-1")
		return nil
	})
	c.RegisterResponseHook(func(resp *http.Response) error {
		order = append(order, "resp-2")
		return nil
	})

	_, err = c.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, []string{"req-1", "req-2", "resp-1", "resp-2"}, order)
}
