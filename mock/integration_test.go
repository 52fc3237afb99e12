/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package mock

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpsGate/OpsGate/client"
	"github.com/OpsGate/OpsGate/common/schema"
	"github.com/OpsGate/OpsGate/common/schema/commands"
	"github.com/OpsGate/OpsGate/common/session"
)

// startMock mounts a seeded mock backend on an httptest server
func startMock(t *testing.T, options ...func(*Server) error) *httptest.Server {
	t.Helper()

	s, err := New(options...)
	require.NoError(t, err)

	h, err := s.Handler()
	require.NoError(t, err)

	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)
	return ts
}

func TestFullClientFlow(t *testing.T) {
	ts := startMock(t,
		WithUser("alice", "hunter2"),
		WithCommand(schema.CommandRecord{
			ID: 1, Name: "x", Command: "true", Category: commands.CategoryBuild, IsEnabled: true}))

	s := session.NewMemory()
	c, err := client.New(client.WithServerURL(ts.URL), client.WithSession(s))
	require.NoError(t, err)

	// Unauthenticated profile request is rejected
	_, err = c.CurrentUser()
	require.Error(t, err)
	assert.True(t, client.IsAuthExpired(err))

	// Login
	loginResp, err := c.Login("alice", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "bearer", loginResp.TokenType)
	assert.NotEmpty(t, s.Token())

	// The issued token carries an expiry the client can report
	exp, err := c.TokenExpiry()
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	// Profile
	profile, err := c.CurrentUser()
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Empty(t, profile.Biometric)

	// Biometric enrollment and verification
	enrollResp, err := c.Enroll(schema.BiometricVoice, "b64-audio-sample")
	require.NoError(t, err)
	assert.True(t, enrollResp.Success)

	verifyResp, err := c.Verify(schema.BiometricVoice)
	require.NoError(t, err)
	assert.True(t, verifyResp.Success)
	assert.Greater(t, verifyResp.Confidence, 0.0)
	assert.Greater(t, verifyResp.Similarity, verifyResp.Threshold)

	// Verification of a modality that was never enrolled fails the match
	verifyResp, err = c.Verify(schema.BiometricFace)
	require.NoError(t, err)
	assert.False(t, verifyResp.Success)

	// Toggle off and confirm through the profile
	toggleResp, err := c.Toggle(schema.BiometricVoice, false)
	require.NoError(t, err)
	assert.False(t, toggleResp.Enabled)

	profile, err = c.CurrentUser()
	require.NoError(t, err)
	assert.False(t, profile.Biometric[schema.BiometricVoice])

	// Command listing returns the seeded record unmodified
	list, err := c.Commands()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, schema.CommandRecord{
		ID: 1, Name: "x", Command: "true", Category: commands.CategoryBuild, IsEnabled: true}, list[0])

	// Register and execute a command
	rec, err := c.CreateCommand(schema.CreateCommandRequest{
		Name:     "uptime",
		Command:  "uptime",
		Category: commands.CategoryMonitoring,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), rec.ID)
	assert.True(t, rec.IsEnabled)

	execResp, err := c.ExecuteCommand(rec.ID)
	require.NoError(t, err)
	assert.True(t, execResp.Success)
	assert.NotEmpty(t, execResp.ExecutionID)
	assert.Equal(t, 0, execResp.ExitCode)

	// Logout clears the session; the next call is unauthenticated
	require.NoError(t, c.Logout())
	assert.Empty(t, s.Token())

	_, err = c.CurrentUser()
	require.Error(t, err)
	assert.True(t, client.IsAuthExpired(err))
}

func TestLoginFailures(t *testing.T) {
	ts := startMock(t, WithUser("alice", "hunter2"))

	c, err := client.New(client.WithServerURL(ts.URL))
	require.NoError(t, err)

	_, err = c.Login("alice", "wrong")
	require.Error(t, err)
	assert.True(t, client.IsAuthExpired(err))

	_, err = c.Login("mallory", "hunter2")
	require.Error(t, err)

	_, err = c.Login("", "")
	require.Error(t, err)
}

func TestExecuteErrors(t *testing.T) {
	ts := startMock(t,
		WithUser("alice", "hunter2"),
		WithCommand(schema.CommandRecord{
			ID: 5, Name: "off", Command: "true", Category: commands.CategoryTest, IsEnabled: false}))

	c, err := client.New(client.WithServerURL(ts.URL))
	require.NoError(t, err)

	_, err = c.Login("alice", "hunter2")
	require.NoError(t, err)

	// Unknown ID
	_, err = c.ExecuteCommand(999)
	require.Error(t, err)
	var se *client.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 404, se.Code)

	// Disabled command
	_, err = c.ExecuteCommand(5)
	require.Error(t, err)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 400, se.Code)
}

func TestRejectedCategory(t *testing.T) {
	ts := startMock(t, WithUser("alice", "hunter2"))

	c, err := client.New(client.WithServerURL(ts.URL))
	require.NoError(t, err)

	_, err = c.Login("alice", "hunter2")
	require.NoError(t, err)

	// The client validates before sending, so bypassing it requires a raw
	// request; here we only confirm the mock agrees with the enumeration
	// by going through the client with a valid category
	rec, err := c.CreateCommand(schema.CreateCommandRequest{
		Name:     "audit",
		Command:  "audit.sh",
		Category: commands.CategorySecurity,
	})
	require.NoError(t, err)
	assert.Equal(t, commands.CategorySecurity, rec.Category)
}

func TestTokenRejectedAfterKeyChange(t *testing.T) {
	// Two mocks with different signing keys: a token from the first is
	// rejected by the second, which exercises the 401 path end to end
	ts1 := startMock(t, WithUser("alice", "hunter2"), WithJWTKey([]byte("key-one")))
	ts2 := startMock(t, WithUser("alice", "hunter2"), WithJWTKey([]byte("key-two")))

	s := session.NewMemory()
	c1, err := client.New(client.WithServerURL(ts1.URL), client.WithSession(s))
	require.NoError(t, err)

	_, err = c1.Login("alice", "hunter2")
	require.NoError(t, err)

	fired := 0
	c2, err := client.New(
		client.WithServerURL(ts2.URL),
		client.WithSession(s),
		client.WithAuthExpiredFunc(func() { fired++ }))
	require.NoError(t, err)

	_, err = c2.CurrentUser()
	require.Error(t, err)
	assert.True(t, client.IsAuthExpired(err))
	assert.Empty(t, s.Token())
	assert.Equal(t, 1, fired)
}
