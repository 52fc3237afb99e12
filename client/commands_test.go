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
	"github.com/OpsGate/OpsGate/common/schema/commands"
)

func TestCommandsRoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, schema.EndpointCommands, r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"x","command":"true","category":"build","is_enabled":true}]`))
	}))
	defer ts.Close()

	c, err := New(WithServerURL(ts.URL))
	require.NoError(t, err)

	list, err := c.Commands()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, "x", list[0].Name)
	assert.Equal(t, commands.CategoryBuild, list[0].Category)
	assert.True(t, list[0].IsEnabled)
}

func TestCreateCommandValidatesCategory(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	c, err := New(WithServerURL(ts.URL))
	require.NoError(t, err)

	_, err = c.CreateCommand(schema.CreateCommandRequest{
		Name:     "bad",
		Command:  "rm -rf /",
		Category: "destruction",
	})
	require.Error(t, err)
	assert.False(t, called, "invalid requests must be rejected before any network call")
}

func TestCreateCommandForwardsRequestUnchanged(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, schema.EndpointCommands, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"name":"deploy-web","command":"make deploy","category":"deploy","is_enabled":true}`))
	}))
	defer ts.Close()

	c, err := New(WithServerURL(ts.URL))
	require.NoError(t, err)

	enabled := true
	rec, err := c.CreateCommand(schema.CreateCommandRequest{
		Name:        "deploy-web",
		Description: "deploy the web tier",
		Command:     "make deploy",
		Category:    commands.CategoryDeploy,
		IsEnabled:   &enabled,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), rec.ID)

	assert.Equal(t, "deploy-web", got["name"])
	assert.Equal(t, "deploy the web tier", got["description"])
	assert.Equal(t, "make deploy", got["command"])
	assert.Equal(t, "deploy", got["category"])
	assert.Equal(t, true, got["is_enabled"])
}

func TestCreateCommandOmitsUnsetEnabledFlag(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":8,"name":"scan","command":"scan.sh","category":"security","is_enabled":true}`))
	}))
	defer ts.Close()

	c, err := New(WithServerURL(ts.URL))
	require.NoError(t, err)

	_, err = c.CreateCommand(schema.CreateCommandRequest{
		Name:     "scan",
		Command:  "scan.sh",
		Category: commands.CategorySecurity,
	})
	require.NoError(t, err)

	// The default is left to the backend
	_, present := got["is_enabled"]
	assert.False(t, present)
}

func TestExecuteCommand(t *testing.T) {
	var got map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, schema.EndpointCommandExecute, r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"execution_id":"E-1","stdout":"done\n","exit_code":0}`))
	}))
	defer ts.Close()

	c, err := New(WithServerURL(ts.URL))
	require.NoError(t, err)

	resp, err := c.ExecuteCommand(42)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"command_id": float64(42)}, got)
	assert.True(t, resp.Success)
	assert.Equal(t, "E-1", resp.ExecutionID)
	assert.Equal(t, "done\n", resp.Stdout)
	assert.Equal(t, 0, resp.ExitCode)
}
