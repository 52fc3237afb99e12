/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package login builds the API client used by the CLI and obtains a
// session when the credential store does not already hold a usable token.
package login

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/OpsGate/OpsGate/cli/credentials"
	"github.com/OpsGate/OpsGate/client"
)

const (
	EnvUser = "OPSGATE_USER"
	EnvPass = "OPSGATE_PASS"
)

// Connect returns a client with a valid session, logging in if the stored
// token is missing or expired. It does its own error handling to avoid a
// lot of duplication.
func Connect() *client.Client {
	c, store := buildClient()

	// If the stored token exists and has not expired, use it
	if store.Token() != "" {
		expiry, err := c.TokenExpiry()
		if err == nil && (expiry.IsZero() || expiry.After(time.Now())) {
			return c
		}
		store.Clear()
	}

	doLogin(c)
	return c
}

// ConnectFresh discards any stored session and authenticates again
func ConnectFresh() *client.Client {
	c, store := buildClient()
	store.Clear()
	doLogin(c)
	return c
}

// Stored returns a client bound to the credential store without triggering
// a login. ok is false when no token is stored.
func Stored() (*client.Client, bool) {
	c, store := buildClient()
	return c, store.Token() != ""
}

// buildClient loads the environment, opens the credential store, and
// constructs the client. The server URL comes from OPSGATE_SERVER, which
// the .opsgate file may provide.
func buildClient() (*client.Client, *credentials.Store) {

	homeDir, err := os.UserHomeDir()
	if err != nil {
		fatal(err)
	}
	_ = godotenv.Load(filepath.Join(homeDir, ".opsgate"))

	path, err := credentials.DefaultPath()
	if err != nil {
		fatal(err)
	}

	store, err := credentials.Open(path)
	if err != nil {
		fatal(err)
	}

	c, err := client.New(
		client.WithSession(store),
		client.WithAuthExpiredFunc(func() {
			fmt.Println("Session expired, please log in again")
		}))
	if err != nil {
		fatal(err)
	}
	return c, store
}

// doLogin obtains credentials from the environment or the terminal and
// authenticates
func doLogin(c *client.Client) {

	user := os.Getenv(EnvUser)
	pass := os.Getenv(EnvPass)

	if user == "" {
		user = promptUser()
	}
	if pass == "" {
		pass = promptPassword()
	}

	if user == "" || pass == "" {
		fatal(errors.New("username and password are required"))
	}

	_, err := c.Login(user, pass)
	if err != nil {
		fatal(fmt.Errorf("login failed: %w", err))
	}
}

func promptUser() string {
	fmt.Print("Username: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func promptPassword() string {
	fmt.Print("Password: ")
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println("")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(pass))
}

func fatal(err error) {
	fmt.Printf("Error: %s\n\n", err.Error())
	os.Exit(1)
}
