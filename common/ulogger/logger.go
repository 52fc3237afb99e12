/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package ulogger implements a simple logger that writes to a file, stdout,
// or both. Log files are rotated daily and pruned after a retention period.
package ulogger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/OpsGate/OpsGate/common/interfaces"
)

// This package implements interfaces.Logger
var _ interfaces.Logger = (*OGLogger)(nil)

type OGLogger struct {
	fileHandle     *os.File
	logfile        string
	logStdout      bool
	debug          bool
	prefix         string
	retainDays     int
	currentLogDate string
}

// Option is a function that configures an OGLogger
type Option func(*OGLogger) error

// New creates a new instance of OGLogger with the provided options
func New(options ...Option) (interfaces.Logger, error) {
	u := &OGLogger{retainDays: 30}

	for _, option := range options {
		if err := option(u); err != nil {
			return nil, err
		}
	}

	return u.open()
}

// WithPrefix sets a process name or similar short identifier
func WithPrefix(prefix string) Option {
	return func(u *OGLogger) error {
		u.prefix = prefix
		return nil
	}
}

// WithLogFile sets the log file for the OGLogger
func WithLogFile(logfile string) Option {
	return func(u *OGLogger) error {
		u.logfile = logfile
		return nil
	}
}

// WithLogStdout enables or disables logging to stdout
func WithLogStdout(logStdout bool) Option {
	return func(u *OGLogger) error {
		u.logStdout = logStdout
		return nil
	}
}

// WithDebug enables or disables debug logging
func WithDebug(debug bool) Option {
	return func(u *OGLogger) error {
		u.debug = debug
		return nil
	}
}

// WithRetention sets the number of days to retain logs
func WithRetention(retainDays int) Option {
	return func(u *OGLogger) error {
		u.retainDays = retainDays
		return nil
	}
}

// open prepares the log file if one was requested and falls back to
// stdout logging if the file cannot be opened.
func (u *OGLogger) open() (*OGLogger, error) {
	var err error
	var fh *os.File

	if u.logfile == "" {
		// If no log file is specified, force stdout logging
		u.logStdout = true
		return u, nil
	}

	// Sanitize the file path
	u.logfile = filepath.Clean(u.logfile)

	// Create the directory if it doesn't exist
	dir := filepath.Dir(u.logfile)
	if err = os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Track the date of the current log file for rotation purposes
	if fileInfo, sErr := os.Stat(u.logfile); sErr == nil {
		u.currentLogDate = fileInfo.ModTime().Format("20060102")
	} else {
		u.currentLogDate = time.Now().Format("20060102")
	}

	fh, err = os.OpenFile(u.logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		u.fileHandle = nil
		// If unable to log to file, force stdout logging
		u.logStdout = true
	} else {
		u.fileHandle = fh

		// Attempt to set the file mode to 0644 on a best-effort basis
		_ = os.Chmod(u.logfile, 0644)
	}
	return u, nil
}

// Close closes the logger.
func (u *OGLogger) Close() {
	if u.fileHandle != nil {
		_ = u.fileHandle.Sync()
		_ = u.fileHandle.Close()
	}
}
