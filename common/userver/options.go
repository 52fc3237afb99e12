/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package userver

import (
	"errors"

	"github.com/OpsGate/OpsGate/common/interfaces"
)

// WithListen sets the listen address (e.g. "127.0.0.1:8000")
func WithListen(listen string) func(*HServer) error {
	return func(s *HServer) error {
		if listen == "" {
			return errors.New("listen address is empty")
		}
		s.Listen = listen
		return nil
	}
}

// WithHTTPTimeout sets the read/write timeout in seconds
func WithHTTPTimeout(seconds int) func(*HServer) error {
	return func(s *HServer) error {
		if seconds < 1 {
			return errors.New("HTTP timeout must be at least 1 second")
		}
		s.HTTPTimeout = seconds
		return nil
	}
}

// WithHandlerTimeout sets the per-handler timeout in seconds
func WithHandlerTimeout(seconds int) func(*HServer) error {
	return func(s *HServer) error {
		if seconds < 1 {
			return errors.New("handler timeout must be at least 1 second")
		}
		s.HandlerTimeout = seconds
		return nil
	}
}

// WithMaxConcurrent limits concurrent connections; 0 disables the limit
func WithMaxConcurrent(n int) func(*HServer) error {
	return func(s *HServer) error {
		if n < 0 {
			return errors.New("max concurrent must not be negative")
		}
		s.MaxConcurrent = n
		return nil
	}
}

// WithPenaltyBox sets the delay range in milliseconds imposed on failed
// authentication and unknown routes
func WithPenaltyBox(minMs int, maxMs int) func(*HServer) error {
	return func(s *HServer) error {
		if minMs < 0 || maxMs < 0 || minMs > maxMs {
			return errors.New("invalid penalty box range")
		}
		s.PenaltyBoxMin = minMs
		s.PenaltyBoxMax = maxMs
		return nil
	}
}

// WithLogger sets the logger; without it a ulogger writing to stdout is
// created on first use
func WithLogger(logger interfaces.Logger) func(*HServer) error {
	return func(s *HServer) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		s.Logger = logger
		return nil
	}
}

// WithLogFile sets the log file used when no logger is supplied
func WithLogFile(logFile string) func(*HServer) error {
	return func(s *HServer) error {
		s.LogFile = logFile
		return nil
	}
}

// WithHealthHandler enables or disables the built-in /health route
func WithHealthHandler(enabled bool) func(*HServer) error {
	return func(s *HServer) error {
		s.HealthHandler = enabled
		return nil
	}
}

// WithDebug enables debug logging
func WithDebug(debug bool) func(*HServer) error {
	return func(s *HServer) error {
		s.Debug = debug
		return nil
	}
}

// WithAuthFunc sets the authentication callback used for the not found and
// method not allowed handlers
func WithAuthFunc(f AuthFunc) func(*HServer) error {
	return func(s *HServer) error {
		s.AuthFunc = f
		return nil
	}
}
