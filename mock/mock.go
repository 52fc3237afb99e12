/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package mock implements an in-process stand-in for the OpsGate backend.
// It exists for integration tests and frontend development; it is not the
// production service. Credentials are bcrypt-checked against seeded users,
// tokens are real HS256 JWTs, and biometric verification returns canned
// scores shaped like the production recognition services.
package mock

import (
	"errors"
	"net/http"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/OpsGate/OpsGate/common/interfaces"
	"github.com/OpsGate/OpsGate/common/null"
	"github.com/OpsGate/OpsGate/common/schema"
	"github.com/OpsGate/OpsGate/common/userver"
)

type Server struct {
	mu       sync.Mutex
	users    map[string]*userRecord
	commands []schema.CommandRecord
	nextID   int64
	jwtKey   []byte
	listen   string
	logger   interfaces.Logger
	hs       *userver.HServer
}

type userRecord struct {
	id         int64
	username   string
	email      string
	hashedPass string
	biometric  map[string]bool   // modality -> enabled
	enrolled   map[string]string // modality -> stored enrollment payload
}

// New returns a mock backend with default values and options applied
func New(options ...func(*Server) error) (*Server, error) {
	s := &Server{
		users:  make(map[string]*userRecord),
		nextID: 1,
		jwtKey: []byte("opsgate-mock-key"),
		listen: "127.0.0.1:8000",
		logger: null.Logger(),
	}

	for _, option := range options {
		err := option(s)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// WithUser seeds a user the mock will authenticate
func WithUser(username string, password string) func(*Server) error {
	return func(s *Server) error {
		if username == "" || password == "" {
			return errors.New("username and password are required")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		s.users[username] = &userRecord{
			id:         int64(len(s.users) + 1),
			username:   username,
			email:      username + "@example.com",
			hashedPass: string(hash),
			biometric:  make(map[string]bool),
			enrolled:   make(map[string]string),
		}
		return nil
	}
}

// WithCommand seeds a registered command
func WithCommand(rec schema.CommandRecord) func(*Server) error {
	return func(s *Server) error {
		if rec.ID == 0 {
			rec.ID = s.nextID
		}
		if rec.ID >= s.nextID {
			s.nextID = rec.ID + 1
		}
		s.commands = append(s.commands, rec)
		return nil
	}
}

// WithJWTKey replaces the signing key for issued tokens
func WithJWTKey(key []byte) func(*Server) error {
	return func(s *Server) error {
		if len(key) == 0 {
			return errors.New("jwt key is empty")
		}
		s.jwtKey = key
		return nil
	}
}

// WithListen sets the listen address used by Start
func WithListen(listen string) func(*Server) error {
	return func(s *Server) error {
		if listen == "" {
			return errors.New("listen address is empty")
		}
		s.listen = listen
		return nil
	}
}

// WithLogger sets the logger for the mock and its HTTP server
func WithLogger(logger interfaces.Logger) func(*Server) error {
	return func(s *Server) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		s.logger = logger
		return nil
	}
}

// routes builds the userver route table for the backend contract
func (s *Server) routes() userver.Routes {
	return userver.Routes{
		{Name: "login", Methods: []string{"POST"}, Pattern: schema.EndpointLogin, JHandler: s.postLogin},
		{Name: "me", Methods: []string{"GET"}, Pattern: schema.EndpointMe, JHandler: s.getMe, AuthFunc: s.authFunc},
		{Name: "logout", Methods: []string{"POST"}, Pattern: schema.EndpointLogout, JHandler: s.postLogout, AuthFunc: s.authFunc},
		{Name: "enroll", Methods: []string{"POST"}, Pattern: schema.EndpointEnroll, JHandler: s.postEnroll, AuthFunc: s.authFunc},
		{Name: "verify", Methods: []string{"POST"}, Pattern: schema.EndpointVerify, JHandler: s.postVerify, AuthFunc: s.authFunc},
		{Name: "toggle", Methods: []string{"PUT"}, Pattern: schema.EndpointToggle, JHandler: s.putToggle, AuthFunc: s.authFunc},
		{Name: "commands", Methods: []string{"GET"}, Pattern: schema.EndpointCommands, JHandler: s.getCommands, AuthFunc: s.authFunc},
		{Name: "commandCreate", Methods: []string{"POST"}, Pattern: schema.EndpointCommands, JHandler: s.postCommands, AuthFunc: s.authFunc},
		{Name: "commandExecute", Methods: []string{"POST"}, Pattern: schema.EndpointCommandExecute, JHandler: s.postExecute, AuthFunc: s.authFunc},
	}
}

// Handler returns the mock mounted on a router, for use with httptest
func (s *Server) Handler() (http.Handler, error) {
	hs, err := s.buildServer()
	if err != nil {
		return nil, err
	}
	return hs.Handler()
}

// Start serves the mock on the configured listen address
func (s *Server) Start() error {
	hs, err := s.buildServer()
	if err != nil {
		return err
	}
	s.hs = hs
	return hs.Start()
}

// Stop shuts down a mock started with Start
func (s *Server) Stop() error {
	if s.hs == nil {
		return errors.New("server is not running")
	}
	return s.hs.Stop()
}

func (s *Server) buildServer() (*userver.HServer, error) {
	hs, err := userver.New(
		userver.WithListen(s.listen),
		userver.WithLogger(s.logger),
		userver.WithPenaltyBox(0, 0))
	if err != nil {
		return nil, err
	}
	hs.AddRoutes(s.routes())
	return hs, nil
}
