/******************************************************************************
 * Copyright (c) 2024-2025 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/OpsGate/OpsGate/common/schema"
	"github.com/OpsGate/OpsGate/common/schema/commands"
	"github.com/OpsGate/OpsGate/common/userver"
)

// Canned scores for biometric verification, shaped like the production
// recognition services
const (
	verifyConfidence = 92.4
	verifySimilarity = 0.924
	verifyThreshold  = 0.35
)

// failureResponse provides a consistent response to failed authentication
// attempts
var failureResponse = userver.JResponse{
	HTTPCode: http.StatusUnauthorized,
	JSONData: schema.GenericResponse{
		Status:  schema.APIStatusError,
		Code:    http.StatusUnauthorized,
		Details: "authentication failed"}}

func badRequest(details string) userver.JResponse {
	return userver.JResponse{
		HTTPCode: http.StatusBadRequest,
		JSONData: schema.GenericResponse{
			Status:  schema.APIStatusError,
			Code:    http.StatusBadRequest,
			Details: details}}
}

func notFound(details string) userver.JResponse {
	return userver.JResponse{
		HTTPCode: http.StatusNotFound,
		JSONData: schema.GenericResponse{
			Status:  schema.APIStatusError,
			Code:    http.StatusNotFound,
			Details: details}}
}

// decode reads the request body into v
func decode(req *http.Request, v any) error {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// authedUser returns the user record for the authenticated request
func (s *Server) authedUser(req *http.Request) *userRecord {
	username, _ := userver.AuthDetails(req).(string)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.users[username]
}

func (s *Server) postLogin(req *http.Request) userver.JResponse {

	var loginRequest schema.LoginRequest
	if err := decode(req, &loginRequest); err != nil {
		return failureResponse
	}

	if loginRequest.Username == "" || loginRequest.Password == "" {
		return failureResponse
	}

	s.mu.Lock()
	user, exists := s.users[loginRequest.Username]
	s.mu.Unlock()
	if !exists {
		return failureResponse
	}

	if bcrypt.CompareHashAndPassword([]byte(user.hashedPass), []byte(loginRequest.Password)) != nil {
		return failureResponse
	}

	token, err := s.createToken(user.username)
	if err != nil {
		return userver.JResponse{
			HTTPCode: http.StatusInternalServerError,
			JSONData: schema.GenericResponse{
				Status:  schema.APIStatusError,
				Code:    http.StatusInternalServerError,
				Details: "token creation failed"}}
	}

	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.LoginResponse{
			AccessToken: token,
			TokenType:   "bearer"}}
}

func (s *Server) getMe(req *http.Request) userver.JResponse {
	user := s.authedUser(req)
	if user == nil {
		return failureResponse
	}

	s.mu.Lock()
	biometric := make(map[string]bool, len(user.biometric))
	for k, v := range user.biometric {
		biometric[k] = v
	}
	s.mu.Unlock()

	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.UserProfile{
			ID:        user.id,
			Username:  user.username,
			Email:     user.email,
			Biometric: biometric}}
}

func (s *Server) postLogout(_ *http.Request) userver.JResponse {
	// Tokens are stateless; sign-out is an acknowledgment
	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.GenericResponse{
			Status:  schema.APIStatusOK,
			Code:    http.StatusOK,
			Details: "signed out"}}
}

func (s *Server) postEnroll(req *http.Request) userver.JResponse {
	user := s.authedUser(req)
	if user == nil {
		return failureResponse
	}

	var enrollRequest schema.BiometricRequest
	if err := decode(req, &enrollRequest); err != nil {
		return badRequest("invalid request body")
	}
	if enrollRequest.BiometricType == "" {
		return badRequest("biometric_type is required")
	}

	s.mu.Lock()
	user.enrolled[enrollRequest.BiometricType] = enrollRequest.EnrollmentData
	user.biometric[enrollRequest.BiometricType] = true
	s.mu.Unlock()

	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.EnrollResponse{
			Success:       true,
			BiometricType: enrollRequest.BiometricType,
			Details:       "enrollment stored"}}
}

func (s *Server) postVerify(req *http.Request) userver.JResponse {
	user := s.authedUser(req)
	if user == nil {
		return failureResponse
	}

	var verifyRequest schema.BiometricRequest
	if err := decode(req, &verifyRequest); err != nil {
		return badRequest("invalid request body")
	}
	if verifyRequest.BiometricType == "" {
		return badRequest("biometric_type is required")
	}

	s.mu.Lock()
	_, enrolled := user.enrolled[verifyRequest.BiometricType]
	s.mu.Unlock()

	resp := schema.VerifyResponse{
		BiometricType: verifyRequest.BiometricType,
		Threshold:     verifyThreshold,
	}
	if enrolled {
		resp.Success = true
		resp.Confidence = verifyConfidence
		resp.Similarity = verifySimilarity
	}

	return userver.JResponse{HTTPCode: http.StatusOK, JSONData: resp}
}

func (s *Server) putToggle(req *http.Request) userver.JResponse {
	user := s.authedUser(req)
	if user == nil {
		return failureResponse
	}

	var toggleRequest schema.ToggleRequest
	if err := decode(req, &toggleRequest); err != nil {
		return badRequest("invalid request body")
	}
	if toggleRequest.BiometricType == "" {
		return badRequest("biometric_type is required")
	}

	s.mu.Lock()
	user.biometric[toggleRequest.BiometricType] = toggleRequest.Enabled
	s.mu.Unlock()

	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.ToggleResponse{
			BiometricType: toggleRequest.BiometricType,
			Enabled:       toggleRequest.Enabled}}
}

func (s *Server) getCommands(_ *http.Request) userver.JResponse {
	s.mu.Lock()
	list := make([]schema.CommandRecord, len(s.commands))
	copy(list, s.commands)
	s.mu.Unlock()

	return userver.JResponse{HTTPCode: http.StatusOK, JSONData: list}
}

func (s *Server) postCommands(req *http.Request) userver.JResponse {

	var createRequest schema.CreateCommandRequest
	if err := decode(req, &createRequest); err != nil {
		return badRequest("invalid request body")
	}

	if err := commands.Validate(createRequest); err != nil {
		return badRequest(err.Error())
	}

	// Unless specified, new commands are enabled
	enabled := true
	if createRequest.IsEnabled != nil {
		enabled = *createRequest.IsEnabled
	}

	s.mu.Lock()
	rec := schema.CommandRecord{
		ID:          s.nextID,
		Name:        createRequest.Name,
		Description: createRequest.Description,
		Command:     createRequest.Command,
		Category:    createRequest.Category,
		IsEnabled:   enabled,
		CreatedAt:   time.Now().UTC(),
	}
	s.nextID++
	s.commands = append(s.commands, rec)
	s.mu.Unlock()

	return userver.JResponse{HTTPCode: http.StatusCreated, JSONData: rec}
}

func (s *Server) postExecute(req *http.Request) userver.JResponse {

	var executeRequest schema.ExecuteCommandRequest
	if err := decode(req, &executeRequest); err != nil {
		return badRequest("invalid request body")
	}

	s.mu.Lock()
	var found *schema.CommandRecord
	for i := range s.commands {
		if s.commands[i].ID == executeRequest.CommandID {
			found = &s.commands[i]
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		return notFound("command not found")
	}
	if !found.IsEnabled {
		return badRequest("command is disabled")
	}

	// The mock does not run anything; it fabricates a plausible result
	return userver.JResponse{
		HTTPCode: http.StatusOK,
		JSONData: schema.ExecuteResponse{
			Success:     true,
			ExecutionID: "E-" + uuid.New().String(),
			Stdout:      "executed: " + found.Command + "\n",
			ExitCode:    0}}
}
