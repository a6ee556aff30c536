// Package mcp exposes the analysis engine over the Model Context
// Protocol so AI agents can drive threat modeling through tool calls.
package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/AgileCatalystDV/ai-threat-model/internal/plugin"
)

// serverState represents the server lifecycle state
type serverState int

const (
	stateNotInitialized serverState = iota
	stateInitializing
	stateInitialized
)

// Server implements the Model Context Protocol over a plugin registry.
type Server struct {
	registry           *plugin.Registry
	state              serverState
	protocolVersion    string
	clientCapabilities map[string]interface{}
	mu                 sync.RWMutex
}

// NewServer creates a new MCP server
func NewServer(registry *plugin.Registry) *Server {
	return &Server{
		registry: registry,
		state:    stateNotInitialized,
	}
}

// setState sets the server state (thread-safe)
func (s *Server) setState(state serverState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// getState gets the server state (thread-safe)
func (s *Server) getState() serverState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// handleMessage processes one JSON-RPC message and returns the
// serialized response, or nil for notifications.
func (s *Server) handleMessage(data []byte) ([]byte, error) {
	req, err := parseRequest(data)
	if err != nil {
		resp := createErrorResponse(ErrCodeParseError, ErrMsgParseError, err.Error(), nil)
		return json.Marshal(resp)
	}

	// Notifications carry no ID and get no response
	if req.ID == nil {
		if req.Method == "notifications/initialized" {
			if s.getState() == stateInitializing {
				s.setState(stateInitialized)
			}
		}
		return nil, nil
	}

	var result interface{}
	var handlerErr error

	switch req.Method {
	case "initialize":
		result, handlerErr = handleInitialize(s, req.Params)
	case "tools/list":
		result, handlerErr = handleToolsList(s, req.Params)
	case "tools/call":
		result, handlerErr = handleToolsCall(s, req.Params)
	case "ping":
		result = map[string]interface{}{}
	default:
		resp := createErrorResponse(ErrCodeMethodNotFound, ErrMsgMethodNotFound, req.Method, req.ID)
		return json.Marshal(resp)
	}

	if handlerErr != nil {
		resp := createErrorResponse(ErrCodeInvalidParams, ErrMsgInvalidParams, handlerErr.Error(), req.ID)
		return json.Marshal(resp)
	}

	resp := createResponse(result, req.ID)
	return json.Marshal(resp)
}

// ServeStdio runs the MCP server over newline-delimited JSON-RPC
// messages until the reader is exhausted.
func (s *Server) ServeStdio(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Threat model documents can be large
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		resp, err := s.handleMessage(line)
		if err != nil {
			return fmt.Errorf("failed to handle message: %w", err)
		}
		if resp == nil {
			continue
		}

		if _, err := w.Write(append(resp, '\n')); err != nil {
			return fmt.Errorf("failed to write response: %w", err)
		}
	}

	return scanner.Err()
}
