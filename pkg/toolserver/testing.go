package toolserver

import (
	"context"
	"fmt"
	"sync"
)

// ScriptedClient is an in-memory Client for tests. Tool names map to fixed
// results or errors; unscripted names fail. Calls are recorded in order.
type ScriptedClient struct {
	mu      sync.Mutex
	results map[string]string
	errors  map[string]error
	calls   []ScriptedCall
}

// ScriptedCall records one CallTool invocation
type ScriptedCall struct {
	Name string
	Args map[string]interface{}
}

// NewScriptedClient creates an empty scripted client
func NewScriptedClient() *ScriptedClient {
	return &ScriptedClient{
		results: make(map[string]string),
		errors:  make(map[string]error),
	}
}

// Script sets the result returned for a tool name
func (s *ScriptedClient) Script(name, result string) *ScriptedClient {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[name] = result
	return s
}

// ScriptError sets the error returned for a tool name
func (s *ScriptedClient) ScriptError(name string, err error) *ScriptedClient {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors[name] = err
	return s
}

// Calls returns the recorded invocations in order
func (s *ScriptedClient) Calls() []ScriptedCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	calls := make([]ScriptedCall, len(s.calls))
	copy(calls, s.calls)
	return calls
}

func (s *ScriptedClient) CallTool(_ context.Context, name string, args map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, ScriptedCall{Name: name, Args: args})

	if err, ok := s.errors[name]; ok {
		return "", err
	}
	if result, ok := s.results[name]; ok {
		return result, nil
	}
	return "", fmt.Errorf("tool %s not scripted", name)
}

func (s *ScriptedClient) Close() error {
	return nil
}
