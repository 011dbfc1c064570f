// Package model defines the reasoning collaborator boundary. Coordinators and
// persona participants issue single-shot completion requests and must treat
// any failure as recoverable: the Model interface makes no availability
// promises beyond returning an error.
package model

import (
	"context"
	"fmt"
	"sync"
)

// Request captures one completion request: fixed instructions (the system
// prompt) plus the rendered conversational prompt.
type Request struct {
	Instructions string `json:"instructions"`
	Prompt       string `json:"prompt"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the minimal interface required to drive model-driven coordination
// and persona speech. Complete blocks until the provider answers, honouring
// ctx for cancellation and timeouts.
type Model interface {
	Complete(ctx context.Context, req Request) (string, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests. It returns
// canned responses keyed by prompt, optionally a scripted response sequence,
// or a fixed error to exercise fallback paths.
type MockModel struct {
	info      Info
	mu        sync.Mutex
	responses map[string]string
	script    []string
	scriptPos int
	err       error
	calls     int
}

// NewMockModel constructs a MockModel.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for a prompt.
func (m *MockModel) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// Script queues responses returned in order regardless of prompt. Once the
// script is exhausted the mock falls back to canned / echoed responses.
func (m *MockModel) Script(responses ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, responses...)
}

// FailWith makes every subsequent Complete call return err.
func (m *MockModel) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Calls returns how many times Complete has been invoked.
func (m *MockModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Complete implements Model.
func (m *MockModel) Complete(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++

	if m.err != nil {
		return "", m.err
	}
	if m.scriptPos < len(m.script) {
		resp := m.script[m.scriptPos]
		m.scriptPos++
		return resp, nil
	}
	if resp, ok := m.responses[req.Prompt]; ok {
		return resp, nil
	}
	return fmt.Sprintf("Mock response to: %s", req.Prompt), nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
