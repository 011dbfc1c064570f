package model

import (
	"context"
	"errors"
	"testing"
)

func TestMockModel_ScriptOrder(t *testing.T) {
	m := NewMockModel("test")
	m.Script("first", "second")

	for _, want := range []string{"first", "second"} {
		resp, err := m.Complete(context.Background(), Request{Prompt: "anything"})
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if resp != want {
			t.Fatalf("expected %q, got %q", want, resp)
		}
	}

	// script exhausted, echoes the prompt
	resp, err := m.Complete(context.Background(), Request{Prompt: "hello"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp != "Mock response to: hello" {
		t.Fatalf("unexpected fallback response: %q", resp)
	}
	if m.Calls() != 3 {
		t.Fatalf("expected 3 calls, got %d", m.Calls())
	}
}

func TestMockModel_CannedResponses(t *testing.T) {
	m := NewMockModel("test")
	m.AddResponse("who is next", "bala")

	resp, err := m.Complete(context.Background(), Request{Prompt: "who is next"})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp != "bala" {
		t.Fatalf("expected canned response, got %q", resp)
	}
}

func TestMockModel_FailWith(t *testing.T) {
	m := NewMockModel("test")
	wantErr := errors.New("transport down")
	m.FailWith(wantErr)

	if _, err := m.Complete(context.Background(), Request{Prompt: "x"}); !errors.Is(err, wantErr) {
		t.Fatalf("expected injected error, got %v", err)
	}
}

func TestMockModel_CancelledContext(t *testing.T) {
	m := NewMockModel("test")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := m.Complete(ctx, Request{Prompt: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if m.Calls() != 0 {
		t.Fatal("cancelled calls should not count")
	}
}

func TestMockModel_Info(t *testing.T) {
	m := NewMockModel("test")
	info := m.Info()
	if info.Name != "test" || info.Provider != "mock" {
		t.Fatalf("unexpected info: %+v", info)
	}
}
