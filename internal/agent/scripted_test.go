package agent

import (
	"context"
	"testing"
	"time"

	"github.com/shopfloor/chatgate/internal/domain"
)

func TestScriptedAgent_EventSequence(t *testing.T) {
	ag := NewScriptedAgent()
	req := Request{Message: "hello", SessionID: "sess-1", UserID: "user-1"}

	var roles []domain.MessageRole
	for ev, err := range ag.Invoke(context.Background(), req) {
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		roles = append(roles, ev.Role)
	}

	want := []domain.MessageRole{domain.RoleThinking, domain.RoleToolCall, domain.RoleAssistant}
	if len(roles) != len(want) {
		t.Fatalf("Expected %d events, got %d (%v)", len(want), len(roles), roles)
	}
	for i, role := range want {
		if roles[i] != role {
			t.Errorf("Event %d: expected %s, got %s", i, role, roles[i])
		}
	}
}

func TestScriptedAgent_AssistantIsTerminal(t *testing.T) {
	ag := NewScriptedAgent()

	var last *Event
	for ev, err := range ag.Invoke(context.Background(), Request{Message: "hi"}) {
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		last = ev
	}

	if last == nil || last.Role != domain.RoleAssistant {
		t.Errorf("Expected stream to end with assistant event, got %+v", last)
	}
	if last != nil && last.Content == "" {
		t.Error("Expected non-empty assistant content")
	}
}

func TestScriptedAgent_ToolCallNamesTool(t *testing.T) {
	ag := NewScriptedAgent()

	for ev, err := range ag.Invoke(context.Background(), Request{Message: "hi"}) {
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if ev.Role == domain.RoleToolCall && ev.Tool != "product_search" {
			t.Errorf("Expected tool product_search, got %q", ev.Tool)
		}
	}
}

func TestScriptedAgent_ContextCancellation(t *testing.T) {
	ag := NewScriptedAgent()
	ag.Delay = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var sawErr bool
	for ev, err := range ag.Invoke(ctx, Request{Message: "hi"}) {
		if err != nil {
			sawErr = true
			break
		}
		if ev.Role == domain.RoleAssistant {
			t.Error("Expected cancellation before the assistant event")
		}
	}
	if !sawErr {
		t.Error("Expected a context error from a cancelled invocation")
	}
}

func TestScriptedAgent_ConsumerAbandon(t *testing.T) {
	ag := NewScriptedAgent()

	count := 0
	for _, err := range ag.Invoke(context.Background(), Request{Message: "hi"}) {
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		count++
		break
	}
	if count != 1 {
		t.Errorf("Expected iteration to stop after break, got %d events", count)
	}
}
