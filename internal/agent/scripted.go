package agent

import (
	"context"
	"iter"
	"math/rand/v2"
	"time"

	"github.com/shopfloor/chatgate/internal/domain"
)

// scriptedResponses is the canned response pool for the built-in agent.
var scriptedResponses = []string{
	"Thank you for your message! How can I assist you today?",
	"I'd be happy to help you find the perfect product. What are you looking for?",
	"Let me check our inventory for you. One moment please...",
	"Great question! Based on your preferences, I recommend...",
}

// ScriptedAgent is an in-process stand-in for the real sales agent
// service. It emits a fixed thinking/tool_call preamble and one canned
// assistant response, which is enough to exercise the full streaming
// protocol without a model behind it.
type ScriptedAgent struct {
	// Delay is inserted before each event to simulate agent latency.
	Delay time.Duration
}

// NewScriptedAgent creates a scripted agent with no artificial latency.
func NewScriptedAgent() *ScriptedAgent {
	return &ScriptedAgent{}
}

// Invoke emits thinking, tool_call, then a terminal assistant event.
func (a *ScriptedAgent) Invoke(ctx context.Context, req Request) iter.Seq2[*Event, error] {
	return func(yield func(*Event, error) bool) {
		steps := []*Event{
			{Role: domain.RoleThinking, Content: "Processing your request..."},
			{Role: domain.RoleToolCall, Content: "Searching product database...", Tool: "product_search"},
			{Role: domain.RoleAssistant, Content: scriptedResponses[rand.IntN(len(scriptedResponses))]},
		}

		for _, ev := range steps {
			if a.Delay > 0 {
				select {
				case <-time.After(a.Delay):
				case <-ctx.Done():
					yield(nil, ctx.Err())
					return
				}
			}
			if ctx.Err() != nil {
				yield(nil, ctx.Err())
				return
			}
			if !yield(ev, nil) {
				return
			}
		}
	}
}

// Close releases resources. The scripted agent holds none.
func (a *ScriptedAgent) Close() {}

var _ Agent = (*ScriptedAgent)(nil)
