package agent

import (
	"context"

	"github.com/firebase/genkit/go/ai"
)

// Reply is a canned agent response produced by a callback. A non-nil Reply
// short-circuits the model call for this turn; the runtime surfaces Text to
// the user as the turn's answer.
type Reply struct {
	Text string
}

// NewReply creates a Reply with the given display text.
func NewReply(text string) *Reply {
	return &Reply{Text: text}
}

// BeforeAgent runs before the agent executes a turn.
// A non-nil Reply becomes the turn's response without invoking the model.
//
// Implementations convert downstream failures into Reply text rather than
// returning errors; a returned error means a programming fault, not a
// user-facing condition.
type BeforeAgent func(ctx context.Context, cb *CallbackContext) (*Reply, error)

// BeforeModel runs before each model invocation and may mutate req in place.
// A non-nil Reply suppresses the model call.
type BeforeModel func(ctx context.Context, cb *CallbackContext, req *ai.ModelRequest) (*Reply, error)

// Definition is a declarative agent: model, instruction, and the callbacks
// and tools the runtime wires up by name. It carries no behavior of its own
// beyond running its callback chains in order.
type Definition struct {
	Name        string
	Description string
	Model       string // provider-qualified, e.g. "vertexai/gemini-2.5-flash"
	Instruction string

	BeforeAgent []BeforeAgent
	BeforeModel []BeforeModel
	Tools       []string // registered tool names
}

// RunBeforeAgent executes the before-agent chain in order.
// The first non-nil Reply stops the chain.
func (d *Definition) RunBeforeAgent(ctx context.Context, cb *CallbackContext) (*Reply, error) {
	for _, fn := range d.BeforeAgent {
		reply, err := fn(ctx, cb)
		if err != nil {
			return nil, err
		}
		if reply != nil {
			return reply, nil
		}
	}
	return nil, nil
}

// RunBeforeModel executes the before-model chain in order over the same
// request. The first non-nil Reply stops the chain and suppresses the
// model call.
func (d *Definition) RunBeforeModel(ctx context.Context, cb *CallbackContext, req *ai.ModelRequest) (*Reply, error) {
	for _, fn := range d.BeforeModel {
		reply, err := fn(ctx, cb, req)
		if err != nil {
			return nil, err
		}
		if reply != nil {
			return reply, nil
		}
	}
	return nil, nil
}
