package agent

import (
	"context"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/google/uuid"
)

// CallbackContext carries the turn state the runtime exposes to callbacks:
// the session identity and the user's inbound message for this turn.
type CallbackContext struct {
	// SessionID scopes artifact storage.
	SessionID uuid.UUID

	// UserContent is the inbound user message, nil when the turn has no
	// user content (e.g. a resumed tool loop).
	UserContent *ai.Message
}

// UserText returns the text of the user's message, trimmed of surrounding
// whitespace. Returns "" when there is no user content or no text part.
func (cb *CallbackContext) UserText() string {
	if cb == nil || cb.UserContent == nil {
		return ""
	}
	for _, part := range cb.UserContent.Content {
		if part.IsText() {
			return strings.TrimSpace(part.Text)
		}
	}
	return ""
}

type turnKey struct{}

// WithTurn attaches the turn's CallbackContext to ctx so tool handlers,
// which only receive a context.Context, can read the session and user
// message of the turn that invoked them.
func WithTurn(ctx context.Context, cb *CallbackContext) context.Context {
	return context.WithValue(ctx, turnKey{}, cb)
}

// TurnFrom extracts the turn's CallbackContext from ctx. Returns an empty
// CallbackContext when none is attached, so callers never nil-check.
func TurnFrom(ctx context.Context) *CallbackContext {
	if cb, ok := ctx.Value(turnKey{}).(*CallbackContext); ok && cb != nil {
		return cb
	}
	return &CallbackContext{}
}

// TailMessage returns the last message of the outbound request, the
// conventional append point for contextual augmentation. Returns nil when
// the request has no messages yet.
func TailMessage(req *ai.ModelRequest) *ai.Message {
	if req == nil || len(req.Messages) == 0 {
		return nil
	}
	return req.Messages[len(req.Messages)-1]
}
