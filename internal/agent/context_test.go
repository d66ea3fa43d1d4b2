package agent

import (
	"context"
	"testing"

	"github.com/firebase/genkit/go/ai"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTurnRoundTrip(t *testing.T) {
	t.Parallel()

	cb := &CallbackContext{
		SessionID:   uuid.New(),
		UserContent: ai.NewUserMessage(ai.NewTextPart("hello")),
	}

	ctx := WithTurn(context.Background(), cb)
	got := TurnFrom(ctx)
	assert.Same(t, cb, got)
	assert.Equal(t, "hello", got.UserText())
}

func TestTurnFrom_MissingTurn(t *testing.T) {
	t.Parallel()

	got := TurnFrom(context.Background())
	assert.NotNil(t, got, "tools must never nil-check the turn")
	assert.Equal(t, uuid.Nil, got.SessionID)
	assert.Empty(t, got.UserText())
}
