// Package docqa implements the document question-answering agent.
//
// The agent itself is declarative: a model, an instruction, and three
// callbacks. SaveDocuments captures uploads before the turn runs;
// AnnounceDocuments and ResolveDocument shape the outbound model request,
// in that order, both appending to the request's trailing message. Either
// may short-circuit the model call with a canned reply.
//
// Every downstream failure inside a callback is converted into reply text.
// A conversation turn never dies on a store or model error.
package docqa

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/firebase/genkit/go/ai"

	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/agent"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/artifact"
)

// Agent name and description constants
const (
	// Name is the unique identifier for the document QnA agent.
	Name = "document_agent"

	// Description describes the agent's capabilities.
	Description = "An agent that can answer questions about a document."

	// Instruction is the agent's system instruction.
	Instruction = `You are a helpful assistant that can answer questions about one or more documents.
- If the user asks a question and there is only one document, answer the question based on that document.
- If the user asks a question and there are multiple documents, first ask the user to clarify which document they are referring to.
- The list of available documents is provided below.`

	// uploadFirstMessage asks the user for a document when none are stored.
	uploadFirstMessage = "Please upload a document before asking a question."

	// fallbackUploadName is used when an uploaded part carries no display name.
	fallbackUploadName = "uploaded_file"
)

// DocQA holds the dependencies of the document agent's callbacks.
type DocQA struct {
	store   artifact.Store
	matcher Matcher
	logger  *slog.Logger
}

// New creates the document QnA agent's callback set.
func New(store artifact.Store, matcher Matcher, logger *slog.Logger) (*DocQA, error) {
	if store == nil {
		return nil, fmt.Errorf("artifact store is required")
	}
	if matcher == nil {
		return nil, fmt.Errorf("matcher is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DocQA{store: store, matcher: matcher, logger: logger}, nil
}

// Definition returns the declarative agent registration.
// AnnounceDocuments must precede ResolveDocument: both append to the same
// trailing message and the document list has to land first.
func (d *DocQA) Definition(model string) *agent.Definition {
	return &agent.Definition{
		Name:        Name,
		Description: Description,
		Model:       model,
		Instruction: Instruction,
		BeforeAgent: []agent.BeforeAgent{d.SaveDocuments},
		BeforeModel: []agent.BeforeModel{d.AnnounceDocuments, d.ResolveDocument},
	}
}

// SaveDocuments persists a file uploaded with the current turn as an
// artifact under its display name and confirms the save to the user.
// Turns without an upload pass through untouched.
func (d *DocQA) SaveDocuments(ctx context.Context, cb *agent.CallbackContext) (*agent.Reply, error) {
	part := agent.LastMediaPart(cb.UserContent)
	if part == nil {
		return nil, nil
	}

	name := displayName(part)
	mimeType, data, err := agent.DataFromPart(part)
	if err != nil {
		return agent.NewReply(fmt.Sprintf("Sorry, I could not read the uploaded file: %v", err)), nil
	}

	if _, err := d.store.Save(ctx, cb.SessionID, name, mimeType, data); err != nil {
		return agent.NewReply(fmt.Sprintf("Sorry, I could not save '%s': %v", name, err)), nil
	}

	d.logger.Debug("saved uploaded document", "session_id", cb.SessionID, "name", name, "bytes", len(data))
	return agent.NewReply(fmt.Sprintf("I have saved '%s'.", name)), nil
}

// AnnounceDocuments appends the list of stored documents to the trailing
// message of the outbound request so the model can reference them. With
// nothing stored it short-circuits the model call and asks for an upload.
func (d *DocQA) AnnounceDocuments(ctx context.Context, cb *agent.CallbackContext, req *ai.ModelRequest) (*agent.Reply, error) {
	keys, err := d.store.List(ctx, cb.SessionID)
	if err != nil {
		return agent.NewReply(fmt.Sprintf("Sorry, I could not list your documents: %v", err)), nil
	}

	if len(keys) == 0 {
		return agent.NewReply(uploadFirstMessage), nil
	}

	if tail := agent.TailMessage(req); tail != nil {
		tail.Content = append(tail.Content, ai.NewTextPart("Available documents:\n"+bulletList(keys)))
	}
	return nil, nil
}

// ResolveDocument determines which stored document the user's question
// refers to and splices its content into the outbound request. It runs
// after AnnounceDocuments; resolved content follows the announcement text
// in the trailing message.
func (d *DocQA) ResolveDocument(ctx context.Context, cb *agent.CallbackContext, req *ai.ModelRequest) (*agent.Reply, error) {
	userText := cb.UserText()
	if userText == "" {
		return nil, nil
	}

	keys, err := d.store.List(ctx, cb.SessionID)
	if err != nil {
		return agent.NewReply(fmt.Sprintf("Sorry, I could not list your documents: %v", err)), nil
	}

	sel, err := d.Select(ctx, userText, keys)
	if err != nil {
		return agent.NewReply(fmt.Sprintf("Sorry, I could not match your question to a document: %v", err)), nil
	}

	switch sel.Kind {
	case SelectionNone, SelectionNoArtifacts:
		// Nothing to splice; AnnounceDocuments already asked for an upload
		// when the store is empty.
		return nil, nil

	case SelectionUnsure:
		return agent.NewReply(clarifyMessage(sel.Candidates)), nil

	case SelectionResolved:
		art, err := d.store.Load(ctx, cb.SessionID, sel.Key)
		if err != nil {
			return agent.NewReply(fmt.Sprintf("Sorry, I could not read '%s': %v", sel.Key, err)), nil
		}

		docPart := agent.NewDataPart(art.MIMEType, art.Data)
		if tail := agent.TailMessage(req); tail != nil {
			tail.Content = append(tail.Content, docPart)
		} else {
			req.Messages = append(req.Messages, ai.NewUserMessage(ai.NewTextPart(userText), docPart))
		}

		d.logger.Debug("resolved document", "session_id", cb.SessionID, "key", sel.Key, "version", art.Version)
		return nil, nil
	}
	return nil, nil
}

// clarifyMessage asks the user to disambiguate, listing every candidate.
func clarifyMessage(keys []string) string {
	return "I'm not sure which document you are referring to. Please clarify. Here are the available documents:\n" +
		bulletList(keys)
}

// bulletList formats keys as a markdown bullet list.
func bulletList(keys []string) string {
	lines := make([]string, len(keys))
	for i, key := range keys {
		lines[i] = "- " + key
	}
	return strings.Join(lines, "\n")
}

// displayName returns the upload's declared name, falling back to a fixed
// name when the part carries none.
func displayName(part *ai.Part) string {
	if part.Metadata != nil {
		if name, ok := part.Metadata["display_name"].(string); ok && name != "" {
			return name
		}
	}
	return fallbackUploadName
}
