package docqa

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Sentinel is the fixed string the matching model is instructed to return
// when it cannot pick a document with confidence.
const Sentinel = "UNSURE"

// SelectionKind tags the outcome of matching user text against the stored
// document keys.
type SelectionKind int

const (
	// SelectionNone means there was nothing to resolve (empty user text).
	SelectionNone SelectionKind = iota
	// SelectionNoArtifacts means no documents are stored for the session.
	SelectionNoArtifacts
	// SelectionResolved means exactly one stored document was identified.
	SelectionResolved
	// SelectionUnsure means the model declined to pick, or answered with a
	// string outside the key set. Model output is untrusted input; anything
	// unrecognized lands here rather than being treated as a match.
	SelectionUnsure
)

// Selection is the result of one resolution attempt. It is computed fresh
// per turn and never persisted.
type Selection struct {
	Kind       SelectionKind
	Key        string   // set when Kind == SelectionResolved
	Candidates []string // full key list when Kind == SelectionUnsure or SelectionNoArtifacts
}

// Matcher decides which stored document the user's text refers to.
// Implementations return either one of keys verbatim or Sentinel.
type Matcher interface {
	Match(ctx context.Context, userText string, keys []string) (string, error)
}

// Select matches userText against keys. The matching model is consulted
// only when there is both text and at least one stored key; the returned
// answer is compared by exact string equality against Sentinel and the key
// set, never fuzzily.
func (d *DocQA) Select(ctx context.Context, userText string, keys []string) (Selection, error) {
	if strings.TrimSpace(userText) == "" {
		return Selection{Kind: SelectionNone}, nil
	}
	if len(keys) == 0 {
		return Selection{Kind: SelectionNoArtifacts, Candidates: keys}, nil
	}

	answer, err := d.matcher.Match(ctx, userText, keys)
	if err != nil {
		return Selection{}, fmt.Errorf("matching document: %w", err)
	}

	answer = strings.TrimSpace(answer)
	if answer == Sentinel {
		return Selection{Kind: SelectionUnsure, Candidates: keys}, nil
	}
	if slices.Contains(keys, answer) {
		return Selection{Kind: SelectionResolved, Key: answer}, nil
	}
	// The model returned something that is not a stored document.
	return Selection{Kind: SelectionUnsure, Candidates: keys}, nil
}
