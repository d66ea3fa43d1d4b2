package docqa

import (
	"context"
	"fmt"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// matchPromptFormat embeds the verbatim user text and the enumerated
// document names. The contract with the model is strict: answer with one
// listed name or the sentinel, nothing else.
const matchPromptFormat = `The user said: "%s"
Here are the available documents:
%s

Which document is the user referring to?
- Only respond with the name of the document from the list.
- If you are not sure which document the user is referring to, respond with "UNSURE".`

// GenkitMatcher implements Matcher on a Genkit model call.
type GenkitMatcher struct {
	g     *genkit.Genkit
	model string
}

// NewGenkitMatcher creates a matcher that consults the given
// provider-qualified model.
func NewGenkitMatcher(g *genkit.Genkit, model string) (*GenkitMatcher, error) {
	if g == nil {
		return nil, fmt.Errorf("genkit instance is required")
	}
	if model == "" {
		return nil, fmt.Errorf("model name is required")
	}
	return &GenkitMatcher{g: g, model: model}, nil
}

// Match asks the model to pick one of keys for userText.
func (m *GenkitMatcher) Match(ctx context.Context, userText string, keys []string) (string, error) {
	prompt := fmt.Sprintf(matchPromptFormat, userText, bulletList(keys))

	resp, err := genkit.Generate(ctx, m.g,
		ai.WithModelName(m.model),
		ai.WithPrompt(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("generating document match: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}
