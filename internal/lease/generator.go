// Package lease synthesizes land lease agreements in batch: a flash-class
// model invents a tenant, a pro-class model writes the agreement, and each
// document is rendered to PDF and uploaded to Cloud Storage.
package lease

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"google.golang.org/genai"
)

// FallbackTenantName stands in when name generation fails; the batch keeps
// going with it rather than skipping the document.
const FallbackTenantName = "Default Tenant Inc."

// Sampling parameters for agreement generation.
const (
	agreementTemperature float32 = 0.8
	agreementTopK        float32 = 40
	agreementTopP        float32 = 0.8
)

// textGenerator is the single model call the generator depends on.
// Satisfied by genkitText in production and by fakes in tests.
type textGenerator interface {
	generateText(ctx context.Context, model, prompt string, cfg *genai.GenerateContentConfig) (string, error)
}

type genkitText struct {
	g *genkit.Genkit
}

func (gt genkitText) generateText(ctx context.Context, model, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	opts := []ai.GenerateOption{
		ai.WithModelName(model),
		ai.WithPrompt(prompt),
	}
	if cfg != nil {
		opts = append(opts, ai.WithConfig(cfg))
	}
	resp, err := genkit.Generate(ctx, gt.g, opts...)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// Generator produces tenant names and agreement bodies. Model failures
// never escape: both methods degrade to fixed fallback text so a batch run
// always has something to render.
type Generator struct {
	text       textGenerator
	nameModel  string
	leaseModel string
	logger     *slog.Logger
}

// NewGenerator wires the generator to genkit. nameModel and leaseModel are
// provider-qualified model names; logger may be nil.
func NewGenerator(g *genkit.Genkit, nameModel, leaseModel string, logger *slog.Logger) (*Generator, error) {
	if g == nil {
		return nil, fmt.Errorf("lease: genkit instance is required")
	}
	return newGenerator(genkitText{g: g}, nameModel, leaseModel, logger)
}

func newGenerator(text textGenerator, nameModel, leaseModel string, logger *slog.Logger) (*Generator, error) {
	if nameModel == "" || leaseModel == "" {
		return nil, fmt.Errorf("lease: both model names are required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{text: text, nameModel: nameModel, leaseModel: leaseModel, logger: logger}, nil
}

// TenantName invents one company name with the flash-class model, stripped
// of surrounding whitespace and quoting. Failure falls back to
// FallbackTenantName.
func (g *Generator) TenantName(ctx context.Context) string {
	raw, err := g.text.generateText(ctx, g.nameModel, tenantNamePrompt, nil)
	if err != nil {
		g.logger.Warn("tenant name generation failed, using fallback",
			"model", g.nameModel, "error", err)
		return FallbackTenantName
	}

	name := strings.TrimSpace(raw)
	name = strings.ReplaceAll(name, "'", "")
	name = strings.ReplaceAll(name, `"`, "")
	if name == "" {
		return FallbackTenantName
	}
	return name
}

// Agreement writes the full lease body for tenantName with the pro-class
// model and fixed sampling. Failure degrades to a one-line placeholder
// naming the tenant.
func (g *Generator) Agreement(ctx context.Context, tenantName string) string {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](agreementTemperature),
		TopK:        genai.Ptr[float32](agreementTopK),
		TopP:        genai.Ptr[float32](agreementTopP),
	}

	body, err := g.text.generateText(ctx, g.leaseModel, agreementPrompt(tenantName), cfg)
	if err != nil {
		g.logger.Warn("agreement generation failed, using fallback body",
			"model", g.leaseModel, "tenant", tenantName, "error", err)
		return fmt.Sprintf("Could not generate lease agreement for %s.", tenantName)
	}
	return body
}
