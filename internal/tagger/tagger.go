// Package tagger implements the image analysis agent: a tool-driven agent
// that normalizes a user upload into a PNG artifact and extracts descriptive
// labels from it with Cloud Vision.
package tagger

import (
	"errors"
	"log/slog"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"

	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/agent"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/artifact"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/pdf"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/vision"
)

// Agent identity.
const (
	Name        = "image_analysis_agent"
	Description = "An agent that analyzes images to extract labels and identify cities."
)

// Tool names as the model sees them.
const (
	ToolGetUserFile           = "get_user_file"
	ToolImageEntityExtraction = "image_entity_extraction"
)

// Instruction is the system prompt for the image analysis agent.
const Instruction = `You are an intelligent agent that analyzes images. Your primary tasks are to extract labels from an image and to try and determine the city depicted in an image.

Your first step is always to get an image from the user.

FILE UPLOAD
1.  **Check for User Uploaded File**: First, check if the user has uploaded a file.
    - If they have, you MUST use the ` + "`get_user_file`" + ` tool to process it. This tool saves the file as an artifact with the key 'user_uploaded_file'.
    - After the tool runs successfully, confirm to the user that the file has been processed and is ready for analysis.
2.  **Prompt User if No File Provided**: If the user has not uploaded a file, you MUST ask them to upload a PNG or PDF image. Do not proceed until a file is provided and processed by the ` + "`get_user_file`" + ` tool.

Once the image is successfully uploaded and processed, ask the user which task they want to perform.

AVAILABLE TASKS
1.  **Image Label Extraction**: If the user asks to extract labels, entities, or describe the image, use the ` + "`image_entity_extraction`" + ` tool with the artifact key 'user_uploaded_file'.
2.  **Determine City**: If the user asks to identify the city in the image, use the extracted labels and your own knowledge to deduce the location. You do not have a specific tool for this; you must reason based on the visual information.`

// Toolset holds the dependencies the agent's tools operate on.
type Toolset struct {
	store     artifact.Store
	converter pdf.Converter
	labeler   vision.Labeler
	logger    *slog.Logger
}

// New creates the toolset. All of store, converter, and labeler are
// required; logger may be nil.
func New(store artifact.Store, converter pdf.Converter, labeler vision.Labeler, logger *slog.Logger) (*Toolset, error) {
	if store == nil {
		return nil, errors.New("tagger: store is required")
	}
	if converter == nil {
		return nil, errors.New("tagger: converter is required")
	}
	if labeler == nil {
		return nil, errors.New("tagger: labeler is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Toolset{store: store, converter: converter, labeler: labeler, logger: logger}, nil
}

// ExtractionInput is the model-facing argument schema for the label
// extraction tool.
type ExtractionInput struct {
	ArtifactKey string `json:"artifact_key" jsonschema_description:"The key of the artifact previously saved by get_user_file."`
}

// Register defines both tools on g. Tool handlers read the turn state that
// the runtime attached with agent.WithTurn.
func (t *Toolset) Register(g *genkit.Genkit) {
	genkit.DefineTool(g, ToolGetUserFile,
		"Finds a user uploaded file in the turn, saves it as an artifact, and returns the artifact key. PDF uploads are converted to a PNG of the first page.",
		func(tctx *ai.ToolContext, _ struct{}) (string, error) {
			return t.GetUserFile(tctx.Context, agent.TurnFrom(tctx.Context)), nil
		})

	genkit.DefineTool(g, ToolImageEntityExtraction,
		"Runs label detection over a previously saved image artifact and returns the extracted labels.",
		func(tctx *ai.ToolContext, in ExtractionInput) (string, error) {
			return t.ImageEntityExtraction(tctx.Context, agent.TurnFrom(tctx.Context), in.ArtifactKey), nil
		})
}

// Definition returns the agent wiring for the given provider-qualified
// model name.
func (t *Toolset) Definition(model string) *agent.Definition {
	return &agent.Definition{
		Name:        Name,
		Description: Description,
		Model:       model,
		Instruction: Instruction,
		Tools:       []string{ToolGetUserFile, ToolImageEntityExtraction},
	}
}
