// Package app provides application initialization and dependency injection.
//
// App is the container that wires Genkit, the artifact store, the vision
// client, and the two agents together. Setup initializes everything in
// dependency order; Close releases it in reverse.
package app

import (
	"context"
	"log/slog"

	"github.com/firebase/genkit/go/genkit"

	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/agent"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/artifact"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/config"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/docqa"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/tagger"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/vision"
)

// App is the core application container.
type App struct {
	Config *config.Config

	Genkit    *genkit.Genkit
	Artifacts artifact.Store
	DocQA     *docqa.DocQA
	Tagger    *tagger.Toolset

	visionClient *vision.Client
	otelCleanup  func()
	cancel       context.CancelFunc
}

// Agents returns the agent definitions this deployment exposes, bound to
// their configured models.
func (a *App) Agents() []*agent.Definition {
	return []*agent.Definition{
		a.DocQA.Definition(a.Config.DocQAModel),
		a.Tagger.Definition(a.Config.TaggerModel),
	}
}

// Close gracefully shuts down all resources.
func (a *App) Close() error {
	slog.Info("shutting down application")

	if a.cancel != nil {
		a.cancel()
	}

	var closeErr error
	if a.visionClient != nil {
		if err := a.visionClient.Close(); err != nil {
			closeErr = err
		}
	}

	if a.otelCleanup != nil {
		a.otelCleanup()
	}
	return closeErr
}
