package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/firebase/genkit/go/core/tracing"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/artifact"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/config"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/docqa"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/pdf"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/tagger"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/vision"
)

// Setup creates and initializes the application.
// Returns an App with embedded cleanup — call Close() to release.
func Setup(ctx context.Context, cfg *config.Config) (_ *App, retErr error) {
	if err := cfg.ValidateVertex(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	a := &App{Config: cfg}

	// On error, clean up everything already initialized
	defer func() {
		if retErr != nil {
			if err := a.Close(); err != nil {
				slog.Warn("cleanup during setup failure", "error", err)
			}
		}
	}()

	a.otelCleanup = provideOtelShutdown(ctx, cfg)

	g, err := provideGenkit(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.Genkit = g

	a.Artifacts = artifact.NewMemory(slog.Default())

	matcher, err := docqa.NewGenkitMatcher(g, cfg.ResolverModel)
	if err != nil {
		return nil, err
	}
	qa, err := docqa.New(a.Artifacts, matcher, slog.Default())
	if err != nil {
		return nil, err
	}
	a.DocQA = qa

	a.visionClient, err = vision.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	ts, err := tagger.New(a.Artifacts, pdf.Fitz{}, a.visionClient, slog.Default())
	if err != nil {
		return nil, err
	}
	ts.Register(g)
	a.Tagger = ts

	_, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	return a, nil
}

// SetupBatch initializes only what the lease batch needs: trace export and
// a Genkit instance bound to Vertex AI. No artifact store, vision client,
// or agents are created. The returned cleanup flushes traces.
func SetupBatch(ctx context.Context, cfg *config.Config) (*genkit.Genkit, func(), error) {
	if err := cfg.ValidateVertex(); err != nil {
		return nil, nil, fmt.Errorf("validating config: %w", err)
	}

	cleanup := provideOtelShutdown(ctx, cfg)

	g, err := provideGenkit(ctx, cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return g, cleanup, nil
}

// provideOtelShutdown sets up OTLP trace export before Genkit
// initialization so the TracerProvider is ready when spans start.
// Export is disabled when no collector endpoint is configured.
func provideOtelShutdown(ctx context.Context, cfg *config.Config) func() {
	endpoint := cfg.Otel.Endpoint
	if endpoint == "" {
		return func() {}
	}

	// Set OTEL env vars for Genkit's TracerProvider to pick up.
	// SAFETY: os.Setenv is not concurrent-safe, but this function is called
	// exactly once during startup in Setup, before goroutines are spawned.
	if cfg.Otel.ServiceName != "" {
		_ = os.Setenv("OTEL_SERVICE_NAME", cfg.Otel.ServiceName)
	}
	if cfg.Otel.Environment != "" {
		_ = os.Setenv("OTEL_RESOURCE_ATTRIBUTES", "deployment.environment="+cfg.Otel.Environment)
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(), // local collector, no TLS
	)
	if err != nil {
		slog.Warn("creating OTLP exporter, tracing disabled", "error", err)
		return func() {}
	}

	processor := sdktrace.NewBatchSpanProcessor(exporter)
	tracing.TracerProvider().RegisterSpanProcessor(processor)

	slog.Debug("trace export enabled",
		"endpoint", endpoint,
		"service", cfg.Otel.ServiceName,
		"environment", cfg.Otel.Environment,
	)

	shutdown := tracing.TracerProvider().Shutdown

	//nolint:contextcheck // Independent context: shutdown runs during teardown when parent is canceled
	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Warn("shutting down tracer provider", "error", err)
		}
	}
}

// provideGenkit initializes Genkit against Vertex AI.
func provideGenkit(ctx context.Context, cfg *config.Config) (*genkit.Genkit, error) {
	g := genkit.Init(ctx,
		genkit.WithPlugins(&googlegenai.VertexAI{
			ProjectID: cfg.ProjectID,
			Location:  cfg.Location,
		}),
	)
	if g == nil {
		return nil, errors.New("initializing genkit with vertex ai provider")
	}
	return g, nil
}
