package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/app"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/config"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/lease"
	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/pdf"
)

// leaseFlags holds the parsed generate-leases command line.
type leaseFlags struct {
	projectID  string
	location   string
	number     int
	bucketName string
	gcsPath    string
}

// parseLeaseFlags parses args and applies them over cfg. Flags win over
// config file and environment values; required flags may also be satisfied
// from the environment-backed config.
func parseLeaseFlags(args []string, cfg *config.Config) (*leaseFlags, error) {
	fs := flag.NewFlagSet("generate-leases", flag.ContinueOnError)
	projectID := fs.String("project-id", "", "Google Cloud project ID")
	location := fs.String("location", "", "Google Cloud region (e.g. 'us-east4')")
	number := fs.Int("number", 3, "Number of agreements to generate")
	bucketName := fs.String("bucket-name", "", "GCS bucket name for uploading PDFs")
	gcsPath := fs.String("gcs-path", "", "Path within the GCS bucket to store the agreements")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	f := &leaseFlags{
		projectID:  firstNonEmpty(*projectID, cfg.ProjectID),
		location:   firstNonEmpty(*location, cfg.Location),
		number:     *number,
		bucketName: firstNonEmpty(*bucketName, cfg.BucketName),
		gcsPath:    firstNonEmpty(*gcsPath, cfg.GCSPath),
	}

	if f.projectID == "" {
		return nil, fmt.Errorf("--project-id is required")
	}
	if f.location == "" {
		return nil, fmt.Errorf("--location is required")
	}
	if f.bucketName == "" {
		return nil, fmt.Errorf("--bucket-name is required")
	}
	if f.number < 1 {
		return nil, fmt.Errorf("--number must be at least 1, got %d", f.number)
	}
	return f, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// runGenerateLeases generates N synthetic lease agreements, renders each to
// PDF, and uploads them to Cloud Storage.
func runGenerateLeases(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	flags, err := parseLeaseFlags(args, cfg)
	if err != nil {
		return err
	}
	cfg.ProjectID = flags.projectID
	cfg.Location = flags.location
	cfg.BucketName = flags.bucketName
	cfg.GCSPath = flags.gcsPath

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := slog.Default()
	logger.Info("starting lease generation",
		"project", cfg.ProjectID,
		"location", cfg.Location,
		"count", flags.number,
		"destination", fmt.Sprintf("gs://%s/%s", cfg.BucketName, cfg.GCSPath))

	g, cleanup, err := app.SetupBatch(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	defer cleanup()

	generator, err := lease.NewGenerator(g, cfg.NameModel, cfg.LeaseModel, logger)
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}

	uploader, err := lease.NewGCS(ctx, cfg.BucketName, cfg.GCSPath, logger)
	if err != nil {
		return fmt.Errorf("creating uploader: %w", err)
	}
	defer func() {
		if closeErr := uploader.Close(); closeErr != nil {
			logger.Warn("closing storage client", "error", closeErr)
		}
	}()

	batch, err := lease.NewBatch(generator, pdf.Renderer{}, uploader, ".", logger)
	if err != nil {
		return fmt.Errorf("creating batch runner: %w", err)
	}

	return batch.Run(ctx, flags.number)
}
