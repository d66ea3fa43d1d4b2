// Package cmd provides CLI commands for the GenAI explorer.
//
// Commands:
//   - generate-leases: Batch-generate synthetic land lease agreement PDFs
//     and upload them to Cloud Storage
//   - version: Show version information
//
// Signal handling and graceful shutdown are implemented via context
// cancellation.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/felipecastrillon/FelipesGenAIExplorer/internal/log"
)

// Execute is the main entry point for the CLI application.
func Execute() error {
	// Initialize logger once at entry point
	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(log.New(log.Config{Level: level}))

	if len(os.Args) < 2 {
		runHelp()
		return nil
	}

	switch os.Args[1] {
	case "generate-leases":
		return runGenerateLeases(os.Args[2:])
	case "version", "--version", "-v":
		runVersion()
		return nil
	case "help", "--help", "-h":
		runHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("genai-explorer - Gemini document agents and lease batch generator")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  genai-explorer generate-leases [flags]  Generate lease agreement PDFs and upload to GCS")
	fmt.Println("  genai-explorer --version                Show version information")
	fmt.Println("  genai-explorer --help                   Show this help")
	fmt.Println()
	fmt.Println("generate-leases flags:")
	fmt.Println("  --project-id   Google Cloud project ID (required)")
	fmt.Println("  --location     Google Cloud region, e.g. us-east4 (required)")
	fmt.Println("  --number       Number of agreements to generate (default: 3)")
	fmt.Println("  --bucket-name  GCS bucket for the uploaded PDFs (required)")
	fmt.Println("  --gcs-path     Path within the bucket (default: capstone/land-lease-agreements)")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  GOOGLE_CLOUD_PROJECT   Default for --project-id")
	fmt.Println("  GOOGLE_CLOUD_LOCATION  Default for --location")
	fmt.Println("  GCS_BUCKET_NAME        Default for --bucket-name")
	fmt.Println("  DEBUG                  Enable debug logging")
}
