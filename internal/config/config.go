// Package config provides application configuration management with
// multi-source priority.
//
// Configuration sources (highest to lowest priority):
//  1. Environment variables (runtime override)
//  2. Config file (~/.genai-explorer/config.yaml)
//  3. Default values (sensible defaults for quick start)
//
// Main configuration categories:
//   - Vertex: Google Cloud project and location for model inference
//   - Models: provider-qualified model names for each agent task
//   - Lease: GCS destination defaults for the batch generator
//   - Otel: OTLP trace export (see observability.go)
//
// Error Handling:
//   - Uses sentinel errors for Go-idiomatic error checking with errors.Is()
//   - Wrap with context using fmt.Errorf("%w: details", ErrXxx)
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

var (
	// ErrConfigNil indicates the configuration is nil.
	ErrConfigNil = errors.New("configuration is nil")

	// ErrInvalidModelName indicates a model name is empty or not
	// provider-qualified.
	ErrInvalidModelName = errors.New("invalid model name")

	// ErrMissingProject indicates the Google Cloud project ID is not set.
	ErrMissingProject = errors.New("missing project ID")

	// ErrMissingLocation indicates the Google Cloud location is not set.
	ErrMissingLocation = errors.New("missing location")

	// ErrInvalidGCSPath indicates the GCS destination path is invalid.
	ErrInvalidGCSPath = errors.New("invalid GCS path")
)

// Default provider-qualified model names. The fast model handles cheap tasks
// (document matching, tenant names); the pro model writes full agreements.
const (
	DefaultFlashModel = "vertexai/gemini-2.5-flash"
	DefaultProModel   = "vertexai/gemini-2.5-pro"
)

// Config stores application configuration.
type Config struct {
	// Google Cloud Vertex AI configuration
	ProjectID string `mapstructure:"project_id" json:"project_id"`
	Location  string `mapstructure:"location" json:"location"`

	// Model selection per task
	DocQAModel    string `mapstructure:"docqa_model" json:"docqa_model"`       // document QnA agent
	ResolverModel string `mapstructure:"resolver_model" json:"resolver_model"` // artifact resolution matcher
	TaggerModel   string `mapstructure:"tagger_model" json:"tagger_model"`     // image analysis agent
	NameModel     string `mapstructure:"name_model" json:"name_model"`         // tenant name generation
	LeaseModel    string `mapstructure:"lease_model" json:"lease_model"`       // lease body generation

	// Lease batch defaults (flags override these)
	BucketName string `mapstructure:"bucket_name" json:"bucket_name"`
	GCSPath    string `mapstructure:"gcs_path" json:"gcs_path"`

	// Observability configuration (see observability.go)
	Otel OtelConfig `mapstructure:"otel" json:"otel"`
}

// Load loads configuration.
// Priority: Environment variables > Configuration file > Default values
func Load() (*Config, error) {
	// Configuration directory: ~/.genai-explorer/
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}

	configDir := filepath.Join(home, ".genai-explorer")

	// Ensure directory exists (use 0750 permission for better security)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Also support current directory

	setDefaults(v)
	bindEnvVariables(v)

	// Read configuration file (if exists)
	if err := v.ReadInConfig(); err != nil {
		// Configuration file not found is not an error, use default values
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using default values",
			"search_paths", []string{configDir, "."},
			"config_name", "config.yaml")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("location", "us-east4")

	// Model defaults
	v.SetDefault("docqa_model", DefaultFlashModel)
	v.SetDefault("resolver_model", DefaultFlashModel)
	v.SetDefault("tagger_model", DefaultFlashModel)
	v.SetDefault("name_model", DefaultFlashModel)
	v.SetDefault("lease_model", DefaultProModel)

	// Lease batch defaults
	v.SetDefault("gcs_path", "capstone/land-lease-agreements")

	// OTLP defaults
	v.SetDefault("otel.endpoint", "")
	v.SetDefault("otel.environment", "dev")
	v.SetDefault("otel.service_name", "genai-explorer")
}

// bindEnvVariables binds environment variables explicitly.
func bindEnvVariables(v *viper.Viper) {
	// Helper to panic on unexpected bind errors (hardcoded strings can't fail)
	// If this panics, it's a BUG in our code, not a runtime error
	mustBind := func(key string, envVars ...string) {
		args := append([]string{key}, envVars...)
		if err := v.BindEnv(args...); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q: %v", key, err))
		}
	}

	mustBind("project_id", "GOOGLE_CLOUD_PROJECT")
	mustBind("location", "GOOGLE_CLOUD_LOCATION")
	mustBind("bucket_name", "GCS_BUCKET_NAME")
	mustBind("otel.endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")
}
