package config

import (
	"fmt"
	"strings"
)

// Validate validates configuration values.
// Returns sentinel errors that can be checked with errors.Is().
func (c *Config) Validate() error {
	// 0. Check for nil config (defensive programming)
	if c == nil {
		return ErrConfigNil
	}

	// 1. Model configuration validation. Model names must be
	// provider-qualified ("vertexai/gemini-2.5-flash") so Genkit can route
	// them without a registry lookup at call sites.
	models := map[string]string{
		"docqa_model":    c.DocQAModel,
		"resolver_model": c.ResolverModel,
		"tagger_model":   c.TaggerModel,
		"name_model":     c.NameModel,
		"lease_model":    c.LeaseModel,
	}
	for field, name := range models {
		if name == "" {
			return fmt.Errorf("%w: %s cannot be empty", ErrInvalidModelName, field)
		}
		if !strings.Contains(name, "/") {
			return fmt.Errorf("%w: %s must be provider-qualified (e.g. %q), got %q",
				ErrInvalidModelName, field, DefaultFlashModel, name)
		}
	}

	// 2. GCS path must be bucket-relative
	if strings.HasPrefix(c.GCSPath, "/") || strings.HasPrefix(c.GCSPath, "gs://") {
		return fmt.Errorf("%w: must be relative to the bucket, got %q", ErrInvalidGCSPath, c.GCSPath)
	}

	return nil
}

// ValidateVertex checks the fields required to reach Vertex AI. Called by
// commands that actually open a client; Load itself stays lenient so agents
// can be constructed in tests without cloud credentials.
func (c *Config) ValidateVertex() error {
	if c == nil {
		return ErrConfigNil
	}
	if c.ProjectID == "" {
		return fmt.Errorf("%w: set project_id or GOOGLE_CLOUD_PROJECT", ErrMissingProject)
	}
	if c.Location == "" {
		return fmt.Errorf("%w: set location or GOOGLE_CLOUD_LOCATION", ErrMissingLocation)
	}
	return nil
}
