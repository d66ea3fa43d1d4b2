package config

import (
	"errors"
	"testing"
)

func validConfig() *Config {
	return &Config{
		ProjectID:     "demo-project",
		Location:      "us-east4",
		DocQAModel:    DefaultFlashModel,
		ResolverModel: DefaultFlashModel,
		TaggerModel:   DefaultFlashModel,
		NameModel:     DefaultFlashModel,
		LeaseModel:    DefaultProModel,
		GCSPath:       "capstone/land-lease-agreements",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "empty model",
			mutate:  func(c *Config) { c.ResolverModel = "" },
			wantErr: ErrInvalidModelName,
		},
		{
			name:    "unqualified model",
			mutate:  func(c *Config) { c.LeaseModel = "gemini-2.5-pro" },
			wantErr: ErrInvalidModelName,
		},
		{
			name:    "absolute gcs path",
			mutate:  func(c *Config) { c.GCSPath = "/capstone" },
			wantErr: ErrInvalidGCSPath,
		},
		{
			name:    "gs scheme gcs path",
			mutate:  func(c *Config) { c.GCSPath = "gs://bucket/capstone" },
			wantErr: ErrInvalidGCSPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NilConfig(t *testing.T) {
	var cfg *Config
	if !errors.Is(cfg.Validate(), ErrConfigNil) {
		t.Error("nil config should return ErrConfigNil")
	}
}

func TestValidateVertex(t *testing.T) {
	cfg := validConfig()
	if err := cfg.ValidateVertex(); err != nil {
		t.Errorf("ValidateVertex() = %v, want nil", err)
	}

	cfg.ProjectID = ""
	if !errors.Is(cfg.ValidateVertex(), ErrMissingProject) {
		t.Error("missing project should return ErrMissingProject")
	}

	cfg = validConfig()
	cfg.Location = ""
	if !errors.Is(cfg.ValidateVertex(), ErrMissingLocation) {
		t.Error("missing location should return ErrMissingLocation")
	}
}
