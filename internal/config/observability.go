package config

// OtelConfig holds OTLP trace export configuration.
//
// Genkit instruments model and tool calls with OpenTelemetry spans; when
// Endpoint is set, spans are exported over OTLP HTTP to a local collector.
// See internal/app/setup.go for the exporter setup.
type OtelConfig struct {
	// Endpoint is the OTLP HTTP collector address (empty disables export)
	Endpoint string `mapstructure:"endpoint"`
	// Environment is the deployment environment tag (default: dev)
	Environment string `mapstructure:"environment"`
	// ServiceName is the reported service name (default: genai-explorer)
	ServiceName string `mapstructure:"service_name"`
}
