package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultMapsBaseURL     = "https://maps.googleapis.com/maps/api"
	DefaultRoadsBaseURL    = "https://roads.googleapis.com/v1"
	DefaultTimeoutSeconds  = 30
	DefaultMaxRetries      = 3
	DefaultRetryBackoffMs  = 500
	DefaultRateLimitPerSec = 50
	DefaultRateLimitBurst  = 10
)

// Config holds all application configuration
type Config struct {
	Environment string           `yaml:"environment" validate:"required"`
	ServiceName string           `yaml:"service_name"`
	LogLevel    string           `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	Maps        MapsConfig       `yaml:"maps"`
	Resilience  ResilienceConfig `yaml:"resilience"`
	Tracing     TracingConfig    `yaml:"tracing"`
}

// MapsConfig configures the Google Maps Platform client.
type MapsConfig struct {
	APIKey          string  `yaml:"api_key"`
	BaseURL         string  `yaml:"base_url" validate:"required,url"`
	RoadsURL        string  `yaml:"roads_url" validate:"required,url"`
	TimeoutSeconds  int     `yaml:"timeout_seconds" validate:"gte=1,lte=300"`
	MaxRetries      int     `yaml:"max_retries" validate:"gte=0,lte=10"`
	RetryBackoffMs  int     `yaml:"retry_backoff_ms" validate:"gte=0"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec" validate:"gte=0"`
	RateLimitBurst  int     `yaml:"rate_limit_burst" validate:"gte=0"`
}

// ResilienceConfig groups runtime resilience controls
type ResilienceConfig struct {
	CircuitBreaker CircuitBreakerConfig `yaml:"circuit_breaker"`
}

// CircuitBreakerConfig captures default and per-service breaker tuning
type CircuitBreakerConfig struct {
	Enabled          bool                              `yaml:"enabled"`
	FailureThreshold int                               `yaml:"failure_threshold" validate:"gte=0"`
	SuccessThreshold int                               `yaml:"success_threshold" validate:"gte=0"`
	TimeoutSeconds   int                               `yaml:"timeout_seconds" validate:"gte=0"`
	IntervalSeconds  int                               `yaml:"interval_seconds" validate:"gte=0"`
	ServiceOverrides map[string]CircuitBreakerSettings `yaml:"service_overrides"`
}

// CircuitBreakerSettings overrides defaults for a specific upstream service
type CircuitBreakerSettings struct {
	FailureThreshold int `json:"failure_threshold" yaml:"failure_threshold"`
	SuccessThreshold int `json:"success_threshold" yaml:"success_threshold"`
	TimeoutSeconds   int `json:"timeout_seconds" yaml:"timeout_seconds"`
	IntervalSeconds  int `json:"interval_seconds" yaml:"interval_seconds"`
}

// TracingConfig holds OpenTelemetry exporter settings.
type TracingConfig struct {
	Enabled        bool    `yaml:"enabled"`
	OTLPEndpoint   string  `yaml:"otlp_endpoint"`
	ServiceVersion string  `yaml:"service_version"`
	SampleRate     float64 `yaml:"sample_rate" validate:"gte=0,lte=1"`
}

var validate = validator.New()

// Default returns the configuration used when neither a file nor the
// environment say otherwise.
func Default(serviceName string) *Config {
	return &Config{
		Environment: "development",
		ServiceName: serviceName,
		Maps: MapsConfig{
			BaseURL:         DefaultMapsBaseURL,
			RoadsURL:        DefaultRoadsBaseURL,
			TimeoutSeconds:  DefaultTimeoutSeconds,
			MaxRetries:      DefaultMaxRetries,
			RetryBackoffMs:  DefaultRetryBackoffMs,
			RateLimitPerSec: DefaultRateLimitPerSec,
			RateLimitBurst:  DefaultRateLimitBurst,
		},
		Resilience: ResilienceConfig{
			CircuitBreaker: CircuitBreakerConfig{
				FailureThreshold: 5,
				SuccessThreshold: 1,
				TimeoutSeconds:   30,
				IntervalSeconds:  60,
			},
		},
	}
}

// Load builds the configuration from defaults, the optional YAML file at
// path and finally environment variables (a .env file is honoured).
func Load(serviceName, path string) (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := Default(serviceName)

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)

	cfg.Maps.APIKey = getEnv("GOOGLE_MAPS_API_KEY", cfg.Maps.APIKey)
	cfg.Maps.BaseURL = getEnv("MAPS_BASE_URL", cfg.Maps.BaseURL)
	cfg.Maps.RoadsURL = getEnv("MAPS_ROADS_URL", cfg.Maps.RoadsURL)
	cfg.Maps.TimeoutSeconds = getEnvAsInt("MAPS_TIMEOUT_SECONDS", cfg.Maps.TimeoutSeconds)
	cfg.Maps.MaxRetries = getEnvAsInt("MAPS_MAX_RETRIES", cfg.Maps.MaxRetries)
	cfg.Maps.RetryBackoffMs = getEnvAsInt("MAPS_RETRY_BACKOFF_MS", cfg.Maps.RetryBackoffMs)
	cfg.Maps.RateLimitPerSec = getEnvAsFloat("MAPS_RATE_LIMIT_PER_SEC", cfg.Maps.RateLimitPerSec)
	cfg.Maps.RateLimitBurst = getEnvAsInt("MAPS_RATE_LIMIT_BURST", cfg.Maps.RateLimitBurst)

	breaker := &cfg.Resilience.CircuitBreaker
	breaker.Enabled = getEnvAsBool("CB_ENABLED", breaker.Enabled)
	breaker.FailureThreshold = getEnvAsInt("CB_FAILURE_THRESHOLD", breaker.FailureThreshold)
	breaker.SuccessThreshold = getEnvAsInt("CB_SUCCESS_THRESHOLD", breaker.SuccessThreshold)
	breaker.TimeoutSeconds = getEnvAsInt("CB_TIMEOUT_SECONDS", breaker.TimeoutSeconds)
	breaker.IntervalSeconds = getEnvAsInt("CB_INTERVAL_SECONDS", breaker.IntervalSeconds)

	if breakerOverrides := getEnv("CB_SERVICE_OVERRIDES", ""); breakerOverrides != "" {
		var serviceConfig map[string]CircuitBreakerSettings
		if err := json.Unmarshal([]byte(breakerOverrides), &serviceConfig); err != nil {
			return nil, fmt.Errorf("invalid CB_SERVICE_OVERRIDES value: %w", err)
		}
		breaker.ServiceOverrides = serviceConfig
	}

	cfg.Tracing.Enabled = getEnvAsBool("OTEL_ENABLED", cfg.Tracing.Enabled)
	cfg.Tracing.OTLPEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Tracing.OTLPEndpoint)
	cfg.Tracing.ServiceVersion = getEnv("OTEL_SERVICE_VERSION", cfg.Tracing.ServiceVersion)
	cfg.Tracing.SampleRate = getEnvAsFloat("OTEL_TRACE_SAMPLE_RATE", cfg.Tracing.SampleRate)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks field ranges and formats.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Timeout returns the per-request HTTP timeout.
func (c MapsConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetryBackoff returns the initial retry backoff.
func (c MapsConfig) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffMs) * time.Millisecond
}

// SettingsFor returns effective breaker settings for a specific upstream service name
func (c CircuitBreakerConfig) SettingsFor(service string) CircuitBreakerSettings {
	settings := CircuitBreakerSettings{
		FailureThreshold: c.FailureThreshold,
		SuccessThreshold: c.SuccessThreshold,
		TimeoutSeconds:   c.TimeoutSeconds,
		IntervalSeconds:  c.IntervalSeconds,
	}

	if override, ok := c.ServiceOverrides[service]; ok {
		if override.FailureThreshold > 0 {
			settings.FailureThreshold = override.FailureThreshold
		}
		if override.SuccessThreshold > 0 {
			settings.SuccessThreshold = override.SuccessThreshold
		}
		if override.TimeoutSeconds > 0 {
			settings.TimeoutSeconds = override.TimeoutSeconds
		}
		if override.IntervalSeconds > 0 {
			settings.IntervalSeconds = override.IntervalSeconds
		}
	}

	if settings.SuccessThreshold <= 0 {
		settings.SuccessThreshold = 1
	}
	if settings.FailureThreshold <= 0 {
		settings.FailureThreshold = 5
	}
	if settings.TimeoutSeconds <= 0 {
		settings.TimeoutSeconds = 30
	}
	if settings.IntervalSeconds <= 0 {
		settings.IntervalSeconds = 60
	}

	return settings
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
