package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the config file nor the environment
// provides a value.
const (
	DefaultAPIBaseURL = "https://api.slidespeak.co/api/v1"
	DefaultUserAgent  = "slidespeak-mcp/0.0.3"

	DefaultRequestTimeout    = "30s" // ordinary API calls
	DefaultGenerationTimeout = "90s" // total budget for submit + polling
	DefaultPollInterval      = "2s"  // wait between status checks
	DefaultPollTimeout       = "10s" // each individual status check

	DefaultPort      = "8080"
	DefaultTransport = "stdio"
)

// AppInfo holds the application's identity, reported on the health
// resource and in MCP initialization.
type AppInfo struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
}

// LoggerConfig controls the log verbosity.
type LoggerConfig struct {
	Level string `yaml:"level"` // "debug", "info", "warn", "error"
}

// ServerConfig selects the MCP transport and, for HTTP-based
// transports, the listen port and the externally visible hostname.
type ServerConfig struct {
	Transport    string `yaml:"transport"` // "stdio", "sse" or "httpstream"
	Port         string `yaml:"port"`
	PublicDomain string `yaml:"publicDomain"`
}

// BaseURL returns the server's externally reachable base URL. Hosted
// platforms inject the public hostname; local runs fall back to
// localhost on the configured port.
func (s ServerConfig) BaseURL() string {
	if s.PublicDomain != "" {
		return "https://" + s.PublicDomain
	}
	return "http://localhost:" + s.Port
}

// APIConfig holds everything needed to talk to the SlideSpeak API.
// Durations are strings like "30s", parsed with time.ParseDuration.
type APIConfig struct {
	BaseURL           string `yaml:"baseURL"`
	Key               string `yaml:"key"`
	UserAgent         string `yaml:"userAgent"`
	RequestTimeout    string `yaml:"requestTimeout"`
	GenerationTimeout string `yaml:"generationTimeout"`
	PollInterval      string `yaml:"pollInterval"`
	PollTimeout       string `yaml:"pollTimeout"`
}

// MiddlewareConfig gathers the outbound HTTP middleware settings.
type MiddlewareConfig struct {
	RateLimiter    RateLimiterConfig    `yaml:"rateLimiter"`
	CircuitBreaker CircuitBreakerConfig `yaml:"circuitBreaker"`
}

// RateLimiterConfig controls the outbound token bucket limiter.
type RateLimiterConfig struct {
	Enabled     bool              `yaml:"enabled"`
	TokenBucket TokenBucketConfig `yaml:"tokenBucket"`
}

// TokenBucketConfig parameterizes the token bucket algorithm.
type TokenBucketConfig struct {
	Rate     float64 `yaml:"rate"` // tokens per second
	Capacity int     `yaml:"capacity"`
}

// CircuitBreakerConfig controls the outbound circuit breaker.
type CircuitBreakerConfig struct {
	Enabled          bool   `yaml:"enabled"`
	FailureThreshold uint32 `yaml:"failureThreshold"`
	SuccessThreshold uint32 `yaml:"successThreshold"`
	Timeout          string `yaml:"timeout"` // e.g. "30s"
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	App        AppInfo          `yaml:"app"`
	Logger     LoggerConfig     `yaml:"logger"`
	Server     ServerConfig     `yaml:"server"`
	API        APIConfig        `yaml:"api"`
	Middleware MiddlewareConfig `yaml:"middleware"`
}

// Default returns the built-in configuration used when no file and no
// environment overrides are present.
func Default() *AppConfig {
	return &AppConfig{
		App: AppInfo{
			Name:        "SlideSpeak MCP Server",
			Version:     "1.0.0",
			Environment: "development",
		},
		Logger: LoggerConfig{Level: "info"},
		Server: ServerConfig{
			Transport: DefaultTransport,
			Port:      DefaultPort,
		},
		API: APIConfig{
			BaseURL:           DefaultAPIBaseURL,
			UserAgent:         DefaultUserAgent,
			RequestTimeout:    DefaultRequestTimeout,
			GenerationTimeout: DefaultGenerationTimeout,
			PollInterval:      DefaultPollInterval,
			PollTimeout:       DefaultPollTimeout,
		},
	}
}

// Load builds the effective configuration: defaults, overlaid with the
// optional YAML file at path, overlaid with environment variables.
// An empty path skips the file step.
func Load(path string) (*AppConfig, error) {
	cfg := Default()

	if path != "" {
		yamlFile, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if err := yaml.Unmarshal(yamlFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables onto the configuration.
// The API key is deliberately env-only by convention, so it never has
// to live in a config file.
func (c *AppConfig) applyEnv() {
	c.API.Key = GetEnv("SLIDESPEAK_API_KEY", c.API.Key)
	c.API.BaseURL = GetEnv("SLIDESPEAK_BASE_URL", c.API.BaseURL)
	c.Logger.Level = GetEnv("LOG_LEVEL", c.Logger.Level)
	c.Server.Transport = GetEnv("MCP_TRANSPORT", c.Server.Transport)
	c.Server.Port = GetEnv("PORT", c.Server.Port)

	// Railway exposes the deployment hostname as RAILWAY_PUBLIC_DOMAIN.
	c.Server.PublicDomain = GetEnv("PUBLIC_DOMAIN",
		GetEnv("RAILWAY_PUBLIC_DOMAIN", c.Server.PublicDomain))
}

// Validate checks that all duration fields parse.
func (c *AppConfig) Validate() error {
	durations := map[string]string{
		"api.requestTimeout":    c.API.RequestTimeout,
		"api.generationTimeout": c.API.GenerationTimeout,
		"api.pollInterval":      c.API.PollInterval,
		"api.pollTimeout":       c.API.PollTimeout,
	}
	if c.Middleware.CircuitBreaker.Enabled {
		durations["middleware.circuitBreaker.timeout"] = c.Middleware.CircuitBreaker.Timeout
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid duration for %s: %w", name, err)
		}
	}
	return nil
}

// GetEnv retrieves the value of an environment variable with a fallback
// value if not set.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
