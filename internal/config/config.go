package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Supported generation providers
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

// ErrMissingCredential is returned when no API key is configured for a provider that needs one
var ErrMissingCredential = errors.New("generation API key is not configured")

// ConfigurationError reports an unusable configuration value
type ConfigurationError struct {
	Env string
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s: %v", e.Env, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Config is the whole process configuration, read from the environment once at startup
type Config struct {
	Port             string `env:"PORT" envDefault:"8080"`
	BasePath         string `env:"BASE_PATH" envDefault:"/lecture-post-api"`
	LogLevel         string `env:"LOG_LEVEL" envDefault:"info"`
	Environment      string `env:"APP_ENV" envDefault:"development"`
	SentryDSN        string `env:"SENTRY_DSN"`
	AdminAPIKey      string `env:"ADMIN_API_KEY"`
	PromptConfigPath string `env:"PROMPT_CONFIG_PATH"`

	Generation GenerationConfig
	Session    SessionConfig
	Database   DatabaseConfig
	RabbitMQ   RabbitMQConfig
}

// GenerationConfig holds the generative backend settings
type GenerationConfig struct {
	Provider string `env:"LLM_PROVIDER" envDefault:"gemini"`
	Model    string `env:"LLM_MODEL" envDefault:"gemini-3-flash-preview"`
	APIKey   string `env:"API_KEY"`

	// GeminiAPIKey is read when API_KEY is empty
	GeminiAPIKey string        `env:"GEMINI_API_KEY"`
	BaseURL      string        `env:"LLM_BASE_URL"`
	Timeout      time.Duration `env:"GENERATION_TIMEOUT" envDefault:"0s"`
}

// SessionConfig controls form sessions and their tokens
type SessionConfig struct {
	Secret        string        `env:"SESSION_SECRET"`
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"2h"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"10m"`
}

// DatabaseConfig holds the Postgres connection parameters used for generation history
type DatabaseConfig struct {
	Host     string `env:"DB_HOST"`
	Port     string `env:"DB_PORT"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// HistoryRetention is how long generation logs are kept; 0 keeps them forever
	HistoryRetention time.Duration `env:"HISTORY_RETENTION" envDefault:"0s"`
}

// RabbitMQConfig holds the broker connection used for generated-post events
type RabbitMQConfig struct {
	Host     string `env:"RABBITMQ_HOST"`
	Port     string `env:"RABBITMQ_PORT" envDefault:"5672"`
	User     string `env:"RABBITMQ_USER" envDefault:"guest"`
	Password string `env:"RABBITMQ_PASS" envDefault:"guest"`
	Queue    string `env:"RABBITMQ_QUEUE" envDefault:"lecture_posts_generated"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	cfg.Generation.Provider = strings.ToLower(strings.TrimSpace(cfg.Generation.Provider))
	cfg.Generation.APIKey = strings.TrimSpace(cfg.Generation.APIKey)
	if cfg.Generation.APIKey == "" {
		cfg.Generation.APIKey = strings.TrimSpace(cfg.Generation.GeminiAPIKey)
	}
	return cfg, nil
}

// Validate checks the settings needed before any generation can be attempted
func (c GenerationConfig) Validate() error {
	switch c.Provider {
	case ProviderGemini, ProviderOpenAI:
		if c.APIKey == "" {
			return &ConfigurationError{Env: "API_KEY", Err: ErrMissingCredential}
		}
	case ProviderMock:
	default:
		return &ConfigurationError{Env: "LLM_PROVIDER", Err: fmt.Errorf("unsupported provider %q", c.Provider)}
	}
	if c.Model == "" {
		return &ConfigurationError{Env: "LLM_MODEL", Err: errors.New("model is required")}
	}
	return nil
}

// Enabled reports whether enough parameters are set to open a connection
func (c DatabaseConfig) Enabled() bool {
	return c.Host != "" && c.Port != "" && c.User != "" && c.Password != "" && c.Name != ""
}

// DSN returns the Postgres connection string
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// Enabled reports whether a broker host is configured
func (c RabbitMQConfig) Enabled() bool {
	return c.Host != ""
}

// URL returns the AMQP connection URL (guest user automatically uses / vhost)
func (c RabbitMQConfig) URL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", c.User, c.Password, c.Host, c.Port)
}
