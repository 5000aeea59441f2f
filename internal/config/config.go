// Package config defines configuration parsing and helpers.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`
	Port   int    `env:"PORT" envDefault:"8080"`

	// Flat-file collaborators loaded once at startup.
	CatalogPath string `env:"CATALOG_PATH" envDefault:"data/internships.json"`
	ProfilePath string `env:"PROFILE_PATH" envDefault:"data/user.json"`
	// SynonymsPath optionally overrides the built-in skill synonym table.
	SynonymsPath string `env:"SYNONYMS_PATH"`

	// Embedding provider (OpenAI-compatible).
	OpenAIAPIKey    string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL   string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	EmbeddingsModel string        `env:"EMBEDDINGS_MODEL" envDefault:"text-embedding-3-small"`
	ChatModel       string        `env:"CHAT_MODEL" envDefault:"gpt-4o-mini"`
	EmbedTimeout    time.Duration `env:"EMBED_TIMEOUT" envDefault:"30s"`

	// Generative-model provider tried first when configured.
	XAIAPIKey   string        `env:"XAI_API_KEY"`
	XAIBaseURL  string        `env:"XAI_BASE_URL" envDefault:"https://api.x.ai/v1"`
	XAIModel    string        `env:"XAI_MODEL" envDefault:"grok-2-latest"`
	ChatTimeout time.Duration `env:"CHAT_TIMEOUT" envDefault:"60s"`

	// Recommendation result cache capacity (entries).
	RecCacheSize int `env:"REC_CACHE_SIZE" envDefault:"100"`

	OTLPEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	OTELServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"internship-recommender"`

	CORSAllowOrigins      string        `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
	RateLimitPerMin       int           `env:"RATE_LIMIT_PER_MIN" envDefault:"60"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	HTTPReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"90s"`
	HTTPIdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }

// EmbeddingsEnabled reports whether the embedding provider is configured.
func (c Config) EmbeddingsEnabled() bool {
	return c.OpenAIAPIKey != "" && c.EmbeddingsModel != ""
}

// ChatEnabled reports whether any generative-model provider is configured.
func (c Config) ChatEnabled() bool {
	return c.XAIAPIKey != "" || c.OpenAIAPIKey != ""
}
