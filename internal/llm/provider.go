package llm

import (
	"context"
	"time"

	"github.com/sasank-sasi/Vertx/internal/models"
)

// ProviderType identifies an LLM provider implementation.
type ProviderType string

const (
	ProviderGroq       ProviderType = "groq"
	ProviderGemini     ProviderType = "gemini"
	ProviderOpenRouter ProviderType = "openrouter"
)

// Provider is implemented by every LLM backend.
type Provider interface {
	Complete(ctx context.Context, req models.CompletionRequest) (string, error)
	Close() error
	GetModelInfo() map[string]interface{}
}

// ProviderConfig holds configuration for a single provider instance.
type ProviderConfig struct {
	Type       ProviderType  `yaml:"type"`
	APIKey     string        `yaml:"api_key"`
	ModelName  string        `yaml:"model_name"`
	MaxRetries int           `yaml:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
	// Rate limiting per provider
	RequestsPerMinute int `yaml:"requests_per_minute"`
}
