package llm

import (
	"context"
	"errors"
	"time"
)

// LLM sends a single prompt and returns the model's text reply.
type LLM interface {
	Chat(ctx context.Context, prompt string) (string, error)
	Name() string
}

// ErrMissingAPIKey is returned when no credential was supplied. There is
// no built-in fallback key.
var ErrMissingAPIKey = errors.New("API key not configured")

var ErrEmptyResponse = errors.New("empty response from model")

const defaultTimeout = 60 * time.Second

// Config holds per-provider connection settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return defaultTimeout
}
