package llm

import (
	"context"
	"fmt"
	"strings"
)

// Provider represents the LLM provider type
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderClaude Provider = "claude"
	ProviderOpenAI Provider = "openai"
)

// DefaultProvider matches the service the prompts were tuned against.
const DefaultProvider = ProviderGemini

// ParseProvider normalizes a provider name; empty selects DefaultProvider.
func ParseProvider(name string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DefaultProvider, nil
	case ProviderGemini, ProviderClaude, ProviderOpenAI:
		return p, nil
	default:
		return "", fmt.Errorf("unsupported LLM provider: %s (supported: gemini, claude, openai)", name)
	}
}

// Factory creates LLM instances based on provider
type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

// CreateLLM creates an LLM instance based on provider and configuration.
// A missing API key is an error for every provider.
func (f *Factory) CreateLLM(ctx context.Context, provider Provider, cfg Config) (LLM, error) {
	switch provider {
	case ProviderGemini:
		return NewGemini(ctx, cfg)
	case ProviderClaude:
		return NewClaude(cfg)
	case ProviderOpenAI:
		return NewOpenAI(cfg)
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", provider)
	}
}

// GetAvailableProviders returns a list of available LLM providers
func (f *Factory) GetAvailableProviders() []Provider {
	return []Provider{ProviderGemini, ProviderClaude, ProviderOpenAI}
}
