package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/helmcode/codeopti/pkg/llm"
)

const envPrefix = "CODEOPTI"

// Config is the resolved runtime configuration.
type Config struct {
	Provider llm.Provider
	Model    string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
	Language string
	Output   string
	LogLevel string
}

// keyEnv lists the provider-native variables consulted after
// CODEOPTI_API_KEY, in order.
var keyEnv = map[llm.Provider][]string{
	llm.ProviderGemini: {"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	llm.ProviderClaude: {"ANTHROPIC_API_KEY"},
	llm.ProviderOpenAI: {"OPENAI_API_KEY"},
}

var modelEnv = map[llm.Provider]string{
	llm.ProviderGemini: "GEMINI_MODEL",
	llm.ProviderClaude: "CLAUDE_MODEL",
	llm.ProviderOpenAI: "OPENAI_MODEL",
}

// New returns a viper instance with defaults, the CODEOPTI_ env prefix and
// the optional codeopti.yaml search path. A .env file in the working
// directory is loaded into the process environment first, if present.
func New() *viper.Viper {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("provider", string(llm.DefaultProvider))
	v.SetDefault("model", "")
	v.SetDefault("api_key", "")
	v.SetDefault("base_url", "")
	v.SetDefault("timeout", "60s")
	v.SetDefault("language", "")
	v.SetDefault("output", "human")
	v.SetDefault("log_level", "warn")

	v.SetConfigName("codeopti")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file, if any, and resolves the provider, its key
// and its model. A missing key is reported by Validate, not here.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		slog.Debug("config file loaded", "path", v.ConfigFileUsed())
	}

	provider, err := llm.ParseProvider(v.GetString("provider"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Provider: provider,
		Model:    v.GetString("model"),
		APIKey:   v.GetString("api_key"),
		BaseURL:  v.GetString("base_url"),
		Timeout:  v.GetDuration("timeout"),
		Language: v.GetString("language"),
		Output:   v.GetString("output"),
		LogLevel: v.GetString("log_level"),
	}
	if cfg.APIKey == "" {
		cfg.APIKey = firstEnv(keyEnv[provider]...)
	}
	if cfg.Model == "" {
		cfg.Model = os.Getenv(modelEnv[provider])
	}
	return cfg, nil
}

// Validate fails closed when no credential is available for the provider.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		names := append([]string{envPrefix + "_API_KEY"}, keyEnv[c.Provider]...)
		return fmt.Errorf("%w for %s: set one of %s", llm.ErrMissingAPIKey, c.Provider, strings.Join(names, ", "))
	}
	return nil
}

// LLMConfig projects the provider settings.
func (c *Config) LLMConfig() llm.Config {
	return llm.Config{
		APIKey:  c.APIKey,
		Model:   c.Model,
		BaseURL: c.BaseURL,
		Timeout: c.Timeout,
	}
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}
