package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const (
	claudeDefaultModel = "claude-sonnet-4-20250514"
	claudeBaseURL      = "https://api.anthropic.com"
)

type Claude struct {
	apiKey  string
	baseURL string
	client  *http.Client
	model   string
}

func NewClaude(cfg Config) (*Claude, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("claude: %w", ErrMissingAPIKey)
	}
	c := &Claude{
		apiKey:  cfg.APIKey,
		baseURL: claudeBaseURL,
		client:  &http.Client{Timeout: cfg.timeout()},
		model:   claudeDefaultModel,
	}
	if cfg.Model != "" {
		c.model = cfg.Model
	}
	if cfg.BaseURL != "" {
		c.baseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	return c, nil
}

func (c *Claude) Name() string { return "claude:" + c.model }

func (c *Claude) Chat(ctx context.Context, prompt string) (string, error) {
	body := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{{
			"role":    "user",
			"content": prompt,
		}},
		"max_tokens":  4000,
		"temperature": 0,
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/messages", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("claude API error (status %d): %s", resp.StatusCode, string(respBytes))
	}

	// Minimal struct to pull out the content text.
	var claudeResp struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBytes, &claudeResp); err != nil {
		return "", err
	}
	if claudeResp.Error.Message != "" {
		return "", fmt.Errorf("claude API error: %s", claudeResp.Error.Message)
	}
	if len(claudeResp.Content) == 0 {
		return "", fmt.Errorf("claude: %w", ErrEmptyResponse)
	}
	return claudeResp.Content[0].Text, nil
}
