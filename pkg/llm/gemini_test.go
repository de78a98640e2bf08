package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeminiServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))

		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
			GenerationConfig struct {
				ResponseMIMEType string `json:"responseMimeType"`
			} `json:"generationConfig"`
		}
		raw, _ := io.ReadAll(r.Body)
		if assert.NoError(t, json.Unmarshal(raw, &body)) &&
			assert.Len(t, body.Contents, 1) && assert.Len(t, body.Contents[0].Parts, 1) {
			assert.Equal(t, "analyze this", body.Contents[0].Parts[0].Text)
		}
		assert.Equal(t, "application/json", body.GenerationConfig.ResponseMIMEType)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestGemini(t *testing.T, srv *httptest.Server) *Gemini {
	t.Helper()
	g, err := NewGemini(context.Background(), Config{APIKey: "secret", Model: "gemini-test", BaseURL: srv.URL})
	require.NoError(t, err)
	return g
}

func TestGeminiChat_JoinsParts(t *testing.T) {
	srv := newGeminiServer(t, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"timeComplexity\":"},{"text":"\"O(n)\"}"}]}}]}`)
	g := newTestGemini(t, srv)
	assert.Equal(t, "gemini:gemini-test", g.Name())

	out, err := g.Chat(context.Background(), "analyze this")
	require.NoError(t, err)
	assert.Equal(t, `{"timeComplexity":"O(n)"}`, out)
}

func TestGeminiChat_EmptyResponses(t *testing.T) {
	replies := map[string]string{
		"no candidates": `{"candidates":[]}`,
		"no content":    `{"candidates":[{"finishReason":"SAFETY"}]}`,
		"no text":       `{"candidates":[{"content":{"role":"model","parts":[]}}]}`,
	}
	for name, reply := range replies {
		t.Run(name, func(t *testing.T) {
			g := newTestGemini(t, newGeminiServer(t, reply))
			_, err := g.Chat(context.Background(), "analyze this")
			assert.ErrorIs(t, err, ErrEmptyResponse)
		})
	}
}

func TestNewGemini_RequiresKey(t *testing.T) {
	_, err := NewGemini(context.Background(), Config{Model: "gemini-test"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
