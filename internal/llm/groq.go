// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pdiddy/pubmed-assistant/pkg/types"
)

// groqBase is the Groq OpenAI-compatible chat completions endpoint.
// Declared as a var so tests can substitute an httptest server.
var groqBase = "https://api.groq.com/openai/v1/chat/completions"

const systemPrompt = "You are a research paper assistant for the PubMed literature database. " +
	"Follow the response format instructions exactly."

// GroqProvider calls Groq's chat completions API with temperature 0 so
// tool-selection replies stay deterministic.
type GroqProvider struct {
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewGroqProvider returns a provider for the given model and key. An empty
// model defaults to "llama3-70b-8192".
func NewGroqProvider(cfg types.LLMConfig) *GroqProvider {
	model := cfg.Model
	if model == "" {
		model = "llama3-70b-8192"
	}
	return &GroqProvider{
		model:      model,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// Complete sends the prompt as a single user message and returns the first
// choice's content.
func (g *GroqProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("groq API key not configured")
	}

	payload, err := json.Marshal(map[string]any{
		"model":       g.model,
		"temperature": 0,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, groqBase, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading chat response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("chat API returned HTTP %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parsing chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat API returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
