// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubmed-assistant/pkg/types"
)

func TestGroqCompleteReturnsFirstChoice(t *testing.T) {
	var gotAuth string
	var gotPayload map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		fmt.Fprint(w, `{"choices": [{"message": {"content": "Tool: get_paper_details(\"37635766\")"}}]}`)
	}))
	defer ts.Close()

	old := groqBase
	groqBase = ts.URL
	defer func() { groqBase = old }()

	p := NewGroqProvider(types.LLMConfig{Model: "llama3-70b-8192", APIKey: "k"})
	reply, err := p.Complete(context.Background(), "which tool?")
	require.NoError(t, err)

	assert.Equal(t, `Tool: get_paper_details("37635766")`, reply)
	assert.Equal(t, "Bearer k", gotAuth)
	assert.Equal(t, "llama3-70b-8192", gotPayload["model"])
	assert.EqualValues(t, 0, gotPayload["temperature"])

	msgs, ok := gotPayload["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
}

func TestGroqCompleteMissingKey(t *testing.T) {
	p := NewGroqProvider(types.LLMConfig{})
	_, err := p.Complete(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestGroqCompleteServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, `{"error": "upstream"}`)
	}))
	defer ts.Close()

	old := groqBase
	groqBase = ts.URL
	defer func() { groqBase = old }()

	p := NewGroqProvider(types.LLMConfig{APIKey: "k"})
	_, err := p.Complete(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}

func TestGroqCompleteEmptyChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"choices": []}`)
	}))
	defer ts.Close()

	old := groqBase
	groqBase = ts.URL
	defer func() { groqBase = old }()

	p := NewGroqProvider(types.LLMConfig{APIKey: "k"})
	_, err := p.Complete(context.Background(), "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestMockScriptsRepliesInOrder(t *testing.T) {
	m := &Mock{Replies: []string{"first", "second"}}

	r1, err := m.Complete(context.Background(), "p1")
	require.NoError(t, err)
	r2, err := m.Complete(context.Background(), "p2")
	require.NoError(t, err)
	_, err = m.Complete(context.Background(), "p3")
	require.Error(t, err)

	assert.Equal(t, "first", r1)
	assert.Equal(t, "second", r2)
	assert.Equal(t, []string{"p1", "p2", "p3"}, m.Prompts)
}
