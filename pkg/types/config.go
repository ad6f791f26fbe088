// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make
// network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-assistant/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// PubMedConfig holds settings for the PubMed E-utilities client.
type PubMedConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the retmax sent with identifier searches (default 20).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// DetailCount is how many papers from an author search are expanded
	// with a detail fetch in assistant replies (default 3).
	DetailCount int `json:"detail_count" yaml:"detail_count"`

	// APIKey is an optional NCBI API key for higher rate limits.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// RequestInterval is the minimum gap between consecutive E-utility
	// calls. NCBI allows at most 3 requests per second without an API key,
	// so the CLI defaults this to 334ms. Zero disables throttling.
	RequestInterval time.Duration `json:"request_interval" yaml:"request_interval"`
}

// LLMConfig holds settings for the language-model collaborator.
type LLMConfig struct {
	// Model is the chat model identifier (default "llama3-70b-8192").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the chat API. When empty the
	// assistant runs in direct mode without a language model.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// HistoryTurns is how many recent conversation lines are included in
	// the tool-selection prompt (default 3).
	HistoryTurns int `json:"history_turns" yaml:"history_turns"`
}

// CacheConfig holds settings for the author result cache.
type CacheConfig struct {
	// Capacity is the maximum number of author entries kept before the
	// least recently used one is evicted (default 64).
	Capacity int `json:"capacity" yaml:"capacity"`
}

// AssistantConfig groups all component configurations.
type AssistantConfig struct {
	PubMed PubMedConfig `json:"pubmed" yaml:"pubmed"`
	LLM    LLMConfig    `json:"llm" yaml:"llm"`
	Cache  CacheConfig  `json:"cache" yaml:"cache"`
}
