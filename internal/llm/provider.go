// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm talks to the hosted language-model API that decides which
// lookup tool a user request needs. The assistant treats the model as an
// external collaborator: one prompt in, one text reply out.
package llm

import "context"

// Provider is the chat-completion surface the agent depends on. A nil
// Provider puts the agent in direct mode, answering from tool output alone.
type Provider interface {
	// Complete sends one prompt and returns the model's text reply.
	Complete(ctx context.Context, prompt string) (string, error)
}
