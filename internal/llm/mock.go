// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"fmt"
)

// Mock is a scripted Provider for tests. Each Complete call pops the next
// reply and records the prompt it received.
type Mock struct {
	Replies []string
	Err     error

	Prompts []string
	next    int
}

// Complete returns the scripted error if set, otherwise the next reply in
// order. Running out of replies is a test bug and fails loudly.
func (m *Mock) Complete(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	if m.Err != nil {
		return "", m.Err
	}
	if m.next >= len(m.Replies) {
		return "", fmt.Errorf("mock provider: no reply scripted for call %d", m.next+1)
	}
	reply := m.Replies[m.next]
	m.next++
	return reply, nil
}
