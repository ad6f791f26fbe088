// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
		want  map[string]string
	}{
		{
			name: "reads key files and trims whitespace",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "groq-api-key", "  gsk_abc123  \n")
				writeFile(t, dir, "ncbi-api-key", "nk_xyz789")
				return dir
			},
			want: map[string]string{
				"groq-api-key": "gsk_abc123",
				"ncbi-api-key": "nk_xyz789",
			},
		},
		{
			name: "returns empty map for nonexistent directory",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "does-not-exist")
			},
			want: map[string]string{},
		},
		{
			name: "skips empty files and dotfiles",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				writeFile(t, dir, "groq-api-key", "valid-key")
				writeFile(t, dir, "empty-key", "")
				writeFile(t, dir, "whitespace-only", "   \n\t  ")
				writeFile(t, dir, ".gitkeep", "ignored")
				return dir
			},
			want: map[string]string{
				"groq-api-key": "valid-key",
			},
		},
		{
			name: "skips subdirectories",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))
				writeFile(t, dir, "ncbi-api-key", "k")
				return dir
			},
			want: map[string]string{"ncbi-api-key": "k"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			got, err := Load(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolvePrecedence(t *testing.T) {
	loaded := map[string]string{"groq-api-key": "from-secrets"}
	t.Setenv("GROQ_API_KEY", "from-env")

	// Explicit wins over everything.
	assert.Equal(t, "flag-value", Resolve(loaded, "flag-value", "groq-api-key", "GROQ_API_KEY"))
	// Secrets win over environment.
	assert.Equal(t, "from-secrets", Resolve(loaded, "", "groq-api-key", "GROQ_API_KEY"))
	// Environment is the last fallback.
	assert.Equal(t, "from-env", Resolve(map[string]string{}, "", "groq-api-key", "GROQ_API_KEY"))
}

func TestResolveAllEmpty(t *testing.T) {
	t.Setenv("PUBMED_ASSISTANT_TEST_UNSET", "")
	assert.Equal(t, "", Resolve(nil, "", "missing", "PUBMED_ASSISTANT_TEST_UNSET"))
}
