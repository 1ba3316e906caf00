package generate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMMissingKey(t *testing.T) {
	svc := NewLLM(LLMOptions{Model: "gpt-4o-mini"}, func(ctx context.Context) (string, error) {
		return "", nil
	}, nil)

	_, err := svc.GenerateName(context.Background(), "a bakery")
	require.Error(t, err)
	var genErr *GenerationError
	assert.True(t, errors.As(err, &genErr))
	assert.Contains(t, err.Error(), "no API key configured")
}

func TestLLMKeySourceFailure(t *testing.T) {
	svc := NewLLM(LLMOptions{Model: "gpt-4o-mini"}, func(ctx context.Context) (string, error) {
		return "", errors.New("db closed")
	}, nil)

	_, err := svc.GenerateName(context.Background(), "a bakery")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load API key")
}

func TestMapProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		apiKey   string
		baseURL  string
		want     string
	}{
		{"explicit anthropic", "anthropic", "", "", "anthropic"},
		{"explicit openai", "OpenAI", "sk-ant-xyz", "", "openai"},
		{"explicit ollama", "ollama", "", "", "ollama"},
		{"explicit google", "google", "", "", "google"},
		{"anthropic key prefix", "", "sk-ant-xyz", "", "anthropic"},
		{"ollama port in url", "", "key", "http://localhost:11434", "ollama"},
		{"default", "", "sk-proj-xyz", "", "openai"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapProvider(tt.provider, tt.apiKey, tt.baseURL))
		})
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Velvet Bean", "Velvet Bean"},
		{"  Velvet Bean \n", "Velvet Bean"},
		{"\"Velvet Bean\"", "Velvet Bean"},
		{"'Velvet Bean.'", "Velvet Bean"},
		{"Velvet Bean\nIt evokes warmth and...", "Velvet Bean"},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanName(tt.raw), "raw=%q", tt.raw)
	}
}

func TestBuildNamePromptContainsInput(t *testing.T) {
	p := buildNamePrompt("a quiet bookshop")
	assert.Contains(t, p, "a quiet bookshop")
	assert.Contains(t, p, "name only")
}
