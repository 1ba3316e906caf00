package generate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/teilomillet/gollm"
	"go.uber.org/zap"

	"NameForge/pkg/utils"
)

// KeySource returns the API key for a generation call. The LLM service reads
// the key at call time so edits on the settings screen take effect without a
// restart.
type KeySource func(ctx context.Context) (string, error)

// LLMOptions configures the gollm-backed generator.
type LLMOptions struct {
	Provider string // "openai", "anthropic", "google", "ollama", or "" for auto-detect
	Model    string
	BaseURL  string
	Retry    utils.RetryConfig
}

// LLM generates names through a gollm provider. Transport failures are
// retried with exponential backoff inside the service; a failure that
// survives the retries is returned as *GenerationError.
type LLM struct {
	opts LLMOptions
	keys KeySource
	log  *zap.Logger
}

// NewLLM creates the gollm-backed generation service.
func NewLLM(opts LLMOptions, keys KeySource, log *zap.Logger) *LLM {
	if opts.Retry.MaxRetries == 0 && opts.Retry.InitialDelay == 0 {
		opts.Retry = utils.DefaultRetryConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LLM{opts: opts, keys: keys, log: log}
}

// GenerateName asks the configured model for a single name.
func (l *LLM) GenerateName(ctx context.Context, prompt string) (*Result, error) {
	start := time.Now()

	apiKey, err := l.keys(ctx)
	if err != nil {
		return nil, NewGenerationError(fmt.Sprintf("load API key: %v", err))
	}
	if apiKey == "" {
		return nil, NewGenerationError("no API key configured — set one on the settings screen")
	}

	instance, err := l.newInstance(apiKey)
	if err != nil {
		return nil, NewGenerationError(fmt.Sprintf("init provider: %v", err))
	}

	request := gollm.NewPrompt(buildNamePrompt(prompt))

	var raw string
	err = utils.ExecuteWithRetryContext(ctx, func() error {
		out, genErr := instance.Generate(ctx, request)
		if genErr != nil {
			l.log.Warn("generation attempt failed", zap.Error(genErr))
			return genErr
		}
		raw = out
		return nil
	}, l.opts.Retry)
	if err != nil {
		return nil, NewGenerationError(fmt.Sprintf("generate name: %v", err))
	}

	name := cleanName(raw)
	if name == "" {
		return nil, NewGenerationError("model returned an empty name")
	}

	return &Result{
		ID:        uuid.NewString(),
		Prompt:    prompt,
		Name:      name,
		Elapsed:   time.Since(start),
		CreatedAt: start,
	}, nil
}

// newInstance builds a configured gollm.LLM for one call. The instance is
// rebuilt per call because the key can change between calls.
func (l *LLM) newInstance(apiKey string) (gollm.LLM, error) {
	provider := mapProvider(l.opts.Provider, apiKey, l.opts.BaseURL)

	opts := []gollm.ConfigOption{
		gollm.SetProvider(provider),
		gollm.SetModel(l.opts.Model),
		gollm.SetAPIKey(apiKey),
		gollm.SetLogLevel(gollm.LogLevelOff),
		gollm.SetMaxRetries(0), // retries handled by ExecuteWithRetryContext
	}
	if provider == "ollama" && l.opts.BaseURL != "" {
		opts = append(opts, gollm.SetOllamaEndpoint(l.opts.BaseURL))
	}

	instance, err := gollm.NewLLM(opts...)
	if err != nil {
		return nil, fmt.Errorf("gollm init [%s/%s]: %w", provider, l.opts.Model, err)
	}

	if l.opts.BaseURL != "" && provider != "ollama" {
		instance.SetEndpoint(strings.TrimRight(l.opts.BaseURL, "/") + "/chat/completions")
	}

	return instance, nil
}

// mapProvider resolves the gollm provider name from the explicit setting, the
// API key prefix, or the base URL.
func mapProvider(provider, apiKey, baseURL string) string {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "anthropic":
		return "anthropic"
	case "openai":
		return "openai"
	case "google":
		return "google"
	case "ollama":
		return "ollama"
	}
	if strings.HasPrefix(apiKey, "sk-ant-") {
		return "anthropic"
	}
	if strings.Contains(baseURL, ":11434") {
		return "ollama"
	}
	return "openai"
}

// buildNamePrompt wraps the user's prompt in the instruction template.
func buildNamePrompt(prompt string) string {
	return fmt.Sprintf(
		"Suggest one evocative name for the following. Respond with the name only, no explanation.\n\n%s",
		prompt,
	)
}

// cleanName normalizes model output to a single bare name.
func cleanName(raw string) string {
	name := strings.TrimSpace(raw)
	if i := strings.IndexByte(name, '\n'); i >= 0 {
		name = name[:i]
	}
	return strings.Trim(name, `"'. `)
}
