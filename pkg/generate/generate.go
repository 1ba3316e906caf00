// Package generate defines the name-generation service boundary and its two
// implementations: a simulated backend (fixed delay, constant result) and a
// gollm-backed LLM service.
package generate

import (
	"context"
	"time"
)

// Result is the outcome of one generation request.
type Result struct {
	ID        string        `json:"id"`
	Prompt    string        `json:"prompt"`
	Name      string        `json:"name"`
	Elapsed   time.Duration `json:"elapsed"`
	CreatedAt time.Time     `json:"created_at"`
}

// Service produces a name for a prompt. Failures are *GenerationError; the
// controller surfaces their message into state and never retries on its own.
type Service interface {
	GenerateName(ctx context.Context, prompt string) (*Result, error)
}

// GenerationError is a generation failure. Its message is surfaced verbatim
// into controller state.
type GenerationError struct {
	msg string
}

// NewGenerationError creates a GenerationError with the given message.
func NewGenerationError(msg string) *GenerationError {
	return &GenerationError{msg: msg}
}

func (e *GenerationError) Error() string {
	return e.msg
}
