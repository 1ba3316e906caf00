package controller

import (
	"context"

	"go.uber.org/zap"

	"NameForge/pkg/generate"
	"NameForge/pkg/history"
	"NameForge/pkg/state"
)

// NameGeneratorState is the generator screen snapshot. Generating and
// ErrorMessage are never both set in a published snapshot: a failure clears
// the in-flight flag in the same atomic replace that records the error.
type NameGeneratorState struct {
	Prompt        string
	GeneratedText string
	Generating    bool
	ErrorMessage  string
}

// NameGeneratorController orchestrates generation requests against the
// injected generation service.
type NameGeneratorController struct {
	service generate.Service
	records history.Repository
	cell    *state.Cell[NameGeneratorState]
	scope   *state.Scope
	log     *zap.Logger
}

// NewNameGeneratorController creates an idle controller. records may be nil;
// when present, successful results are persisted best-effort.
func NewNameGeneratorController(service generate.Service, records history.Repository, log *zap.Logger) *NameGeneratorController {
	if log == nil {
		log = zap.NewNop()
	}
	return &NameGeneratorController{
		service: service,
		records: records,
		cell:    state.NewCell(NameGeneratorState{}),
		scope:   state.NewScope(),
		log:     log,
	}
}

// State returns the current snapshot.
func (c *NameGeneratorController) State() NameGeneratorState {
	return c.cell.Get()
}

// Subscribe registers a latest-wins snapshot channel.
func (c *NameGeneratorController) Subscribe() (<-chan NameGeneratorState, int) {
	return c.cell.Subscribe()
}

// Unsubscribe removes a subscription.
func (c *NameGeneratorController) Unsubscribe(id int) {
	c.cell.Unsubscribe(id)
}

// UpdatePrompt replaces the prompt unconditionally.
func (c *NameGeneratorController) UpdatePrompt(value string) {
	c.cell.Update(func(s NameGeneratorState) NameGeneratorState {
		s.Prompt = value
		return s
	})
}

// Retry clears the error message without altering prompt or generated text.
func (c *NameGeneratorController) Retry() {
	c.cell.Update(func(s NameGeneratorState) NameGeneratorState {
		s.ErrorMessage = ""
		return s
	})
}

// GenerateName runs one generation request in the background. On success the
// generated text is replaced; on failure the error message is surfaced and
// the previous generated text is kept.
func (c *NameGeneratorController) GenerateName() {
	c.cell.Update(func(s NameGeneratorState) NameGeneratorState {
		s.Generating = true
		return s
	})
	prompt := c.cell.Get().Prompt

	c.scope.Go(func(ctx context.Context) {
		result, err := c.service.GenerateName(ctx, prompt)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			c.log.Warn("generation failed", zap.String("prompt", prompt), zap.Error(err))
			c.cell.Update(func(s NameGeneratorState) NameGeneratorState {
				s.Generating = false
				s.ErrorMessage = err.Error()
				return s
			})
			return
		}
		c.log.Info("name generated",
			zap.String("id", result.ID),
			zap.Duration("elapsed", result.Elapsed))
		c.cell.Update(func(s NameGeneratorState) NameGeneratorState {
			s.Generating = false
			s.GeneratedText = result.Name
			return s
		})
		if c.records != nil {
			if err := c.records.Save(ctx, result); err != nil {
				// Best-effort: history must never surface into UI state.
				c.log.Warn("history write failed", zap.Error(err))
			}
		}
	})
}

// Close tears the controller down. Outstanding operations become no-ops.
func (c *NameGeneratorController) Close() {
	c.scope.Close()
}
