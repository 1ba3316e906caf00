package generate

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultSimulatedDelay is the fixed latency of the placeholder backend.
const DefaultSimulatedDelay = time.Second

// DefaultPlaceholderName is the constant result of the placeholder backend.
const DefaultPlaceholderName = "Generated Name"

// Simulated is the placeholder backend used until a real generator is
// configured. It waits a fixed delay and returns a constant name; the only
// failure mode is context cancellation.
type Simulated struct {
	Delay time.Duration
	Name  string
}

// NewSimulated returns a Simulated service with the default delay and result.
func NewSimulated() *Simulated {
	return &Simulated{Delay: DefaultSimulatedDelay, Name: DefaultPlaceholderName}
}

// GenerateName waits the configured delay and returns the constant result.
func (s *Simulated) GenerateName(ctx context.Context, prompt string) (*Result, error) {
	start := time.Now()

	delay := s.Delay
	if delay <= 0 {
		delay = DefaultSimulatedDelay
	}
	name := s.Name
	if name == "" {
		name = DefaultPlaceholderName
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	return &Result{
		ID:        uuid.NewString(),
		Prompt:    prompt,
		Name:      name,
		Elapsed:   time.Since(start),
		CreatedAt: start,
	}, nil
}
