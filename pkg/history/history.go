// Package history persists generation results for later inspection. Writes
// are best-effort: a failed history write is logged by the caller and never
// surfaced into UI state.
package history

import (
	"context"

	"NameForge/pkg/generate"
)

// Repository stores and lists generation results.
type Repository interface {
	Save(ctx context.Context, result *generate.Result) error
	List(ctx context.Context, limit int) ([]generate.Result, error)
}
