// Package controller owns the per-screen state machines. Each controller is
// the only writer to its state cell; presentation reads snapshots and
// dispatches intents, never mutating state directly. Asynchronous operations
// run on the controller's scope, so a completion that lands after Close is
// discarded instead of mutating a dead state holder.
package controller

import (
	"context"

	"go.uber.org/zap"

	"NameForge/pkg/settings"
	"NameForge/pkg/state"
	"NameForge/pkg/utils"
)

// SettingsState is the settings screen snapshot. A nil APIKey means the
// stored key has not been loaded yet, which is what drives the loading view;
// an empty ErrorMessage means the last operation succeeded.
type SettingsState struct {
	Saving       bool
	APIKey       *string
	ErrorMessage string
}

// Loaded reports whether the stored key has been read.
func (s SettingsState) Loaded() bool {
	return s.APIKey != nil
}

// Key returns the API key, or the empty string when not yet loaded.
func (s SettingsState) Key() string {
	if s.APIKey == nil {
		return ""
	}
	return *s.APIKey
}

// SettingsController orchestrates load/update/save/retry against the
// settings store.
type SettingsController struct {
	store settings.Store
	cell  *state.Cell[SettingsState]
	scope *state.Scope
	log   *zap.Logger
}

// NewSettingsController creates a controller in the uninitialized state.
func NewSettingsController(store settings.Store, log *zap.Logger) *SettingsController {
	if log == nil {
		log = zap.NewNop()
	}
	return &SettingsController{
		store: store,
		cell:  state.NewCell(SettingsState{}),
		scope: state.NewScope(),
		log:   log,
	}
}

// State returns the current snapshot.
func (c *SettingsController) State() SettingsState {
	return c.cell.Get()
}

// Subscribe registers a latest-wins snapshot channel.
func (c *SettingsController) Subscribe() (<-chan SettingsState, int) {
	return c.cell.Subscribe()
}

// Unsubscribe removes a subscription.
func (c *SettingsController) Unsubscribe(id int) {
	c.cell.Unsubscribe(id)
}

// Initialize loads the persisted settings in the background. The controller
// does not dedupe repeated calls; triggering it once per screen entry is the
// caller's responsibility. On failure the key stays unloaded and the error
// message is surfaced.
func (c *SettingsController) Initialize() {
	c.scope.Go(func(ctx context.Context) {
		loaded, err := c.store.GetUserSettings(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			c.log.Warn("settings load failed", zap.Error(err))
			c.cell.Update(func(s SettingsState) SettingsState {
				s.ErrorMessage = err.Error()
				return s
			})
			return
		}
		c.log.Info("settings loaded", zap.String("api_key", utils.RedactKey(loaded.APIKey)))
		key := loaded.APIKey
		c.cell.Update(func(s SettingsState) SettingsState {
			s.APIKey = &key
			return s
		})
	})
}

// UpdateAPIKey replaces the key unconditionally. Empty is allowed; no
// validation is performed.
func (c *SettingsController) UpdateAPIKey(value string) {
	c.cell.Update(func(s SettingsState) SettingsState {
		s.APIKey = &value
		return s
	})
}

// Retry clears the error message and nothing else. Re-running the failed
// operation is the presentation layer's responsibility.
func (c *SettingsController) Retry() {
	c.cell.Update(func(s SettingsState) SettingsState {
		s.ErrorMessage = ""
		return s
	})
}

// SaveSettings persists the current key in the background. onFinished is
// invoked exactly once after a successful save, once saving has been marked
// done; it is never invoked on failure.
func (c *SettingsController) SaveSettings(onFinished func()) {
	if onFinished == nil {
		onFinished = func() {}
	}
	c.cell.Update(func(s SettingsState) SettingsState {
		s.Saving = true
		return s
	})
	key := c.cell.Get().Key()

	c.scope.Go(func(ctx context.Context) {
		err := c.store.SaveUserSettings(ctx, key)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			c.log.Warn("settings save failed", zap.Error(err))
			c.cell.Update(func(s SettingsState) SettingsState {
				s.Saving = false
				s.ErrorMessage = err.Error()
				return s
			})
			return
		}
		c.log.Info("settings saved", zap.String("api_key", utils.RedactKey(key)))
		c.cell.Update(func(s SettingsState) SettingsState {
			s.Saving = false
			return s
		})
		onFinished()
	})
}

// Close tears the controller down. Outstanding operations become no-ops.
func (c *SettingsController) Close() {
	c.scope.Close()
}
