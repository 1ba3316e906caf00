package settings

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store for tests and ephemeral runs.
type MemoryStore struct {
	mu       sync.RWMutex
	settings UserSettings

	// GetErr and SaveErr, when set, are returned by the corresponding
	// operation instead of touching the record.
	GetErr  error
	SaveErr error
}

// NewMemoryStore constructs a MemoryStore seeded with initial.
func NewMemoryStore(initial UserSettings) *MemoryStore {
	return &MemoryStore{settings: initial}
}

// GetUserSettings returns the current record.
func (m *MemoryStore) GetUserSettings(ctx context.Context) (UserSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetErr != nil {
		return UserSettings{}, m.GetErr
	}
	return m.settings, nil
}

// SaveUserSettings replaces the stored API key.
func (m *MemoryStore) SaveUserSettings(ctx context.Context, apiKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.settings.APIKey = apiKey
	return nil
}
