// Package settings defines the durable user-settings boundary: the persisted
// record, the store contract, and its SQLite and in-memory implementations.
package settings

import "context"

// KeyAPIKey is the key-value entry the API key is stored under.
const KeyAPIKey = "api_key"

// UserSettings is the persisted settings record.
type UserSettings struct {
	APIKey string `json:"api_key"`
}

// Store is the persistence contract consumed by the settings controller.
// Both operations may fail with *StorageError. The store performs no
// validation; saving an empty key is allowed. Writes are durable and visible
// to subsequent reads within the same process.
type Store interface {
	GetUserSettings(ctx context.Context) (UserSettings, error)
	SaveUserSettings(ctx context.Context, apiKey string) error
}

// StorageError is a generic persistence failure. Its message is surfaced
// verbatim into controller state.
type StorageError struct {
	msg string
}

// NewStorageError creates a StorageError with the given message.
func NewStorageError(msg string) *StorageError {
	return &StorageError{msg: msg}
}

func (e *StorageError) Error() string {
	return e.msg
}
