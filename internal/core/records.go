package core

import "context"

// RecordStore is a key-value persistence collaborator for per-game records
// such as the best score. Implementations live in the storage packages.
type RecordStore interface {
	// Get returns the stored value for key and whether it exists.
	Get(ctx context.Context, key string) (int, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value int) error
}
