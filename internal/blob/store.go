// Package blob provides the key-value snapshot store backing the board.
// Exactly one slot per key; the board store owns its slot exclusively.
package blob

import "context"

// Store is a named-slot blob store with get/set/clear semantics.
type Store interface {
	// Get returns the value for key. The second return is false when
	// the slot has never been written or has been cleared.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set overwrites the slot for key with value.
	Set(ctx context.Context, key string, value string) error
	// Clear deletes the slot entirely. Clearing an absent slot is a no-op.
	Clear(ctx context.Context, key string) error
}
