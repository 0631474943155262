package blob

import "context"

// MemoryStore is a map-backed Store for tests and ephemeral runs.
type MemoryStore struct {
	slots map[string]string

	// FailNextSet makes the next Set return this error, then resets.
	// Used by tests to exercise persistence-failure rollback.
	FailNextSet error
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, ok := s.slots[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, key string, value string) error {
	if err := s.FailNextSet; err != nil {
		s.FailNextSet = nil
		return err
	}
	s.slots[key] = value
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, key string) error {
	delete(s.slots, key)
	return nil
}
