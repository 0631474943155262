// Package board owns the canonical ordered collection of intake members
// and keeps the blob store snapshot synchronized with every mutation.
package board

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/intake/internal/blob"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/google/uuid"
)

// SnapshotKey is the blob slot holding the serialized member sequence.
const SnapshotKey = "members"

var (
	// ErrNotFound is returned when an update targets a vanished member.
	ErrNotFound = errors.New("member not found")
	// ErrInvalidStage is returned when a move targets an unknown stage.
	ErrInvalidStage = errors.New("invalid stage")
)

// Store holds the in-memory member sequence for the lifetime of the
// session. Records keep insertion order; edits and moves never reorder.
// All mutations persist the full snapshot before committing to memory,
// so the blob store and the sequence can never diverge.
type Store struct {
	blob    blob.Store
	members []*domain.Member
	now     func() time.Time
	newID   func() string
}

// NewStore creates a Store over the given blob store. Call Load before
// any other operation.
func NewStore(b blob.Store) *Store {
	return &Store{
		blob:  b,
		now:   func() time.Time { return time.Now().UTC() },
		newID: func() string { return uuid.New().String() },
	}
}

// Load hydrates the member sequence from the blob store. An absent or
// unparsable snapshot yields an empty sequence, never an error: corrupt
// local state must not take the session down.
func (s *Store) Load(ctx context.Context) error {
	raw, ok, err := s.blob.Get(ctx, SnapshotKey)
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	if !ok {
		s.members = nil
		return nil
	}
	members, err := decodeSnapshot(raw)
	if err != nil {
		s.members = nil
		return nil
	}
	s.members = members
	return nil
}

// Create validates the candidate and appends a new member in the
// unclaimed stage. On validation failure it returns the field errors
// and makes no mutation.
func (s *Store) Create(ctx context.Context, cand domain.Candidate) (*domain.Member, domain.FieldErrors, error) {
	fields, ferrs := domain.Validate(cand)
	if ferrs != nil {
		return nil, ferrs, nil
	}

	now := s.now()
	m := &domain.Member{
		ID:        s.newID(),
		Stage:     domain.StageUnclaimed,
		CreatedAt: now,
	}
	m.ApplyFields(fields, now)

	next := append(s.snapshot(), m)
	if err := s.persist(ctx, next); err != nil {
		return nil, nil, err
	}
	s.members = next
	return copyMember(m), nil, nil
}

// Update validates the candidate and replaces the editable fields of
// the member with the given id. ID and stage are preserved. Returns
// ErrNotFound when the id has vanished.
func (s *Store) Update(ctx context.Context, id string, cand domain.Candidate) (*domain.Member, domain.FieldErrors, error) {
	fields, ferrs := domain.Validate(cand)
	if ferrs != nil {
		return nil, ferrs, nil
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, nil, fmt.Errorf("updating member %s: %w", id, ErrNotFound)
	}

	next := s.snapshot()
	updated := copyMember(next[idx])
	updated.ApplyFields(fields, s.now())
	next[idx] = updated

	if err := s.persist(ctx, next); err != nil {
		return nil, nil, err
	}
	s.members = next
	return copyMember(updated), nil, nil
}

// Delete removes the member with the given id. A vanished id is a
// silent no-op, not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	next := s.snapshot()
	next = append(next[:idx], next[idx+1:]...)

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.members = next
	return nil
}

// Move relocates the member to the given stage. An unknown stage is
// rejected before any mutation. A vanished id is a silent no-op: a
// drop may land after the dragged card was deleted, and that race must
// not fail.
func (s *Store) Move(ctx context.Context, id string, stage domain.Stage) error {
	if !domain.ValidStages[stage] {
		return fmt.Errorf("moving member %s to %q: %w", id, stage, ErrInvalidStage)
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil
	}

	next := s.snapshot()
	moved := copyMember(next[idx])
	moved.Stage = stage
	moved.UpdatedAt = s.now()
	next[idx] = moved

	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.members = next
	return nil
}

// Reset clears the blob slot and empties the in-memory sequence in one
// user-visible action.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.blob.Clear(ctx, SnapshotKey); err != nil {
		return fmt.Errorf("resetting board: %w", err)
	}
	s.members = nil
	return nil
}

// Get returns the member with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*domain.Member, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("member %s: %w", id, ErrNotFound)
	}
	return copyMember(s.members[idx]), nil
}

// List returns every member in store (insertion) order. The returned
// records are copies; callers cannot corrupt the sequence through them.
func (s *Store) List(ctx context.Context) []*domain.Member {
	out := make([]*domain.Member, len(s.members))
	for i, m := range s.members {
		out[i] = copyMember(m)
	}
	return out
}

// ListByStage returns the members at the given stage, in store order.
func (s *Store) ListByStage(ctx context.Context, stage domain.Stage) []*domain.Member {
	var out []*domain.Member
	for _, m := range s.members {
		if m.Stage == stage {
			out = append(out, copyMember(m))
		}
	}
	return out
}

// CountByStage returns the live count of members at the given stage.
// Recomputed from the sequence on every call; there is no cached
// counter to go stale.
func (s *Store) CountByStage(ctx context.Context, stage domain.Stage) int {
	n := 0
	for _, m := range s.members {
		if m.Stage == stage {
			n++
		}
	}
	return n
}

// persist serializes the candidate sequence and overwrites the blob
// slot. Callers commit to s.members only after persist succeeds.
func (s *Store) persist(ctx context.Context, members []*domain.Member) error {
	raw, err := encodeSnapshot(members)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := s.blob.Set(ctx, SnapshotKey, raw); err != nil {
		return fmt.Errorf("persisting snapshot: %w", err)
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	for i, m := range s.members {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// snapshot returns a shallow copy of the member slice so mutations can
// be staged without touching the committed sequence.
func (s *Store) snapshot() []*domain.Member {
	out := make([]*domain.Member, len(s.members))
	copy(out, s.members)
	return out
}

func copyMember(m *domain.Member) *domain.Member {
	c := *m
	return &c
}
