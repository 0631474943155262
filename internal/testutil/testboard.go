package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/intake/internal/blob"
	"github.com/alexanderramin/intake/internal/board"
	"github.com/alexanderramin/intake/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB creates an in-memory SQLite database with migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestBoard creates a loaded board store over a fresh memory blob.
func NewTestBoard(t *testing.T) *board.Store {
	t.Helper()
	s := board.NewStore(blob.NewMemoryStore())
	require.NoError(t, s.Load(context.Background()))
	return s
}
