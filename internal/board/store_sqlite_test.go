package board_test

import (
	"context"
	"testing"

	"github.com/alexanderramin/intake/internal/blob"
	"github.com/alexanderramin/intake/internal/board"
	"github.com/alexanderramin/intake/internal/domain"
	"github.com/alexanderramin/intake/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SurvivesRestartOverSQLite(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := blob.NewSQLiteStore(database)
	ctx := context.Background()

	s := board.NewStore(store)
	require.NoError(t, s.Load(ctx))

	m := mustCreate(t, s, "Alex Tan")
	require.NoError(t, s.Move(ctx, m.ID, domain.StageSendToTherapist))

	// Simulate a process restart: a fresh store over the same database.
	restored := board.NewStore(blob.NewSQLiteStore(database))
	require.NoError(t, restored.Load(ctx))

	got := restored.List(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, m.ID, got[0].ID)
	assert.Equal(t, domain.StageSendToTherapist, got[0].Stage)
	assert.Equal(t, 1, restored.CountByStage(ctx, domain.StageSendToTherapist))
}
