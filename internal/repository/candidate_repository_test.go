package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/candidate-registry/internal/database"
	"github.com/iliyamo/candidate-registry/internal/model"
)

// setupDB opens a fresh SQLite file with the full schema and seeded parties.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.EnsureSchema(db))
	return db
}

func ptr[T any](v T) *T { return &v }

func TestCandidateCreateAssignsIDs(t *testing.T) {
	repo := NewCandidateRepo(setupDB(t))
	ctx := context.Background()

	first := &model.Candidate{FirstName: "Ada", LastName: "Lovelace", IndustryConnected: 1}
	require.NoError(t, repo.Create(ctx, first))
	assert.Positive(t, first.ID)

	second := &model.Candidate{FirstName: "Alan", LastName: "Turing", IndustryConnected: 0}
	require.NoError(t, repo.Create(ctx, second))
	assert.Greater(t, second.ID, first.ID, "ids are database-assigned and never reused")
}

func TestCandidateListWithParty(t *testing.T) {
	repo := NewCandidateRepo(setupDB(t))
	ctx := context.Background()

	// Empty table still yields a non-nil slice so the API serializes [].
	items, err := repo.ListWithParty(ctx)
	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Empty(t, items)

	require.NoError(t, repo.Create(ctx, &model.Candidate{FirstName: "Ada", LastName: "Lovelace", IndustryConnected: 1, PartyID: ptr(int64(1))}))
	require.NoError(t, repo.Create(ctx, &model.Candidate{FirstName: "Alan", LastName: "Turing", IndustryConnected: 0}))

	items, err = repo.ListWithParty(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.NotNil(t, items[0].PartyName)
	assert.Equal(t, "Progressive Alliance", *items[0].PartyName)
	assert.Nil(t, items[1].PartyID)
	assert.Nil(t, items[1].PartyName, "no party reference joins to a NULL name")
}

func TestCandidateGetWithParty(t *testing.T) {
	repo := NewCandidateRepo(setupDB(t))
	ctx := context.Background()

	cand := &model.Candidate{FirstName: "Ada", LastName: "Lovelace", IndustryConnected: 1, PartyID: ptr(int64(2))}
	require.NoError(t, repo.Create(ctx, cand))

	got, err := repo.GetWithParty(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "Lovelace", got.LastName)
	assert.Equal(t, int64(1), got.IndustryConnected)
	require.NotNil(t, got.PartyName)
	assert.Equal(t, "Conservative Union", *got.PartyName)
}

func TestCandidateGetWithPartyMissing(t *testing.T) {
	repo := NewCandidateRepo(setupDB(t))

	// A missing row is not an error; both returns are nil.
	got, err := repo.GetWithParty(context.Background(), "999")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCandidateGetWithDanglingPartyReference(t *testing.T) {
	repo := NewCandidateRepo(setupDB(t))
	ctx := context.Background()

	// party_id is a soft reference; an unmatched id joins to a NULL name.
	cand := &model.Candidate{FirstName: "Ada", LastName: "Lovelace", IndustryConnected: 0, PartyID: ptr(int64(999))}
	require.NoError(t, repo.Create(ctx, cand))

	got, err := repo.GetWithParty(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.PartyID)
	assert.Equal(t, int64(999), *got.PartyID)
	assert.Nil(t, got.PartyName)
}

func TestCandidateDeleteByID(t *testing.T) {
	repo := NewCandidateRepo(setupDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Candidate{FirstName: "Ada", LastName: "Lovelace", IndustryConnected: 1}))

	changes, err := repo.DeleteByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), changes)

	// Deleting the same id again succeeds with zero changes.
	changes, err = repo.DeleteByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), changes)
}
