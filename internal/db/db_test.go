package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenAndMigrate(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM _migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestRounds_Lifecycle(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES ('u1','alice','x','2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	require.NoError(t, InsertRound(ctx, db, "r1", "sess", ""))
	require.NoError(t, InsertRound(ctx, db, "r2", "sess", ""))
	require.NoError(t, ClaimSessionRounds(ctx, db, "sess", "u1"))

	tx, err := db.Begin()
	require.NoError(t, err)
	ok, err := FinishRound(ctx, tx, RoundRow{ID: "r1", Word: "apple", Attempts: 2, Solved: true})
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = FinishRound(ctx, tx, RoundRow{ID: "r1", Word: "apple", Attempts: 5})
	require.NoError(t, err)
	assert.False(t, ok, "finished rounds are not overwritten")
	require.NoError(t, tx.Commit())

	rows, err := RoundsByUser(ctx, db, "u1", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1, "unfinished rounds are not listed")
	assert.Equal(t, "r1", rows[0].ID)
	assert.Equal(t, "apple", rows[0].Word)
	assert.Equal(t, 2, rows[0].Attempts)
	assert.True(t, rows[0].Solved)
	assert.NotEmpty(t, rows[0].FinishedAt)
}

func TestFinishRound_BeforeInsert(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO users (id, username, password_hash, created_at) VALUES ('u1','alice','x','2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	tx, err := db.Begin()
	require.NoError(t, err)
	ok, err := FinishRound(ctx, tx, RoundRow{ID: "r1", SessionID: "sess", UserID: "u1", Word: "apple", Attempts: 1, Solved: true})
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, tx.Commit())

	// The late start must not reset the finished row.
	require.NoError(t, InsertRound(ctx, db, "r1", "sess", "u1"))

	rows, err := RoundsByUser(ctx, db, "u1", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "apple", rows[0].Word)
	assert.True(t, rows[0].Solved)
	assert.NotEmpty(t, rows[0].FinishedAt)
}
