// internal/db/rounds.go
//
// Round history.
//
// A row is inserted when a round starts (word left empty so an active answer
// never sits in the database) and completed when the round is solved or
// replaced by the next word.

package db

import (
	"context"
	"database/sql"
	"time"
)

// RoundRow is one persisted round.
type RoundRow struct {
	ID         string `json:"id"`
	SessionID  string `json:"-"`
	UserID     string `json:"-"`
	Word       string `json:"word,omitempty"`
	Attempts   int    `json:"attempts"`
	Solved     bool   `json:"solved"`
	Hinted     bool   `json:"hinted"`
	StartedAt  string `json:"startedAt"`
	FinishedAt string `json:"finishedAt,omitempty"`
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// InsertRound records the start of a round. A row already written by
// FinishRound is left alone.
func InsertRound(ctx context.Context, db *sql.DB, id, sessionID, userID string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO rounds (id, session_id, user_id, started_at) VALUES (?,?,?,?)
		 ON CONFLICT(id) DO NOTHING`,
		id, sessionID, nullable(userID), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// FinishRound stores the outcome of a round, creating the row if InsertRound
// has not run yet. Only unfinished rows are updated, so a solved round that is
// later replaced keeps its first result. Reports whether anything was written.
func FinishRound(ctx context.Context, tx *sql.Tx, r RoundRow) (bool, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := tx.ExecContext(ctx,
		`INSERT INTO rounds (id, session_id, user_id, word, attempts, solved, hinted, started_at, finished_at)
		 VALUES (?,?,?,?,?,?,?,?,?)
		 ON CONFLICT(id) DO UPDATE SET
		   word=excluded.word, attempts=excluded.attempts, solved=excluded.solved,
		   hinted=excluded.hinted, finished_at=excluded.finished_at
		 WHERE rounds.finished_at IS NULL`,
		r.ID, r.SessionID, nullable(r.UserID), r.Word, r.Attempts, r.Solved, r.Hinted, now, now,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

// RoundsByUser lists a user's finished rounds, newest first.
func RoundsByUser(ctx context.Context, db *sql.DB, userID string, limit int) ([]RoundRow, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.QueryContext(ctx, `
		SELECT id, word, attempts, solved, hinted, started_at, COALESCE(finished_at,'')
		FROM rounds
		WHERE user_id=? AND finished_at IS NOT NULL
		ORDER BY started_at DESC, finished_at DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RoundRow, 0, limit)
	for rows.Next() {
		r := RoundRow{UserID: userID}
		if err := rows.Scan(&r.ID, &r.Word, &r.Attempts, &r.Solved, &r.Hinted, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// ClaimSessionRounds attaches a guest session's rounds to a user account.
func ClaimSessionRounds(ctx context.Context, db *sql.DB, sessionID, userID string) error {
	if sessionID == "" || userID == "" {
		return nil
	}
	_, err := db.ExecContext(ctx,
		`UPDATE rounds SET user_id=? WHERE session_id=? AND user_id IS NULL`, userID, sessionID)
	return err
}
