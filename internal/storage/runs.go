package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run is one finished game with the context needed to replay or compare it.
type Run struct {
	ID         int64
	GameID     string
	Score      int
	Level      int
	Platforms  int // Platforms spawned during the run
	Seed       int64
	Difficulty string
	Duration   time.Duration
	CreatedAt  time.Time
}

// SaveRun records the run and its score in one transaction.
// Returns the ID of the inserted run.
func (s *Store) SaveRun(r Run) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	scoreID, err := insertScore(tx, r.GameID, r.Score)
	if err != nil {
		return 0, err
	}

	res, err := tx.Exec(
		`INSERT INTO runs (score_id, game_id, score, level, platforms, seed, difficulty, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		scoreID, r.GameID, r.Score, r.Level, r.Platforms, r.Seed, r.Difficulty, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

const runColumns = `id, game_id, score, level, platforms, seed, difficulty, duration_ms, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var durationMs int64
	var createdAt any
	err := row.Scan(&r.ID, &r.GameID, &r.Score, &r.Level, &r.Platforms, &r.Seed, &r.Difficulty, &durationMs, &createdAt)
	if err != nil {
		return r, err
	}
	r.Duration = time.Duration(durationMs) * time.Millisecond
	r.CreatedAt = parseTimestamp(createdAt)
	return r, nil
}

// RecentRuns returns the latest runs for the game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// BestRun returns the highest-scoring run, or nil if none exist.
// Ties go to the earlier run.
func (s *Store) BestRun(gameID string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT 1`,
		gameID,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	return &r, nil
}
