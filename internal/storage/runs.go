package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run outcomes.
const (
	OutcomeWon      = "won"
	OutcomeGameOver = "game_over"
	OutcomeQuit     = "quit"
)

// RunRecord summarizes one finished (or abandoned) session.
type RunRecord struct {
	ID        string // UUID, generated on save when empty
	GameID    string
	Outcome   string
	Score     int
	Lives     int
	Kills     int
	GoalScore int
	Ticks     int
	CreatedAt time.Time
}

// SaveRun records a run and returns its ID.
func (s *Store) SaveRun(run RunRecord) (string, error) {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.Outcome == "" {
		return "", fmt.Errorf("storage: run %s has no outcome", run.ID)
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, outcome, score, lives, kills, goal_score, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.GameID, run.Outcome, run.Score, run.Lives, run.Kills, run.GoalScore, run.Ticks,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.ID, nil
}

// RecentRuns retrieves the most recent runs for the given game, newest first.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, outcome, score, lives, kills, goal_score, ticks, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&r.Outcome,
			&r.Score,
			&r.Lives,
			&r.Kills,
			&r.GoalScore,
			&r.Ticks,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
