package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// GameResult — одна завершённая партия.
type GameResult struct {
	SessionID  string
	Attempts   int
	StartedAt  time.Time
	FinishedAt time.Time
}

type ResultsStore struct {
	db *pgxpool.Pool
}

func NewResultsStore(db *pgxpool.Pool) *ResultsStore {
	return &ResultsStore{db: db}
}

func (s *ResultsStore) Record(ctx context.Context, r GameResult) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO game_results (session_id, attempts, started_at, finished_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (session_id) DO NOTHING
	`, r.SessionID, r.Attempts, r.StartedAt, r.FinishedAt)
	return err
}

func (s *ResultsStore) Recent(ctx context.Context, limit int) ([]GameResult, error) {
	rows, err := s.db.Query(ctx, `
		SELECT session_id, attempts, started_at, finished_at
		FROM game_results
		ORDER BY finished_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GameResult
	for rows.Next() {
		var r GameResult
		if err := rows.Scan(&r.SessionID, &r.Attempts, &r.StartedAt, &r.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
