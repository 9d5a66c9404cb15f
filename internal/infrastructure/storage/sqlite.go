package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"svw.info/wordgrid/internal/domain"
)

// SQLite persists puzzles in a single sqlite table. Callers must have a
// driver registered under the "sqlite" name (modernc.org/sqlite, imported
// for side effects by the binary).
type SQLite struct{ db *sql.DB }

// NewSQLite opens (creating if needed) the puzzle database at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS puzzles (
			puzzle_id TEXT PRIMARY KEY,
			name TEXT,
			notes TEXT,
			seed BIGINT,
			difficulty INTEGER,
			grid_json TEXT,
			lengths_json TEXT,
			created_at BIGINT
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

// Save persists a puzzle. If the ID is empty, a UUID is generated.
func (s *SQLite) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil {
		return errors.New("invalid puzzle: nil")
	}
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixNano()
	}
	gridJSON, err := json.Marshal(p.Grid)
	if err != nil {
		return err
	}
	lengthsJSON, err := json.Marshal(p.Lengths)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO puzzles (
			puzzle_id, name, notes, seed, difficulty,
			grid_json, lengths_json, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Notes, p.Seed, int(p.Difficulty),
		string(gridJSON), string(lengthsJSON), p.CreatedAt,
	)
	return err
}

func (s *SQLite) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT puzzle_id, name, notes, seed, difficulty, grid_json, lengths_json, created_at
		FROM puzzles WHERE puzzle_id = ?`, id)

	var p domain.Puzzle
	var diff int
	var gridJSON, lengthsJSON string
	err := row.Scan(&p.ID, &p.Name, &p.Notes, &p.Seed, &diff, &gridJSON, &lengthsJSON, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.Difficulty = domain.Difficulty(diff)
	if err := json.Unmarshal([]byte(gridJSON), &p.Grid); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(lengthsJSON), &p.Lengths); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *SQLite) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT puzzle_id, name, difficulty, created_at
		FROM puzzles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PuzzleMeta
	for rows.Next() {
		var m domain.PuzzleMeta
		var diff int
		if err := rows.Scan(&m.ID, &m.Name, &diff, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Difficulty = domain.Difficulty(diff)
		out = append(out, m)
	}
	return out, rows.Err()
}
