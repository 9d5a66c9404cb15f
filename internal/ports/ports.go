package ports

import (
	"context"
	"time"

	"svw.info/wordgrid/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Dictionary answers word and prefix membership for the search engine.
// Implementations must be consistent: if IsWord(w) is true then IsPrefix
// must be true for every prefix of w, including w itself. An inconsistent
// implementation makes the search silently miss valid words.
type Dictionary interface {
	IsWord(candidate string) bool
	IsPrefix(candidate string) bool
}

// WordLister exposes the dictionary's words grouped by length.
type WordLister interface {
	WordsOfLength(n int) []string
}

// Solver enumerates every solution of a grid for an ordered length plan.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid, lengths []int) ([]domain.GridSolution, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast puzzle input checks (shape, letters, plan).
type Validator interface {
	Validate(ctx context.Context, g domain.Grid, lengths []int) (ok bool, conflicts []domain.Position, err error)
}

// Hinter reveals part of a valid next word up to a max tier.
type Hinter interface {
	Hint(ctx context.Context, g domain.Grid, lengths []int, max domain.HintTier) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
