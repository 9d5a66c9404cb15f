// Package generator creates solvable word-grid puzzles from the
// dictionary at a target difficulty.
package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/wordgrid/internal/domain"
	"svw.info/wordgrid/internal/ports"
)

// ErrDeadline is returned when no solvable puzzle was produced within the
// generation budget.
var ErrDeadline = errors.New("puzzle generation deadline exceeded")

// PuzzleGenerator builds puzzles by inserting dictionary words into the
// grid back-to-front, so that removing them front-to-back (with gravity)
// empties the grid. The wired solver verifies the result; it should be
// configured to stop at the first solution.
type PuzzleGenerator struct {
	Dict   ports.WordLister
	Solver ports.Solver
}

// New wires a generator over the given word source and verifying solver.
func New(dict ports.WordLister, s ports.Solver) *PuzzleGenerator {
	return &PuzzleGenerator{Dict: dict, Solver: s}
}

func dims(d domain.Difficulty) (rows, cols int) {
	switch d {
	case domain.Easy:
		return 3, 2
	case domain.Medium:
		return 3, 3
	case domain.Hard:
		return 4, 3
	default:
		return 4, 4 // Expert
	}
}

const (
	minWordLen = 3
	maxWordLen = 8
)

// partition splits the grid area into word lengths between minWordLen and
// maxWordLen. Every split leaves either nothing or at least another
// minimum-length word's worth of letters.
func partition(rng *rand.Rand, area int) []int {
	var parts []int
	rem := area
	for rem > 0 {
		var choices []int
		hi := maxWordLen
		if rem < hi {
			hi = rem
		}
		for n := minWordLen; n <= hi; n++ {
			if rem-n == 0 || rem-n >= minWordLen {
				choices = append(choices, n)
			}
		}
		n := choices[rng.Intn(len(choices))]
		parts = append(parts, n)
		rem -= n
	}
	return parts
}

func (g *PuzzleGenerator) pickWords(rng *rand.Rand, lengths []int) ([]string, bool) {
	words := make([]string, len(lengths))
	for i, n := range lengths {
		pool := g.Dict.WordsOfLength(n)
		if len(pool) == 0 {
			return nil, false
		}
		words[i] = pool[rng.Intn(len(pool))]
	}
	return words, true
}

// Generate creates a solvable puzzle using seed and target difficulty.
func (g *PuzzleGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	rows, cols := dims(diff)
	deadline := start.Add(900 * time.Millisecond)
	nodes := 0

	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}

		lengths := partition(rng, rows*cols)
		words, ok := g.pickWords(rng, lengths)
		if !ok {
			continue
		}
		grid, ok := buildGrid(rng, rows, cols, words, deadline)
		if !ok {
			continue
		}

		sols, st, err := g.Solver.Solve(ctx, grid, lengths)
		nodes += st.Nodes
		if err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		if len(sols) == 0 {
			continue
		}

		p := &domain.Puzzle{
			Seed:       seed,
			Difficulty: diff,
			Grid:       grid,
			Lengths:    lengths,
			CreatedAt:  time.Now().UnixNano(),
		}
		return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
	}
	return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrDeadline
}
