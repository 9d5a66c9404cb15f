// Package solver implements the recursive search-and-backtrack engine
// that enumerates every way to carve a letter grid into an ordered
// sequence of dictionary words.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/wordgrid/internal/domain"
	"svw.info/wordgrid/internal/grids"
	"svw.info/wordgrid/internal/ports"
)

// ErrEmptyGrid is returned when Solve is called without at least one
// row and one column.
var ErrEmptyGrid = errors.New("grid must have at least one row and one column")

// Search enumerates solutions depth-first. Words are found one at a time
// in plan order; each found word is cleared from the grid and the
// remaining letters fall before the next word is searched for.
type Search struct {
	dict ports.Dictionary

	// Limit stops the search after this many full solutions (0 = all).
	Limit int
}

// New wires a Search over the given dictionary.
func New(dict ports.Dictionary) *Search {
	return &Search{dict: dict}
}

// Solve returns every solution of g for the ordered length plan. An empty
// plan yields an empty result. Identical solutions reached through
// distinct discovery paths are all reported; callers wanting set
// semantics must dedupe themselves.
func (s *Search) Solve(ctx context.Context, g domain.Grid, lengths []int) ([]domain.GridSolution, ports.Stats, error) {
	start := time.Now()
	if g.Rows() == 0 || g.Cols() == 0 {
		return nil, ports.Stats{}, ErrEmptyGrid
	}
	for i, row := range g {
		if len(row) != g.Cols() {
			return nil, ports.Stats{}, fmt.Errorf("grid row %d has %d columns, want %d", i, len(row), g.Cols())
		}
	}
	for _, n := range lengths {
		if n <= 0 {
			return nil, ports.Stats{}, fmt.Errorf("word length must be positive, got %d", n)
		}
	}
	if len(lengths) == 0 {
		return nil, ports.Stats{Duration: time.Since(start)}, nil
	}

	r := &run{ctx: ctx, dict: s.dict, limit: s.Limit}
	sols := r.findAll(grids.NormalizeCase(g), lengths)
	st := ports.Stats{Nodes: r.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	return sols, st, nil
}

// neighborhood is the 8-way fan-out order: the 4 orthogonal cells first,
// then the diagonals.
var neighborhood = [8]domain.Position{
	{X: -1, Y: 0},
	{X: 0, Y: -1},
	{X: -1, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: -1},
	{X: -1, Y: 1},
}

// run is the state of a single Solve call.
type run struct {
	ctx   context.Context
	dict  ports.Dictionary
	limit int
	nodes int
	found int
}

func (r *run) done() bool {
	return r.ctx.Err() != nil || (r.limit > 0 && r.found >= r.limit)
}

// findAll launches an independent growth search from every cell in
// row-major order and concatenates the results.
func (r *run) findAll(g domain.Grid, lengths []int) []domain.GridSolution {
	var sols []domain.GridSolution
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if r.done() {
				return sols
			}
			sols = append(sols, r.grow(g, domain.Position{X: x, Y: y}, "", nil, lengths)...)
		}
	}
	return sols
}

// grow extends the word under construction with the letter at p. A dead
// branch contributes zero solutions; it is never an error.
func (r *run) grow(g domain.Grid, p domain.Position, word string, used []domain.Position, lengths []int) []domain.GridSolution {
	if r.done() {
		return nil
	}
	if !g.InBounds(p) || g.At(p) == domain.Empty || onPath(used, p) {
		return nil
	}
	r.nodes++

	newWord := word + string(g.At(p))
	need := lengths[0]
	switch {
	case len(newWord) == need:
		if !r.dict.IsWord(newWord) {
			return nil
		}
		return r.complete(g, p, newWord, used, lengths)
	case len(newWord) < need:
		if !r.dict.IsPrefix(newWord) {
			return nil
		}
		return r.fanOut(g, p, newWord, used, lengths)
	default:
		// Unreachable: the two cases above cover every length the
		// guard admits.
		return nil
	}
}

// fanOut recurses into all 8 neighbors of p. The used-position list is
// copied before fanning out so that no sibling branch can alias another's
// backing array; children only ever read it.
func (r *run) fanOut(g domain.Grid, p domain.Position, word string, used []domain.Position, lengths []int) []domain.GridSolution {
	next := appendCopy(used, p)

	var sols []domain.GridSolution
	for _, d := range neighborhood {
		q := domain.Position{X: p.X + d.X, Y: p.Y + d.Y}
		sols = append(sols, r.grow(g, q, word, next, lengths)...)
	}
	return sols
}

// complete handles a finished word: either it alone closes the plan, or
// the grid collapses and the search restarts for the remaining lengths.
// A completed word whose continuation finds nothing is discarded entirely.
func (r *run) complete(g domain.Grid, p domain.Position, word string, used []domain.Position, lengths []int) []domain.GridSolution {
	final := appendCopy(used, p)
	gw := domain.GridWord{Word: word, Positions: final, Grid: g}

	rest := lengths[1:]
	if len(rest) == 0 {
		r.found++
		return []domain.GridSolution{{Words: []domain.GridWord{gw}}}
	}

	collapsed := grids.CollapseAndGravitate(g, final)
	subs := r.findAll(collapsed, rest)
	sols := make([]domain.GridSolution, 0, len(subs))
	for _, sub := range subs {
		words := make([]domain.GridWord, 0, len(sub.Words)+1)
		words = append(words, gw)
		words = append(words, sub.Words...)
		sols = append(sols, domain.GridSolution{Words: words})
	}
	return sols
}

func onPath(used []domain.Position, p domain.Position) bool {
	for _, q := range used {
		if q == p {
			return true
		}
	}
	return false
}

// appendCopy returns a fresh slice holding used plus p, never sharing
// storage with the input.
func appendCopy(used []domain.Position, p domain.Position) []domain.Position {
	out := make([]domain.Position, len(used), len(used)+1)
	copy(out, used)
	return append(out, p)
}
