package solver

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/wordgrid/internal/dictionary"
	"svw.info/wordgrid/internal/domain"
)

func mustGrid(t *testing.T, rows ...string) domain.Grid {
	t.Helper()
	g, err := domain.ParseGrid(rows)
	require.NoError(t, err)
	return g
}

func words(sol domain.GridSolution) []string {
	out := make([]string, len(sol.Words))
	for i, w := range sol.Words {
		out[i] = w.Word
	}
	return out
}

func TestSolveSingleCell(t *testing.T) {
	s := New(dictionary.New("a"))
	sols, _, err := s.Solve(context.Background(), mustGrid(t, "a"), []int{1})
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assert.Equal(t, []string{"a"}, words(sols[0]))
	assert.Equal(t, []domain.Position{{X: 0, Y: 0}}, sols[0].Words[0].Positions)
}

func TestSolveFindsAllReachableWords(t *testing.T) {
	s := New(dictionary.New("cat", "car"))
	sols, st, err := s.Solve(context.Background(), mustGrid(t, "ca", "rt"), []int{3})
	require.NoError(t, err)

	found := make(map[string]int)
	for _, sol := range sols {
		require.Len(t, sol.Words, 1)
		found[sol.Words[0].Word]++
	}
	assert.Equal(t, map[string]int{"cat": 1, "car": 1}, found)
	assert.Greater(t, st.Nodes, 0)
}

func TestSolveNoWordOfRequiredLength(t *testing.T) {
	s := New(dictionary.New("cat", "car"))
	sols, _, err := s.Solve(context.Background(), mustGrid(t, "ca", "rt"), []int{4})
	require.NoError(t, err)
	assert.Empty(t, sols)
}

// A word can depend on an earlier word being cleared: here "ab" is only
// spellable after "zzz" is removed and the a falls onto the b.
func TestSolveGravityUnlocksSecondWord(t *testing.T) {
	grid := mustGrid(t,
		"az",
		"zc",
		"bz",
	)
	s := New(dictionary.New("zzz", "ab"))

	// Before removal, a (0,0) and b (0,2) are not adjacent.
	sols, _, err := s.Solve(context.Background(), grid, []int{2})
	require.NoError(t, err)
	assert.Empty(t, sols)

	sols, _, err = s.Solve(context.Background(), grid, []int{3, 2})
	require.NoError(t, err)
	require.NotEmpty(t, sols)
	for _, sol := range sols {
		assert.Equal(t, []string{"zzz", "ab"}, words(sol))
	}

	// The second word's positions are in the collapsed grid's coordinate
	// space: a must have fallen next to b.
	second := sols[0].Words[1]
	assert.Equal(t, []domain.Position{{X: 0, Y: 1}, {X: 0, Y: 2}}, second.Positions)
}

func TestSolveEmptyCellBlocksPath(t *testing.T) {
	s := New(dictionary.New("ct"))
	sols, _, err := s.Solve(context.Background(), mustGrid(t, "c t"), []int{2})
	require.NoError(t, err)
	assert.Empty(t, sols)
}

func TestSolveNormalizesCase(t *testing.T) {
	s := New(dictionary.New("cat"))
	sols, _, err := s.Solve(context.Background(), mustGrid(t, "CA", "RT"), []int{3})
	require.NoError(t, err)
	require.Len(t, sols, 1)
	assert.Equal(t, "cat", sols[0].Words[0].Word)
}

// Identical words reached through distinct discovery paths are all
// reported; the engine does not dedupe.
func TestSolvePreservesDuplicateSolutions(t *testing.T) {
	s := New(dictionary.New("aa"))
	sols, _, err := s.Solve(context.Background(), mustGrid(t, "aa"), []int{2})
	require.NoError(t, err)
	assert.Len(t, sols, 2)
}

func TestSolveEmptyPlan(t *testing.T) {
	s := New(dictionary.New("cat"))
	sols, _, err := s.Solve(context.Background(), mustGrid(t, "ca", "rt"), nil)
	require.NoError(t, err)
	assert.Empty(t, sols)
}

func TestSolvePreconditions(t *testing.T) {
	s := New(dictionary.New("cat"))
	ctx := context.Background()

	_, _, err := s.Solve(ctx, domain.Grid{}, []int{3})
	assert.ErrorIs(t, err, ErrEmptyGrid)

	jagged := domain.Grid{[]rune("ca"), []rune("r")}
	_, _, err = s.Solve(ctx, jagged, []int{3})
	assert.Error(t, err)

	_, _, err = s.Solve(ctx, mustGrid(t, "ca", "rt"), []int{3, 0})
	assert.Error(t, err)
}

func TestSolveIdempotent(t *testing.T) {
	grid := mustGrid(t, "az", "zc", "bz")
	s := New(dictionary.New("zzz", "ab"))

	first, _, err := s.Solve(context.Background(), grid, []int{3, 2})
	require.NoError(t, err)
	second, _, err := s.Solve(context.Background(), grid, []int{3, 2})
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated solve differs (-first +second):\n%s", diff)
	}
}

func TestSolveInvariants(t *testing.T) {
	grid := mustGrid(t, "az", "zc", "bz")
	plan := []int{3, 2}
	s := New(dictionary.New("zzz", "ab", "za", "bz", "zz"))

	sols, _, err := s.Solve(context.Background(), grid, plan)
	require.NoError(t, err)
	require.NotEmpty(t, sols)

	for _, sol := range sols {
		require.Len(t, sol.Words, len(plan))
		for i, w := range sol.Words {
			assert.Len(t, w.Word, plan[i], "word length must match plan position")
			seen := make(map[domain.Position]struct{})
			for _, p := range w.Positions {
				seen[p] = struct{}{}
			}
			assert.Len(t, seen, len(w.Word), "no position reused within a word")
		}
	}
}

func TestSolveLimitStopsEarly(t *testing.T) {
	s := New(dictionary.New("aa"))
	s.Limit = 1
	sols, _, err := s.Solve(context.Background(), mustGrid(t, "aa"), []int{2})
	require.NoError(t, err)
	assert.Len(t, sols, 1)
}

func TestSolveCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(dictionary.New("cat"))
	_, _, err := s.Solve(ctx, mustGrid(t, "ca", "rt"), []int{3})
	assert.ErrorIs(t, err, context.Canceled)
}

// spyDict records the length of every query so tests can check the engine
// only asks IsPrefix about strings shorter than the required length and
// IsWord about strings exactly matching it.
type spyDict struct {
	inner      *dictionary.Trie
	wordLens   map[int]int
	prefixLens map[int]int
}

func (d *spyDict) IsWord(c string) bool {
	d.wordLens[len(c)]++
	return d.inner.IsWord(c)
}

func (d *spyDict) IsPrefix(c string) bool {
	d.prefixLens[len(c)]++
	return d.inner.IsPrefix(c)
}

func TestSolveDictionaryQueryDiscipline(t *testing.T) {
	spy := &spyDict{
		inner:      dictionary.New("cat", "car"),
		wordLens:   make(map[int]int),
		prefixLens: make(map[int]int),
	}
	s := New(spy)
	_, _, err := s.Solve(context.Background(), mustGrid(t, "ca", "rt"), []int{3})
	require.NoError(t, err)

	for l := range spy.wordLens {
		assert.Equal(t, 3, l, "IsWord must only see full-length candidates")
	}
	for l := range spy.prefixLens {
		assert.Less(t, l, 3, "IsPrefix must only see shorter candidates")
	}
	assert.NotEmpty(t, spy.wordLens)
	assert.NotEmpty(t, spy.prefixLens)
}

// Sibling branches of the 8-way fan-out must not observe each other's
// used positions: with a shared mutable set, the "car" branch would see
// the t consumed by the "cat" branch (or vice versa) and die.
func TestSolveSiblingBranchesAreIndependent(t *testing.T) {
	s := New(dictionary.New("cat", "car", "rat", "tar"))
	sols, _, err := s.Solve(context.Background(), mustGrid(t, "ca", "rt"), []int{3})
	require.NoError(t, err)

	found := make(map[string]bool)
	for _, sol := range sols {
		found[sol.Words[0].Word] = true
	}
	assert.True(t, found["cat"], "cat should be found")
	assert.True(t, found["car"], "car should be found")
	assert.True(t, found["rat"], "rat should be found")
	assert.True(t, found["tar"], "tar should be found")
}

func TestSolveUnderTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	s := New(dictionary.New("zzz", "ab"))
	_, st, err := s.Solve(ctx, mustGrid(t, "az", "zc", "bz"), []int{3, 2})
	require.NoError(t, err)
	assert.Less(t, st.Duration, time.Second)
}
