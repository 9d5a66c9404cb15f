package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/wordgrid/internal/dictionary"
	"svw.info/wordgrid/internal/domain"
	"svw.info/wordgrid/internal/solver"
)

func newHinter(words ...string) *FirstWord {
	s := solver.New(dictionary.New(words...))
	s.Limit = 1
	return NewFirstWord(s)
}

func mustGrid(t *testing.T, rows ...string) domain.Grid {
	t.Helper()
	g, err := domain.ParseGrid(rows)
	require.NoError(t, err)
	return g
}

func TestHintFirstWordTier(t *testing.T) {
	h := newHinter("cat")
	hh, ok, err := h.Hint(context.Background(), mustGrid(t, "ca", "rt"), []int{3}, domain.HintFirstWord)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "cat", hh.Word)
	assert.Len(t, hh.Cells, 3)
	assert.Equal(t, domain.HintFirstWord, hh.Tier)
	assert.Contains(t, hh.Message, `"cat"`)
}

func TestHintFirstLetterTier(t *testing.T) {
	h := newHinter("cat")
	hh, ok, err := h.Hint(context.Background(), mustGrid(t, "ca", "rt"), []int{3}, domain.HintFirstLetter)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Empty(t, hh.Word, "first-letter tier must not reveal the word")
	require.Len(t, hh.Cells, 1)
	assert.Equal(t, domain.Position{X: 0, Y: 0}, hh.Cells[0])
	assert.Equal(t, domain.HintFirstLetter, hh.Tier)
}

func TestHintNoSolution(t *testing.T) {
	h := newHinter("dog")
	_, ok, err := h.Hint(context.Background(), mustGrid(t, "ca", "rt"), []int{3}, domain.HintFirstWord)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHintEmptyPlan(t *testing.T) {
	h := newHinter("cat")
	_, ok, err := h.Hint(context.Background(), mustGrid(t, "ca", "rt"), nil, domain.HintFirstWord)
	require.NoError(t, err)
	assert.False(t, ok)
}
