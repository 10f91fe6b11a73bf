package handcards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/generic-poker/internal/card"
)

func mustParse(t *testing.T, s string) card.Card {
	t.Helper()
	c, err := card.Parse(s)
	require.NoError(t, err)
	return c
}

func TestAddAndCards(t *testing.T) {
	h := New()
	idxs := h.Add(mustParse(t, "As"), mustParse(t, "Kh"))
	assert.Equal(t, []int{0, 1}, idxs)
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, mustParse(t, "As"), h.At(0))
}

func TestSubsetsTrackIndexesNotCopies(t *testing.T) {
	h := New()
	h.Add(mustParse(t, "As"), mustParse(t, "Kh"), mustParse(t, "2d"))
	h.AddToSubset("high", 0, 1)
	assert.True(t, h.HasSubset("high"))
	assert.False(t, h.HasSubset("low"))
	assert.Equal(t, []card.Card{mustParse(t, "As"), mustParse(t, "Kh")}, h.Subset("high"))

	// A card can belong to more than one subset.
	h.AddToSubset("low", 1, 2)
	assert.Equal(t, []card.Card{mustParse(t, "Kh"), mustParse(t, "2d")}, h.Subset("low"))
}

func TestSetReplacesCardInPlace(t *testing.T) {
	h := New()
	h.Add(mustParse(t, "As"), mustParse(t, "Kh"))
	h.Set(1, mustParse(t, "9c"))
	assert.Equal(t, mustParse(t, "9c"), h.At(1))
}

func TestExposeFlipsVisibility(t *testing.T) {
	h := New()
	h.Add(mustParse(t, "As"))
	assert.Equal(t, card.FaceDown, h.At(0).Visibility)
	h.Expose(0)
	assert.Equal(t, card.FaceUp, h.At(0).Visibility)
	assert.Equal(t, []card.Card{mustParse(t, "As").Expose()}, h.Exposed())
}

func TestClearEmptiesCardsAndSubsets(t *testing.T) {
	h := New()
	h.Add(mustParse(t, "As"), mustParse(t, "Kh"))
	h.AddToSubset("high", 0)
	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.False(t, h.HasSubset("high"))
}
