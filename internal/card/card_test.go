package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndString(t *testing.T) {
	c, err := Parse("As")
	require.NoError(t, err)
	assert.Equal(t, Ace, c.Rank)
	assert.Equal(t, Spades, c.Suit)
	assert.Equal(t, "As", c.String())

	c, err = Parse("Th")
	require.NoError(t, err)
	assert.Equal(t, Ten, c.Rank)
	assert.Equal(t, "Th", c.String())

	_, err = Parse("Xx")
	assert.Error(t, err)

	_, err = Parse("A")
	assert.Error(t, err)
}

func TestExposeHideRoundtrip(t *testing.T) {
	c := New(King, Hearts)
	assert.Equal(t, FaceDown, c.Visibility)
	c = c.Expose()
	assert.Equal(t, FaceUp, c.Visibility)
	c = c.Hide()
	assert.Equal(t, FaceDown, c.Visibility)
}

func TestEqualIgnoresVisibilityAndWild(t *testing.T) {
	a := New(Queen, Clubs)
	b := NewWild(Queen, Clubs, FullyWild).Expose()
	assert.True(t, a.Equal(b))
}

func TestWildKinds(t *testing.T) {
	w := NewWild(Joker, JokerSuit, FullyWild)
	assert.True(t, w.IsWild())
	bug := NewWild(Joker, JokerSuit, Bug)
	assert.True(t, bug.IsWild())
	plain := New(Two, Spades)
	assert.False(t, plain.IsWild())
}
