package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSizes(t *testing.T) {
	assert.Equal(t, 52, Size(Options{Spec: Standard52}))
	assert.Equal(t, 36, Size(Options{Spec: Short36}))
	assert.Equal(t, 20, Size(Options{Spec: Short20}))
	assert.Equal(t, 40, Size(Options{Spec: NoEightTen}))
	assert.Equal(t, 53, Size(Options{Spec: Standard52, Jokers: 1}))
}

func TestDealIsAtomicAndConservesCards(t *testing.T) {
	d := New(Options{Spec: Standard52})
	d.Shuffle(42)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		dealt, err := d.Deal(5)
		require.NoError(t, err)
		for _, c := range dealt {
			require.False(t, seen[c.String()], "card dealt twice: %s", c)
			seen[c.String()] = true
		}
	}
	assert.Equal(t, 2, d.Remaining())

	_, err := d.Deal(3)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, 2, d.Remaining(), "failed deal must not mutate the deck")
}

func TestShuffleIsReproducible(t *testing.T) {
	d1 := New(Options{Spec: Standard52})
	d1.Shuffle(7)
	d2 := New(Options{Spec: Standard52})
	d2.Shuffle(7)

	h1, err := d1.Deal(52)
	require.NoError(t, err)
	h2, err := d2.Deal(52)
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestDiscardDoesNotReenterDeck(t *testing.T) {
	d := New(Options{Spec: Standard52})
	d.Shuffle(1)
	dealt, err := d.Deal(5)
	require.NoError(t, err)
	before := d.Remaining()
	d.Discard(dealt...)
	assert.Equal(t, before, d.Remaining())
	assert.Len(t, d.DiscardPile(), 5)
}
