package betting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAndBetWhenUnopened(t *testing.T) {
	r := NewRound(NoLimit, 5, 10, 0)
	las := r.LegalActions("A", 500, 0)

	var hasCheck, hasBet, hasFold bool
	for _, la := range las {
		switch la.Action {
		case Check:
			hasCheck = true
		case Bet:
			hasBet = true
			assert.Equal(t, 10, la.MinTo, "NL min bet defaults to the big blind")
		case Fold:
			hasFold = true
		}
	}
	assert.True(t, hasCheck)
	assert.True(t, hasBet)
	assert.False(t, hasFold, "no fold when nothing is owed")
}

func TestCallAndRaiseWhenFacingABet(t *testing.T) {
	r := NewRound(NoLimit, 5, 10, 0)
	require.NoError(t, r.ApplyBet("A", 30, 500))

	las := r.LegalActions("B", 500, 0)
	var call, raise *LegalAction
	for i := range las {
		switch las[i].Action {
		case Call:
			call = &las[i]
		case Raise:
			raise = &las[i]
		}
	}
	require.NotNil(t, call)
	require.NotNil(t, raise)
	assert.Equal(t, 60, raise.MinTo, "min raise-to is current bet (30) + min raise increment (30)")
}

func TestReopenRequiresFullMinRaiseIncrement(t *testing.T) {
	r := NewRound(NoLimit, 5, 10, 0)
	require.NoError(t, r.ApplyBet("A", 100, 1000))
	// B goes all-in for a short raise (120), increment 20 < min raise (100).
	require.NoError(t, r.ApplyBet("B", 120, 120))
	assert.False(t, r.Reopened, "a short all-in raise must not reopen action")
	assert.Equal(t, 120, r.CurrentBet)

	// C, having already acted on the original 100 bet, is still not allowed
	// to re-raise -- LegalActions should offer call/fold only up to the new
	// current bet, since the short raise didn't reopen.
	r.HasActed["C"] = true
	las := r.LegalActions("C", 1000, 0)
	var hasRaise bool
	for _, la := range las {
		if la.Action == Raise {
			hasRaise = true
		}
	}
	assert.False(t, hasRaise, "a player who acted before a short all-in raise may only call or fold")
}

func TestFullRaiseReopensAction(t *testing.T) {
	r := NewRound(NoLimit, 5, 10, 0)
	require.NoError(t, r.ApplyBet("A", 100, 1000))
	r.HasActed["B"] = true
	require.NoError(t, r.ApplyBet("B", 250, 1000)) // +150 >= min raise increment (100)
	assert.True(t, r.Reopened)
	assert.Equal(t, 150, r.MinRaiseIncrement)
	assert.False(t, r.HasActed["A"], "a full reopening raise clears other players' has-acted flags")
}

func TestPotLimitMaxTo(t *testing.T) {
	r := NewRound(PotLimit, 0, 10, 0)
	require.NoError(t, r.ApplyBet("A", 10, 1000))
	// pot + outstanding calls (0, nobody else has called yet) + (B - c) = 10 + 0 + 10
	maxTo := r.PotLimitMaxTo("B", 10)
	assert.Equal(t, 30, maxTo)
}

func TestLimitCapsRaisesAtConfiguredMax(t *testing.T) {
	r := NewRound(Limit, 10, 20, 3)
	require.NoError(t, r.ApplyBet("A", 20, 1000))
	require.NoError(t, r.ApplyBet("B", 40, 1000))
	require.NoError(t, r.ApplyBet("C", 60, 1000))
	require.NoError(t, r.ApplyBet("A", 80, 1000)) // bet + 3 raises

	las := r.LegalActions("B", 1000, 20)
	for _, la := range las {
		assert.NotEqual(t, Raise, la.Action, "no further raises once the cap is hit")
	}
}

func TestIsCompleteRequiresActionSinceReopening(t *testing.T) {
	r := NewRound(NoLimit, 5, 10, 0)
	require.NoError(t, r.ApplyBet("A", 30, 500))
	r.ApplyCall("B", 500)
	live := []string{"A", "B"}
	allIn := map[string]bool{}
	assert.True(t, r.IsComplete(live, allIn))
}

func TestIsCompleteSkipsAllInPlayers(t *testing.T) {
	r := NewRound(NoLimit, 5, 10, 0)
	require.NoError(t, r.ApplyBet("A", 100, 1000))
	r.ApplyCall("B", 40) // all-in short of the bet
	live := []string{"A", "B"}
	allIn := map[string]bool{"B": true}
	assert.True(t, r.IsComplete(live, allIn))
}

func TestApplyBetRejectsExceedingStack(t *testing.T) {
	r := NewRound(NoLimit, 5, 10, 0)
	err := r.ApplyBet("A", 200, 100)
	assert.Error(t, err)
}
