package interpreter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lox/generic-poker/internal/deck"
	"github.com/lox/generic-poker/internal/rules"
	"github.com/lox/generic-poker/internal/table"
)

func threeHandedRules() *rules.GameRules {
	return &rules.GameRules{
		GameName:          "Three Handed No-Limit Demo",
		Players:           rules.PlayerCounts{Min: 2, Max: 3},
		Deck:              rules.DeckSpec{Type: "standard52", Cards: 52},
		BettingStructures: []rules.BettingStructureName{rules.NoLimitName},
		GamePlay: []rules.Step{
			{Name: "Post Blinds", Bet: &rules.BetStep{Type: "blinds"}},
			{Name: "Deal Hole Cards", Deal: &rules.DealStep{Location: "player", Cards: []rules.DealCard{{Number: 2, State: "face down"}}}},
			{Name: "Preflop Betting", Bet: &rules.BetStep{Type: "no_limit"}},
			{Name: "Showdown", Showdown: &rules.ShowdownStep{Type: "high"}},
		},
		Showdown: rules.ShowdownSpec{
			BestHand: []rules.HandRule{{Name: "High", AnyCards: 5, EvaluationType: "high"}},
		},
	}
}

func newThreeHandedGame(t *testing.T, stacks [3]int) *GameInstance {
	t.Helper()
	tbl := table.New()
	tbl.Sit("alice", stacks[0])
	tbl.Sit("bob", stacks[1])
	tbl.Sit("carol", stacks[2])
	tbl.SetButton(0)

	g := New(threeHandedRules(), tbl, nil, deck.Options{Spec: deck.Standard52}, nil)
	g.SetStakes(1, 2)
	require.NoError(t, g.StartHand("hand-1"))
	return g
}

// Folding down to one live player mid-round must resolve the hand
// immediately rather than waiting on the survivor's next action.
func TestFoldToSingleSurvivorEndsHandImmediately(t *testing.T) {
	g := newThreeHandedGame(t, [3]int{100, 100, 100})

	require.Equal(t, ModeBetting, g.Mode())
	first := g.CurrentPlayer()
	require.NotEmpty(t, first)

	result, err := g.Act(first, ActFold, Payload{})
	require.NoError(t, err)
	require.True(t, result.OK)
	require.Equal(t, ModeBetting, g.Mode(), "one fold still leaves two live players")

	second := g.CurrentPlayer()
	require.NotEmpty(t, second)
	require.NotEqual(t, first, second)

	result, err = g.Act(second, ActFold, Payload{})
	require.NoError(t, err)
	require.True(t, result.OK)

	require.Equal(t, ModeComplete, g.Mode(), "the lone survivor should win without acting")

	results, err := g.HandResults()
	require.NoError(t, err)
	require.Equal(t, 3, results.TotalPot)
	require.Len(t, results.Pots, 1)

	survivor := g.liveSeats()
	require.Len(t, survivor, 1)
	require.Contains(t, results.Pots[0].Winners, survivor[0])
}

// An all-in that falls short of the current bet must be reachable through
// the public Act API as ActAllIn (spec §8 scenario 4: P1 bets 100, P2
// all-in 50, P3 calls 100 -> main pot 150 eligible all three, side pot 100
// eligible {P1,P3}).
func TestAllInBelowCurrentBetReachableThroughAct(t *testing.T) {
	g := newThreeHandedGame(t, [3]int{1000, 50, 1000})

	alice := g.CurrentPlayer() // BTN acts first preflop, 3-handed
	require.Equal(t, "alice", alice)
	result, err := g.Act(alice, ActBet, Payload{Amount: 100})
	require.NoError(t, err)
	require.True(t, result.OK)

	bob := g.CurrentPlayer()
	require.Equal(t, "bob", bob)
	legal := g.ValidActions(bob)
	var allIn *LegalAction
	for i := range legal {
		if legal[i].Action == ActAllIn {
			allIn = &legal[i]
		}
		require.NotEqual(t, ActRaise, legal[i].Action, "a short-stacked caller facing 100 may only call or go all-in, not raise")
	}
	require.NotNil(t, allIn, "bob's stack (50, 49 after the blind) is short of the 100 bet: only all-in should be offered")
	result, err = g.Act(bob, ActAllIn, Payload{Amount: allIn.Min})
	require.NoError(t, err)
	require.True(t, result.OK, "a short all-in must succeed, not be rejected as below the current bet: %s", result.Reason)

	carol := g.CurrentPlayer()
	require.Equal(t, "carol", carol)
	result, err = g.Act(carol, ActCall, Payload{})
	require.NoError(t, err)
	require.True(t, result.OK)

	require.Equal(t, 50, g.ledger.Contribution("bob"))
	require.Equal(t, 100, g.ledger.Contribution("alice"))
	require.Equal(t, 100, g.ledger.Contribution("carol"))
	require.Equal(t, 150, g.ledger.MainPot)
	require.Len(t, g.ledger.SidePots, 1)
	require.Equal(t, 100, g.ledger.SidePots[0].Amount)
	require.True(t, g.ledger.SidePots[0].Eligible["alice"])
	require.True(t, g.ledger.SidePots[0].Eligible["carol"])
	require.False(t, g.ledger.SidePots[0].Eligible["bob"])
}

// Chips committed across blinds and the folded action must equal the
// pot awarded to the survivor: nothing created, nothing lost.
func TestFoldToSingleSurvivorConservesChips(t *testing.T) {
	g := newThreeHandedGame(t, [3]int{50, 50, 50})
	totalBefore := 150

	for g.Mode() == ModeBetting {
		id := g.CurrentPlayer()
		_, err := g.Act(id, ActFold, Payload{})
		require.NoError(t, err)
	}

	results, err := g.HandResults()
	require.NoError(t, err)

	totalAfter := results.TotalPot
	for _, s := range g.seats {
		totalAfter += s.Stack
	}
	require.Equal(t, totalBefore, totalAfter)
}
