package showdown

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/generic-poker/internal/card"
	"github.com/lox/generic-poker/internal/evaluator"
	"github.com/lox/generic-poker/internal/handcards"
	"github.com/lox/generic-poker/internal/pot"
	"github.com/lox/generic-poker/internal/rules"
)

func mustParse(t *testing.T, s string) card.Card {
	t.Helper()
	c, err := card.Parse(s)
	require.NoError(t, err)
	return c
}

// newHighRegistry builds a registry over a tiny "high" evaluation type with
// just enough rows to distinguish a pair from a two-pair from a high card.
func newHighRegistry(t *testing.T) *evaluator.Registry {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "high.csv")
	csv := "Hand,Rank,OrderedRank\n" +
		"AhKsKhQhJs,5000,1\n" + // pair of kings
		"JhJdThTd9s,3000,1\n" + // two pair, jacks and tens
		"AhKsQhJs9h,9000,1\n" // ace high
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0o644))
	cfg := `{"id":"high","name":"High","hand_size":5,"rank_order":"BASE_RANKS",
		"data_files":{"ranking":{"source_type":"csv","path":"` + csvPath + `"}}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "high.json"), []byte(cfg), 0o644))
	return evaluator.NewRegistry(dir, nil)
}

func handOf(t *testing.T, cards ...string) *handcards.Hand {
	t.Helper()
	h := handcards.New()
	for _, s := range cards {
		h.Add(mustParse(t, s))
	}
	return h
}

func TestResolveSingleMainPotBestHandWins(t *testing.T) {
	reg := newHighRegistry(t)
	ledger := pot.New()
	ledger.Contribute("alice", 10, false)
	ledger.Contribute("bob", 10, false)
	ledger.Contribute("carol", 10, false)
	ledger.SettleRound([]string{"alice", "bob", "carol"}, nil)

	hands := map[string]*handcards.Hand{
		"alice": handOf(t, "Kh", "Ks", "Ah", "Qh", "Js"), // pair of kings
		"bob":   handOf(t, "Jh", "Jd", "Th", "Td", "9s"), // two pair
		"carol": handOf(t, "Ah", "Ks", "Qh", "Js", "9h"), // ace high
	}
	spec := &rules.ShowdownSpec{BestHand: []rules.HandRule{{HoleCards: 5, EvaluationType: "high"}}}

	results, err := Resolve(Input{
		Ledger: ledger, LivePlayers: []string{"alice", "bob", "carol"},
		Hands: hands, Community: handcards.New(), Spec: spec, Registry: reg, HandID: "h1",
	})
	require.NoError(t, err)
	require.Len(t, results.Pots, 1)
	assert.Equal(t, 30, results.Pots[0].Amount)
	assert.Equal(t, "main", results.Pots[0].PotType)
	assert.Equal(t, []string{"bob"}, results.Pots[0].Winners)
	assert.Equal(t, 30, results.Pots[0].Split["bob"])
	assert.Equal(t, 30, results.TotalPot)
}

func TestResolveSplitsSidePotSeparatelyFromMainPot(t *testing.T) {
	reg := newHighRegistry(t)
	ledger := pot.New()
	// alice all-in for 10, bob and carol both put in 30: main pot (30,
	// eligible all three) + side pot (40, eligible bob+carol only).
	ledger.Contribute("alice", 10, true)
	ledger.Contribute("bob", 30, false)
	ledger.Contribute("carol", 30, false)
	ledger.SettleRound([]string{"alice", "bob", "carol"}, nil)

	hands := map[string]*handcards.Hand{
		"alice": handOf(t, "Jh", "Jd", "Th", "Td", "9s"), // two pair: best hand overall
		"bob":   handOf(t, "Kh", "Ks", "Ah", "Qh", "Js"), // pair of kings
		"carol": handOf(t, "Ah", "Ks", "Qh", "Js", "9h"), // ace high
	}
	spec := &rules.ShowdownSpec{BestHand: []rules.HandRule{{HoleCards: 5, EvaluationType: "high"}}}

	results, err := Resolve(Input{
		Ledger: ledger, LivePlayers: []string{"alice", "bob", "carol"},
		Hands: hands, Community: handcards.New(), Spec: spec, Registry: reg, HandID: "h2",
	})
	require.NoError(t, err)
	require.Len(t, results.Pots, 2)

	// Side pot resolves first in the returned (reverse-creation) order and
	// excludes alice, who isn't eligible for it.
	side := results.Pots[0]
	assert.Equal(t, 40, side.Amount)
	assert.Equal(t, []string{"bob"}, side.Winners)

	main := results.Pots[1]
	assert.Equal(t, 30, main.Amount)
	assert.Equal(t, "main", main.PotType)
	assert.Equal(t, []string{"alice"}, main.Winners)
	assert.Equal(t, 70, results.TotalPot)
}

func TestResolveFoldAwardsUncontestedPot(t *testing.T) {
	ledger := pot.New()
	ledger.Contribute("alice", 20, false)
	ledger.Contribute("bob", 20, false)
	ledger.SettleRound([]string{"alice"}, []string{"bob"})

	results, err := ResolveFold(ledger, []string{"alice"}, "h3")
	require.NoError(t, err)
	assert.Equal(t, 40, results.TotalPot)
	assert.Equal(t, []string{"alice"}, results.Pots[0].Winners)
	assert.Equal(t, "uncontested", results.Descriptions["alice"])
}

func TestBestCombinationPicksBestFiveOfSevenCards(t *testing.T) {
	reg := newHighRegistry(t)
	ev, err := reg.Get("high")
	require.NoError(t, err)

	// Seven-card pool contains a two-pair hiding among dead cards; the
	// best 5-card combination must be found, not just the first five.
	pool := []card.Card{
		mustParse(t, "2c"), mustParse(t, "3d"),
		mustParse(t, "Jh"), mustParse(t, "Jd"), mustParse(t, "Th"), mustParse(t, "Td"), mustParse(t, "9s"),
	}
	c, ok := bestCombination(pool, ev)
	require.True(t, ok)
	assert.Equal(t, 3000, c.ranking.Rank)
}

func TestBestHandForRuleEnumeratesHoleAndCommunitySubSelections(t *testing.T) {
	reg := newHighRegistry(t)
	ev, err := reg.Get("high")
	require.NoError(t, err)

	// Four hole cards, five community cards; the rule requires exactly 2
	// hole + 3 community, Omaha-style. The winning two-pair combination
	// (Jh,Jd + Th,Td,9s) isn't the prefix of either pool, so a selector
	// that merely takes the first N cards from each pool would miss it.
	hand := handOf(t, "Jh", "2c", "Jd", "3d")
	community := handOf(t, "Th", "9s", "Td", "4h", "5c")
	rule := rules.HandRule{HoleCards: 2, CommunityCards: 3, EvaluationType: "high"}

	c, ok := bestHandForRule(rule, hand, community, ev)
	require.True(t, ok)
	assert.Equal(t, 3000, c.ranking.Rank) // two pair, jacks and tens
}

func TestDeclaredCandidatesFiltersByDeclaredKind(t *testing.T) {
	rule := rules.HandRule{Name: "hi", EvaluationType: "high"}
	declarations := map[string]string{"alice": "hi", "bob": "lo", "carol": "hi_lo"}

	out := declaredCandidates(rule, []string{"alice", "bob", "carol", "dave"}, declarations)

	// bob declared lo-only and is excluded from the hi rule; dave never
	// declared (no entry) and carol declared both ways, so both stay in.
	assert.ElementsMatch(t, []string{"alice", "carol", "dave"}, out)
}

func TestDeclaredCandidatesIsNoOpWithoutADeclareStep(t *testing.T) {
	rule := rules.HandRule{Name: "hi", EvaluationType: "high"}
	ids := []string{"alice", "bob"}

	assert.Equal(t, ids, declaredCandidates(rule, ids, nil))
}
