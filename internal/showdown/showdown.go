// Package showdown is the showdown resolver: it forms each live player's
// best hand(s) per the variant's ShowdownSpec, ranks them with the
// evaluator registry, and splits each pot layer among the winners.
// Enumerates candidates, finds the best rank, splits the pot, and hands
// the odd chip to the earliest winner — generalized from a fixed 7-card
// hold'em evaluation to pluggable HandRule selectors and per-pot
// eligibility.
package showdown

import (
	"fmt"
	"sort"

	"github.com/lox/generic-poker/internal/card"
	"github.com/lox/generic-poker/internal/describer"
	"github.com/lox/generic-poker/internal/evaluator"
	"github.com/lox/generic-poker/internal/handcards"
	"github.com/lox/generic-poker/internal/pot"
	"github.com/lox/generic-poker/internal/rules"
)

// Input bundles everything the resolver needs for one completed hand.
type Input struct {
	Ledger      *pot.Ledger
	LivePlayers []string
	Hands       map[string]*handcards.Hand
	Community   *handcards.Hand
	Spec        *rules.ShowdownSpec
	Registry    *evaluator.Registry
	HandID      string

	// Declarations maps playerID -> the kind a Declare{kind} step recorded
	// for them (e.g. "hi", "lo", "hi_lo"). Nil/empty for showdowns with no
	// Declare step, in which case every HandRule is open to every candidate
	// ("cards speak").
	Declarations map[string]string
}

// PotResult is one pot layer's resolution.
type PotResult struct {
	Amount  int
	PotType string // "main" or "side"
	Winners []string
	Split   map[string]int
}

// HandResults is the `HandResults` return value.
type HandResults struct {
	HandID       string
	TotalPot     int
	Pots         []PotResult
	Descriptions map[string]string
	WinningHands []string
}

type candidate struct {
	playerID string
	ranking  evaluator.HandRanking
	cards    []card.Card
}

// Resolve runs the full showdown five steps.
func Resolve(in Input) (*HandResults, error) {
	results := &HandResults{
		HandID:       in.HandID,
		Descriptions: make(map[string]string),
	}

	layers := in.Ledger.Layers()
	// Process in reverse creation order (side pots settle before main),
	// step order.
	for i := len(layers) - 1; i >= 0; i-- {
		layer := layers[i]
		potType := "side"
		if i == 0 && layers[0].Eligible == nil {
			potType = "main"
		}
		candidates := eligibleCandidates(layer, in.LivePlayers)
		if len(candidates) == 0 {
			continue
		}

		var potWinners []string
		split := make(map[string]int)
		sharePerRule := layer.Amount / len(in.Spec.BestHand)
		remainder := layer.Amount - sharePerRule*len(in.Spec.BestHand)

		for ruleIdx, rule := range in.Spec.BestHand {
			ev, err := in.Registry.Get(rule.EvaluationType)
			if err != nil {
				return nil, err
			}
			best, err := bestForRule(rule, ev, declaredCandidates(rule, candidates, in.Declarations), in.Hands, in.Community)
			if err != nil {
				return nil, err
			}
			if len(best) == 0 {
				continue
			}

			share := sharePerRule
			if ruleIdx == 0 {
				share += remainder
			}
			perWinner := share / len(best)
			oddChip := share - perWinner*len(best)

			sortByShowdownPosition(best, in.LivePlayers)
			for idx, c := range best {
				amt := perWinner
				if idx == 0 {
					amt += oddChip
				}
				split[c.playerID] += amt
				potWinners = appendUnique(potWinners, c.playerID)
				results.Descriptions[c.playerID] = describer.Describe(rule.EvaluationType, c.ranking, c.cards)
				results.WinningHands = appendUnique(results.WinningHands, c.playerID+":"+rule.EvaluationType)
			}
		}

		results.Pots = append(results.Pots, PotResult{
			Amount:  layer.Amount,
			PotType: potType,
			Winners: potWinners,
			Split:   split,
		})
		results.TotalPot += layer.Amount
	}

	return results, nil
}

// ResolveFold handles the everyone-else-folded case: the sole remaining
// player wins every pot layer without a hand comparison.
func ResolveFold(ledger *pot.Ledger, live []string, handID string) (*HandResults, error) {
	if len(live) != 1 {
		return nil, fmt.Errorf("showdown: resolveByFold requires exactly one live player, got %d", len(live))
	}
	winner := live[0]
	results := &HandResults{HandID: handID, Descriptions: map[string]string{winner: "uncontested"}}
	for _, layer := range ledger.Layers() {
		potType := "side"
		if layer.Eligible == nil {
			potType = "main"
		}
		results.Pots = append(results.Pots, PotResult{
			Amount:  layer.Amount,
			PotType: potType,
			Winners: []string{winner},
			Split:   map[string]int{winner: layer.Amount},
		})
		results.TotalPot += layer.Amount
	}
	results.WinningHands = []string{winner + ":uncontested"}
	return results, nil
}

// declaredCandidates restricts candidateIDs to those who either made no
// declaration (no Declare step in this variant's script) or declared a
// kind matching this rule's Name; a player who declared "hi" only, for
// instance, cannot also win the "lo" rule's board in a declaration game.
func declaredCandidates(rule rules.HandRule, candidateIDs []string, declarations map[string]string) []string {
	if len(declarations) == 0 || rule.Name == "" {
		return candidateIDs
	}
	out := make([]string, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		declared, ok := declarations[id]
		if !ok || declared == "" || declared == rule.Name || declared == "hi_lo" || declared == "both" {
			out = append(out, id)
		}
	}
	return out
}

func eligibleCandidates(layer pot.SidePot, live []string) []string {
	if layer.Eligible == nil {
		return live
	}
	var out []string
	for _, id := range live {
		if layer.Eligible[id] {
			out = append(out, id)
		}
	}
	return out
}

// bestForRule evaluates every candidate under one HandRule and returns
// those tied at the best (lowest) rank.
func bestForRule(rule rules.HandRule, ev evaluator.Evaluator, candidateIDs []string, hands map[string]*handcards.Hand, community *handcards.Hand) ([]candidate, error) {
	var best []candidate
	for _, id := range candidateIDs {
		c, ok := bestHandForRule(rule, hands[id], community, ev)
		if !ok {
			continue // no combination from this pool is a valid hand under this rule
		}
		c.playerID = id
		if len(best) == 0 {
			best = []candidate{c}
			continue
		}
		cmp := ev.Compare(c.ranking, best[0].ranking)
		if cmp < 0 {
			best = []candidate{c}
		} else if cmp == 0 {
			best = append(best, c)
		}
	}
	return best, nil
}

// bestHandForRule forms every hand a HandRule's selectors allow and returns
// the one ranking best under ev. `anyCards` enumerates handSize-card
// combinations over the combined hole+community pool; exact-count
// selectors (hole/community/subset) enumerate every sub-selection of the
// required size out of each pool rather than taking a fixed prefix, so an
// Omaha-family rule ("exactly 2 of 4 hole cards, exactly 3 of 5 board
// cards") considers every qualifying combination per §4.7 step 2.
func bestHandForRule(rule rules.HandRule, hand *handcards.Hand, community *handcards.Hand, ev evaluator.Evaluator) (candidate, bool) {
	if rule.AnyCards > 0 {
		pool := append(append([]card.Card{}, hand.Cards()...), community.Cards()...)
		if len(pool) < ev.HandSize() {
			return candidate{}, false
		}
		return bestCombination(pool, ev)
	}

	var sources [][]card.Card
	var counts []int
	if rule.HoleCards > 0 {
		hc := hand.Cards()
		if len(hc) < rule.HoleCards {
			return candidate{}, false
		}
		sources = append(sources, hc)
		counts = append(counts, rule.HoleCards)
	}
	if rule.CommunityCards > 0 {
		cc := community.Cards()
		if len(cc) < rule.CommunityCards {
			return candidate{}, false
		}
		sources = append(sources, cc)
		counts = append(counts, rule.CommunityCards)
	}
	if rule.Subset != "" && rule.SubsetCards > 0 {
		var sub []card.Card
		if hand.HasSubset(rule.Subset) {
			sub = hand.Subset(rule.Subset)
		} else if community.HasSubset(rule.Subset) {
			sub = community.Subset(rule.Subset)
		}
		if len(sub) < rule.SubsetCards {
			return candidate{}, false
		}
		sources = append(sources, sub)
		counts = append(counts, rule.SubsetCards)
	}
	if len(sources) == 0 {
		return candidate{}, false
	}

	var best *candidate
	enumerateSelections(sources, counts, func(picked []card.Card) {
		ranking, err := ev.Evaluate(picked)
		if err != nil {
			return
		}
		if best == nil || ev.Compare(ranking, best.ranking) < 0 {
			best = &candidate{ranking: ranking, cards: append([]card.Card{}, picked...)}
		}
	})
	if best == nil {
		return candidate{}, false
	}
	return *best, true
}

// enumerateSelections calls fn once per hand formed by independently
// choosing counts[i] cards from sources[i] for every source, concatenated
// in source order.
func enumerateSelections(sources [][]card.Card, counts []int, fn func([]card.Card)) {
	var rec func(i int, acc []card.Card)
	rec = func(i int, acc []card.Card) {
		if i == len(sources) {
			fn(acc)
			return
		}
		forEachCombination(len(sources[i]), counts[i], func(idxs []int) {
			combined := make([]card.Card, len(acc), len(acc)+counts[i])
			copy(combined, acc)
			for _, idx := range idxs {
				combined = append(combined, sources[i][idx])
			}
			rec(i+1, combined)
		})
	}
	rec(0, nil)
}

// bestCombination enumerates every handSize-card combination of pool (or
// evaluates pool directly when it's already exactly handSize) and returns
// the one ranking best under ev.
func bestCombination(pool []card.Card, ev evaluator.Evaluator) (candidate, bool) {
	handSize := ev.HandSize()
	if len(pool) == handSize {
		ranking, err := ev.Evaluate(pool)
		if err != nil {
			return candidate{}, false
		}
		return candidate{ranking: ranking, cards: pool}, true
	}

	var best *candidate
	forEachCombination(len(pool), handSize, func(idxs []int) {
		cards := make([]card.Card, handSize)
		for i, idx := range idxs {
			cards[i] = pool[idx]
		}
		ranking, err := ev.Evaluate(cards)
		if err != nil {
			return
		}
		if best == nil || ev.Compare(ranking, best.ranking) < 0 {
			best = &candidate{ranking: ranking, cards: cards}
		}
	})
	if best == nil {
		return candidate{}, false
	}
	return *best, true
}

// forEachCombination calls fn once per k-combination of indexes [0,n), in
// lexicographic order.
func forEachCombination(n, k int, fn func(idxs []int)) {
	if k <= 0 || k > n {
		return
	}
	idxs := make([]int, k)
	for i := range idxs {
		idxs[i] = i
	}
	for {
		fn(idxs)
		i := k - 1
		for i >= 0 && idxs[i] == i+n-k {
			i--
		}
		if i < 0 {
			return
		}
		idxs[i]++
		for j := i + 1; j < k; j++ {
			idxs[j] = idxs[j-1] + 1
		}
	}
}

// sortByShowdownPosition orders winners by live player order so the odd
// chip goes to whichever winner sits earliest relative to live[0].
func sortByShowdownPosition(cands []candidate, live []string) {
	pos := make(map[string]int, len(live))
	for i, id := range live {
		pos[id] = i
	}
	sort.Slice(cands, func(i, j int) bool {
		return pos[cands[i].playerID] < pos[cands[j].playerID]
	})
}

func appendUnique(xs []string, x string) []string {
	for _, v := range xs {
		if v == x {
			return xs
		}
	}
	return append(xs, x)
}
