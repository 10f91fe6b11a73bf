// Package describer turns an evaluator's (rank, ordered_rank) plus the
// cards themselves into a human-readable hand name,/4.6.
// The shape classification is independent of the rankings table — it
// looks at the raw cards directly, the same way a player would name their
// own hand — and is used purely for display, never for comparison.
package describer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lox/generic-poker/internal/card"
	"github.com/lox/generic-poker/internal/evaluator"
)

var pipTypes = map[string]bool{
	"49": true, "58": true, "6": true, "zero": true, "21": true,
	"zero_6": true, "21_6": true, "low_pip_6_cards": true,
}

var highLikeTypes = map[string]bool{
	"high": true, "high_wild_bug": true, "36card_ffh_high": true,
	"20card_high": true, "27_ja_ffh_high": true,
}

// Describe names a hand for display. evalType selects the description
// strategy; ranking carries the looked-up rank (used as a last resort for
// types we don't specially classify); cards are the cards actually used
// to form the hand.
func Describe(evalType string, ranking evaluator.HandRanking, cards []card.Card) string {
	switch {
	case pipTypes[evalType]:
		return describePip(cards)
	case highLikeTypes[evalType]:
		return describeHighShape(cards)
	case evalType == "badugi" || evalType == "badugi_ah" || evalType == "hidugi":
		return describeBadugi(cards)
	case strings.Contains(evalType, "low"):
		return describeLowShape(cards)
	default:
		return fmt.Sprintf("%s (rank %d)", evalType, ranking.Rank)
	}
}

func describePip(cards []card.Card) string {
	sum := 0
	for _, c := range cards {
		sum += pipValue(c.Rank)
	}
	return fmt.Sprintf("%d", sum)
}

func pipValue(r card.Rank) int {
	switch r {
	case card.Ace:
		return 1
	case card.Jack, card.Queen, card.King:
		return 10
	case card.Ten:
		return 10
	default:
		return int(r)
	}
}

func describeBadugi(cards []card.Card) string {
	suits := make(map[card.Suit]bool)
	ranks := make(map[card.Rank]bool)
	valid := 0
	for _, c := range cards {
		if suits[c.Suit] || ranks[c.Rank] {
			continue
		}
		suits[c.Suit] = true
		ranks[c.Rank] = true
		valid++
	}
	return fmt.Sprintf("%d-card Badugi", valid)
}

// describeHighShape classifies a standard poker hand shape by counting
// ranks and suits directly — independent of the rank-order an evaluator
// sorted by. Wild and bug cards are counted as their own rank and suit;
// they are not substituted.
func describeHighShape(cards []card.Card) string {
	if len(cards) < 5 {
		return "High Card"
	}
	rankCount := map[card.Rank]int{}
	suitCount := map[card.Suit]int{}
	for _, c := range cards {
		rankCount[c.Rank]++
		suitCount[c.Suit]++
	}

	isFlush := false
	for _, n := range suitCount {
		if n >= 5 {
			isFlush = true
		}
	}

	ranks := make([]int, 0, len(rankCount))
	for r := range rankCount {
		ranks = append(ranks, int(r))
	}
	sort.Ints(ranks)
	isStraight, straightHigh := findStraight(ranks)

	counts := make([]int, 0, len(rankCount))
	for _, n := range rankCount {
		counts = append(counts, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(counts)))

	switch {
	case isFlush && isStraight && straightHigh == int(card.Ace):
		return "Royal Flush"
	case isFlush && isStraight:
		return "Straight Flush"
	case len(counts) > 0 && counts[0] == 4:
		return "Four of a Kind"
	case len(counts) >= 2 && counts[0] == 3 && counts[1] >= 2:
		return "Full House"
	case isFlush:
		return "Flush"
	case isStraight:
		return "Straight"
	case len(counts) > 0 && counts[0] == 3:
		return "Three of a Kind"
	case len(counts) >= 2 && counts[0] == 2 && counts[1] == 2:
		return "Two Pair"
	case len(counts) > 0 && counts[0] == 2:
		return "Pair"
	default:
		return "High Card"
	}
}

func describeLowShape(cards []card.Card) string {
	rankCount := map[card.Rank]int{}
	for _, c := range cards {
		rankCount[c.Rank]++
	}
	best := 0
	for _, n := range rankCount {
		if n > best {
			best = n
		}
	}
	if best >= 2 {
		return "Low hand with a pair"
	}
	highest := card.Two
	for r := range rankCount {
		if r != card.Ace && r > highest {
			highest = r
		}
	}
	return fmt.Sprintf("%s High", highest.String())
}

// findStraight reports whether the sorted distinct rank values (2..14,
// where Ace==14) contain 5 consecutive ranks, treating ace-low (A-2-3-4-5)
// as a special case. Returns the straight's high card rank.
func findStraight(sortedRanks []int) (bool, int) {
	if len(sortedRanks) < 5 {
		return false, 0
	}
	// ace-low wheel
	hasWheel := contains(sortedRanks, int(card.Ace)) && contains(sortedRanks, 2) &&
		contains(sortedRanks, 3) && contains(sortedRanks, 4) && contains(sortedRanks, 5)

	run := 1
	best := -1
	for i := 1; i < len(sortedRanks); i++ {
		if sortedRanks[i] == sortedRanks[i-1]+1 {
			run++
			if run >= 5 {
				best = sortedRanks[i]
			}
		} else if sortedRanks[i] != sortedRanks[i-1] {
			run = 1
		}
	}
	if best >= 0 {
		return true, best
	}
	if hasWheel {
		return true, 5
	}
	return false, 0
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
