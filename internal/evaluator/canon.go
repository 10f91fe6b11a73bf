package evaluator

import (
	"sort"
	"strings"

	"github.com/lox/generic-poker/internal/card"
)

// suitOrder fixes a canonical suit ranking: spades, hearts, diamonds,
// clubs, then joker last. It matters for stud bring-in ties and for
// producing a single canonical string for otherwise-identical hands.
var suitOrder = map[card.Suit]int{
	card.Spades:    0,
	card.Hearts:    1,
	card.Diamonds:  2,
	card.Clubs:     3,
	card.JokerSuit: 4,
}

// token is one canonicalized hand element: either a real card or a
// transformed wild/bug/padding marker.
type token struct {
	isCard   bool
	card     card.Card
	wildRank int // 1-based index among wilds, bugs sort after wilds
	isBug    bool
	isPad    bool
}

// Canonicalize transforms a hand into the lookup string the rankings
// source is keyed by:
//  1. wild cards and bugs become ordered tokens W1,W2,... / B1,B2,...
//     in the order they appear in the input;
//  2. the hand is sorted by the evaluator's rank order, wilds first, bugs
//     next, then regular cards by (rank-index, suit-index), padding last;
//  3. for rank-only evaluators, suits are dropped;
//  4. short hands are padded with 'X' if padding_required;
//  5. the result is concatenated into one string.
func Canonicalize(cards []card.Card, order RankOrder, rankOnly, paddingRequired bool, handSize int) string {
	tokens := transformWildsAndBugs(cards)
	sortTokens(tokens, order)
	if paddingRequired {
		for len(tokens) < handSize {
			tokens = append(tokens, token{isPad: true})
		}
	}

	var b strings.Builder
	for _, t := range tokens {
		switch {
		case t.isPad:
			b.WriteByte('X')
		case !t.isCard && t.isBug:
			b.WriteByte('B')
			b.WriteByte(byte('0' + t.wildRank))
		case !t.isCard:
			b.WriteByte('W')
			b.WriteByte(byte('0' + t.wildRank))
		case rankOnly:
			b.WriteString(t.card.Rank.String())
		default:
			b.WriteString(t.card.Rank.String())
			b.WriteString(t.card.Suit.String())
		}
	}
	return b.String()
}

func transformWildsAndBugs(cards []card.Card) []token {
	tokens := make([]token, 0, len(cards))
	wildCount, bugCount := 0, 0
	for _, c := range cards {
		switch c.WildKind {
		case card.Bug:
			bugCount++
			tokens = append(tokens, token{wildRank: bugCount, isBug: true})
		case card.FullyWild:
			wildCount++
			tokens = append(tokens, token{wildRank: wildCount})
		default:
			tokens = append(tokens, token{isCard: true, card: c})
		}
	}
	return tokens
}

func sortTokens(tokens []token, order RankOrder) {
	sort.SliceStable(tokens, func(i, j int) bool {
		return tokenKey(tokens[i], order) < tokenKey(tokens[j], order)
	})
}

// tokenKey packs a sortable key: wilds first, bugs next, regular cards by
// (rank-index, suit-index), padding last. Encoded as a single int so it's
// cheap to compare.
func tokenKey(t token, order RankOrder) int {
	const base = 1000
	switch {
	case t.isPad:
		return 3*base + 1
	case !t.isCard && t.isBug:
		return base + t.wildRank
	case !t.isCard:
		return t.wildRank
	default:
		rankIdx := order.Index(byte(t.card.Rank.String()[0]))
		suitIdx := suitOrder[t.card.Suit]
		return 2*base + rankIdx*10 + suitIdx
	}
}
