package evaluator

// RankOrder is an ordered list of rank bytes from best to worst for a given
// evaluation type, using the same alphabet as canonical hand strings
// ('2'-'9', 'T', 'J', 'Q', 'K', 'A', 'R' for joker/bug). Index 0 is best.
type RankOrder []byte

// Index returns the sort position of rank r (0 = best), or len(ro) if r is
// not part of this ordering.
func (ro RankOrder) Index(r byte) int {
	for i, b := range ro {
		if b == r {
			return i
		}
	}
	return len(ro)
}

// Named rank orderings. An evaluation-type JSON file references one of
// these names rather than inlining an array, so new evaluation types can be
// added as data without touching Go code.
var namedOrders = map[string]RankOrder{
	// High hand games: ace high, descending.
	"BASE_RANKS": RankOrder("AKQJT98765432"),
	// A-5 lowball: ace is LOW, so it sorts after 2.
	"LOW_A5_RANKS": RankOrder("KQJT98765432A"),
	"LOW_A6_RANKS": RankOrder("KQJT98765432A"),
	// Badugi: ace low, ascending by rank.
	"BADUGI_RANKS": RankOrder("A23456789TJQK"),
	// Short decks.
	"RANKS_36_CARD": RankOrder("AKQJT9876"),
	"RANKS_20_CARD": RankOrder("AKQJT"),
	// 40-card (no 8s, 9s or Ts) deck used by 2-7 Joker/Ace low variants.
	"RANKS_27_JA":       RankOrder("AKQJ7654321"),
	"RANKS_27_JA_JOKER": RankOrder("RAKQJ7654321"),
	// 6-card low pip games pad short hands with 'X'.
	"BASE_RANKS_PADDED": RankOrder("AKQJT98765432X"),
	// High hand with joker sorted first.
	"BASE_RANKS_JOKER":   RankOrder("RAKQJT98765432"),
	"LOW_A5_RANKS_JOKER": RankOrder("RKQJT98765432A"),
}

// ResolveRankOrder looks up a named rank order, defaulting to BASE_RANKS
// for an unknown name (matching the original's lenient default).
func ResolveRankOrder(name string) RankOrder {
	if ro, ok := namedOrders[name]; ok {
		return ro
	}
	return namedOrders["BASE_RANKS"]
}
