package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandRankingCompareOrderedRankTiebreak(t *testing.T) {
	o1, o2 := 1, 2
	a := HandRanking{Rank: 5, OrderedRank: &o1}
	b := HandRanking{Rank: 5, OrderedRank: &o2}
	assert.Negative(t, a.Compare(b), "lower OrderedRank wins within the same Rank class")
	assert.Positive(t, b.Compare(a))
}

// TestHandRankingCompareNoOrderedRankIsTrueTie: when OrderedRank is absent
// on either side, the result is a true tie -- no implicit secondary
// comparator.
func TestHandRankingCompareNoOrderedRankIsTrueTie(t *testing.T) {
	a := HandRanking{Rank: 5}
	b := HandRanking{Rank: 5}
	assert.Zero(t, a.Compare(b))

	o := 1
	c := HandRanking{Rank: 5, OrderedRank: &o}
	assert.Zero(t, a.Compare(c), "one side missing OrderedRank must not fall back to any other comparator")
}

func TestHandRankingCompareIsAntisymmetric(t *testing.T) {
	o1, o2 := 3, 9
	a := HandRanking{Rank: 10, OrderedRank: &o1}
	b := HandRanking{Rank: 20, OrderedRank: &o2}
	assert.Equal(t, a.Compare(b), -b.Compare(a))
	assert.Equal(t, a.Compare(a), 0)
}
