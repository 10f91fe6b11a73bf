package describer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/generic-poker/internal/card"
	"github.com/lox/generic-poker/internal/evaluator"
)

func hand(t *testing.T, ss ...string) []card.Card {
	t.Helper()
	out := make([]card.Card, len(ss))
	for i, s := range ss {
		c, err := card.Parse(s)
		require.NoError(t, err)
		out[i] = c
	}
	return out
}

func TestDescribeHighShapes(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"AsKsQsJsTs", "Royal Flush"},
		{"9s7s5s3s2s", "Flush"},
		{"5h4d3c2s6h", "Straight"},
		{"AsAhAdAcKs", "Four of a Kind"},
		{"KsKhKdQsQh", "Full House"},
		{"AsAhAdKsQh", "Three of a Kind"},
		{"AsAhKsKdQh", "Two Pair"},
		{"AsAhKsQdJh", "Pair"},
		{"AsKhQdJc9h", "High Card"},
	}
	for _, tc := range cases {
		got := describeHighShape(hand(t, tc.name[0:2], tc.name[2:4], tc.name[4:6], tc.name[6:8], tc.name[8:10]))
		assert.Equal(t, tc.want, got, tc.name)
	}
}

func TestDescribeWheelStraight(t *testing.T) {
	got := describeHighShape(hand(t, "As", "2h", "3d", "4c", "5s"))
	assert.Equal(t, "Straight", got)
}

func TestDescribeBadugiCountsDistinctRanksAndSuits(t *testing.T) {
	got := describeBadugi(hand(t, "As", "2h", "3d", "4c"))
	assert.Equal(t, "4-card Badugi", got)

	// A pair in rank breaks one card out of the badugi count.
	got = describeBadugi(hand(t, "As", "2h", "3d", "3c"))
	assert.Equal(t, "3-card Badugi", got)
}

func TestDescribePipSumsValues(t *testing.T) {
	got := Describe("49", evaluator.HandRanking{}, hand(t, "As", "Th", "Jd", "Qc", "2s"))
	assert.Equal(t, "33", got) // 1 + 10 + 10 + 10 + 2
}

func TestDescribeDispatchesOnEvalType(t *testing.T) {
	r := evaluator.HandRanking{Rank: 42}
	assert.Equal(t, "unknown_type (rank 42)", Describe("unknown_type", r, nil))
}
