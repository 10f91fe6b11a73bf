package evaluator

import (
	"fmt"

	"github.com/lox/generic-poker/internal/card"
)

// rankingSource is whatever backs a lookup: a loaded CSV table or an open
// SQLite connection.
type rankingSource interface {
	lookup(hand string) (HandRanking, bool)
}

// Evaluator is the capability set every evaluation-type implementation
// shares: evaluate a hand, compare two rankings, and describe the
// evaluator's shape for callers building showdown hands.
type Evaluator interface {
	Evaluate(cards []card.Card) (HandRanking, error)
	Compare(a, b HandRanking) int
	HandSize() int
	EvalType() string
	SampleHand(rank, orderedRank int) (string, error)
}

// StandardEvaluator is the single, data-driven Evaluator implementation:
// every evaluation type (high, lowball, badugi, pip counts, wild/bug
// variants, ...) is this same canonicalize-then-lookup shape, parameterized
// by a TypeConfig. There is deliberately no per-family Go type — the dozens
// of evaluation rule sets are TypeConfigs, not implementations.
type StandardEvaluator struct {
	cfg    TypeConfig
	order  RankOrder
	source rankingSource
}

func newStandardEvaluator(cfg TypeConfig, order RankOrder, source rankingSource) *StandardEvaluator {
	return &StandardEvaluator{cfg: cfg, order: order, source: source}
}

// Evaluate canonicalizes cards and looks up the resulting string. A hand
// short of HandSize() is only accepted when the type requires padding.
func (e *StandardEvaluator) Evaluate(cards []card.Card) (HandRanking, error) {
	if len(cards) != e.cfg.HandSize && !e.cfg.PaddingRequired {
		return HandRanking{}, fmt.Errorf("evaluator: %s requires exactly %d cards, got %d", e.cfg.ID, e.cfg.HandSize, len(cards))
	}
	handStr := Canonicalize(cards, e.order, e.cfg.RankOnly, e.cfg.PaddingRequired, e.cfg.HandSize)
	ranking, ok := e.source.lookup(handStr)
	if !ok {
		return HandRanking{}, &Error{EvalType: e.cfg.ID, HandStr: handStr}
	}
	return ranking, nil
}

// Compare orders two rankings for this evaluation type. Lower HandRanking
// rank is always the winner — low-type ids are authored so rank 1 is the
// best low hand, so no inversion happens here.
func (e *StandardEvaluator) Compare(a, b HandRanking) int {
	return a.Compare(b)
}

func (e *StandardEvaluator) HandSize() int   { return e.cfg.HandSize }
func (e *StandardEvaluator) EvalType() string { return e.cfg.ID }

// SampleHand returns a canonical hand string matching the given rank and
// ordered_rank, for diagnostics and the hand describer's "find a
// representative hand" needs. Only cheap on a csvSource; on a sqliteSource
// it issues a query.
func (e *StandardEvaluator) SampleHand(rank, orderedRank int) (string, error) {
	switch src := e.source.(type) {
	case *csvSource:
		for _, k := range src.keys {
			hr := src.rows[k]
			if hr.Rank == rank && hr.OrderedRank != nil && *hr.OrderedRank == orderedRank {
				return k, nil
			}
		}
		return "", fmt.Errorf("evaluator: %s: no sample hand for rank %d ordered_rank %d", e.cfg.ID, rank, orderedRank)
	case *sqliteSource:
		row := src.db.QueryRow(`SELECT hand_str FROM hand_rankings WHERE rank = ? AND ordered_rank = ? LIMIT 1`, rank, orderedRank)
		var hand string
		if err := row.Scan(&hand); err != nil {
			return "", fmt.Errorf("evaluator: %s: no sample hand for rank %d ordered_rank %d", e.cfg.ID, rank, orderedRank)
		}
		return hand, nil
	default:
		return "", fmt.Errorf("evaluator: %s: sample hand lookup unsupported for this source", e.cfg.ID)
	}
}
