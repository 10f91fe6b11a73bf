package evaluator

import "fmt"

// HandRanking is a single row looked up from a rankings source: the
// canonical hand string it was keyed by, its primary rank, and an optional
// secondary ordered_rank for tie-breaking within a rank class. Rank 1 is
// always best, including for low-type ids — the rankings data is authored
// so no inversion happens here.
type HandRanking struct {
	HandStr     string
	Rank        int
	OrderedRank *int
}

// Compare orders two rankings: lower Rank wins, so Compare(a, b) < 0 means a
// is the better hand (consistent with a standard ascending comparator over
// "goodness"). Ties break on OrderedRank (lower wins) when both are present;
// otherwise a true tie — no implicit secondary comparator.
func (h HandRanking) Compare(other HandRanking) int {
	if h.Rank != other.Rank {
		if h.Rank < other.Rank {
			return -1
		}
		return 1
	}
	if h.OrderedRank != nil && other.OrderedRank != nil {
		if *h.OrderedRank != *other.OrderedRank {
			if *h.OrderedRank < *other.OrderedRank {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Error is raised when a canonical hand string has no corresponding row in
// the rankings source: a data-integrity fault, never a silent miss.
type Error struct {
	EvalType string
	HandStr  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("evaluator: invalid hand for %s: %q not found in rankings", e.EvalType, e.HandStr)
}

// TypeConfig is the parsed form of an evaluation-type JSON file: identity,
// required hand size, the rank order to sort by, and where its rankings
// live.
type TypeConfig struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	HandSize      int            `json:"hand_size"`
	RankOrderName string         `json:"rank_order"`
	RankOnly      bool           `json:"rank_only"`
	PaddingRequired bool         `json:"padding_required"`
	DataFiles     DataFilesBlock `json:"data_files"`
}

// DataFilesBlock holds the ranking (and optional description) data file
// configuration of a TypeConfig.
type DataFilesBlock struct {
	Ranking DataFileConfig `json:"ranking"`
}

// DataFileConfig names the source of a rankings table: a CSV file, a
// SQLite database, or an offline "generated" source the core never reads
// directly.
type DataFileConfig struct {
	SourceType string `json:"source_type"` // "csv" | "database" | "generated"
	Path       string `json:"path"`
}
