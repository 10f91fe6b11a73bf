package evaluator

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/opencoff/go-chd"
)

// csvSource loads "Hand,Rank,OrderedRank" rows into memory once and answers
// lookups from a minimal perfect hash index built over the loaded keys.
// Canonical strings are fixed once the table loads, which is exactly the
// static-key-set case a CHD minimal perfect hash is built for.
type csvSource struct {
	rows map[string]HandRanking
	keys []string
	mph  *chd.CHD
}

func loadCSVSource(path string) (*csvSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("evaluator: opening rankings csv %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("evaluator: reading rankings csv header %s: %w", path, err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[h] = i
	}

	s := &csvSource{rows: make(map[string]HandRanking)}
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("evaluator: reading rankings csv row %s: %w", path, err)
		}
		hand := rec[col["Hand"]]
		rank, err := strconv.Atoi(rec[col["Rank"]])
		if err != nil {
			return nil, fmt.Errorf("evaluator: bad Rank in %s row %q: %w", path, hand, err)
		}
		hr := HandRanking{HandStr: hand, Rank: rank}
		if idx, ok := col["OrderedRank"]; ok && idx < len(rec) && rec[idx] != "" {
			ordered, err := strconv.Atoi(rec[idx])
			if err != nil {
				return nil, fmt.Errorf("evaluator: bad OrderedRank in %s row %q: %w", path, hand, err)
			}
			hr.OrderedRank = &ordered
		}
		s.rows[hand] = hr
		s.keys = append(s.keys, hand)
	}

	s.buildIndex()
	return s, nil
}

// buildIndex constructs the CHD minimal perfect hash over the loaded keys.
// Lookups always re-check the returned slot's key against the plain map
// before trusting it, so a construction failure only costs the perf
// optimization, never correctness.
func (s *csvSource) buildIndex() {
	if len(s.keys) == 0 {
		return
	}
	b := chd.NewBuilder()
	keyBytes := make([][]byte, len(s.keys))
	for i, k := range s.keys {
		keyBytes[i] = []byte(k)
	}
	for _, kb := range keyBytes {
		b.Add(kb)
	}
	mph, err := b.Freeze(0.9)
	if err != nil {
		return
	}
	s.mph = mph
}

func (s *csvSource) lookup(hand string) (HandRanking, bool) {
	if s.mph != nil {
		idx := s.mph.Find([]byte(hand))
		if int(idx) >= 0 && int(idx) < len(s.keys) && s.keys[idx] == hand {
			return s.rows[hand], true
		}
	}
	hr, ok := s.rows[hand]
	return hr, ok
}
