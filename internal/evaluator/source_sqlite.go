package evaluator

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteSource backs large evaluation tables (e.g. 7-card evaluations) that
// are too big to comfortably hold as a CSV loaded wholesale. The
// connection is read-only and opened once per evaluation type; it is
// released when the owning registry is torn down.
type sqliteSource struct {
	db *sql.DB
}

func loadSQLiteSource(path string) (*sqliteSource, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("evaluator: opening rankings db %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("evaluator: connecting to rankings db %s: %w", path, err)
	}
	return &sqliteSource{db: db}, nil
}

func (s *sqliteSource) lookup(hand string) (HandRanking, bool) {
	row := s.db.QueryRow(`SELECT rank, ordered_rank FROM hand_rankings WHERE hand_str = ?`, hand)
	var hr HandRanking
	var ordered sql.NullInt64
	if err := row.Scan(&hr.Rank, &ordered); err != nil {
		return HandRanking{}, false
	}
	hr.HandStr = hand
	if ordered.Valid {
		v := int(ordered.Int64)
		hr.OrderedRank = &v
	}
	return hr, true
}

func (s *sqliteSource) Close() error {
	return s.db.Close()
}
