// Package freq is a read-only frequency-rank index backed by SQLite. It
// answers "how common is this word" lookups for the frequency markers and
// ships an importer for building the database from a rank-list dump.
package freq

import (
	"database/sql"
	"strings"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS frequency (
	expression TEXT NOT NULL,
	reading TEXT NOT NULL DEFAULT '',
	rank INTEGER NOT NULL,
	PRIMARY KEY (expression, reading)
);
CREATE INDEX IF NOT EXISTS idx_frequency_expression ON frequency (expression)
`

// InitDB creates the frequency schema on the given connection.
func InitDB(db *sql.DB) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Index resolves frequency ranks. It satisfies the anki.FrequencyIndex
// interface.
type Index struct {
	db *sql.DB
}

// NewIndex wraps an open connection. The caller owns the connection.
func NewIndex(db *sql.DB) *Index {
	return &Index{db: db}
}

// Rank looks up the best (lowest) rank recorded for the word. The kanji
// form is tried first, constrained to the given reading when one is
// stored; a kana-form row is the fallback. ok is false when neither form
// is ranked.
func (ix *Index) Rank(kanjiForm, kanaForm string) (int, bool, error) {
	if kanjiForm != "" {
		rank, ok, err := ix.lookup(kanjiForm, kanaForm)
		if err != nil || ok {
			return rank, ok, err
		}
	}
	if kanaForm != "" {
		return ix.lookup(kanaForm, "")
	}
	return 0, false, nil
}

func (ix *Index) lookup(expression, reading string) (int, bool, error) {
	var rank int
	err := ix.db.QueryRow(
		`SELECT rank FROM frequency
		 WHERE expression = ? AND (reading = ? OR reading = '')
		 ORDER BY rank LIMIT 1`,
		expression, reading,
	).Scan(&rank)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return rank, true, nil
}
