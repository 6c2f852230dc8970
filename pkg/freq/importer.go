package freq

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
)

// ListEntry is one row of a frequency-list dump.
type ListEntry struct {
	Expression string `json:"expression"`
	Reading    string `json:"reading"`
	Rank       int    `json:"rank"`
}

// LoadList reads a JSON rank list. Both an object wrapper
// { "terms": [...] } and a bare array are accepted.
func LoadList(path string) ([]ListEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var wrapper struct {
		Terms []ListEntry `json:"terms"`
	}
	dec := json.NewDecoder(f)
	if err := dec.Decode(&wrapper); err == nil && len(wrapper.Terms) > 0 {
		return wrapper.Terms, nil
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	var entries []ListEntry
	dec = json.NewDecoder(f)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse rank list as object or array: %w", err)
	}
	return entries, nil
}

// Import writes entries into the frequency table in batched transactions
// so large lists do not pay per-row commit cost. Rows without an
// expression or with a non-positive rank are skipped. Returns the number
// of rows written.
func Import(ctx context.Context, db *sql.DB, entries []ListEntry, batchSize int) (int, error) {
	if batchSize <= 0 {
		batchSize = 500
	}

	written := 0
	for start := 0; start < len(entries); start += batchSize {
		end := start + batchSize
		if end > len(entries) {
			end = len(entries)
		}

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return written, fmt.Errorf("begin batch tx: %w", err)
		}
		for _, e := range entries[start:end] {
			if e.Expression == "" || e.Rank <= 0 {
				continue
			}
			if _, err := tx.Exec(
				`INSERT OR REPLACE INTO frequency (expression, reading, rank) VALUES (?, ?, ?)`,
				e.Expression, e.Reading, e.Rank,
			); err != nil {
				_ = tx.Rollback()
				return written, fmt.Errorf("insert %s: %w", e.Expression, err)
			}
			written++
		}
		if err := tx.Commit(); err != nil {
			return written, fmt.Errorf("commit batch of %d: %w", end-start, err)
		}
	}
	return written, nil
}
