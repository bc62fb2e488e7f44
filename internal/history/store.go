// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a local SQLite ledger of conversions and exports it
// as YAML or JSON.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/timeconv/pkg/types"
)

const (
	dbFile            = "history.db"
	defaultMaxResults = 20
)

// Store manages the history SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
	now        func() time.Time
}

// NewStore opens or creates dir/history.db and its schema.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{
		db:         db,
		dir:        dir,
		maxResults: maxResults,
		now:        time.Now,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Dir returns the directory holding the database and exports.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS conversions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		recorded_at TEXT NOT NULL,
		input TEXT NOT NULL,
		input_type TEXT NOT NULL,
		years REAL NOT NULL,
		days REAL NOT NULL,
		hours REAL NOT NULL,
		minutes REAL NOT NULL,
		seconds REAL NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts a successful conversion. Rows with non-finite quantities
// are refused so the JSON export stays encodable.
func (s *Store) Record(ctx context.Context, c types.Conversion) error {
	for _, q := range []float64{c.Years, c.Days, c.Hours, c.Minutes, c.Seconds} {
		if math.IsNaN(q) || math.IsInf(q, 0) {
			return fmt.Errorf("refusing to record non-finite quantity %v for input %v", q, c.Input)
		}
	}

	input, err := json.Marshal(c.Input)
	if err != nil {
		return fmt.Errorf("encoding input: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO conversions (recorded_at, input, input_type, years, days, hours, minutes, seconds)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.now().UTC().Format(time.RFC3339Nano), string(input), c.InputType,
		c.Years, c.Days, c.Hours, c.Minutes, c.Seconds,
	)
	if err != nil {
		return fmt.Errorf("inserting conversion: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first. A limit of 0 uses the
// configured default; a negative limit returns every entry.
func (s *Store) List(ctx context.Context, limit int) ([]types.HistoryEntry, error) {
	if limit == 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, recorded_at, input, input_type, years, days, hours, minutes, seconds
		FROM conversions ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []types.HistoryEntry
	for rows.Next() {
		var (
			e          types.HistoryEntry
			recordedAt string
			input      string
		)
		if err := rows.Scan(&e.ID, &recordedAt, &input, &e.InputType,
			&e.Years, &e.Days, &e.Hours, &e.Minutes, &e.Seconds); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if e.RecordedAt, err = time.Parse(time.RFC3339Nano, recordedAt); err != nil {
			return nil, fmt.Errorf("parsing recorded_at for entry %d: %w", e.ID, err)
		}
		if err := json.Unmarshal([]byte(input), &e.Input); err != nil {
			return nil, fmt.Errorf("decoding input for entry %d: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear deletes every entry and returns the number removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM conversions`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return res.RowsAffected()
}
