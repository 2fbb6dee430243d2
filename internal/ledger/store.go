// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ledger persists normalized trips in a local SQLite database so
// several receipts can be accumulated before a reimbursement report is
// generated.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/pdiddy/tripconv/pkg/types"
)

const dbFile = "trips.db"

// Store manages the trip ledger SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the ledger database at dir/trips.db, creating
// the schema if it does not exist.
func NewStore(cfg types.LedgerConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "ledger"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	s := &Store{db: db}
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

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS trips (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			platform TEXT NOT NULL,
			seq TEXT NOT NULL,
			date TEXT,
			passenger TEXT,
			origin TEXT,
			destination TEXT,
			purpose TEXT,
			amount TEXT NOT NULL,
			imported_at TEXT NOT NULL,
			UNIQUE(source, seq)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trips_platform ON trips(platform)`,
		`CREATE INDEX IF NOT EXISTS idx_trips_passenger ON trips(passenger)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// ImportSummary reports the outcome of a receipt import.
type ImportSummary struct {
	Inserted int
	Skipped  int
}

// Import inserts trips from one receipt. The (source, seq) uniqueness
// constraint makes re-importing the same receipt idempotent: duplicate
// rows are counted as skipped.
func (s *Store) Import(ctx context.Context, source, platformTag string, trips []types.Trip) (ImportSummary, error) {
	const insert = `INSERT OR IGNORE INTO trips
		(source, platform, seq, date, passenger, origin, destination, purpose, amount, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	now := time.Now().UTC().Format(time.RFC3339)

	var summary ImportSummary
	for _, t := range trips {
		res, err := s.db.ExecContext(ctx, insert,
			source, platformTag, t.Seq, t.Date, t.Passenger,
			t.Origin, t.Destination, t.Purpose, t.Amount.String(), now)
		if err != nil {
			return summary, fmt.Errorf("inserting trip %s/%s: %w", source, t.Seq, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return summary, fmt.Errorf("checking insert result: %w", err)
		}
		if n == 0 {
			summary.Skipped++
		} else {
			summary.Inserted++
		}
	}
	return summary, nil
}

// Filter narrows ledger queries. Empty fields match everything.
type Filter struct {
	Platform  string
	Passenger string
}

// Record is one stored trip with its provenance.
type Record struct {
	types.Trip
	Platform   string
	Source     string
	ImportedAt string
}

// List returns stored trips ordered by date then sequence.
func (s *Store) List(ctx context.Context, f Filter) ([]Record, error) {
	query := `SELECT source, platform, seq, date, passenger, origin, destination, purpose, amount, imported_at
		FROM trips WHERE 1=1`
	var args []any
	if f.Platform != "" {
		query += " AND platform = ?"
		args = append(args, f.Platform)
	}
	if f.Passenger != "" {
		query += " AND passenger = ?"
		args = append(args, f.Passenger)
	}
	query += " ORDER BY date, seq"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying trips: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		var amount string
		if err := rows.Scan(&r.Source, &r.Platform, &r.Seq, &r.Date, &r.Passenger,
			&r.Origin, &r.Destination, &r.Purpose, &amount, &r.ImportedAt); err != nil {
			return nil, fmt.Errorf("scanning trip: %w", err)
		}
		r.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parsing stored amount %q: %w", amount, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Total sums the fares of the matching trips. Amounts are stored as text
// and summed with decimal arithmetic to avoid float drift.
func (s *Store) Total(ctx context.Context, f Filter) (decimal.Decimal, error) {
	records, err := s.List(ctx, f)
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total, nil
}
