// Package ledger archives law-check runs to a local SQLite database so past
// runs can be listed and inspected after the fact.
package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/papapumpkin/topos/internal/laws"
)

// ErrNoRun is returned when a run ID matches no archived run.
var ErrNoRun = errors.New("no archived run with that ID")

// schema contains the DDL executed on first open. Using IF NOT EXISTS makes
// it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    seed       INTEGER NOT NULL,
    samples    INTEGER NOT NULL,
    suites     TEXT NOT NULL DEFAULT '',
    passed     INTEGER NOT NULL DEFAULT 0,
    failed     INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS reports (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id  INTEGER NOT NULL REFERENCES runs(id),
    suite   TEXT NOT NULL,
    checked TEXT NOT NULL,
    passed  INTEGER NOT NULL,
    detail  TEXT NOT NULL DEFAULT ''
);
`

// Run summarizes one archived law-check run.
type Run struct {
	ID        int64
	StartedAt time.Time
	Seed      int64
	Samples   int
	Suites    []string
	Passed    int
	Failed    int
}

// Store is a SQLite-backed run archive.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite database at dbPath, enables WAL mode and
// busy timeout, and creates the schema tables if they do not exist.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("ledger: open database: %w", err)
	}

	// Limit to one connection. SQLite only supports a single writer; using
	// one connection avoids SQLITE_BUSY contention between pooled connections
	// that each need their own PRAGMA setup.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("ledger: enable WAL mode: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("ledger: set busy timeout: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ledger: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// RecordRun archives one run and its per-check reports in a single
// transaction, returning the new run's ID.
func (s *Store) RecordRun(ctx context.Context, seed int64, samples int, suites []string, reports []laws.Report) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("ledger: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	passed, failed := 0, 0
	for _, r := range reports {
		if r.Passed {
			passed++
		} else {
			failed++
		}
	}

	res, err := tx.ExecContext(ctx,
		"INSERT INTO runs (seed, samples, suites, passed, failed) VALUES (?, ?, ?, ?, ?)",
		seed, samples, strings.Join(suites, ","), passed, failed)
	if err != nil {
		return 0, fmt.Errorf("ledger: insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("ledger: run ID: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO reports (run_id, suite, checked, passed, detail) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, fmt.Errorf("ledger: prepare report insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range reports {
		if _, err := stmt.ExecContext(ctx, runID, r.Suite, r.Check, r.Passed, r.Detail); err != nil {
			return 0, fmt.Errorf("ledger: insert report %s/%s: %w", r.Suite, r.Check, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("ledger: commit run: %w", err)
	}
	return runID, nil
}

// Runs returns up to limit archived runs, newest first. A limit below 1
// returns every run.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	q := "SELECT id, started_at, seed, samples, suites, passed, failed FROM runs ORDER BY id DESC"
	args := []any{}
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("ledger: list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var suites string
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.Seed, &r.Samples, &suites, &r.Passed, &r.Failed); err != nil {
			return nil, fmt.Errorf("ledger: scan run: %w", err)
		}
		if suites != "" {
			r.Suites = strings.Split(suites, ",")
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ledger: iterate runs: %w", err)
	}
	return runs, nil
}

// Reports returns the per-check reports of one archived run in insertion
// order.
func (s *Store) Reports(ctx context.Context, runID int64) ([]laws.Report, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM runs WHERE id = ?", runID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("ledger: look up run %d: %w", runID, err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoRun, runID)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT suite, checked, passed, detail FROM reports WHERE run_id = ? ORDER BY id", runID)
	if err != nil {
		return nil, fmt.Errorf("ledger: list reports: %w", err)
	}
	defer rows.Close()

	var reports []laws.Report
	for rows.Next() {
		var r laws.Report
		if err := rows.Scan(&r.Suite, &r.Check, &r.Passed, &r.Detail); err != nil {
			return nil, fmt.Errorf("ledger: scan report: %w", err)
		}
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ledger: iterate reports: %w", err)
	}
	return reports, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("ledger: close: %w", err)
	}
	return nil
}
