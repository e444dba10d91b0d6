// Package db stores the history of cleaning runs in a local SQLite database.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DB represents the database with separate read/write pools
type DB struct {
	write *sql.DB
	read  *sql.DB
	path  string
}

// New creates a new database instance with separate read/write pools
func New(ctx context.Context, dbPath string) (*DB, error) {
	// Connection string with pragmas
	connStr := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dbPath)

	// Write pool: MUST be 1 connection only
	write, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open write connection: %w", err)
	}
	write.SetMaxOpenConns(1)
	write.SetMaxIdleConns(1)
	write.SetConnMaxIdleTime(time.Minute)
	write.SetConnMaxLifetime(time.Hour)

	read, err := sql.Open("sqlite", connStr)
	if err != nil {
		write.Close()
		return nil, fmt.Errorf("open read connection: %w", err)
	}
	read.SetMaxOpenConns(4)
	read.SetMaxIdleConns(2)
	read.SetConnMaxIdleTime(time.Minute)
	read.SetConnMaxLifetime(time.Hour)

	db := &DB{
		write: write,
		read:  read,
		path:  dbPath,
	}

	if err := db.initSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return db, nil
}

// Close closes both database connections
func (db *DB) Close() error {
	writeErr := db.write.Close()
	readErr := db.read.Close()
	if writeErr != nil {
		return writeErr
	}
	return readErr
}

// initSchema creates the schema if it doesn't exist
func (db *DB) initSchema(ctx context.Context) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    mode TEXT NOT NULL,
    path TEXT,
    status TEXT NOT NULL,
    message TEXT,
    cleaned_count INTEGER NOT NULL DEFAULT 0,
    processed_count INTEGER NOT NULL DEFAULT 0,
    run_date DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_mode ON runs(mode);
CREATE INDEX IF NOT EXISTS idx_runs_date ON runs(run_date);
	`

	if _, err := db.write.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	return nil
}

// Run is one recorded cleaning run
type Run struct {
	ID             int64
	Mode           string
	Path           string
	Status         string
	Message        string
	CleanedCount   int
	ProcessedCount int
	RunDate        time.Time
}

// Create records a cleaning run
func (db *DB) Create(ctx context.Context, run *Run) error {
	query := `
INSERT INTO runs (mode, path, status, message, cleaned_count, processed_count, run_date)
VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	if run.RunDate.IsZero() {
		run.RunDate = time.Now().UTC()
	}

	res, err := db.write.ExecContext(ctx, query,
		run.Mode,
		run.Path,
		run.Status,
		run.Message,
		run.CleanedCount,
		run.ProcessedCount,
		run.RunDate,
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		run.ID = id
	}

	return nil
}

// List retrieves run records newest first, up to limit (0 = no limit)
func (db *DB) List(ctx context.Context, limit int) ([]Run, error) {
	query := `
SELECT id, mode, path, status, message, cleaned_count, processed_count, run_date
FROM runs ORDER BY run_date DESC, id DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.read.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.ID,
			&run.Mode,
			&run.Path,
			&run.Status,
			&run.Message,
			&run.CleanedCount,
			&run.ProcessedCount,
			&run.RunDate,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// Prune deletes run records older than the given age and returns how many were removed
func (db *DB) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	res, err := db.write.ExecContext(ctx, "DELETE FROM runs WHERE run_date < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("check rows affected: %w", err)
	}
	return affected, nil
}

// Path returns the database file path, mainly for diagnostics
func (db *DB) Path() string {
	return db.path
}

// SanitizeMessage trims a message for storage: single line, bounded length
func SanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\n", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}
