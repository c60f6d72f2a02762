// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog keeps a local history of conversion runs in a SQLite
// database under the output directory. The projector itself stays
// stateless; the catalog only records what was produced and when.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/manuskript-md/pkg/types"
)

const (
	catalogDir = ".manuskript-md"
	dbFile     = "catalog.db"
)

const defaultLimit = 20

// Store manages the conversion history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at outDir/.manuskript-md/catalog.db,
// creating the schema if it does not exist.
func Open(outDir string) (*Store, error) {
	dir := filepath.Join(outDir, catalogDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dir, dbFile)+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
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
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project TEXT NOT NULL,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS documents (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			name TEXT NOT NULL,
			bytes INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_run_id ON documents(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Run is one recorded conversion.
type Run struct {
	ID        int64
	Project   string
	CreatedAt time.Time
	Documents []string
}

// RecordRun stores one conversion run and the documents it produced.
func (s *Store) RecordRun(ctx context.Context, project string, docs []types.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (project, created_at) VALUES (?, ?)`,
		project, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading run id: %w", err)
	}

	for _, d := range docs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO documents (run_id, name, bytes) VALUES (?, ?, ?)`,
			runID, d.Name, len(d.Content)); err != nil {
			return fmt.Errorf("inserting document %s: %w", d.Name, err)
		}
	}
	return tx.Commit()
}

// Runs returns the most recent runs, newest first. A non-positive limit
// uses the default.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, project, created_at FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var created string
		if err := rows.Scan(&r.ID, &r.Project, &created); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, created); err == nil {
			r.CreatedAt = t
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}

	for i := range runs {
		docs, err := s.runDocuments(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Documents = docs
	}
	return runs, nil
}

func (s *Store) runDocuments(ctx context.Context, runID int64) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name FROM documents WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
