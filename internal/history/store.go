// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists processing runs in a SQLite database with a
// full-text index over the rendered output.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/reflow-engine/pkg/types"
)

const dbFile = "reflow.db"

// Run is one recorded processing run.
type Run struct {
	ID                 int64              `json:"id" yaml:"id"`
	Source             string             `json:"source" yaml:"source"`
	PageCount          int                `json:"page_count" yaml:"page_count"`
	AverageConfidence  float64            `json:"average_confidence" yaml:"average_confidence"`
	LowConfidencePages []int              `json:"low_confidence_pages,omitempty" yaml:"low_confidence_pages,omitempty"`
	OutputFormat       types.OutputFormat `json:"output_format" yaml:"output_format"`
	OutputPath         string             `json:"output_path" yaml:"output_path"`
	ProcessedAt        time.Time          `json:"processed_at" yaml:"processed_at"`
}

// SearchResult is a run matched by full-text search, with a snippet of
// the matching output.
type SearchResult struct {
	Run
	Snippet string `json:"snippet" yaml:"snippet"`
}

// Store manages the history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the history database at
// cfg.HistoryDir/reflow.db, creating the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.HistoryDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.HistoryDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
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
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			source TEXT NOT NULL,
			page_count INTEGER NOT NULL,
			average_confidence REAL NOT NULL,
			low_confidence_pages TEXT,
			output_format TEXT NOT NULL,
			output_path TEXT,
			processed_at TEXT NOT NULL,
			output TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='runs_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE runs_fts USING fts5(output, content=runs, content_rowid=rowid)`,
			`CREATE TRIGGER runs_ai AFTER INSERT ON runs BEGIN
				INSERT INTO runs_fts(rowid, output) VALUES (new.rowid, new.output);
			END`,
			`CREATE TRIGGER runs_ad AFTER DELETE ON runs BEGIN
				INSERT INTO runs_fts(runs_fts, rowid, output) VALUES('delete', old.rowid, old.output);
			END`,
			`CREATE TRIGGER runs_au AFTER UPDATE ON runs BEGIN
				INSERT INTO runs_fts(runs_fts, rowid, output) VALUES('delete', old.rowid, old.output);
				INSERT INTO runs_fts(rowid, output) VALUES (new.rowid, new.output);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Record stores one processing run with its rendered output and returns
// the assigned run ID.
func (s *Store) Record(ctx context.Context, run Run, output string) (int64, error) {
	pagesJSON, _ := json.Marshal(run.LowConfidencePages)

	processedAt := run.ProcessedAt
	if processedAt.IsZero() {
		processedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (source, page_count, average_confidence, low_confidence_pages,
			output_format, output_path, processed_at, output)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Source, run.PageCount, run.AverageConfidence, string(pagesJSON),
		string(run.OutputFormat), run.OutputPath,
		processedAt.Format(time.RFC3339Nano), output,
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run id: %w", err)
	}
	return id, nil
}

// List returns the most recent runs, newest first. A limit of zero uses
// the store default.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT rowid, source, page_count, average_confidence, low_confidence_pages,
			output_format, output_path, processed_at
		 FROM runs ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows, nil)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Search runs a full-text query over recorded outputs, returning
// matches ranked by relevance with a snippet around the first match.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT r.rowid, r.source, r.page_count, r.average_confidence, r.low_confidence_pages,
			r.output_format, r.output_path, r.processed_at,
			snippet(runs_fts, 0, '[', ']', '...', 12)
		 FROM runs_fts
		 JOIN runs r ON r.rowid = runs_fts.rowid
		 WHERE runs_fts MATCH ?
		 ORDER BY runs_fts.rank
		 LIMIT ?`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching runs: %w", err)
	}
	defer rows.Close()

	var results []SearchResult
	for rows.Next() {
		var snippet string
		run, err := scanRun(rows, &snippet)
		if err != nil {
			return nil, err
		}
		results = append(results, SearchResult{Run: run, Snippet: snippet})
	}
	return results, rows.Err()
}

func scanRun(rows *sql.Rows, snippet *string) (Run, error) {
	var (
		run         Run
		pagesJSON   sql.NullString
		format      string
		outputPath  sql.NullString
		processedAt string
	)

	dest := []any{
		&run.ID, &run.Source, &run.PageCount, &run.AverageConfidence,
		&pagesJSON, &format, &outputPath, &processedAt,
	}
	if snippet != nil {
		dest = append(dest, snippet)
	}

	if err := rows.Scan(dest...); err != nil {
		return Run{}, fmt.Errorf("scanning run: %w", err)
	}

	if pagesJSON.Valid {
		json.Unmarshal([]byte(pagesJSON.String), &run.LowConfidencePages)
	}
	run.OutputFormat = types.OutputFormat(format)
	if outputPath.Valid {
		run.OutputPath = outputPath.String
	}
	if t, err := time.Parse(time.RFC3339Nano, processedAt); err == nil {
		run.ProcessedAt = t
	}

	return run, nil
}
