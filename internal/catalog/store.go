// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog keeps a SQLite log of completed conversions so a survey's
// processing history can be listed and exported later.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/vs2sgt/pkg/types"
)

const defaultListLimit = 20

// Store manages the catalog database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the catalog database at cfg.Path and creates the
// schema if it does not exist.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("catalog path is empty")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating catalog directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
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
			vs_path TEXT NOT NULL,
			sgt_path TEXT NOT NULL,
			first_shot REAL NOT NULL,
			last_shot REAL NOT NULL,
			first_geophone REAL NOT NULL,
			last_geophone REAL NOT NULL,
			shot_spacing REAL NOT NULL,
			declared_shots INTEGER,
			shots INTEGER,
			phone_spacing REAL,
			observations INTEGER,
			stations INTEGER,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_vs_path ON runs(vs_path)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts run and returns its ID. A zero ConvertedAt is stamped with
// the current time.
func (s *Store) Record(ctx context.Context, run types.ConversionRun) (int64, error) {
	if run.ConvertedAt.IsZero() {
		run.ConvertedAt = time.Now()
	}
	g := run.Geometry
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (vs_path, sgt_path, first_shot, last_shot, first_geophone,
			last_geophone, shot_spacing, declared_shots, shots, phone_spacing,
			observations, stations, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.VSPath, run.SGTPath, g.FirstShot, g.LastShot, g.FirstGeophone,
		g.LastGeophone, g.ShotSpacing, run.DeclaredShots, run.Shots, run.PhoneSpacing,
		run.Observations, run.Stations, run.ConvertedAt.UTC().Format(time.RFC3339Nano),
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

// List returns up to limit runs, newest first. A limit of 0 or less uses
// the default of 20.
func (s *Store) List(ctx context.Context, limit int) ([]types.ConversionRun, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return s.query(ctx, `ORDER BY id DESC LIMIT ?`, limit)
}

// All returns every run, oldest first.
func (s *Store) All(ctx context.Context) ([]types.ConversionRun, error) {
	return s.query(ctx, `ORDER BY id ASC`)
}

func (s *Store) query(ctx context.Context, tail string, args ...any) ([]types.ConversionRun, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, vs_path, sgt_path, first_shot, last_shot, first_geophone,
			last_geophone, shot_spacing, declared_shots, shots, phone_spacing,
			observations, stations, converted_at
		 FROM runs `+tail, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	runs := []types.ConversionRun{}
	for rows.Next() {
		var r types.ConversionRun
		var ts string
		if err := rows.Scan(&r.ID, &r.VSPath, &r.SGTPath,
			&r.Geometry.FirstShot, &r.Geometry.LastShot, &r.Geometry.FirstGeophone,
			&r.Geometry.LastGeophone, &r.Geometry.ShotSpacing,
			&r.DeclaredShots, &r.Shots, &r.PhoneSpacing,
			&r.Observations, &r.Stations, &ts); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		r.ConvertedAt, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp of run %d: %w", r.ID, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
