// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Yug-Shah/cryptoPals/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for breaking run data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			source TEXT NOT NULL,
			input_bytes INTEGER NOT NULL,
			key_size INTEGER NOT NULL,
			key_hex TEXT NOT NULL,
			score REAL NOT NULL,
			preview TEXT NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS run_keysizes (
			run_id INTEGER NOT NULL,
			key_size INTEGER NOT NULL,
			distance REAL NOT NULL,
			PRIMARY KEY (run_id, key_size)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ended_at ON runs(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_run_keysizes_key_size ON run_keysizes(key_size);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores a completed breaking run and its key size ranking.
func (s *Store) InsertRun(ctx context.Context, rec model.RunRecord, candidates []model.KeySizeCandidate) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (started_at, ended_at, source, input_bytes, key_size, key_hex, score, preview, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.Format(time.RFC3339Nano),
		rec.EndedAt.Format(time.RFC3339Nano),
		rec.Source,
		rec.InputBytes,
		rec.KeySize,
		rec.KeyHex,
		rec.Score,
		rec.Preview,
		rec.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if len(candidates) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO run_keysizes (run_id, key_size, distance)
			 VALUES (?, ?, ?)`)
		if err != nil {
			return 0, err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, c := range candidates {
			if _, err := stmt.ExecContext(ctx, id, c.KeySize, c.Distance); err != nil {
				return 0, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// ListRuns returns run summaries filtered by history config, oldest
// first.
func (s *Store) ListRuns(ctx context.Context, cfg model.HistoryConfig) ([]model.RunSummary, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Source != "" {
		clauses = append(clauses, "source = ?")
		args = append(args, cfg.Source)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, ended_at, source, key_size, key_hex, score, preview, duration_ms
		FROM runs
		WHERE %s
		ORDER BY ended_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.RunSummary
	for rows.Next() {
		var sum model.RunSummary
		var endedAt string
		if err := rows.Scan(&sum.RunID, &endedAt, &sum.Source, &sum.KeySize, &sum.KeyHex, &sum.Score, &sum.Preview, &sum.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, endedAt)
		if err != nil {
			return nil, err
		}
		sum.EndedAt = parsed
		runs = append(runs, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// ListKeySizesForRun returns the stored key size ranking of one run, best
// first.
func (s *Store) ListKeySizesForRun(ctx context.Context, runID int64) ([]model.KeySizeCandidate, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key_size, distance FROM run_keysizes
		 WHERE run_id = ?
		 ORDER BY distance ASC, key_size ASC`, runID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.KeySizeCandidate
	for rows.Next() {
		var c model.KeySizeCandidate
		if err := rows.Scan(&c.KeySize, &c.Distance); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
