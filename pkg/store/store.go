// Package store is an append-only audit log of roster.Simulate runs,
// recording each run's ID, ward/month, seed, attempt budget and resulting
// score breakdown so a supervisor can trace why a roster looks the way it
// does. No user identity is stored.
package store

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jakechorley/ward-roster/pkg/core/roster"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DB wraps the audit-log connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// NewDB opens a connection pool and verifies connectivity.
func NewDB(ctx context.Context, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close releases the pool.
func (db *DB) Close() {
	db.pool.Close()
}

// RunMigrations executes every embedded SQL migration file in name order.
func (db *DB) RunMigrations(ctx context.Context) error {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var sqlFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			sqlFiles = append(sqlFiles, entry.Name())
		}
	}
	sort.Strings(sqlFiles)

	for _, filename := range sqlFiles {
		content, err := fs.ReadFile(migrationsFS, "migrations/"+filename)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", filename, err)
		}
		if _, err := db.pool.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", filename, err)
		}
	}

	return nil
}

// RunRecord is one audit-log entry for a completed simulation.
type RunRecord struct {
	RunID       string
	Ward        string
	Year        int
	Month       int
	Seed        int64
	MaxAttempts int
	Score       roster.Score
}

// RecordRun appends one audit-log row. Failures here are surfaced to the
// caller but never block the roster generation itself (§7: the audit trail
// is a side effect, not a precondition of producing a roster).
func (db *DB) RecordRun(ctx context.Context, rec RunRecord) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO roster_runs (
			run_id, ward, year, month, seed, max_attempts,
			holes, off_diff, singles, longs, min_off_violations, max_n_violations, total_score
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`,
		rec.RunID, rec.Ward, rec.Year, rec.Month, rec.Seed, rec.MaxAttempts,
		rec.Score.Holes, rec.Score.OffDiff, rec.Score.Singles, rec.Score.Longs,
		rec.Score.MinOffViolations, rec.Score.MaxNViolations, rec.Score.Total,
	)
	if err != nil {
		return fmt.Errorf("failed to record roster run: %w", err)
	}
	return nil
}
