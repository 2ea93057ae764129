// Package sqlite provides SQLite-based persistent storage for planshift.
// Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)

	"github.com/planshift/planshift/internal/domain"
)

// Persisted settings keys. The values mirror the original registry
// layout: timeout as an unsigned decimal, target as a 16-byte blob with
// all-zero meaning unset.
const (
	keyAfkTimeoutMinutes = "AfkTimeoutMinutes"
	keyAfkTargetPlan     = "AfkTargetPlan"
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Key-value settings (AFK timeout and target plan)
		`CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value BLOB NOT NULL
		)`,

		// Journal of observed active-plan changes
		`CREATE TABLE IF NOT EXISTS plan_history (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			plan_id    TEXT NOT NULL,
			name       TEXT NOT NULL DEFAULT '',
			source     TEXT NOT NULL,
			changed_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_history_changed ON plan_history(changed_at)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── Settings Store ─────────────────────────────────────────────────────────

// LoadAfkConfig reads the persisted AFK configuration. Missing or
// malformed fields fall back to the disabled defaults, never an error:
// a corrupt settings row degrades to "feature off".
func (d *DB) LoadAfkConfig() (domain.AfkConfig, error) {
	var cfg domain.AfkConfig

	if raw, ok, err := d.getSetting(keyAfkTimeoutMinutes); err != nil {
		return cfg, err
	} else if ok {
		if n, perr := strconv.ParseUint(string(raw), 10, 32); perr == nil {
			cfg.TimeoutMinutes = uint(n)
		}
	}

	if raw, ok, err := d.getSetting(keyAfkTargetPlan); err != nil {
		return cfg, err
	} else if ok && len(raw) == 16 {
		copy(cfg.TargetPlan[:], raw)
	}

	return cfg, nil
}

// SaveAfkConfig writes both settings in one transaction.
func (d *DB) SaveAfkConfig(cfg domain.AfkConfig) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	upsert := `INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`

	timeout := []byte(strconv.FormatUint(uint64(cfg.TimeoutMinutes), 10))
	if _, err := tx.Exec(upsert, keyAfkTimeoutMinutes, timeout); err != nil {
		return err
	}

	target := make([]byte, 16)
	copy(target, cfg.TargetPlan[:])
	if _, err := tx.Exec(upsert, keyAfkTargetPlan, target); err != nil {
		return err
	}

	return tx.Commit()
}

func (d *DB) getSetting(key string) ([]byte, bool, error) {
	var value []byte
	err := d.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// ─── Plan-Change Journal ────────────────────────────────────────────────────

// RecordPlanChange appends one observed change of the active plan.
func (d *DB) RecordPlanChange(c domain.PlanChange) error {
	at := c.ChangedAt
	if at.IsZero() {
		at = time.Now()
	}
	_, err := d.db.Exec(
		`INSERT INTO plan_history (plan_id, name, source, changed_at) VALUES (?, ?, ?, ?)`,
		c.Plan.String(), c.Name, c.Source, at.Unix(),
	)
	return err
}

// PlanHistory returns the most recent changes, newest first.
func (d *DB) PlanHistory(limit int) ([]domain.PlanChange, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.db.Query(
		`SELECT plan_id, name, source, changed_at FROM plan_history
		 ORDER BY changed_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var changes []domain.PlanChange
	for rows.Next() {
		var c domain.PlanChange
		var id string
		var at int64
		if err := rows.Scan(&id, &c.Name, &c.Source, &at); err != nil {
			return nil, err
		}
		if parsed, perr := uuid.Parse(id); perr == nil {
			c.Plan = parsed
		}
		c.ChangedAt = time.Unix(at, 0)
		changes = append(changes, c)
	}
	return changes, rows.Err()
}
