// Package store persists the last successfully fetched data to a local
// SQLite database, so listings, categories and budgets stay readable when
// the remote API is unreachable. The snapshot is explicitly a stale copy:
// callers surface the capture time and never mutate it offline.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

const metaTakenAt = "taken_at"

// Snapshot is one complete capture of remote state.
type Snapshot struct {
	Transactions []core.Transaction
	Categories   []core.Category
	Budgets      []core.Budget
	TakenAt      time.Time
}

// SnapshotStore reads and writes snapshots on a local SQLite file.
type SnapshotStore struct {
	db     *sql.DB
	logger *log.Logger
}

func NewSnapshotStore(dbPath string, logger *log.Logger) (*SnapshotStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SnapshotStore{
		db:     db,
		logger: logger.WithComponent(log.ComponentStore),
	}, nil
}

func (s *SnapshotStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save replaces the stored snapshot wholesale inside one transaction. A
// failed save leaves the previous snapshot intact.
func (s *SnapshotStore) Save(ctx context.Context, snap Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot save: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"transactions", "categories", "budgets"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, t := range snap.Transactions {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO transactions (id, amount_cents, vendor, category_id, category_name, tx_date, description, tx_type)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Amount.Cents, t.Vendor, t.CategoryID, t.CategoryName, t.Date.String(), t.Description, string(t.Type))
		if err != nil {
			return fmt.Errorf("insert transaction %d: %w", t.ID, err)
		}
	}
	for _, c := range snap.Categories {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO categories (id, name, cat_type) VALUES (?, ?, ?)",
			c.ID, c.Name, string(c.Type))
		if err != nil {
			return fmt.Errorf("insert category %d: %w", c.ID, err)
		}
	}
	for _, b := range snap.Budgets {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO budgets (id, month, year, amount_cents) VALUES (?, ?, ?, ?)",
			b.ID, b.Month, b.Year, b.Amount.Cents)
		if err != nil {
			return fmt.Errorf("insert budget %d: %w", b.ID, err)
		}
	}

	takenAt := snap.TakenAt
	if takenAt.IsZero() {
		takenAt = time.Now()
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshot_meta (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		metaTakenAt, takenAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("record snapshot time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}

	s.logger.InfoContext(ctx, "snapshot saved",
		log.FieldOperation, log.OpSnapshot,
		log.FieldCount, len(snap.Transactions))
	return nil
}

// TakenAt reports when the stored snapshot was captured. ok is false when
// no snapshot has ever been saved.
func (s *SnapshotStore) TakenAt(ctx context.Context) (time.Time, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM snapshot_meta WHERE key = ?", metaTakenAt).Scan(&raw)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read snapshot time: %w", err)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse snapshot time: %w", err)
	}
	return t, true, nil
}

// Transactions returns the stored listing, newest date first.
func (s *SnapshotStore) Transactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount_cents, vendor, category_id, category_name, tx_date, description, tx_type
		FROM transactions
		ORDER BY tx_date DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			t       core.Transaction
			rawDate string
			rawType string
		)
		if err := rows.Scan(&t.ID, &t.Amount.Cents, &t.Vendor, &t.CategoryID, &t.CategoryName, &rawDate, &t.Description, &rawType); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Type = core.TransactionType(rawType)
		if t.Date, err = core.ParseDate(rawDate); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", t.ID, err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Categories returns the stored reference list ordered by name.
func (s *SnapshotStore) Categories(ctx context.Context) ([]core.Category, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, cat_type FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		var (
			c       core.Category
			rawType string
		)
		if err := rows.Scan(&c.ID, &c.Name, &rawType); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.Type = core.TransactionType(rawType)
		out = append(out, c)
	}
	return out, rows.Err()
}

// BudgetForMonth returns the stored budget row for (month, year), or nil
// when none was captured.
func (s *SnapshotStore) BudgetForMonth(ctx context.Context, month, year int) (*core.Budget, error) {
	var b core.Budget
	err := s.db.QueryRowContext(ctx,
		"SELECT id, month, year, amount_cents FROM budgets WHERE month = ? AND year = ?",
		month, year).Scan(&b.ID, &b.Month, &b.Year, &b.Amount.Cents)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query budget %d/%d: %w", month, year, err)
	}
	return &b, nil
}
