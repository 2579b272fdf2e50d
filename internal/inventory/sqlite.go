// ABOUTME: SQLite implementation of the inventory Service using modernc.org/sqlite
// ABOUTME: Schema is created on open; WAL mode for concurrent readers

package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore serves inventory lookups from a local SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) the inventory database at path.
// Parent directories are created if needed.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	logger := slog.Default().With("component", "inventory")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating inventory directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening inventory database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db, logger: logger}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating inventory schema: %w", err)
	}

	logger.Info("inventory store initialized", "path", path)
	return s, nil
}

func (s *SQLiteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS inventory (
			article_id INTEGER PRIMARY KEY,
			quantity_available INTEGER NOT NULL DEFAULT 0,
			price_cop REAL,
			currency TEXT NOT NULL DEFAULT 'COP',
			warehouse_location TEXT,
			updated_at TIMESTAMP NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Put inserts or replaces one inventory record. Used by seeding tooling and
// tests; the conversation core only reads.
func (s *SQLiteStore) Put(ctx context.Context, rec Record) error {
	query := `
		INSERT INTO inventory (article_id, quantity_available, price_cop, currency, warehouse_location, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(article_id) DO UPDATE SET
			quantity_available = excluded.quantity_available,
			price_cop = excluded.price_cop,
			currency = excluded.currency,
			warehouse_location = excluded.warehouse_location,
			updated_at = excluded.updated_at
	`
	currency := rec.Currency
	if currency == "" {
		currency = "COP"
	}
	var location any
	if rec.WarehouseLocation != "" {
		location = rec.WarehouseLocation
	}
	var price any
	if rec.PriceCOP != nil {
		price = *rec.PriceCOP
	}
	_, err := s.db.ExecContext(ctx, query,
		rec.ArticleID, rec.QuantityAvailable, price, currency, location, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upserting inventory record: %w", err)
	}
	return nil
}

// ArticlesWithInventory returns the records present for the given article ids.
func (s *SQLiteStore) ArticlesWithInventory(ctx context.Context, articleIDs []int64) ([]Record, error) {
	if len(articleIDs) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(articleIDs))
	placeholders = placeholders[:len(placeholders)-1]
	query := fmt.Sprintf(`
		SELECT article_id, quantity_available, price_cop, currency, warehouse_location
		FROM inventory
		WHERE article_id IN (%s)
	`, placeholders)

	args := make([]any, len(articleIDs))
	for i, id := range articleIDs {
		args[i] = id
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying inventory: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var price sql.NullFloat64
		var location sql.NullString
		if err := rows.Scan(&rec.ArticleID, &rec.QuantityAvailable, &price, &rec.Currency, &location); err != nil {
			return nil, fmt.Errorf("scanning inventory row: %w", err)
		}
		if price.Valid {
			p := price.Float64
			rec.PriceCOP = &p
		}
		rec.WarehouseLocation = location.String
		rec.HasInventory = true
		rec.InStock = rec.QuantityAvailable > 0
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading inventory rows: %w", err)
	}
	return records, nil
}
