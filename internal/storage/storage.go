// Package storage owns the SQLite database handle and the rental_contracts
// schema. The repository layer receives the handle by injection; nothing else
// opens connections.
package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/bilabonnement/rental-service/internal/config"
)

// SchemaError wraps failures to reach the store or apply the DDL.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema error: %v", e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Store is the process-wide database handle. database/sql pools connections
// underneath; every query path releases its connection on all exit paths.
type Store struct {
	db  *sqlx.DB
	log *zap.Logger
}

// Open connects to the single-file SQLite database at the configured path.
func Open(cfg *config.Config, log *zap.Logger) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", cfg.DBPath)

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	log.Info("connected to sqlite database", zap.String("path", cfg.DBPath))
	return &Store{db: db, log: log}, nil
}

// DB exposes the underlying handle to the repository layer.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Init idempotently creates the rental_contracts table and its lookup
// indexes. Column names must stay in sync with models.ContractColumns.
func (s *Store) Init(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS rental_contracts (
			id INTEGER PRIMARY KEY,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL CHECK (end_date > start_date),
			start_km INTEGER NOT NULL CHECK (start_km >= 0),
			contracted_km INTEGER NOT NULL CHECK (contracted_km >= 0),
			monthly_price REAL NOT NULL CHECK (monthly_price >= 0),
			car_id INTEGER NOT NULL,
			customer_id INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_car_id ON rental_contracts(car_id)`,
		`CREATE INDEX IF NOT EXISTS idx_customer_id ON rental_contracts(customer_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return &SchemaError{Err: err}
		}
	}

	s.log.Info("schema initialized")
	return nil
}
