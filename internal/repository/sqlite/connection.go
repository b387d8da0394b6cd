// Package sqlite implements the repository against an embedded SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"employee-service/config"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const createEmployeesTable = `
CREATE TABLE IF NOT EXISTS employees (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT NOT NULL,
    last_name  TEXT NOT NULL,
    email      TEXT NOT NULL UNIQUE
);
`

const createEmployeesNameIndex = `CREATE INDEX IF NOT EXISTS employees_name_idx ON employees (first_name, last_name);`

// SQLite wraps a database/sql handle opened with the go-sqlite3 driver.
type SQLite struct {
	log *zap.SugaredLogger
	db  *sql.DB
	cfg config.SQLiteConfig
}

// New creates a SQLite repository instance.
func New(log *zap.SugaredLogger, cfg *config.Config) *SQLite {
	return &SQLite{
		log: log.Named("repo.sqlite"),
		cfg: cfg.SQLite,
	}
}

// OnStart opens the database file and creates the schema.
func (s *SQLite) OnStart(ctx context.Context) error {
	db, err := sql.Open("sqlite3", s.cfg.DSN())
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite serialises writers; one connection avoids SQLITE_BUSY between pool members.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("ping sqlite: %w", err)
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	s.log.Infow("sqlite ready", "path", s.cfg.Path)
	return nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createEmployeesTable); err != nil {
		return fmt.Errorf("create employees table: %w", err)
	}
	if _, err := db.ExecContext(ctx, createEmployeesNameIndex); err != nil {
		return fmt.Errorf("create employees index: %w", err)
	}
	return nil
}

// OnStop closes the database handle.
func (s *SQLite) OnStop(_ context.Context) error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
