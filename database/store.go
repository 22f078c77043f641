package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/biosecret/go-todo/config"
	"github.com/gofiber/fiber/v2/log"
)

// Store owns the database handle. Connections are acquired per unit of work
// through WithConn/WithTx and released when the unit returns.
type Store struct {
	db      *sql.DB
	dialect dialect
}

// Open connects to the configured database and verifies it is reachable.
// Idle connections are not retained, so each released connection is closed.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	d, err := dialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := d.open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	db.SetMaxIdleConns(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot connect to %s: %w", d.name, err)
	}

	log.Infof("connected to %s at %s", d.name, cfg.Addr())
	return &Store{db: db, dialect: d}, nil
}

// NewStore wraps an already opened handle.
func NewStore(db *sql.DB, driver string) (*Store, error) {
	if db == nil {
		return nil, errors.New("nil *sql.DB")
	}
	d, err := dialectFor(driver)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, dialect: d}, nil
}

// WithConn acquires a single connection, runs fn against it and releases the
// connection on every exit path.
func (s *Store) WithConn(ctx context.Context, fn func(Queries) error) (err error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("release connection: %w", cerr)
		}
	}()

	return fn(&queries{q: conn, d: s.dialect})
}

// WithTx is WithConn inside a transaction. fn's error (or a panic) rolls back.
func (s *Store) WithTx(ctx context.Context, fn func(Queries) error) (err error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&queries{q: tx, d: s.dialect}); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			log.Errorf("rollback: %v", rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	log.Info("database connection closed")
	return nil
}
