package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/gofiber/fiber/v2/log"
	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate applies pending schema migrations for the store's dialect.
// The migrations only create missing tables, so running it against an
// existing schema is a no-op.
func (s *Store) Migrate(ctx context.Context) error {
	fsys, err := fs.Sub(migrationsFS, path.Join("migrations", s.dialect.name))
	if err != nil {
		return fmt.Errorf("migrations for %s: %w", s.dialect.name, err)
	}

	provider, err := goose.NewProvider(s.dialect.goose, s.db, fsys)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		log.Infof("applied migration %s (%s)", r.Source.Path, r.Duration)
	}
	if len(results) == 0 {
		log.Info("tables created or already exist")
	}
	return nil
}
