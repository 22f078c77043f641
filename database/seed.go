package database

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biosecret/go-todo/models"
	"github.com/gofiber/fiber/v2/log"
)

// AdminUsername is the seed user that receives the starter todos.
const AdminUsername = "admin"

var adminTodos = []models.Todo{
	{Title: "Cleanup the code", Description: "Refactor and optimize the codebase"},
	{Title: "Create new tasks for users", Description: "Add functionality for users to create tasks"},
}

// ReadSeedUsers parses a CSV with a header row naming "name" and "email"
// columns. Column order is free and extra columns are ignored.
func ReadSeedUsers(r io.Reader) ([]models.SeedUser, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("seed file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("read seed header: %w", err)
	}

	nameCol, emailCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))) {
		case "name":
			nameCol = i
		case "email":
			emailCol = i
		}
	}
	if nameCol < 0 || emailCol < 0 {
		return nil, fmt.Errorf("seed header must contain name and email columns, got %v", header)
	}

	var users []models.SeedUser
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read seed record: %w", err)
		}
		if nameCol >= len(rec) || emailCol >= len(rec) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("seed line %d: expected name and email", line)
		}
		users = append(users, models.SeedUser{
			Name:  strings.TrimSpace(rec[nameCol]),
			Email: strings.TrimSpace(rec[emailCol]),
		})
	}
	return users, nil
}

// Seed inserts users, plus the starter todos for the admin user, when the
// users table is empty. It returns how many users were inserted; zero means
// the table already had rows and nothing was written.
func Seed(ctx context.Context, q Queries, users []models.SeedUser) (int, error) {
	count, err := q.CountUsers(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for i, u := range users {
		id, err := q.CreateUser(ctx, u.Name, u.Email)
		if err != nil {
			return 0, fmt.Errorf("seed user %d (%s): %w", i+1, u.Name, err)
		}
		if u.Name != AdminUsername {
			continue
		}
		for _, t := range adminTodos {
			t.UserID = id
			if err := q.CreateTodo(ctx, &t); err != nil {
				return 0, fmt.Errorf("seed todo %q: %w", t.Title, err)
			}
		}
	}
	return len(users), nil
}

// SeedFromFile runs Seed in one transaction with users read from path.
// The file is only opened when the users table is empty.
func (s *Store) SeedFromFile(ctx context.Context, path string) (int, error) {
	var count int
	err := s.WithConn(ctx, func(q Queries) error {
		var err error
		count, err = q.CountUsers(ctx)
		return err
	})
	if err != nil {
		return 0, err
	}
	if count > 0 {
		log.Infof("users table has %d rows, skipping seed", count)
		return 0, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	users, err := ReadSeedUsers(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	var inserted int
	err = s.WithTx(ctx, func(q Queries) error {
		var err error
		inserted, err = Seed(ctx, q, users)
		return err
	})
	if err != nil {
		return 0, err
	}
	log.Infof("seeded %d users from %s", inserted, path)
	return inserted, nil
}

// Init prepares the schema and loads the seed file into a fresh database.
func (s *Store) Init(ctx context.Context, seedPath string) error {
	if err := s.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	if _, err := s.SeedFromFile(ctx, seedPath); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	return nil
}
