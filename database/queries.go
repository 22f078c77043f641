package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/biosecret/go-todo/models"
)

// Queries is the set of statements a unit of work can run on its connection.
type Queries interface {
	CountUsers(ctx context.Context) (int, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	CreateUser(ctx context.Context, username, email string) (int64, error)

	ListTodos(ctx context.Context, userID int64) ([]models.Todo, error)
	CreateTodo(ctx context.Context, t *models.Todo) error
	ToggleTodo(ctx context.Context, id int64) (int64, error)
	DeleteTodo(ctx context.Context, id int64) (int64, error)
}

// querier is satisfied by both *sql.Conn and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type queries struct {
	q querier
	d dialect
}

func (r *queries) CountUsers(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *queries) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.q.QueryContext(ctx,
		"SELECT id, username, email, created_at FROM users ORDER BY created_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (r *queries) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := r.q.QueryRowContext(ctx,
		r.d.rebind("SELECT id, username, email, created_at FROM users WHERE id = ?"), id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &u, nil
}

func (r *queries) CreateUser(ctx context.Context, username, email string) (int64, error) {
	id, err := r.d.insert(ctx, r.q, "INSERT INTO users (username, email) VALUES (?, ?)", username, email)
	if err != nil {
		if IsUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %w", ErrDuplicateKey, err)
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

func (r *queries) ListTodos(ctx context.Context, userID int64) ([]models.Todo, error) {
	rows, err := r.q.QueryContext(ctx, r.d.rebind(`
		SELECT id, user_id, title, COALESCE(description, ''), completed, created_at
		FROM todos
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`), userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		var t models.Todo
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// CreateTodo inserts t as incomplete and sets t.ID. The owning user is not
// looked up first; a missing user surfaces as ErrUnknownUser from the
// foreign key.
func (r *queries) CreateTodo(ctx context.Context, t *models.Todo) error {
	t.Completed = false
	id, err := r.d.insert(ctx, r.q,
		"INSERT INTO todos (user_id, title, description, completed) VALUES (?, ?, ?, ?)",
		t.UserID, t.Title, t.Description, t.Completed,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: %w", ErrUnknownUser, err)
		}
		return fmt.Errorf("create todo: %w", err)
	}
	t.ID = id
	return nil
}

// ToggleTodo flips the completed flag and returns the number of rows changed.
func (r *queries) ToggleTodo(ctx context.Context, id int64) (int64, error) {
	res, err := r.q.ExecContext(ctx, r.d.rebind("UPDATE todos SET completed = NOT completed WHERE id = ?"), id)
	if err != nil {
		return 0, fmt.Errorf("toggle todo %d: %w", id, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("toggle todo %d: rows affected: %w", id, err)
	}
	return count, nil
}

func (r *queries) DeleteTodo(ctx context.Context, id int64) (int64, error) {
	res, err := r.q.ExecContext(ctx, r.d.rebind("DELETE FROM todos WHERE id = ?"), id)
	if err != nil {
		return 0, fmt.Errorf("delete todo %d: %w", id, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete todo %d: rows affected: %w", id, err)
	}
	return count, nil
}
