package app

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/biosecret/go-todo/database"
	"github.com/biosecret/go-todo/events"
	"github.com/biosecret/go-todo/models"
)

// fakeStore is an in-memory store enforcing the same constraints as the
// real schema: unique username/email and todos referencing existing users.
type fakeStore struct {
	mu         sync.Mutex
	users      []models.User
	todos      []models.Todo
	nextUserID int64
	nextTodoID int64
	clock      time.Time

	conns   int
	failErr error
	pingErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{clock: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeStore) WithConn(ctx context.Context, fn func(database.Queries) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conns++
	if f.failErr != nil {
		return f.failErr
	}
	return fn(f)
}

func (f *fakeStore) Ping(context.Context) error { return f.pingErr }

func (f *fakeStore) now() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeStore) CountUsers(context.Context) (int, error) { return len(f.users), nil }

func (f *fakeStore) ListUsers(context.Context) ([]models.User, error) {
	out := append([]models.User{}, f.users...)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *fakeStore) GetUser(_ context.Context, id int64) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) CreateUser(_ context.Context, username, email string) (int64, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return 0, fmt.Errorf("%w: users_username_key", database.ErrDuplicateKey)
		}
	}
	f.nextUserID++
	f.users = append(f.users, models.User{ID: f.nextUserID, Username: username, Email: email, CreatedAt: f.now()})
	return f.nextUserID, nil
}

func (f *fakeStore) ListTodos(_ context.Context, userID int64) ([]models.Todo, error) {
	out := []models.Todo{}
	for _, t := range f.todos {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *fakeStore) CreateTodo(_ context.Context, t *models.Todo) error {
	if _, err := f.GetUser(context.Background(), t.UserID); err != nil {
		return fmt.Errorf("%w: todos_user_id_fkey", database.ErrUnknownUser)
	}
	f.nextTodoID++
	t.ID = f.nextTodoID
	t.Completed = false
	t.CreatedAt = f.now()
	f.todos = append(f.todos, *t)
	return nil
}

func (f *fakeStore) ToggleTodo(_ context.Context, id int64) (int64, error) {
	for i := range f.todos {
		if f.todos[i].ID == id {
			f.todos[i].Completed = !f.todos[i].Completed
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) DeleteTodo(_ context.Context, id int64) (int64, error) {
	for i := range f.todos {
		if f.todos[i].ID == id {
			f.todos = append(f.todos[:i], f.todos[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) todo(id int64) (models.Todo, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.todos {
		if t.ID == id {
			return t, true
		}
	}
	return models.Todo{}, false
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() {}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
