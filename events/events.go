package events

import (
	"context"
	"time"
)

const (
	UserCreated = "user.created"
	TodoCreated = "todo.created"
	TodoToggled = "todo.toggled"
	TodoDeleted = "todo.deleted"
)

// Event describes a change made through the HTTP surface.
type Event struct {
	Type   string    `json:"type"`
	UserID int64     `json:"user_id"`
	TodoID int64     `json:"todo_id,omitempty"`
	At     time.Time `json:"at"`
}

// Publisher delivers change events. Implementations must not block the
// caller for long; delivery failures are reported but never retried.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close()
}

// Nop discards every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close()                               {}
