package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/biosecret/go-todo/database"
	"github.com/biosecret/go-todo/events"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const layout = "layouts/main"

// Repository runs a unit of work on one store connection.
type Repository interface {
	WithConn(ctx context.Context, fn func(database.Queries) error) error
	Ping(ctx context.Context) error
}

// Handler serves the HTTP surface. Each request does its store work inside a
// single WithConn call.
type Handler struct {
	store  Repository
	events events.Publisher
}

func New(store Repository, publisher events.Publisher) *Handler {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &Handler{store: store, events: publisher}
}

// ErrorResponse is the body of every non-redirect error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler renders fiber errors with their own status and message.
// Anything else is logged and hidden behind a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := fiber.ErrInternalServerError.Message

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	} else {
		log.Errorf("%s %s: %v", c.Method(), c.OriginalURL(), err)
	}

	return c.Status(code).JSON(ErrorResponse{Error: message})
}

func (h *Handler) publish(ctx context.Context, e events.Event) {
	e.At = time.Now().UTC()
	if err := h.events.Publish(ctx, e); err != nil {
		log.Warnf("publish %s: %v", e.Type, err)
	}
}

func parseID(raw, field string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fiber.NewError(fiber.StatusBadRequest, field+" is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid "+field)
	}
	return id, nil
}

// requiredForm rejects blank values but returns the value as submitted.
func requiredForm(c *fiber.Ctx, field string) (string, error) {
	v := c.FormValue(field)
	if strings.TrimSpace(v) == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, field+" is required")
	}
	return v, nil
}
