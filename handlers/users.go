package handlers

import (
	"errors"

	"github.com/biosecret/go-todo/database"
	"github.com/biosecret/go-todo/events"
	"github.com/biosecret/go-todo/models"
	"github.com/gofiber/fiber/v2"
)

const MsgDuplicateUser = "Username or email already exists"

// HandleListUsers godoc
// @Summary List users, newest first
// @Tags users
// @Produce html
// @Success 200
// @Router /users [get]
func (h *Handler) HandleListUsers(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var users []models.User
	err := h.store.WithConn(ctx, func(q database.Queries) error {
		var err error
		users, err = q.ListUsers(ctx)
		return err
	})
	if err != nil {
		return err
	}

	return c.Render("users", fiber.Map{
		"Title": "Users",
		"Path":  c.Path(),
		"Users": users,
	}, layout)
}

// HandleCreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept x-www-form-urlencoded
// @Param username formData string true "Username"
// @Param email formData string true "Email"
// @Success 303 "Redirect to /users"
// @Failure 400 {object} ErrorResponse
// @Router /users [post]
func (h *Handler) HandleCreateUser(c *fiber.Ctx) error {
	username, err := requiredForm(c, "username")
	if err != nil {
		return err
	}
	email, err := requiredForm(c, "email")
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	var id int64
	err = h.store.WithConn(ctx, func(q database.Queries) error {
		var err error
		id, err = q.CreateUser(ctx, username, email)
		return err
	})
	if errors.Is(err, database.ErrDuplicateKey) {
		return fiber.NewError(fiber.StatusBadRequest, MsgDuplicateUser)
	}
	if err != nil {
		return err
	}

	h.publish(ctx, events.Event{Type: events.UserCreated, UserID: id})
	return c.Redirect("/users", fiber.StatusSeeOther)
}
