package handlers

import (
	"errors"

	"github.com/biosecret/go-todo/database"
	"github.com/biosecret/go-todo/models"
	"github.com/gofiber/fiber/v2"
)

const MsgUserNotFound = "User not found"

// HandleDashboard godoc
// @Summary A user and their todos, newest first
// @Tags dashboard
// @Produce html
// @Param user_id path int true "User ID"
// @Success 200
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/{user_id} [get]
func (h *Handler) HandleDashboard(c *fiber.Ctx) error {
	userID, err := parseID(c.Params("user_id"), "user_id")
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	var (
		user  *models.User
		todos []models.Todo
	)
	err = h.store.WithConn(ctx, func(q database.Queries) error {
		var err error
		if user, err = q.GetUser(ctx, userID); err != nil {
			return err
		}
		todos, err = q.ListTodos(ctx, userID)
		return err
	})
	if errors.Is(err, database.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, MsgUserNotFound)
	}
	if err != nil {
		return err
	}

	return c.Render("dashboard", fiber.Map{
		"Title": user.Username,
		"Path":  c.Path(),
		"User":  user,
		"Todos": todos,
	}, layout)
}
