package handlers

import (
	"errors"
	"fmt"

	"github.com/biosecret/go-todo/database"
	"github.com/biosecret/go-todo/events"
	"github.com/biosecret/go-todo/models"
	"github.com/gofiber/fiber/v2"
)

const MsgUnknownUser = "User does not exist"

func dashboardURL(userID int64) string {
	return fmt.Sprintf("/dashboard/%d", userID)
}

// HandleCreateTodo godoc
// @Summary Create a todo for a user
// @Tags todos
// @Accept x-www-form-urlencoded
// @Param user_id formData int true "Owner"
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Success 303 "Redirect to the owner's dashboard"
// @Failure 400 {object} ErrorResponse
// @Router /todos [post]
func (h *Handler) HandleCreateTodo(c *fiber.Ctx) error {
	userID, err := parseID(c.FormValue("user_id"), "user_id")
	if err != nil {
		return err
	}
	title, err := requiredForm(c, "title")
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	todo := &models.Todo{
		UserID:      userID,
		Title:       title,
		Description: c.FormValue("description"),
	}
	err = h.store.WithConn(ctx, func(q database.Queries) error {
		return q.CreateTodo(ctx, todo)
	})
	if errors.Is(err, database.ErrUnknownUser) {
		return fiber.NewError(fiber.StatusBadRequest, MsgUnknownUser)
	}
	if err != nil {
		return err
	}

	h.publish(ctx, events.Event{Type: events.TodoCreated, UserID: userID, TodoID: todo.ID})
	return c.Redirect(dashboardURL(userID), fiber.StatusSeeOther)
}

// HandleToggleTodo godoc
// @Summary Flip a todo's completed flag
// @Description user_id only selects the redirect target; the todo is not checked against it.
// @Tags todos
// @Accept x-www-form-urlencoded
// @Param todo_id path int true "Todo ID"
// @Param user_id formData int true "Dashboard to return to"
// @Success 303 "Redirect to the dashboard"
// @Failure 400 {object} ErrorResponse
// @Router /todos/{todo_id}/toggle [post]
func (h *Handler) HandleToggleTodo(c *fiber.Ctx) error {
	todoID, userID, err := todoTarget(c)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	var count int64
	err = h.store.WithConn(ctx, func(q database.Queries) error {
		var err error
		count, err = q.ToggleTodo(ctx, todoID)
		return err
	})
	if err != nil {
		return err
	}

	if count > 0 {
		h.publish(ctx, events.Event{Type: events.TodoToggled, UserID: userID, TodoID: todoID})
	}
	return c.Redirect(dashboardURL(userID), fiber.StatusSeeOther)
}

// HandleDeleteTodo godoc
// @Summary Delete a todo
// @Description Deleting an unknown id is a no-op.
// @Tags todos
// @Accept x-www-form-urlencoded
// @Param todo_id path int true "Todo ID"
// @Param user_id formData int true "Dashboard to return to"
// @Success 303 "Redirect to the dashboard"
// @Failure 400 {object} ErrorResponse
// @Router /todos/{todo_id}/delete [post]
func (h *Handler) HandleDeleteTodo(c *fiber.Ctx) error {
	todoID, userID, err := todoTarget(c)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	var count int64
	err = h.store.WithConn(ctx, func(q database.Queries) error {
		var err error
		count, err = q.DeleteTodo(ctx, todoID)
		return err
	})
	if err != nil {
		return err
	}

	if count > 0 {
		h.publish(ctx, events.Event{Type: events.TodoDeleted, UserID: userID, TodoID: todoID})
	}
	return c.Redirect(dashboardURL(userID), fiber.StatusSeeOther)
}

func todoTarget(c *fiber.Ctx) (todoID, userID int64, err error) {
	if todoID, err = parseID(c.Params("todo_id"), "todo_id"); err != nil {
		return 0, 0, err
	}
	if userID, err = parseID(c.FormValue("user_id"), "user_id"); err != nil {
		return 0, 0, err
	}
	return todoID, userID, nil
}
