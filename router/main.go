package router

import (
	"github.com/biosecret/go-todo/handlers"
	"github.com/biosecret/go-todo/web"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	app.Use("/static", filesystem.New(filesystem.Config{
		Root: web.Static(),
	}))

	app.Get("/", h.HandleHome)
	app.Get("/health", h.HandleHealthCheck)

	app.Get("/users", h.HandleListUsers)
	app.Post("/users", h.HandleCreateUser)

	app.Get("/dashboard/:user_id", h.HandleDashboard)

	app.Post("/todos", h.HandleCreateTodo)
	todos := app.Group("/todos")
	todos.Post("/:todo_id/toggle", h.HandleToggleTodo)
	todos.Post("/:todo_id/delete", h.HandleDeleteTodo)
}
