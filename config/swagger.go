package config

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/biosecret/go-todo/docs"
)

// AddSwaggerRoutes serves the OpenAPI UI for the HTML/form endpoints.
func AddSwaggerRoutes(app *fiber.App) {
	app.Get("/swagger/*", swagger.New(swagger.Config{
		Title:        docs.SwaggerInfo.Title,
		DeepLinking:  true,
		DocExpansion: "list",
	}))
}
