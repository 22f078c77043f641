package handlers

import "github.com/gofiber/fiber/v2"

// HandleHome renders the landing page.
func (h *Handler) HandleHome(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title": "Home",
		"Path":  c.Path(),
	}, layout)
}
