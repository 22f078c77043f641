package handlers

import "github.com/gofiber/fiber/v2"

// HandleHealthCheck godoc
// @Summary Store health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} ErrorResponse
// @Router /health [get]
func (h *Handler) HandleHealthCheck(c *fiber.Ctx) error {
	if err := h.store.Ping(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{Error: "database unavailable"})
	}
	return c.Status(200).JSON(fiber.Map{"status": "ok"})
}
