package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the uniform error body. For validation failures the
// message is shown to the candidate verbatim.
type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}
