package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler converts handler failures into JSON error bodies.
// Anything that is not an explicit *fiber.Error (typically a database
// failure) is reported as a generic 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		message = fiberErr.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
