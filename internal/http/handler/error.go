package handler

import (
	"github.com/gofiber/fiber/v2"
)

// errorBody is the error shape the mobile client expects on read endpoints.
type errorBody struct {
	Error string `json:"error"`
}

// createErrorBody is the error shape for create endpoints; the client always
// reads an id field, null on failure.
type createErrorBody struct {
	ID    *string `json:"id"`
	Error string  `json:"error"`
}

// writeError writes the `{error}` failure shape with a safe message.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorBody{Error: message})
}

// writeCreateError writes the `{id: null, error}` failure shape used by the
// create endpoints.
func writeCreateError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(createErrorBody{ID: nil, Error: message})
}

// ErrorHandler returns a Fiber global error handler that keeps unhandled
// errors in the client's wire format without leaking internals.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusNotFound:
			return writeError(c, status, "Not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "Method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "File too large")
		default:
			return writeError(c, status, "An internal error occurred")
		}
	}
}
