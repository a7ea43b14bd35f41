package handler

import (
	"github.com/gofiber/fiber/v2"
)

// errorDetail is the external error envelope. The field name is a
// compatibility contract with existing clients.
type errorDetail struct {
	Detail string `json:"detail"`
}

// writeDetail writes the standardized JSON error response.
//
// Parameters:
// - status: HTTP status code to return
// - detail: human-readable safe message (no stack traces or internal paths)
func writeDetail(c *fiber.Ctx, status int, detail string) error {
	return c.Status(status).JSON(errorDetail{Detail: detail})
}

// ErrorHandler returns a Fiber global error handler that normalises
// unexpected errors into the detail envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeDetail(c, status, "Bad Request")
		case fiber.StatusNotFound:
			return writeDetail(c, status, "Not Found")
		case fiber.StatusMethodNotAllowed:
			return writeDetail(c, status, "Method Not Allowed")
		default:
			return writeDetail(c, status, "Internal Server Error")
		}
	}
}
