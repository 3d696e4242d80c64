package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// ErrorBody is the JSON shape of every failed API response
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ApplyErrorToResponse logs err and writes an error body. details is only
// sent when non-empty.
func ApplyErrorToResponse(c *fiber.Ctx, status int, msg, details string, err error) error {
	if err != nil {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), msg, err)
	}
	return c.Status(status).JSON(ErrorBody{Error: msg, Details: details})
}

// ApplySuccessToResponse writes body as JSON with status 200
func ApplySuccessToResponse(c *fiber.Ctx, body any) error {
	if body == nil {
		body = fiber.Map{"success": true}
	}
	return c.Status(fiber.StatusOK).JSON(body)
}
