package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/stickball/presskit/internal/contact"
)

// ContactAPI serves the contact form endpoint and its transport check
type ContactAPI struct {
	Router    fiber.Router
	Service   *contact.Service
	Transport contact.SMTPConfig
	// Development exposes failure details to clients
	Development bool
}

// SendResponse is the body of a delivered submission
type SendResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

// TransportInfo describes the configured mail server
type TransportInfo struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	Secure bool   `json:"secure"`
	User   string `json:"user"`
}

func (api *ContactAPI) Register() {
	api.Router.Post(
		"/send-email", func(c *fiber.Ctx) error {
			var s contact.Submission
			if err := c.BodyParser(&s); err != nil {
				return ApplyErrorToResponse(c, fiber.StatusBadRequest, "Invalid request body", "", nil)
			}

			id, err := api.Service.Submit(c.UserContext(), s)
			var ve *contact.ValidationError
			switch {
			case errors.As(err, &ve):
				return ApplyErrorToResponse(c, fiber.StatusBadRequest, ve.Message, "", nil)
			case err != nil:
				return ApplyErrorToResponse(c, fiber.StatusInternalServerError,
					"Failed to send email", api.details(err, "Internal server error"), err)
			}

			return ApplySuccessToResponse(c, SendResponse{
				Success:   true,
				Message:   "Email sent successfully",
				MessageID: id,
			})
		},
	)

	api.Router.Get(
		"/send-email", func(c *fiber.Ctx) error {
			if err := api.Service.Verify(c.UserContext()); err != nil {
				return ApplyErrorToResponse(c, fiber.StatusInternalServerError,
					"Email configuration is invalid", api.details(err, "Configuration error"), err)
			}
			return ApplySuccessToResponse(c, fiber.Map{
				"success": true,
				"message": "Email configuration is valid",
				"config": TransportInfo{
					Host:   api.Transport.Host,
					Port:   api.Transport.Port,
					Secure: api.Transport.Secure,
					User:   api.Transport.User,
				},
			})
		},
	)
}

func (api *ContactAPI) details(err error, public string) string {
	if api.Development {
		return err.Error()
	}
	return public
}
