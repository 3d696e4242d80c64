package server

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/stickball/presskit/internal/config"
	"github.com/stickball/presskit/internal/contact"
	"github.com/stickball/presskit/pkg/api"
)

// BodyLimit caps request bodies; contact posts are small
const BodyLimit = 64 << 10

// New builds the HTTP application: the contact endpoint and transport check
// under /api, the locale listing, and the press-kit downloads.
func New(cfg config.Config, gen *api.Generator, svc *contact.Service) (*fiber.App, error) {
	catalog, err := gen.Catalog(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogs: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "stickball",
		BodyLimit:             BodyLimit,
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
				return ApplyErrorToResponse(c, fe.Code, fe.Message, "", nil)
			}
			return ApplyErrorToResponse(c, fiber.StatusInternalServerError, "Request failed", "", err)
		},
	})
	app.Use(recover.New())
	app.Use(requestid.New())

	apiGroup := app.Group("/api")
	(&ContactAPI{
		Router:      apiGroup,
		Service:     svc,
		Transport:   cfg.SMTP,
		Development: cfg.Development(),
	}).Register()
	(&LocalesAPI{Router: apiGroup, Catalog: catalog}).Register()
	(&PressKitAPI{Router: app, Generator: gen, Catalog: catalog}).Register()

	return app, nil
}
