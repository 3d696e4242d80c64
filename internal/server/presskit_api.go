package server

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/stickball/presskit/internal/i18n"
	"github.com/stickball/presskit/pkg/api"
)

// PressKitAPI serves the generated press kit of each locale
type PressKitAPI struct {
	Router    fiber.Router
	Generator *api.Generator
	Catalog   *i18n.Catalog
}

func (a *PressKitAPI) Register() {
	// negotiate the locale and redirect to its download
	a.Router.Get(
		"/press-kit", func(c *fiber.Ctx) error {
			lang := a.Catalog.Match(c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage))
			return c.Redirect("/"+lang+"/press-kit", fiber.StatusFound)
		},
	)

	a.Router.Get(
		"/:lang/press-kit", func(c *fiber.Ctx) error {
			lang := c.Params("lang")
			if !a.Catalog.Supports(lang) {
				return ApplyErrorToResponse(c, fiber.StatusNotFound, "Unsupported locale", lang, nil)
			}

			ctx := c.UserContext()
			b, err := a.Catalog.Bundle(lang)
			if err != nil {
				return ApplyErrorToResponse(c, fiber.StatusInternalServerError, "Failed to generate press kit", "", err)
			}

			now := a.Generator.Now()
			data, result, err := a.Generator.GenerateAt(ctx, b, now)
			if err != nil {
				if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
					return err
				}
				return ApplyErrorToResponse(c, fiber.StatusInternalServerError, "Failed to generate press kit", "", err)
			}
			log.Infof("press kit %s generated: %d pages, %d bytes", lang, result.PageCount(), len(data))

			c.Set(fiber.HeaderContentType, "application/pdf")
			c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", api.FileName(lang, now)))
			c.Set("X-Page-Count", strconv.Itoa(result.PageCount()))
			return c.Send(data)
		},
	)
}
