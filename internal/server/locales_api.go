package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stickball/presskit/internal/i18n"
)

// LocalesAPI lists the supported locales
type LocalesAPI struct {
	Router  fiber.Router
	Catalog *i18n.Catalog
}

// LocalesResponse lists the locales and the one Accept-Language selects
type LocalesResponse struct {
	Locales   []string `json:"locales"`
	Default   string   `json:"default"`
	Preferred string   `json:"preferred"`
}

func (api *LocalesAPI) Register() {
	api.Router.Get(
		"/locales", func(c *fiber.Ctx) error {
			return ApplySuccessToResponse(c, LocalesResponse{
				Locales:   api.Catalog.Locales(),
				Default:   i18n.DefaultLocale,
				Preferred: api.Catalog.Match(c.Get(fiber.HeaderAcceptLanguage)),
			})
		},
	)
}
