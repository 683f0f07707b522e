// Package sitemap serves sitemap.xml and robots.txt.
package sitemap

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/laceandcraft/storefront/internal/seo"
	"github.com/laceandcraft/storefront/internal/web/handler"
)

const (
	// Path is the path of the sitemap.
	Path = handler.RootPath + "sitemap.xml"

	// RobotsPath is the path of robots.txt.
	RobotsPath = handler.RootPath + "robots.txt"
)

// Service is the sitemap and robots handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Handler is the sitemap and robots handler.
var Handler = Service{}

// Init initializes the sitemap and robots handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return nil
	}

	s.deps = deps

	app.Get(Path, s.Sitemap)
	app.Get(RobotsPath, s.Robots)

	return nil
}

// Sitemap writes the sitemap with the request time as lastmod.
func (s *Service) Sitemap(c *fiber.Ctx) error {
	out, err := seo.BuildSitemap(s.deps.Site, s.deps.Clock()).XML()
	if err != nil {
		log.Error().Err(err).Msg("failed to build sitemap")
		return fiber.NewError(fiber.StatusInternalServerError, "failed to build sitemap")
	}

	c.Set(fiber.HeaderContentType, handler.MIMEApplicationXML)

	return c.Send(out)
}

// Robots writes the stored robots.txt or the default rules.
func (s *Service) Robots(c *fiber.Ctx) error {
	active, err := s.deps.SEO.GetActive()
	if err != nil {
		log.Error().Err(err).Msg("failed to load seo settings for robots.txt")
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load robots.txt")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlain)

	return c.SendString(seo.Robots(active, s.deps.Site))
}
