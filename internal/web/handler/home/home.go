// Package home serves the storefront page and its data payload.
package home

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/laceandcraft/storefront/internal/db/controller/content"
	"github.com/laceandcraft/storefront/internal/db/models"
	"github.com/laceandcraft/storefront/internal/seo"
	"github.com/laceandcraft/storefront/internal/web/handler"
	"github.com/laceandcraft/storefront/internal/web/navigation"
)

const (
	// Path is the path of the storefront page.
	Path = handler.RootPath

	// TemplateName is the name of the storefront template.
	TemplateName = "home/home"

	weekdayHours  = "9 AM – 7 PM"
	saturdayHours = "10 AM – 6 PM"
	sundayHours   = "12 PM – 5 PM"
)

// Hours are the opening hours shown per weekday.
type Hours struct {
	Monday    string `json:"monday"`
	Tuesday   string `json:"tuesday"`
	Wednesday string `json:"wednesday"`
	Thursday  string `json:"thursday"`
	Friday    string `json:"friday"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
}

// Settings is the settings bundle of the page.
type Settings struct {
	SiteName      string  `json:"site_name"`
	LocationName  string  `json:"location_name"`
	Phone         string  `json:"phone"`
	AddressLine1  string  `json:"address_line1"`
	AddressLine2  string  `json:"address_line2"`
	Hours         Hours   `json:"hours"`
	FooterTagline *string `json:"footer_tagline"`
}

// Payload is everything the page renders.
type Payload struct {
	SEO          *seo.Payload             `json:"seo"`
	Hero         *models.HeroSection      `json:"hero"`
	About        *models.AboutSection     `json:"about"`
	Categories   []models.ProductCategory `json:"categories"`
	Gallery      []models.GalleryItem     `json:"gallery"`
	Testimonials []models.Testimonial     `json:"testimonials"`
	Settings     Settings                 `json:"settings"`
}

// Service is the storefront page handler service.
type Service struct {
	handler.Service
	deps *handler.Deps
}

// Handler is the storefront page handler.
var Handler = Service{}

// Init initializes the storefront page handler.
func (s *Service) Init(app *fiber.App, deps *handler.Deps) error {
	if app == nil || !deps.Valid() {
		log.Fatal().Msg(handler.ErrNilDepsFatalLogMsg)
		return nil
	}

	s.deps = deps

	app.Get(Path, s.Get)

	return nil
}

// Get renders the page, or returns the bare payload to JSON clients.
func (s *Service) Get(c *fiber.Ctx) error {
	payload, err := s.Compose()
	if err != nil {
		log.Error().Err(err).Msg("failed to compose storefront page")
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load page")
	}

	if strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON) {
		return c.JSON(payload)
	}

	title := payload.Settings.SiteName
	if payload.SEO != nil && models.Val(payload.SEO.Title) != "" {
		title = *payload.SEO.Title
	}

	return c.Render(TemplateName, fiber.Map{
		"Page":       payload,
		"Site":       s.deps.Site,
		"Navigation": navigation.NewContext(title, "home"),
		"Year":       s.deps.Clock().Year(),
	}, handler.BaseLayout)
}

// Compose gathers the page payload. Missing rows yield nil or empty lists.
func (s *Service) Compose() (*Payload, error) {
	var (
		p   = &Payload{}
		err error
	)

	active, err := s.deps.SEO.GetActive()
	if err != nil {
		return nil, err
	}
	p.SEO = seo.BuildPayload(active, s.deps.Site)

	if p.Hero, err = content.ActiveHero(s.deps.DB); err != nil {
		return nil, err
	}
	if p.About, err = content.ActiveAbout(s.deps.DB); err != nil {
		return nil, err
	}
	if p.Categories, err = content.Categories(s.deps.DB); err != nil {
		return nil, err
	}
	if p.Gallery, err = content.Gallery(s.deps.DB); err != nil {
		return nil, err
	}
	if p.Testimonials, err = content.Testimonials(s.deps.DB); err != nil {
		return nil, err
	}

	p.Categories = orEmpty(p.Categories)
	p.Gallery = orEmpty(p.Gallery)
	p.Testimonials = orEmpty(p.Testimonials)

	if p.Settings, err = s.settings(); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *Service) settings() (Settings, error) {
	var out Settings
	var tagline string

	fields := []struct {
		key string
		def string
		dst *string
	}{
		{"site_name", "Mary's Lace n Craft", &out.SiteName},
		{"location_name", "South Hill Square", &out.LocationName},
		{"phone", "(626) 918-8511", &out.Phone},
		{"address_line1", "South Hills Shopping Center", &out.AddressLine1},
		{"address_line2", "1629 N Hacienda Blvd, La Puente, CA 91744", &out.AddressLine2},
		{"hours_monday", weekdayHours, &out.Hours.Monday},
		{"hours_tuesday", weekdayHours, &out.Hours.Tuesday},
		{"hours_wednesday", weekdayHours, &out.Hours.Wednesday},
		{"hours_thursday", weekdayHours, &out.Hours.Thursday},
		{"hours_friday", weekdayHours, &out.Hours.Friday},
		{"hours_saturday", saturdayHours, &out.Hours.Saturday},
		{"hours_sunday", sundayHours, &out.Hours.Sunday},
		{"footer_tagline", "", &tagline},
	}

	for _, f := range fields {
		v, err := s.deps.Settings.Get(f.key, f.def)
		if err != nil {
			return out, err
		}
		*f.dst = v
	}

	out.FooterTagline = models.Str(tagline)

	return out, nil
}

func orEmpty[T any](rows []T) []T {
	if rows == nil {
		return []T{}
	}

	return rows
}
