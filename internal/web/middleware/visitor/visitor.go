// Package visitor records page views before the request is handled.
package visitor

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/laceandcraft/storefront/internal/analytics"
)

// Config holds the middleware settings.
type Config struct {
	// Next defines a function to skip this middleware when returned true.
	Next func(c *fiber.Ctx) bool

	// Recorder stores the page views.
	Recorder *analytics.Recorder
}

// New returns a middleware passing handled requests to the recorder.
// Requests no route answers, or that end in 404, are not page views.
// Recording never fails the request.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Recorder == nil || (cfg.Next != nil && cfg.Next(c)) {
			return c.Next()
		}

		err := c.Next()
		if notFound(c, err) {
			return err
		}

		cfg.Recorder.Track(c.UserContext(), Request(c))

		return err
	}
}

// notFound reports a 404, either returned by the chain or already written.
// Unmatched routes return fiber.ErrNotFound before any status is set.
func notFound(c *fiber.Ctx, err error) bool {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code == fiber.StatusNotFound
	}

	return err == nil && c.Response().StatusCode() == fiber.StatusNotFound
}

// Request extracts the tracked fields of the current request.
func Request(c *fiber.Ctx) analytics.Request {
	return analytics.Request{
		Method:    c.Method(),
		Path:      c.Path(),
		IP:        c.IP(),
		UserAgent: c.Get(fiber.HeaderUserAgent),
		Referrer:  c.Get(fiber.HeaderReferer),
	}
}
