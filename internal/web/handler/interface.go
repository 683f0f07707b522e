package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/laceandcraft/storefront/internal/config"
	"github.com/laceandcraft/storefront/internal/db/controller/seosetting"
	"github.com/laceandcraft/storefront/internal/db/controller/sitesetting"
	"github.com/laceandcraft/storefront/internal/seo"
)

// Deps are the collaborators shared by the web handlers.
type Deps struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Settings *sitesetting.Service
	SEO      *seosetting.Service
	Site     seo.Site
	Now      func() time.Time // request clock, time.Now when nil
}

// Clock returns the request time.
func (d *Deps) Clock() time.Time {
	if d.Now == nil {
		return time.Now()
	}

	return d.Now()
}

// Valid reports whether every required collaborator is set.
func (d *Deps) Valid() bool {
	return d != nil && d.Cfg != nil && d.DB != nil && d.Settings != nil && d.SEO != nil
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, deps *Deps) error
}
