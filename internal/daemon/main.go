// Package daemon assembles the storefront from its configuration.
package daemon

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/laceandcraft/storefront/internal/analytics"
	"github.com/laceandcraft/storefront/internal/cache"
	"github.com/laceandcraft/storefront/internal/config"
	"github.com/laceandcraft/storefront/internal/db"
	"github.com/laceandcraft/storefront/internal/db/controller/seosetting"
	"github.com/laceandcraft/storefront/internal/db/controller/sitesetting"
	"github.com/laceandcraft/storefront/internal/db/controller/visitor"
	"github.com/laceandcraft/storefront/internal/seo"
	"github.com/laceandcraft/storefront/internal/web"
	"github.com/laceandcraft/storefront/internal/web/handler"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	cache      *cache.Cache
	webService *web.Service
}

// Start serves http until the process is signaled and shuts down gracefully.
func (d *Daemon) Start() error {
	go func() {
		if err := d.webService.Start(fmt.Sprintf(":%d", d.cfg.Webserver.Port)); err != nil {
			log.Error().Err(err).Msg("web service stopped")
		}
	}()

	d.webService.WaitShutdown()

	if err := d.cache.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close cache storage")
	}

	return nil
}

// Open connects and migrates the database, seeding the site content when it is empty.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(gdb); err != nil {
		return nil, err
	}

	if _, err = SeedIfEmpty(gdb, cfg.Webserver.URL); err != nil {
		return nil, errors.Wrap(err, "failed to seed database")
	}

	return gdb, nil
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil, nil
	}

	gdb, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	storage, err := cache.NewStorage(cfg)
	if err != nil {
		return nil, err
	}

	c := cache.New(storage)

	deps := &handler.Deps{
		Cfg:      cfg,
		DB:       gdb,
		Settings: sitesetting.New(gdb, c),
		SEO:      seosetting.New(gdb, c),
		Site:     seo.NewSite(cfg.Webserver.URL, cfg.Webserver.AssetPath),
	}

	var recorder *analytics.Recorder
	if !cfg.Webserver.DisableVisitorLog {
		recorder = analytics.NewRecorder(visitor.New(gdb))
	}

	log.Info().
		Str("engine", cfg.DB.GormEngine).
		Str("cache", cfg.Cache.Driver).
		Int("port", cfg.Webserver.Port).
		Msg("storefront initialized")

	return &Daemon{
		cfg:        cfg,
		db:         gdb,
		cache:      c,
		webService: web.New(cfg, deps, recorder),
	}, nil
}
