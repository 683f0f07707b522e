package config

import (
	"github.com/laceandcraft/storefront/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Cache     Cache
	Log       logger.Log
	Title     string
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	CleanPath         bool   // use clean path middleware to allow multi slash requests
	DisableRecover    bool   // disable recover middleware
	DisableMetrics    bool   // do not expose /metrics
	DisableVisitorLog bool   // do not record page views
	Port              int    // listening port for the webserver
	ShutDownTime      int    // wait time for shutdown
	URL               string // public base url of the site, no trailing slash
	AssetPath         string // public path uploaded images are served from
	TrustedProxies    []string
}
