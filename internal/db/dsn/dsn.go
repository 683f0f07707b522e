// Package dsn provides Data Source Name construction utilities for database connections.
package dsn

import (
	"fmt"
	"net/url"

	"github.com/laceandcraft/storefront/internal/config"
)

// Create builds the Data Source Name for the configured gorm engine.
func Create(cfg *config.Config) string {
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		return MySQL(cfg)
	case config.EnginePostgres:
		return Postgres(cfg)
	default:
		return cfg.DB.Path
	}
}

// MySQL builds a go-sql-driver/mysql DSN.
func MySQL(cfg *config.Config) string {
	out := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
	)
	if cfg.DB.Extras != "" {
		out += "?" + cfg.DB.Extras
	}

	return out
}

// Postgres builds a postgres connection URI.
func Postgres(cfg *config.Config) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.DB.User, cfg.DB.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.DB.Host, cfg.DB.Port),
		Path:     "/" + cfg.DB.Name,
		RawQuery: cfg.DB.Extras,
	}

	return u.String()
}
