// Package db opens the gorm connection the storefront runs on.
package db

import (
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/laceandcraft/storefront/internal/config"
	"github.com/laceandcraft/storefront/internal/db/dsn"
	"github.com/laceandcraft/storefront/internal/db/models"
	"github.com/laceandcraft/storefront/internal/logger/adapter/stdlogger"
)

const slowQueryThreshold = 200 * time.Millisecond

// Open connects to the configured database engine.
func Open(cfg *config.Config) (*gorm.DB, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	var dialector gorm.Dialector
	switch cfg.DB.GormEngine {
	case config.EngineMySQL:
		dialector = gormmysql.Open(dsn.MySQL(cfg))
	case config.EnginePostgres:
		dialector = postgres.Open(dsn.Postgres(cfg))
	case config.EngineSQLite, "":
		dialector = sqlite.Open(cfg.DB.Path)
	default:
		return nil, config.ErrUnknownGormEngine
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(stdlogger.New("gorm"), gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  LogLevel(cfg.DB.LogLevel),
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", cfg.DB.GormEngine)
	}

	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(models.All()...), "migrate database")
}

// LogLevel maps a config string to a gorm log level, warn when unknown.
func LogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
