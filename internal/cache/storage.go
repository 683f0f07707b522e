package cache

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage/memory/v2"
	"github.com/gofiber/storage/mysql/v2"
	"github.com/gofiber/storage/postgres/v3"
	"github.com/gofiber/storage/redis/v3"

	"github.com/laceandcraft/storefront/internal/config"
	"github.com/laceandcraft/storefront/internal/db/dsn"
)

// NewStorage opens the storage backend selected by cfg.Cache.Driver.
// The sql drivers share the connection settings of cfg.DB.
func NewStorage(cfg *config.Config) (fiber.Storage, error) {
	var storage fiber.Storage

	switch cfg.Cache.Driver {
	case config.CacheMemory, "":
		storage = memory.New()
	case config.CacheRedis:
		if cfg.Cache.URL == "" {
			return nil, config.ErrEmptyCacheURL
		}
		storage = redis.New(redis.Config{
			URL:   cfg.Cache.URL,
			Reset: cfg.Cache.Reset,
		})
	case config.CacheMySQL:
		storage = mysql.New(mysql.Config{
			ConnectionURI: dsn.MySQL(cfg),
			Table:         cfg.Cache.Table,
			Reset:         cfg.Cache.Reset,
		})
	case config.CachePostgres:
		storage = postgres.New(postgres.Config{
			ConnectionURI: dsn.Postgres(cfg),
			Table:         cfg.Cache.Table,
			Reset:         cfg.Cache.Reset,
		})
	default:
		return nil, config.ErrUnknownCacheDriver
	}

	return storage, nil
}
