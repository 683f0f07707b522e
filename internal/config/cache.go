package config

// Supported cache storage drivers.
const (
	CacheMemory   = "memory"
	CacheRedis    = "redis"
	CacheMySQL    = "mysql"
	CachePostgres = "postgres"
)

// Cache holds the settings of the shared key-value cache.
// The mysql and postgres drivers reuse the DB connection settings.
type Cache struct {
	Driver string // memory, redis, mysql or postgres
	URL    string // redis url, e.g. redis://localhost:6379/0
	Table  string // table name for the sql drivers
	Reset  bool   // flush the cache on start
}
