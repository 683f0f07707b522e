package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if db.gormEngine is not supported.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine is not supported")

	// ErrUnknownCacheDriver error if cache.driver is not supported.
	ErrUnknownCacheDriver = errors.New("toml config cache.driver is not supported")

	// ErrEmptyCacheURL error if the redis cache driver has no url.
	ErrEmptyCacheURL = errors.New("toml config cache.url can not be empty for redis")
)
