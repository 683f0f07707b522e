// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvConfigJSON names the environment variable holding a JSON document that
// is merged over the TOML configuration.
const EnvConfigJSON = "STOREFRONT_CONFIG_JSON"

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c Config
		v = viper.New()
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	v.SetConfigFile(path + "main.toml")
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// override it from env
	if configJSON := os.Getenv(EnvConfigJSON); configJSON != "" {
		if err := mergeJSON(v, configJSON); err != nil {
			return Config{}, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	return c, validate(&c)
}

func mergeJSON(v *viper.Viper, configAsJSON string) error {
	v.SetConfigType("json")

	if err := v.MergeConfig(strings.NewReader(configAsJSON)); err != nil {
		return errors.Wrap(err, "failed to merge config from "+EnvConfigJSON)
	}

	return nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	if err := toml.NewEncoder(&buffer).Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate the settings the daemon can not start without and fills defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	// the public site url is used for og:url, sitemap and robots.txt
	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	switch c.DB.GormEngine {
	case "":
		c.DB.GormEngine = EngineSQLite
	case EngineSQLite, EngineMySQL, EnginePostgres:
	default:
		return errors.Wrap(ErrUnknownGormEngine, c.DB.GormEngine)
	}

	switch c.Cache.Driver {
	case "":
		c.Cache.Driver = CacheMemory
	case CacheMemory, CacheRedis, CacheMySQL, CachePostgres:
	default:
		return errors.Wrap(ErrUnknownCacheDriver, c.Cache.Driver)
	}

	if c.Cache.Driver == CacheRedis && c.Cache.URL == "" {
		return errors.Wrap(ErrEmptyCacheURL, invalidErrMessage)
	}

	if c.Cache.Table == "" {
		c.Cache.Table = "cache"
	}

	if c.Webserver.AssetPath == "" {
		c.Webserver.AssetPath = "/storage/"
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	return nil
}
