// Package cache wraps a fiber.Storage backend with JSON encoded values.
package cache

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// Cache stores JSON encoded values without expiry.
// Values live until they are deleted or the storage is reset.
type Cache struct {
	storage fiber.Storage
}

// New wraps storage.
func New(storage fiber.Storage) *Cache {
	return &Cache{storage: storage}
}

// Get decodes the value stored under key into v.
// The returned bool is false on a miss.
func (c *Cache) Get(key string, v any) (bool, error) {
	raw, err := c.storage.Get(key)
	if err != nil {
		return false, errors.Wrapf(err, "cache get %q", key)
	}
	if len(raw) == 0 {
		return false, nil
	}

	if err = json.Unmarshal(raw, v); err != nil {
		// treat undecodable entries as a miss, the caller refills them
		return false, nil //nolint:nilerr
	}

	return true, nil
}

// Set stores v under key.
func (c *Cache) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "cache encode %q", key)
	}

	return errors.Wrapf(c.storage.Set(key, raw, 0), "cache set %q", key)
}

// Delete evicts every given key.
func (c *Cache) Delete(keys ...string) error {
	for _, key := range keys {
		if err := c.storage.Delete(key); err != nil {
			return errors.Wrapf(err, "cache delete %q", key)
		}
	}

	return nil
}

// Reset drops every entry of the backend.
func (c *Cache) Reset() error {
	return errors.Wrap(c.storage.Reset(), "cache reset")
}

// Close releases the backend.
func (c *Cache) Close() error {
	return c.storage.Close()
}

// Remember returns the cached value under key or stores the result of fn.
func Remember[T any](c *Cache, key string, fn func() (T, error)) (T, error) {
	var value T
	hit, err := c.Get(key, &value)
	if err != nil {
		return value, err
	}
	if hit {
		return value, nil
	}

	if value, err = fn(); err != nil {
		return value, err
	}

	return value, c.Set(key, value)
}
