// Package sitesetting is the cached key-value store behind the site's scalar
// settings such as phone number and store hours.
package sitesetting

import (
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/laceandcraft/storefront/internal/cache"
	"github.com/laceandcraft/storefront/internal/db/models"
)

const (
	cachePrefix = "setting_"

	// DefaultGroup is used when Set is called without a group.
	DefaultGroup = "general"
	// DefaultType is used when Set is called without a type.
	DefaultType = "text"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrKeyEmpty is returned when a setting key is empty.
	ErrKeyEmpty = errors.New("setting key cannot be empty")
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
)

// cached is the cache envelope, so empty values survive backends that drop them.
type cached struct {
	Value string `json:"value"`
}

// Service reads and writes settings through the cache.
type Service struct {
	db    *gorm.DB
	cache *cache.Cache
}

// New returns a settings service.
func New(db *gorm.DB, c *cache.Cache) *Service {
	return &Service{db: db, cache: c}
}

// CacheKey returns the cache key of a setting.
func CacheKey(key string) string {
	return cachePrefix + key
}

// Get returns the value of key, or def when no row exists.
// Both are cached until the key is written or deleted.
func (s *Service) Get(key, def string) (string, error) {
	if s.db == nil {
		return "", ErrDBNil
	}
	if key == "" {
		return "", ErrKeyEmpty
	}

	v, err := cache.Remember(s.cache, CacheKey(key), func() (cached, error) {
		var setting models.SiteSetting
		err := s.db.Where(byKey(key)).First(&setting).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return cached{Value: def}, nil
		case err != nil:
			return cached{}, pkgerrors.Wrapf(err, "load setting %q", key)
		}

		return cached{Value: setting.Value}, nil
	})

	return v.Value, err
}

// Set creates or updates key and evicts its cache entry.
// An empty label is derived from the key, group and type fall back to
// DefaultGroup and DefaultType.
func (s *Service) Set(key, value, label, group, typ string) (*models.SiteSetting, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrKeyEmpty
	}
	if label == "" {
		label = Label(key)
	}
	if group == "" {
		group = DefaultGroup
	}
	if typ == "" {
		typ = DefaultType
	}

	setting := models.SiteSetting{
		Key:   key,
		Value: value,
		Label: label,
		Group: group,
		Type:  typ,
	}

	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "label", "group", "type", "updated_at"}),
	}).Create(&setting).Error
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "save setting %q", key)
	}

	if err = s.cache.Delete(CacheKey(key)); err != nil {
		return nil, err
	}

	return s.find(key)
}

// GetGroup returns the key/value pairs of group, uncached.
func (s *Service) GetGroup(group string) (map[string]string, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	var settings []models.SiteSetting
	err := s.db.Where(clause.Eq{Column: clause.Column{Name: "group"}, Value: group}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Order("id").
		Find(&settings).Error
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "load setting group %q", group)
	}

	out := make(map[string]string, len(settings))
	for _, setting := range settings {
		out[setting.Key] = setting.Value
	}

	return out, nil
}

// GetAll returns every setting ordered by group and order.
func (s *Service) GetAll() ([]models.SiteSetting, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	var settings []models.SiteSetting
	err := s.db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "group"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Order("id").
		Find(&settings).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load settings")
	}

	return settings, nil
}

// Delete removes key and evicts its cache entry.
func (s *Service) Delete(key string) error {
	if s.db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrKeyEmpty
	}

	result := s.db.Where(byKey(key)).Delete(&models.SiteSetting{})
	if result.Error != nil {
		return pkgerrors.Wrapf(result.Error, "delete setting %q", key)
	}
	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return s.cache.Delete(CacheKey(key))
}

// ClearCache evicts the cache entry of every stored setting.
func (s *Service) ClearCache() error {
	if s.db == nil {
		return ErrDBNil
	}

	var keys []string
	if err := s.db.Model(&models.SiteSetting{}).Pluck("key", &keys).Error; err != nil {
		return pkgerrors.Wrap(err, "list setting keys")
	}

	for i, key := range keys {
		keys[i] = CacheKey(key)
	}

	return s.cache.Delete(keys...)
}

// byKey quotes the column, key is reserved in mysql.
func byKey(key string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}

func (s *Service) find(key string) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	if err := s.db.Where(byKey(key)).First(&setting).Error; err != nil {
		return nil, pkgerrors.Wrapf(err, "reload setting %q", key)
	}

	return &setting, nil
}

// Label derives a display label from a key: "hours_monday" becomes "Hours Monday".
// Only the first letter of each word is changed.
func Label(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return strings.Join(words, " ")
}
