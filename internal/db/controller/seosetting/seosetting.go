// Package seosetting loads and stores the active SEO settings row.
package seosetting

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/laceandcraft/storefront/internal/cache"
	"github.com/laceandcraft/storefront/internal/db/models"
)

// CacheKey is the cache entry of the active row.
const CacheKey = "seo_settings"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrSeoSettingNotFound is returned when a row does not exist.
	ErrSeoSettingNotFound = errors.New("seo setting not found")
)

// Service reads the active SEO settings through the cache.
type Service struct {
	db    *gorm.DB
	cache *cache.Cache
}

// New returns an SEO settings service.
func New(db *gorm.DB, c *cache.Cache) *Service {
	return &Service{db: db, cache: c}
}

// GetActive returns the first active row by id, nil when there is none.
// Only a found row is cached.
func (s *Service) GetActive() (*models.SeoSetting, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	var seo models.SeoSetting
	hit, err := s.cache.Get(CacheKey, &seo)
	if err != nil {
		return nil, err
	}
	if hit {
		return &seo, nil
	}

	err = s.db.Where("is_active = ?", true).Order("id").First(&seo).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	case err != nil:
		return nil, pkgerrors.Wrap(err, "load active seo settings")
	}

	if err = s.cache.Set(CacheKey, &seo); err != nil {
		return nil, err
	}

	return &seo, nil
}

// Get returns a row by id.
func (s *Service) Get(id uint64) (*models.SeoSetting, error) {
	if s.db == nil {
		return nil, ErrDBNil
	}

	var seo models.SeoSetting
	err := s.db.First(&seo, id).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrSeoSettingNotFound
	case err != nil:
		return nil, pkgerrors.Wrapf(err, "load seo settings %d", id)
	}

	return &seo, nil
}

// Save creates or updates seo and evicts the cached active row.
// Saving an active row deactivates every other row.
func (s *Service) Save(seo *models.SeoSetting) error {
	if s.db == nil {
		return ErrDBNil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(seo).Error; err != nil {
			return err
		}
		if !seo.IsActive {
			return nil
		}

		return tx.Model(&models.SeoSetting{}).
			Where("id <> ?", seo.ID).
			Update("is_active", false).Error
	})
	if err != nil {
		return pkgerrors.Wrap(err, "save seo settings")
	}

	return s.ClearCache()
}

// Activate makes id the only active row.
func (s *Service) Activate(id uint64) error {
	seo, err := s.Get(id)
	if err != nil {
		return err
	}

	seo.IsActive = true
	return s.Save(seo)
}

// Delete removes a row and evicts the cached active row.
func (s *Service) Delete(id uint64) error {
	if s.db == nil {
		return ErrDBNil
	}

	result := s.db.Delete(&models.SeoSetting{}, id)
	if result.Error != nil {
		return pkgerrors.Wrapf(result.Error, "delete seo settings %d", id)
	}
	if result.RowsAffected == 0 {
		return ErrSeoSettingNotFound
	}

	return s.ClearCache()
}

// ClearCache evicts the cached active row.
func (s *Service) ClearCache() error {
	return s.cache.Delete(CacheKey)
}
