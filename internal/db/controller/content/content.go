// Package content reads the page content tables: hero, about, product
// categories, gallery and testimonials.
package content

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/laceandcraft/storefront/internal/db/models"
)

const activeQueryPattern = "is_active = ?"

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrNotFound is returned when a row to activate does not exist.
	ErrNotFound = errors.New("content not found")
)

// Overview counts the active rows of the ordered content tables.
type Overview struct {
	Categories   int64 `json:"categories"`
	Gallery      int64 `json:"gallery"`
	Testimonials int64 `json:"testimonials"`
}

// ActiveHero returns the first active hero section, nil when there is none.
func ActiveHero(db *gorm.DB) (*models.HeroSection, error) {
	return firstActive[models.HeroSection](db)
}

// ActiveAbout returns the first active about section, nil when there is none.
func ActiveAbout(db *gorm.DB) (*models.AboutSection, error) {
	return firstActive[models.AboutSection](db)
}

// Categories returns the active product categories in display order.
func Categories(db *gorm.DB) ([]models.ProductCategory, error) {
	return ordered[models.ProductCategory](db)
}

// Gallery returns the active gallery items in display order.
func Gallery(db *gorm.DB) ([]models.GalleryItem, error) {
	return ordered[models.GalleryItem](db)
}

// Testimonials returns the active testimonials in display order.
func Testimonials(db *gorm.DB) ([]models.Testimonial, error) {
	return ordered[models.Testimonial](db)
}

// ActivateHero makes id the only active hero section.
func ActivateHero(db *gorm.DB, id uint64) error {
	return activate[models.HeroSection](db, id)
}

// ActivateAbout makes id the only active about section.
func ActivateAbout(db *gorm.DB, id uint64) error {
	return activate[models.AboutSection](db, id)
}

// CountActive returns the active row counts shown on the dashboard.
func CountActive(db *gorm.DB) (Overview, error) {
	var o Overview
	if db == nil {
		return o, ErrDBNil
	}

	counts := []struct {
		model any
		dst   *int64
	}{
		{&models.ProductCategory{}, &o.Categories},
		{&models.GalleryItem{}, &o.Gallery},
		{&models.Testimonial{}, &o.Testimonials},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Where(activeQueryPattern, true).Count(c.dst).Error; err != nil {
			return o, pkgerrors.Wrap(err, "count active content")
		}
	}

	return o, nil
}

func firstActive[T any](db *gorm.DB) (*T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var row T
	err := db.Where(activeQueryPattern, true).Order("id").First(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	case err != nil:
		return nil, pkgerrors.Wrapf(err, "load active %T", row)
	}

	return &row, nil
}

// ordered returns the active rows by ascending order, ties broken by id.
func ordered[T any](db *gorm.DB) ([]T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []T
	err := db.Where(activeQueryPattern, true).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Order("id").
		Find(&rows).Error
	if err != nil {
		var zero T
		return nil, pkgerrors.Wrapf(err, "load %T list", zero)
	}

	return rows, nil
}

func activate[T any](db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(new(T)).Where("id = ?", id).Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		return tx.Model(new(T)).Where("id <> ?", id).Update("is_active", false).Error
	})
}
