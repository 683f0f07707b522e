package content

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/laceandcraft/storefront/internal/db/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, db.AutoMigrate(models.All()...), "failed to migrate test database")

	return db
}

func TestActiveSectionsEmpty(t *testing.T) {
	db := setupTestDB(t)

	hero, err := ActiveHero(db)
	require.NoError(t, err)
	assert.Nil(t, hero)

	about, err := ActiveAbout(db)
	require.NoError(t, err)
	assert.Nil(t, about)

	categories, err := Categories(db)
	require.NoError(t, err)
	assert.Empty(t, categories)

	gallery, err := Gallery(db)
	require.NoError(t, err)
	assert.Empty(t, gallery)

	testimonials, err := Testimonials(db)
	require.NoError(t, err)
	assert.Empty(t, testimonials)
}

func TestActiveHeroSkipsInactive(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.HeroSection{TitleLine1: "old"}).Error)
	require.NoError(t, db.Create(&models.HeroSection{TitleLine1: "current", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.HeroSection{TitleLine1: "later", IsActive: true}).Error)

	hero, err := ActiveHero(db)
	require.NoError(t, err)
	require.NotNil(t, hero)
	assert.Equal(t, "current", hero.TitleLine1)
}

func TestCategoriesOrdering(t *testing.T) {
	db := setupTestDB(t)
	for _, c := range []models.ProductCategory{
		{Title: "B", Order: 2, IsActive: true},
		{Title: "A", Order: 1, IsActive: true},
		{Title: "C", Order: 2, IsActive: true},
		{Title: "hidden", Order: 0},
	} {
		require.NoError(t, db.Create(&c).Error)
	}

	got, err := Categories(db)
	require.NoError(t, err)

	titles := make([]string, 0, len(got))
	for _, c := range got {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{"A", "B", "C"}, titles)
}

func TestGalleryAndTestimonials(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.GalleryItem{
		Title: "Laces", GradientFrom: "pink-200", GradientVia: "rose-100", GradientTo: "amber-100",
		IsLarge: true, IsActive: true,
	}).Error)
	require.NoError(t, db.Create(&models.Testimonial{Content: "Great", AuthorName: "Ana", Rating: 5, IsActive: true}).Error)
	require.NoError(t, db.Create(&models.Testimonial{Content: "Hidden", AuthorName: "Bo"}).Error)

	gallery, err := Gallery(db)
	require.NoError(t, err)
	require.Len(t, gallery, 1)
	assert.Equal(t, "bg-gradient-to-br from-pink-200 via-rose-100 to-amber-100", gallery[0].GradientClass())

	testimonials, err := Testimonials(db)
	require.NoError(t, err)
	require.Len(t, testimonials, 1)
	assert.Equal(t, "Ana", testimonials[0].AuthorName)
}

func TestActivateHero(t *testing.T) {
	db := setupTestDB(t)
	first := &models.HeroSection{TitleLine1: "first", IsActive: true}
	second := &models.HeroSection{TitleLine1: "second"}
	require.NoError(t, db.Create(first).Error)
	require.NoError(t, db.Create(second).Error)

	require.NoError(t, ActivateHero(db, second.ID))

	hero, err := ActiveHero(db)
	require.NoError(t, err)
	require.NotNil(t, hero)
	assert.Equal(t, "second", hero.TitleLine1)

	var active int64
	require.NoError(t, db.Model(&models.HeroSection{}).Where("is_active = ?", true).Count(&active).Error)
	assert.Equal(t, int64(1), active)

	require.ErrorIs(t, ActivateHero(db, 404), ErrNotFound)
	hero, err = ActiveHero(db)
	require.NoError(t, err)
	assert.Equal(t, "second", hero.TitleLine1, "a failed activation changes nothing")
}

func TestActivateAbout(t *testing.T) {
	db := setupTestDB(t)
	about := &models.AboutSection{TitleLine1: "story"}
	require.NoError(t, db.Create(about).Error)

	require.NoError(t, ActivateAbout(db, about.ID))

	got, err := ActiveAbout(db)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "story", got.TitleLine1)
}

func TestCountActive(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.Create(&models.ProductCategory{Title: "a", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.ProductCategory{Title: "b", IsActive: true}).Error)
	require.NoError(t, db.Create(&models.ProductCategory{Title: "c"}).Error)
	require.NoError(t, db.Create(&models.Testimonial{Content: "x", AuthorName: "y", IsActive: true}).Error)

	got, err := CountActive(db)
	require.NoError(t, err)
	assert.Equal(t, Overview{Categories: 2, Gallery: 0, Testimonials: 1}, got)
}

func TestNilDB(t *testing.T) {
	_, err := ActiveHero(nil)
	require.ErrorIs(t, err, ErrDBNil)
	_, err = Categories(nil)
	require.ErrorIs(t, err, ErrDBNil)
	require.ErrorIs(t, ActivateAbout(nil, 1), ErrDBNil)
	_, err = CountActive(nil)
	require.ErrorIs(t, err, ErrDBNil)
}
