package seosetting

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/laceandcraft/storefront/internal/cache"
	"github.com/laceandcraft/storefront/internal/db/models"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to create test database")
	require.NoError(t, db.AutoMigrate(&models.SeoSetting{}), "failed to migrate test database")

	return New(db, cache.New(memory.New())), db
}

func TestGetActiveNone(t *testing.T) {
	svc, db := setupService(t)

	seo, err := svc.GetActive()
	require.NoError(t, err)
	assert.Nil(t, seo)

	// an empty result is not cached
	require.NoError(t, db.Create(&models.SeoSetting{MetaTitle: models.Str("Lace"), IsActive: true}).Error)

	seo, err = svc.GetActive()
	require.NoError(t, err)
	require.NotNil(t, seo)
	assert.Equal(t, "Lace", models.Val(seo.MetaTitle))
}

func TestGetActiveFirstByID(t *testing.T) {
	svc, db := setupService(t)
	require.NoError(t, db.Create(&models.SeoSetting{MetaTitle: models.Str("inactive"), IsActive: false}).Error)
	require.NoError(t, db.Create(&models.SeoSetting{MetaTitle: models.Str("first"), IsActive: true}).Error)
	require.NoError(t, db.Create(&models.SeoSetting{MetaTitle: models.Str("second"), IsActive: true}).Error)

	seo, err := svc.GetActive()
	require.NoError(t, err)
	require.NotNil(t, seo)
	assert.Equal(t, "first", models.Val(seo.MetaTitle))
}

func TestGetActiveRoundTripsThroughCache(t *testing.T) {
	svc, db := setupService(t)
	lat, lng := 34.0469, -117.9755
	require.NoError(t, db.Create(&models.SeoSetting{
		BusinessName:      models.Str("Mary's Lace n Craft"),
		BusinessLatitude:  &lat,
		BusinessLongitude: &lng,
		BusinessHours: []models.OpeningHours{
			{DayOfWeek: "Monday", Opens: "09:00", Closes: "19:00"},
		},
		IsActive: true,
	}).Error)

	first, err := svc.GetActive()
	require.NoError(t, err)

	// bypass the service, the cached row stays in effect
	require.NoError(t, db.Model(&models.SeoSetting{}).Where("id > 0").Update("business_name", "changed").Error)

	second, err := svc.GetActive()
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, "Mary's Lace n Craft", models.Val(second.BusinessName))
	assert.Equal(t, first.BusinessHours, second.BusinessHours)
	assert.InDelta(t, lat, *second.BusinessLatitude, 1e-6)
	assert.InDelta(t, lng, *second.BusinessLongitude, 1e-6)
}

func TestSaveEvictsCache(t *testing.T) {
	svc, _ := setupService(t)
	seo := &models.SeoSetting{MetaTitle: models.Str("v1"), IsActive: true}
	require.NoError(t, svc.Save(seo))

	got, err := svc.GetActive()
	require.NoError(t, err)
	require.Equal(t, "v1", models.Val(got.MetaTitle))

	seo.MetaTitle = models.Str("v2")
	require.NoError(t, svc.Save(seo))

	got, err = svc.GetActive()
	require.NoError(t, err)
	assert.Equal(t, "v2", models.Val(got.MetaTitle))
}

func TestSaveActiveDeactivatesOthers(t *testing.T) {
	svc, db := setupService(t)
	a := &models.SeoSetting{MetaTitle: models.Str("a"), IsActive: true}
	b := &models.SeoSetting{MetaTitle: models.Str("b"), IsActive: true}
	require.NoError(t, svc.Save(a))
	require.NoError(t, svc.Save(b))

	var active int64
	require.NoError(t, db.Model(&models.SeoSetting{}).Where("is_active = ?", true).Count(&active).Error)
	assert.Equal(t, int64(1), active)

	got, err := svc.GetActive()
	require.NoError(t, err)
	assert.Equal(t, "b", models.Val(got.MetaTitle))

	require.NoError(t, svc.Activate(a.ID))
	got, err = svc.GetActive()
	require.NoError(t, err)
	assert.Equal(t, "a", models.Val(got.MetaTitle))

	require.ErrorIs(t, svc.Activate(999), ErrSeoSettingNotFound)
}

func TestDeleteEvictsCache(t *testing.T) {
	svc, _ := setupService(t)
	seo := &models.SeoSetting{MetaTitle: models.Str("gone"), IsActive: true}
	require.NoError(t, svc.Save(seo))

	_, err := svc.GetActive()
	require.NoError(t, err)

	require.NoError(t, svc.Delete(seo.ID))

	got, err := svc.GetActive()
	require.NoError(t, err)
	assert.Nil(t, got)

	require.ErrorIs(t, svc.Delete(seo.ID), ErrSeoSettingNotFound)
}

func TestNilDB(t *testing.T) {
	svc := New(nil, cache.New(memory.New()))

	_, err := svc.GetActive()
	require.ErrorIs(t, err, ErrDBNil)
	require.ErrorIs(t, svc.Save(&models.SeoSetting{}), ErrDBNil)
	require.ErrorIs(t, svc.Delete(1), ErrDBNil)
}
