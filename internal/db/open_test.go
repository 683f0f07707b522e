package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	"github.com/laceandcraft/storefront/internal/config"
	"github.com/laceandcraft/storefront/internal/db/models"
)

func TestOpenSQLite(t *testing.T) {
	cfg := &config.Config{DB: config.DB{
		GormEngine: config.EngineSQLite,
		Path:       filepath.Join(t.TempDir(), "open.db"),
		LogLevel:   "silent",
	}}

	db, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m))
	}
}

func TestOpenErrors(t *testing.T) {
	_, err := Open(nil)
	require.Error(t, err)

	_, err = Open(&config.Config{DB: config.DB{GormEngine: "oracle"}})
	require.ErrorIs(t, err, config.ErrUnknownGormEngine)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, LogLevel("silent"))
	assert.Equal(t, gormlogger.Error, LogLevel("ERROR"))
	assert.Equal(t, gormlogger.Info, LogLevel("info"))
	assert.Equal(t, gormlogger.Warn, LogLevel(""))
	assert.Equal(t, gormlogger.Warn, LogLevel("verbose"))
}
