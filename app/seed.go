package app

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/laceandcraft/storefront/internal/cache"
	"github.com/laceandcraft/storefront/internal/config"
	"github.com/laceandcraft/storefront/internal/daemon"
	"github.com/laceandcraft/storefront/internal/db"
	"github.com/laceandcraft/storefront/internal/db/controller/seosetting"
	"github.com/laceandcraft/storefront/internal/db/controller/sitesetting"
)

func init() { //nolint: gochecknoinits
	rootCmd.AddCommand(seedCmd)
}

var seedCmd = &cobra.Command{
	Use:     "seed",
	Short:   "Write the default site content and SEO settings",
	Long:    "Write the default site content and SEO settings. Rows with the same key, title or author are overwritten.",
	PreRunE: loadConfig,
	RunE: func(_ *cobra.Command, _ []string) error {
		gdb, err := db.Open(&cfg)
		if err != nil {
			return err
		}

		if err = db.Migrate(gdb); err != nil {
			return err
		}

		if err = daemon.Seed(gdb, cfg.Webserver.URL); err != nil {
			return err
		}

		if _, err = clearSharedCache(&cfg, gdb); err != nil {
			return err
		}

		log.Info().Msg("site content seeded")

		return nil
	},
}

// clearSharedCache evicts the setting and SEO entries from a cache shared with
// running servers. The memory driver lives inside each server process, so
// there is nothing to clear from here and the servers need a restart to see
// the seeded content. It reports whether a cache was cleared.
func clearSharedCache(cfg *config.Config, gdb *gorm.DB) (bool, error) {
	if cfg.Cache.Driver == config.CacheMemory || cfg.Cache.Driver == "" {
		log.Warn().Msg("memory cache driver: restart running servers to serve the seeded content")
		return false, nil
	}

	storage, err := cache.NewStorage(cfg)
	if err != nil {
		return false, err
	}

	c := cache.New(storage)
	defer func() { _ = c.Close() }()

	if err = sitesetting.New(gdb, c).ClearCache(); err != nil {
		return false, err
	}

	if err = seosetting.New(gdb, c).ClearCache(); err != nil {
		return false, err
	}

	return true, nil
}
