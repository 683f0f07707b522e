// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"

	"github.com/laceandcraft/storefront/internal/config"
	"github.com/laceandcraft/storefront/internal/logger"
)

var (
	configPath string // Path to the configuration directory
	devMode    bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "storefront serves the Mary's Lace n Craft marketing site",
	Long: `storefront serves the single page marketing site of Mary's Lace n Craft
with its SEO metadata, sitemap, robots.txt, contact form and visitor analytics.`,
	Args:          cobra.OnlyValidArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() { //nolint: gochecknoinits
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./etc/", "Directory holding main.toml")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the configuration and initializes the global logger.
func loadConfig(_ *cobra.Command, _ []string) error {
	var err error

	if cfg, err = config.ReadConfig(configPath); err != nil {
		return err
	}

	if devMode {
		cfg.DevMode = true
	}

	return logger.Init(cfg.Log)
}
