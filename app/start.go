package app

import (
	"github.com/spf13/cobra"

	"github.com/laceandcraft/storefront/internal/daemon"
)

func init() { //nolint: gochecknoinits
	startCmd.Flags().BoolVar(&devMode, "dev", false, "Enable dev mode, templates are read from disk")

	rootCmd.AddCommand(startCmd)
}

var startCmd = &cobra.Command{
	Use:     "start",
	Short:   "Start the storefront web service",
	PreRunE: loadConfig,
	RunE: func(_ *cobra.Command, _ []string) error {
		d, err := daemon.New(&cfg)
		if err != nil {
			return err
		}

		return d.Start()
	},
}
