package cli

import (
	"github.com/spf13/cobra"

	"github.com/waterwise/waterwise/internal/config"
)

// appCfg is the effective configuration, loaded once in the root
// command's PersistentPreRunE.
var appCfg *config.Config //nolint:gochecknoglobals // Set once before any subcommand runs

// activeConfig returns the loaded configuration, falling back to the
// defaults when commands run outside the root command (tests).
func activeConfig() *config.Config {
	if appCfg == nil {
		return config.Default()
	}
	return appCfg
}

// NewRootCmd creates the root Cobra command for the waterwise CLI.
// It wires up configuration loading, logging, and the subcommand tree
// (track, suggest, catalog, footprint, community, dashboard).
func NewRootCmd(ver string) *cobra.Command {
	var (
		debug      bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:     "waterwise",
		Short:   "Track water usage and discover ways to save",
		Long:    "WaterWise: track your daily water usage, look up the water footprint of everyday products, and get personalized conservation suggestions.",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			appCfg = cfg
			return config.InitLogger(cfg.Logging, debug)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (merged over ~/.waterwise/config.yaml)")

	cmd.AddCommand(
		NewTrackCmd(),
		NewSuggestCmd(),
		NewCatalogCmd(),
		NewFootprintCmd(),
		NewCommunityCmd(),
		NewDashboardCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Track today's usage and see your efficiency rating
  waterwise track --showers 2 --buckets 4 --bottles 3

  # Record today's usage in the journal and show the weekly trend
  waterwise track --showers 1 --log

  # Get conservation suggestions for your usage
  waterwise suggest --showers 2 --buckets 6

  # Mark a suggestion as implemented
  waterwise suggest --implement fix-leaks

  # Search the footprint catalog
  waterwise catalog search coffee --category food

  # Calculate a water footprint
  waterwise footprint calc apple --quantity 3

  # Identify an item from a photo and estimate its footprint
  waterwise footprint analyze --image fruit.jpg

  # See community groups and the savings leaderboard
  waterwise community

  # Open the interactive dashboard
  waterwise dashboard`
