package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/waterwise/waterwise/internal/config"
	"github.com/waterwise/waterwise/internal/engine"
	"github.com/waterwise/waterwise/internal/tui"
)

// NewDashboardCmd creates the "dashboard" subcommand that opens the
// interactive terminal dashboard.
func NewDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open an interactive dashboard with usage tracking, conservation
suggestions, and the footprint catalog. Suggestions toggled in the
dashboard are persisted like "suggest --implement".`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := activeConfig()
			store, err := config.DefaultImplementedStore()
			if err != nil {
				return err
			}

			counters := engine.UsageCounters{
				Showers: cfg.Tracker.DefaultShowers,
				Buckets: cfg.Tracker.DefaultBuckets,
				Bottles: cfg.Tracker.DefaultBottles,
			}

			model := tui.NewDashboardModel(counters, store)
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("running dashboard: %w", err)
			}
			return nil
		},
	}

	return cmd
}
