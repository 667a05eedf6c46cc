package cli

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/waterwise/waterwise/internal/config"
	"github.com/waterwise/waterwise/internal/engine"
)

// TrackParams holds the parameters for the track command execution.
// Exported for testing.
type TrackParams struct {
	Showers int
	Buckets int
	Bottles int
	Log     bool
	Output  string
}

// TrackResult is the full result of a track run, used for JSON output.
type TrackResult struct {
	Counters   engine.UsageCounters    `json:"counters"`
	Totals     engine.UsageTotals      `json:"totals"`
	Breakdown  []engine.UsageComponent `json:"breakdown"`
	Efficiency engine.Efficiency       `json:"efficiency"`
	Trend      []TrendPoint            `json:"trend,omitempty"`
}

// NewTrackCmd creates the "track" subcommand that computes usage totals
// and the efficiency rating for a day's activity counts.
func NewTrackCmd() *cobra.Command {
	var params TrackParams

	cmd := &cobra.Command{
		Use:   "track",
		Short: "Track daily water usage",
		Long: `Compute daily, weekly, and monthly water usage from activity counts
and rate your efficiency.

Counts default to the values configured under tracker in the config
file. With --log the day is appended to the usage journal and a
seven-day trend is shown.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := activeConfig()
			if !cmd.Flags().Changed("showers") {
				params.Showers = cfg.Tracker.DefaultShowers
			}
			if !cmd.Flags().Changed("buckets") {
				params.Buckets = cfg.Tracker.DefaultBuckets
			}
			if !cmd.Flags().Changed("bottles") {
				params.Bottles = cfg.Tracker.DefaultBottles
			}
			return executeTrack(cmd, params)
		},
	}

	cmd.Flags().IntVar(&params.Showers, "showers", 0, "number of showers today")
	cmd.Flags().IntVar(&params.Buckets, "buckets", 0, "buckets of water used today")
	cmd.Flags().IntVar(&params.Bottles, "bottles", 0, "bottles of water consumed today")
	cmd.Flags().BoolVar(&params.Log, "log", false, "append today's usage to the journal and show the weekly trend")
	cmd.Flags().StringVarP(&params.Output, "output", "o", outputFormatTable, "output format (table, json)")

	return cmd
}

// executeTrack computes totals, efficiency, and breakdown, optionally
// journals the day, and renders the result.
func executeTrack(cmd *cobra.Command, params TrackParams) error {
	counters := engine.UsageCounters{
		Showers: params.Showers,
		Buckets: params.Buckets,
		Bottles: params.Bottles,
	}

	result := TrackResult{
		Counters:   counters,
		Totals:     engine.ComputeTotals(counters),
		Breakdown:  engine.Breakdown(counters),
		Efficiency: engine.ComputeEfficiency(float64(engine.ComputeTotals(counters).Daily)),
	}

	log.Debug().
		Str("component", "cli").
		Str("operation", "track").
		Int("daily_liters", result.Totals.Daily).
		Str("rating", result.Efficiency.Rating.String()).
		Msg("computed usage totals")

	if params.Log {
		journal, err := config.DefaultJournal()
		if err != nil {
			return err
		}
		entry, err := journal.Append(counters)
		if err != nil {
			return err
		}
		log.Debug().
			Str("component", "cli").
			Str("operation", "track").
			Str("entry_id", entry.ID).
			Msg("journaled usage entry")

		// Entries before today's feed the trend.
		entries := journal.Entries()
		entries = entries[:len(entries)-1]
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		result.Trend = WeeklyTrend(rng, result.Totals.Daily, entries, time.Now())
	}

	return renderTrack(cmd.OutOrStdout(), params.Output, result)
}
