package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/waterwise/waterwise/internal/config"
	"github.com/waterwise/waterwise/internal/engine"
)

// SuggestParams holds the parameters for the suggest command execution.
// Exported for testing.
type SuggestParams struct {
	Showers   int
	Buckets   int
	Bottles   int
	Implement []string
	Undo      []string
	Output    string
}

// SuggestResult is the full result of a suggest run, used for JSON
// output.
type SuggestResult struct {
	Suggestions []SuggestionStatus    `json:"suggestions"`
	Summary     engine.SavingsSummary `json:"summary"`
}

// SuggestionStatus pairs a suggestion with its implemented flag.
type SuggestionStatus struct {
	engine.Suggestion
	Implemented bool `json:"implemented"`
}

// NewSuggestCmd creates the "suggest" subcommand that generates
// conservation suggestions for a day's activity counts.
func NewSuggestCmd() *cobra.Command {
	var params SuggestParams

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Get water conservation suggestions",
		Long: `Generate personalized conservation suggestions from your activity
counts. Suggestions marked implemented with --implement persist across
runs and count toward your savings progress.`,
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
			return executeSuggest(cmd, params)
		},
	}

	cmd.Flags().IntVar(&params.Showers, "showers", 0, "number of showers today")
	cmd.Flags().IntVar(&params.Buckets, "buckets", 0, "buckets of water used today")
	cmd.Flags().IntVar(&params.Bottles, "bottles", 0, "bottles of water consumed today")
	cmd.Flags().StringArrayVar(&params.Implement, "implement", nil, "mark a suggestion ID as implemented (repeatable)")
	cmd.Flags().StringArrayVar(&params.Undo, "undo", nil, "unmark an implemented suggestion ID (repeatable)")
	cmd.Flags().StringVarP(&params.Output, "output", "o", outputFormatTable, "output format (table, json)")

	return cmd
}

// executeSuggest generates suggestions, applies implement/undo updates
// to the store, and renders the annotated list with a savings summary.
func executeSuggest(cmd *cobra.Command, params SuggestParams) error {
	counters := engine.UsageCounters{
		Showers: params.Showers,
		Buckets: params.Buckets,
		Bottles: params.Bottles,
	}
	daily := engine.ComputeTotals(counters).Daily
	suggestions := engine.GenerateSuggestions(counters, daily)

	store, err := config.DefaultImplementedStore()
	if err != nil {
		return err
	}

	for _, id := range params.Implement {
		if !containsSuggestion(suggestions, id) {
			return fmt.Errorf("unknown suggestion ID %q", id)
		}
		if err := store.Mark(id); err != nil {
			return err
		}
		log.Debug().
			Str("component", "cli").
			Str("operation", "suggest").
			Str("suggestion_id", id).
			Msg("marked suggestion implemented")
	}
	for _, id := range params.Undo {
		if err := store.Unmark(id); err != nil {
			return err
		}
	}

	implemented := store.Set()
	result := SuggestResult{
		Summary: engine.Summarize(suggestions, implemented),
	}
	for _, s := range suggestions {
		result.Suggestions = append(result.Suggestions, SuggestionStatus{
			Suggestion:  s,
			Implemented: implemented[s.ID],
		})
	}

	return renderSuggest(cmd.OutOrStdout(), params.Output, result)
}

func containsSuggestion(suggestions []engine.Suggestion, id string) bool {
	for _, s := range suggestions {
		if s.ID == id {
			return true
		}
	}
	return false
}
