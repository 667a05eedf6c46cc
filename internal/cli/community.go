package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/waterwise/waterwise/internal/community"
)

// CommunityResult is the JSON shape of the community command output.
type CommunityResult struct {
	Groups      []community.Group            `json:"groups"`
	Leaderboard []community.LeaderboardEntry `json:"leaderboard"`
}

// NewCommunityCmd creates the "community" subcommand showing savings
// groups and the leaderboard.
func NewCommunityCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "community",
		Short: "Show community groups and the savings leaderboard",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := CommunityResult{
				Groups:      community.SampleGroups(),
				Leaderboard: community.Rank(community.SampleLeaderboard()),
			}
			return renderCommunity(cmd.OutOrStdout(), output, result)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputFormatTable, "output format (table, json)")

	return cmd
}

// renderCommunity renders groups and the leaderboard.
func renderCommunity(w io.Writer, format string, result CommunityResult) error {
	if format == outputFormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	styled := isWriterTerminal(w)

	header := "Community Groups"
	if styled {
		header = titleStyle.Render("COMMUNITY GROUPS")
	}
	fmt.Fprintln(w, header)
	for _, g := range result.Groups {
		fmt.Fprintf(w, "  %-24s %-8s %6d members  %s saved of %s goal\n",
			g.Name, g.Type, g.Members, liters(g.WaterSaved), liters(g.Goal))
		fmt.Fprintf(w, "  %s\n", progressBar(g.Progress()))
	}
	fmt.Fprintln(w)

	header = "Leaderboard"
	if styled {
		header = titleStyle.Render("LEADERBOARD")
	}
	fmt.Fprintln(w, header)
	for _, e := range result.Leaderboard {
		fmt.Fprintf(w, "  %2d. %-16s %10s  %d-day streak\n",
			e.Rank, e.Name, liters(e.WaterSaved), e.Streak)
	}

	return nil
}
