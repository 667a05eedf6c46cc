package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// renderTrack renders a track result in the requested format.
func renderTrack(w io.Writer, format string, result TrackResult) error {
	if format == outputFormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	if isWriterTerminal(w) {
		return renderTrackStyled(w, result)
	}
	return renderTrackPlain(w, result)
}

// renderTrackStyled writes a boxed, colored summary using Lip Gloss.
func renderTrackStyled(w io.Writer, result TrackResult) error {
	var content strings.Builder

	content.WriteString(titleStyle.Render("WATER USAGE"))
	content.WriteString("\n\n")

	content.WriteString(fmt.Sprintf("%-10s %s\n", "Daily:", liters(result.Totals.Daily)))
	content.WriteString(fmt.Sprintf("%-10s %s\n", "Weekly:", liters(result.Totals.Weekly)))
	content.WriteString(fmt.Sprintf("%-10s %s\n", "Monthly:", liters(result.Totals.Monthly)))
	content.WriteString("\n")

	content.WriteString(sectionStyle.Render("BREAKDOWN"))
	content.WriteString("\n")
	for _, c := range result.Breakdown {
		content.WriteString(fmt.Sprintf("  %-9s ×%-3d %s\n",
			c.Name, c.Count, liters(c.Liters)))
	}
	content.WriteString("\n")

	style := ratingStyle(result.Efficiency.Rating)
	content.WriteString(sectionStyle.Render("EFFICIENCY"))
	content.WriteString("\n  ")
	content.WriteString(style.Render(result.Efficiency.Rating.String()))
	content.WriteString("\n  ")
	content.WriteString(progressBar(float64(result.Efficiency.Percent)))
	content.WriteString("\n")

	if len(result.Trend) > 0 {
		content.WriteString("\n")
		content.WriteString(sectionStyle.Render("LAST 7 DAYS"))
		content.WriteString("\n")
		content.WriteString(renderTrendChart(result.Trend))
	}

	_, err := fmt.Fprintln(w, boxStyle.Render(content.String()))
	return err
}

// renderTrackPlain writes an unstyled summary for pipes and files.
func renderTrackPlain(w io.Writer, result TrackResult) error {
	fmt.Fprintln(w, "Water Usage")
	fmt.Fprintln(w, "===========")
	fmt.Fprintf(w, "Daily:   %s\n", liters(result.Totals.Daily))
	fmt.Fprintf(w, "Weekly:  %s\n", liters(result.Totals.Weekly))
	fmt.Fprintf(w, "Monthly: %s\n", liters(result.Totals.Monthly))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Breakdown:")
	for _, c := range result.Breakdown {
		fmt.Fprintf(w, "  %-9s x%-3d %s\n", c.Name, c.Count, liters(c.Liters))
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Efficiency: %s (%d%%)\n",
		result.Efficiency.Rating, result.Efficiency.Percent)

	if len(result.Trend) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Last 7 days:")
		fmt.Fprint(w, renderTrendChart(result.Trend))
	}

	return nil
}

// trendBarMax is the widest trend bar in characters.
const trendBarMax = 20

// renderTrendChart draws a horizontal bar per trend day, scaled to the
// week's peak. Simulated days are marked with a tilde.
func renderTrendChart(trend []TrendPoint) string {
	peak := 0
	for _, p := range trend {
		if p.Liters > peak {
			peak = p.Liters
		}
	}

	var b strings.Builder
	for _, p := range trend {
		width := 0
		if peak > 0 {
			width = p.Liters * trendBarMax / peak
		}
		marker := " "
		if p.Simulated {
			marker = "~"
		}
		b.WriteString(fmt.Sprintf("  %s %s%-*s %s\n",
			p.Label, marker, trendBarMax, strings.Repeat("▇", width), liters(p.Liters)))
	}
	return b.String()
}
