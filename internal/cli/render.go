// Package cli implements the waterwise command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/waterwise/waterwise/internal/engine"
)

// Output format flag values.
const (
	outputFormatTable = "table"
	outputFormatJSON  = "json"
)

// Rendering constants.
const (
	boxWidth       = 56
	progressBarLen = 24
)

// numPrinter formats liter counts with thousands separators.
var numPrinter = message.NewPrinter(language.English) //nolint:gochecknoglobals // Shared formatter, construction is not cheap

// liters formats a liter count like "12,000 L".
func liters(n int) string {
	return numPrinter.Sprintf("%d L", n)
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// isWriterTerminal reports whether the writer is an interactive terminal.
// Styled output is only used when writing straight to one.
func isWriterTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// Shared lipgloss styles for styled output.
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Width(boxWidth)

	excellentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	goodStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("76"))
	averageStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	highUsageStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))

	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// ratingStyle picks the style for an efficiency rating.
func ratingStyle(r engine.Rating) lipgloss.Style {
	switch r {
	case engine.RatingExcellent:
		return excellentStyle
	case engine.RatingGood:
		return goodStyle
	case engine.RatingAverage:
		return averageStyle
	default:
		return highUsageStyle
	}
}

// progressBar renders a fixed-width bar for a 0-100 percentage.
func progressBar(percent float64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := int(percent / 100 * progressBarLen)
	return fmt.Sprintf("[%s%s] %.0f%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", progressBarLen-filled),
		percent,
	)
}
