package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// renderSuggest renders a suggest result in the requested format.
func renderSuggest(w io.Writer, format string, result SuggestResult) error {
	if format == outputFormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	if isWriterTerminal(w) {
		return renderSuggestStyled(w, result)
	}
	return renderSuggestPlain(w, result)
}

// renderSuggestStyled writes a boxed, colored suggestion list.
func renderSuggestStyled(w io.Writer, result SuggestResult) error {
	var content strings.Builder

	content.WriteString(titleStyle.Render("CONSERVATION SUGGESTIONS"))
	content.WriteString("\n\n")

	if len(result.Suggestions) == 0 {
		content.WriteString(dimStyle.Render("No suggestions for this usage. Nice work!"))
		content.WriteString("\n")
	}

	for _, s := range result.Suggestions {
		check := "[ ]"
		title := s.Title
		if s.Implemented {
			check = "[✓]"
			title = excellentStyle.Render(title)
		}
		content.WriteString(fmt.Sprintf("%s %s\n", check, title))
		content.WriteString(dimStyle.Render(fmt.Sprintf("    %s\n", s.Description)))
		content.WriteString(fmt.Sprintf("    saves %s/day · %s · %s · id: %s\n\n",
			liters(s.WaterSaved), s.Difficulty, s.Category, s.ID))
	}

	content.WriteString(sectionStyle.Render("SAVINGS"))
	content.WriteString("\n")
	content.WriteString(fmt.Sprintf("  Implemented %d of %d, saving %s of %s/day\n",
		result.Summary.ImplementedCount, result.Summary.SuggestionCount,
		liters(result.Summary.ImplementedSavings), liters(result.Summary.PotentialSavings)))
	content.WriteString("  ")
	content.WriteString(progressBar(result.Summary.Progress))
	content.WriteString("\n")

	_, err := fmt.Fprintln(w, boxStyle.Render(content.String()))
	return err
}

// renderSuggestPlain writes an unstyled suggestion list.
func renderSuggestPlain(w io.Writer, result SuggestResult) error {
	fmt.Fprintln(w, "Conservation Suggestions")
	fmt.Fprintln(w, "========================")
	fmt.Fprintln(w)

	if len(result.Suggestions) == 0 {
		fmt.Fprintln(w, "No suggestions for this usage.")
	}

	for _, s := range result.Suggestions {
		check := "[ ]"
		if s.Implemented {
			check = "[x]"
		}
		fmt.Fprintf(w, "%s %s\n", check, s.Title)
		fmt.Fprintf(w, "    %s\n", s.Description)
		fmt.Fprintf(w, "    saves %s/day | %s | %s | id: %s\n\n",
			liters(s.WaterSaved), s.Difficulty, s.Category, s.ID)
	}

	fmt.Fprintf(w, "Savings: implemented %d of %d, saving %s of %s/day (%.0f%%)\n",
		result.Summary.ImplementedCount, result.Summary.SuggestionCount,
		liters(result.Summary.ImplementedSavings), liters(result.Summary.PotentialSavings),
		result.Summary.Progress)

	return nil
}
