package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/waterwise/waterwise/internal/catalog"
)

// NewCatalogCmd creates the "catalog" command group for browsing the
// water footprint catalog.
func NewCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the water footprint catalog",
	}
	cmd.AddCommand(NewCatalogSearchCmd(), NewCatalogShowCmd())
	return cmd
}

// NewCatalogSearchCmd creates the "catalog search" subcommand.
func NewCatalogSearchCmd() *cobra.Command {
	var (
		categoryFlag string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search catalog items by name and category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}

			category, err := catalog.ParseCategory(categoryFlag)
			if err != nil {
				return err
			}

			items := catalog.Search(catalog.Items(), query, category)
			return renderCatalogItems(cmd.OutOrStdout(), output, items)
		},
	}

	cmd.Flags().StringVar(&categoryFlag, "category", "", "filter by category (food, clothing, electronics)")
	cmd.Flags().StringVarP(&output, "output", "o", outputFormatTable, "output format (table, json)")

	return cmd
}

// NewCatalogShowCmd creates the "catalog show" subcommand.
func NewCatalogShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a catalog item in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid item ID %q: %w", args[0], err)
			}

			item, err := catalog.ItemByID(id)
			if err != nil {
				return err
			}
			return renderCatalogItem(cmd.OutOrStdout(), output, item)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputFormatTable, "output format (table, json)")

	return cmd
}

// renderCatalogItems renders a search result list.
func renderCatalogItems(w io.Writer, format string, items []catalog.Item) error {
	if format == outputFormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	if len(items) == 0 {
		fmt.Fprintln(w, "No matching items")
		return nil
	}

	styled := isWriterTerminal(w)
	header := fmt.Sprintf("%-4s %-22s %-12s %12s", "ID", "NAME", "CATEGORY", "FOOTPRINT")
	if styled {
		header = sectionStyle.Render(header)
	}
	fmt.Fprintln(w, header)
	for _, item := range items {
		fmt.Fprintf(w, "%-4d %-22s %-12s %12s\n",
			item.ID, item.Name, item.Category, liters(item.Liters))
	}
	return nil
}

// renderCatalogItem renders a single item with its fact.
func renderCatalogItem(w io.Writer, format string, item catalog.Item) error {
	if format == outputFormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(item)
	}

	if isWriterTerminal(w) {
		var content strings.Builder
		content.WriteString(titleStyle.Render(item.Name))
		content.WriteString("\n\n")
		content.WriteString(fmt.Sprintf("%-10s %s\n", "Category:", item.Category))
		content.WriteString(fmt.Sprintf("%-10s %s per %s\n", "Footprint:", liters(item.Liters), item.Unit))
		content.WriteString("\n")
		content.WriteString(dimStyle.Render(item.Fact))
		content.WriteString("\n")
		_, err := fmt.Fprintln(w, boxStyle.Render(content.String()))
		return err
	}

	fmt.Fprintln(w, item.Name)
	fmt.Fprintln(w, strings.Repeat("=", len(item.Name)))
	fmt.Fprintf(w, "Category:  %s\n", item.Category)
	fmt.Fprintf(w, "Footprint: %s per %s\n", liters(item.Liters), item.Unit)
	fmt.Fprintf(w, "Fact:      %s\n", item.Fact)
	return nil
}
