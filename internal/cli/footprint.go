package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/waterwise/waterwise/internal/catalog"
	"github.com/waterwise/waterwise/internal/recognize"
)

// NewFootprintCmd creates the "footprint" command group for estimating
// water footprints.
func NewFootprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "footprint",
		Short: "Estimate water footprints of products",
	}
	cmd.AddCommand(NewFootprintCalcCmd(), NewFootprintAnalyzeCmd())
	return cmd
}

// FootprintCalcParams holds the parameters for the calc subcommand.
// Exported for testing.
type FootprintCalcParams struct {
	Quantity        float64
	Unit            string
	Characteristics string
	Output          string
}

// NewFootprintCalcCmd creates the "footprint calc" subcommand.
func NewFootprintCalcCmd() *cobra.Command {
	var params FootprintCalcParams

	cmd := &cobra.Command{
		Use:   "calc <item>",
		Short: "Calculate the water footprint of an item by name",
		Long: `Calculate the water footprint of an item by name.

The item name is matched against known footprint factors. Unrecognized
items get a conservative generic estimate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := catalog.EstimateFootprint(
				args[0], params.Quantity, params.Unit, params.Characteristics)
			if err != nil {
				return err
			}
			return renderFootprint(cmd.OutOrStdout(), params.Output, nil, result)
		},
	}

	cmd.Flags().Float64VarP(&params.Quantity, "quantity", "q", 1, "quantity of the item")
	cmd.Flags().StringVar(&params.Unit, "unit", "", "unit label override (defaults to the factor's unit)")
	cmd.Flags().StringVar(&params.Characteristics, "characteristics", "", "free-text notes about the item")
	cmd.Flags().StringVarP(&params.Output, "output", "o", outputFormatTable, "output format (table, json)")

	return cmd
}

// FootprintAnalyzeParams holds the parameters for the analyze
// subcommand. Exported for testing.
type FootprintAnalyzeParams struct {
	Image    string
	Quantity float64
	Output   string
}

// NewFootprintAnalyzeCmd creates the "footprint analyze" subcommand
// that identifies an item from an image and estimates its footprint.
func NewFootprintAnalyzeCmd() *cobra.Command {
	var params FootprintAnalyzeParams

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Identify an item from an image and estimate its footprint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if params.Image == "" {
				return errors.New("--image is required")
			}

			svc := recognize.NewService(recognize.NewStaticClassifier())
			classifications, result, err := svc.Footprint(
				cmd.Context(), params.Image, params.Quantity, "")
			if err != nil {
				return err
			}
			return renderFootprint(cmd.OutOrStdout(), params.Output, classifications, result)
		},
	}

	cmd.Flags().StringVar(&params.Image, "image", "", "path to the image to analyze")
	cmd.Flags().Float64VarP(&params.Quantity, "quantity", "q", 1, "quantity of the identified item")
	cmd.Flags().StringVarP(&params.Output, "output", "o", outputFormatTable, "output format (table, json)")

	return cmd
}

// footprintOutput is the JSON shape shared by calc and analyze.
type footprintOutput struct {
	Classifications []recognize.Classification `json:"classifications,omitempty"`
	Footprint       catalog.FootprintResult    `json:"footprint"`
}

// renderFootprint renders a footprint result, with classifications when
// the item came from image analysis.
func renderFootprint(
	w io.Writer,
	format string,
	classifications []recognize.Classification,
	result catalog.FootprintResult,
) error {
	if format == outputFormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(footprintOutput{Classifications: classifications, Footprint: result})
	}

	if isWriterTerminal(w) {
		return renderFootprintStyled(w, classifications, result)
	}
	return renderFootprintPlain(w, classifications, result)
}

func renderFootprintStyled(
	w io.Writer,
	classifications []recognize.Classification,
	result catalog.FootprintResult,
) error {
	var content strings.Builder

	content.WriteString(titleStyle.Render("WATER FOOTPRINT"))
	content.WriteString("\n\n")

	if len(classifications) > 0 {
		content.WriteString(sectionStyle.Render("IDENTIFIED"))
		content.WriteString("\n")
		for i, c := range classifications {
			line := fmt.Sprintf("  %d. %s (%.0f%%)\n", i+1, c.Label, c.Score*100)
			if i == 0 {
				content.WriteString(line)
			} else {
				content.WriteString(dimStyle.Render(line))
			}
		}
		content.WriteString("\n")
	}

	content.WriteString(fmt.Sprintf("%-10s %s\n", "Item:", result.Item))
	content.WriteString(fmt.Sprintf("%-10s %g %s\n", "Quantity:", result.Quantity, result.Unit))
	content.WriteString(fmt.Sprintf("%-10s %s\n", "Water:", liters(int(result.WaterLiters))))
	if result.Characteristics != "" {
		content.WriteString(fmt.Sprintf("%-10s %s\n", "Details:", result.Characteristics))
	}
	if result.Fallback {
		content.WriteString("\n")
		content.WriteString(dimStyle.Render("Estimated with a generic factor; item not in the factor table."))
		content.WriteString("\n")
	}

	_, err := fmt.Fprintln(w, boxStyle.Render(content.String()))
	return err
}

func renderFootprintPlain(
	w io.Writer,
	classifications []recognize.Classification,
	result catalog.FootprintResult,
) error {
	fmt.Fprintln(w, "Water Footprint")
	fmt.Fprintln(w, "===============")

	if len(classifications) > 0 {
		fmt.Fprintln(w, "Identified:")
		for i, c := range classifications {
			fmt.Fprintf(w, "  %d. %s (%.0f%%)\n", i+1, c.Label, c.Score*100)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Item:     %s\n", result.Item)
	fmt.Fprintf(w, "Quantity: %g %s\n", result.Quantity, result.Unit)
	fmt.Fprintf(w, "Water:    %s\n", liters(int(result.WaterLiters)))
	if result.Characteristics != "" {
		fmt.Fprintf(w, "Details:  %s\n", result.Characteristics)
	}
	if result.Fallback {
		fmt.Fprintln(w, "Note: estimated with a generic factor; item not in the factor table")
	}

	return nil
}
