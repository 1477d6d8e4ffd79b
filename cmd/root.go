package cmd

import (
	"fmt"
	"os"

	"github.com/pinpoint-cli/pinpoint/internal/output"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pinpoint",
	Short: "Point at a UI element and get a structured description of it",
	Long: `pinpoint resolves a screen point inside a live view tree to the single
most relevant element: a human-readable type name, a filtered ancestry path,
geometry, and accessibility metadata. Trees are supplied as YAML documents;
the same engine drives one-shot resolution, an interactive annotate session,
and an MCP server.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().Float64("max-area-fraction", 0.70, "Reject candidates larger than this fraction of the root area")
	rootCmd.PersistentFlags().Float64("min-area", 10, "Square-unit floor below which candidates are fallback only")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
