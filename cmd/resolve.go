package cmd

import (
	"github.com/pinpoint-cli/pinpoint/internal/describe"
	"github.com/pinpoint-cli/pinpoint/internal/output"
	"github.com/spf13/cobra"
)

// ResolveResult is the output of a resolve invocation.
type ResolveResult struct {
	OK         bool                  `yaml:"ok"                   json:"ok"`
	X          float64               `yaml:"x"                    json:"x"`
	Y          float64               `yaml:"y"                    json:"y"`
	Element    *describe.Descriptor  `yaml:"element,omitempty"    json:"element,omitempty"`
	Candidates []describe.Descriptor `yaml:"candidates,omitempty" json:"candidates,omitempty"`
}

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a point to the most relevant element",
	Long: `Resolve a point (top-left-origin coordinates) against a tree document and
print the chosen element's descriptor. With --all the full ranked candidate
set is included. A miss is reported as ok: false, never as an error.`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	addTreeFlag(resolveCmd)
	resolveCmd.Flags().Float64("x", 0, "Query point X")
	resolveCmd.Flags().Float64("y", 0, "Query point Y")
	resolveCmd.Flags().Bool("all", false, "Include the full ranked candidate set")
	resolveCmd.Flags().Bool("single-hit", false, "Use the host's native hit-test instead of enumeration")
}

func runResolve(cmd *cobra.Command, args []string) error {
	tree, err := loadTree(cmd)
	if err != nil {
		return err
	}
	pt, err := pointFromFlags(cmd)
	if err != nil {
		return err
	}
	engine := engineForTree(cmd, tree)

	result := ResolveResult{X: pt.X, Y: pt.Y}
	if res, ok := engine.Resolve(pt); ok {
		result.OK = true
		result.Element = &res.Descriptor
	}
	if all, _ := cmd.Flags().GetBool("all"); all {
		result.Candidates = engine.ResolveAll(pt)
	}
	return output.Print(result)
}
