package cmd

import (
	"fmt"

	"github.com/pinpoint-cli/pinpoint/internal/fixture"
	"github.com/pinpoint-cli/pinpoint/internal/node"
	"github.com/pinpoint-cli/pinpoint/internal/resolve"
	"github.com/spf13/cobra"
)

// addTreeFlag registers the --tree flag shared by every command that needs
// a host tree.
func addTreeFlag(cmd *cobra.Command) {
	cmd.Flags().String("tree", "", "Path to a YAML tree document (required)")
}

// loadTree reads the --tree document.
func loadTree(cmd *cobra.Command) (*fixture.Tree, error) {
	path, _ := cmd.Flags().GetString("tree")
	if path == "" {
		return nil, fmt.Errorf("--tree is required")
	}
	return fixture.Load(path)
}

// policyFromFlags builds the ranking thresholds from the root persistent
// flags.
func policyFromFlags(cmd *cobra.Command) resolve.Policy {
	pol := resolve.DefaultPolicy()
	if f := cmd.Flags().Lookup("max-area-fraction"); f != nil {
		if v, err := cmd.Flags().GetFloat64("max-area-fraction"); err == nil {
			pol.MaxRootAreaFraction = v
		}
	}
	if f := cmd.Flags().Lookup("min-area"); f != nil {
		if v, err := cmd.Flags().GetFloat64("min-area"); err == nil {
			pol.MinArea = v
		}
	}
	return pol
}

// engineForTree wraps a loaded tree in an Engine, optionally through the
// single-hit adapter so the native-hit-test path can be exercised from the
// CLI.
func engineForTree(cmd *cobra.Command, t *fixture.Tree) *resolve.Engine {
	var tree node.Tree = t
	if singleHit, _ := cmd.Flags().GetBool("single-hit"); singleHit {
		tree = fixture.SingleHit{Tree: t}
	}
	return resolve.New(tree, policyFromFlags(cmd))
}

// pointFromFlags reads the --x/--y query point.
func pointFromFlags(cmd *cobra.Command) (node.Point, error) {
	if !cmd.Flags().Changed("x") || !cmd.Flags().Changed("y") {
		return node.Point{}, fmt.Errorf("both --x and --y are required")
	}
	x, _ := cmd.Flags().GetFloat64("x")
	y, _ := cmd.Flags().GetFloat64("y")
	return node.Point{X: x, Y: y}, nil
}
