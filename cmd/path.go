package cmd

import (
	"fmt"

	"github.com/pinpoint-cli/pinpoint/internal/describe"
	"github.com/pinpoint-cli/pinpoint/internal/output"
	"github.com/pinpoint-cli/pinpoint/internal/resolve"
	"github.com/spf13/cobra"
)

// PathResult is the output of a path lookup.
type PathResult struct {
	OK      bool                 `yaml:"ok"               json:"ok"`
	ID      string               `yaml:"id"               json:"id"`
	Path    string               `yaml:"path"             json:"path"`
	Element *describe.Descriptor `yaml:"element,omitempty" json:"element,omitempty"`
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the hierarchy path for an element by accessibility identifier",
	RunE:  runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
	addTreeFlag(pathCmd)
	pathCmd.Flags().String("id", "", "Accessibility identifier to look up (required)")
}

func runPath(cmd *cobra.Command, args []string) error {
	tree, err := loadTree(cmd)
	if err != nil {
		return err
	}
	id, _ := cmd.Flags().GetString("id")
	if id == "" {
		return fmt.Errorf("--id is required")
	}
	n := tree.FindByID(id)
	if n == nil {
		return fmt.Errorf("no element with identifier %q", id)
	}
	desc := describe.New(n, resolve.Depth(n))
	return output.Print(PathResult{OK: true, ID: id, Path: desc.HierarchyPath, Element: &desc})
}
