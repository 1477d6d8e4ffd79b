package cmd

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pinpoint-cli/pinpoint/internal/markup"
	"github.com/pinpoint-cli/pinpoint/internal/node"
	"github.com/pinpoint-cli/pinpoint/internal/output"
	"github.com/spf13/cobra"
)

// MarkupResult is the output of a markup invocation.
type MarkupResult struct {
	OK    bool   `yaml:"ok"    json:"ok"`
	Out   string `yaml:"out"   json:"out"`
	Boxes int    `yaml:"boxes" json:"boxes"`
}

var markupCmd = &cobra.Command{
	Use:   "markup",
	Short: "Draw a resolved element's highlight box onto a screenshot",
	Long: `Resolve a point against a tree document and draw the chosen element's
frame and type name onto a screenshot of the same view. With --all every
ranked candidate is drawn.`,
	RunE: runMarkup,
}

func init() {
	rootCmd.AddCommand(markupCmd)
	addTreeFlag(markupCmd)
	markupCmd.Flags().Float64("x", 0, "Query point X")
	markupCmd.Flags().Float64("y", 0, "Query point Y")
	markupCmd.Flags().String("image", "", "Screenshot to annotate (png or jpg, required)")
	markupCmd.Flags().String("out", "", "Output file (defaults to <image>.marked.png)")
	markupCmd.Flags().Bool("all", false, "Draw every ranked candidate, not just the winner")
}

func runMarkup(cmd *cobra.Command, args []string) error {
	tree, err := loadTree(cmd)
	if err != nil {
		return err
	}
	pt, err := pointFromFlags(cmd)
	if err != nil {
		return err
	}
	imgPath, _ := cmd.Flags().GetString("image")
	if imgPath == "" {
		return fmt.Errorf("--image is required")
	}
	img, err := loadImage(imgPath)
	if err != nil {
		return err
	}

	engine := engineForTree(cmd, tree)
	var boxes []markup.Box
	if all, _ := cmd.Flags().GetBool("all"); all {
		for _, d := range engine.ResolveAll(pt) {
			boxes = append(boxes, markup.Box{Frame: d.Frame, Label: d.TypeName})
		}
	} else if res, ok := engine.Resolve(pt); ok {
		boxes = append(boxes, markup.Box{Frame: res.Descriptor.Frame, Label: res.Descriptor.TypeName})
	}
	if len(boxes) == 0 {
		return fmt.Errorf("no element under (%g, %g)", pt.X, pt.Y)
	}

	space := node.ConvertToRoot(tree.Root())
	annotated := markup.Annotate(img, boxes, space)

	outPath, _ := cmd.Flags().GetString("out")
	if outPath == "" {
		ext := filepath.Ext(imgPath)
		outPath = strings.TrimSuffix(imgPath, ext) + ".marked.png"
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := png.Encode(f, annotated); err != nil {
		return fmt.Errorf("encode %s: %w", outPath, err)
	}
	return output.Print(MarkupResult{OK: true, Out: outPath, Boxes: len(boxes)})
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(f)
	default:
		return png.Decode(f)
	}
}
