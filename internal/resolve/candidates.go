// Package resolve maps a point in a live tree to the single most relevant
// node: enumerate everything under the point, rank by accessibility
// presence, depth, and area, then snapshot the winner.
package resolve

import (
	"strings"

	"github.com/pinpoint-cli/pinpoint/internal/node"
)

// Candidate is a transient scoring record for one node under the query
// point. It holds a non-owning handle and is discarded when resolution
// returns.
type Candidate struct {
	Node             node.Node
	Area             float64
	Depth            int
	HasAccessibility bool
}

// minOpacity is the threshold below which a node is treated as invisible.
const minOpacity = 0.01

// overlayClassPatterns match the engine's own tap-capture and highlight
// layers, which must never select themselves.
var overlayClassPatterns = []string{
	"PinpointHighlight",
	"PinpointCapture",
	"PinpointToast",
}

// Collect enumerates every visible node whose root-space bounds contain p,
// depth-first from root. Hidden and effectively transparent nodes prune
// their whole subtree; overlay-internal nodes are skipped but their
// subtrees are still visited.
func Collect(root node.Node, p node.Point) []Candidate {
	var out []Candidate
	var walk func(n node.Node, origin node.Point, depth int)
	walk = func(n node.Node, origin node.Point, depth int) {
		if n.Hidden() || n.Opacity() < minOpacity {
			return
		}
		b := n.Bounds().Offset(origin.X, origin.Y)
		if b.Contains(p) && !isOverlayInternal(n) {
			out = append(out, Candidate{
				Node:             n,
				Area:             b.Area(),
				Depth:            depth,
				HasAccessibility: hasAccessibility(n),
			})
		}
		for _, c := range n.Children() {
			walk(c, node.Point{X: b.X, Y: b.Y}, depth+1)
		}
	}
	walk(root, node.Point{}, 0)
	return out
}

// hasAccessibility reports whether the node carries explicit developer
// intent: an accessibility identifier or a non-empty label.
func hasAccessibility(n node.Node) bool {
	return n.AccessibilityIdentifier() != "" || n.AccessibilityLabel() != ""
}

func isOverlayInternal(n node.Node) bool {
	cls := n.ClassName()
	for _, p := range overlayClassPatterns {
		if strings.Contains(cls, p) {
			return true
		}
	}
	return false
}

// Depth returns n's distance from the tree root via parent links.
func Depth(n node.Node) int {
	d := 0
	for p := n.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}
