// Package describe turns a resolved host node into an immutable snapshot:
// a human-readable type name, a filtered ancestry path, and geometry in a
// single top-left-origin space. Snapshots never hold a reference to the
// live node they were built from.
package describe

import (
	"fmt"
	"strings"

	"github.com/pinpoint-cli/pinpoint/internal/node"
)

// Descriptor is an immutable snapshot of one resolved node.
type Descriptor struct {
	TypeName           string     `yaml:"type"            json:"type"`
	HierarchyPath      string     `yaml:"path,omitempty"  json:"path,omitempty"`
	AccessibilityID    string     `yaml:"id,omitempty"    json:"id,omitempty"`
	AccessibilityLabel string     `yaml:"label,omitempty" json:"label,omitempty"`
	AccessibilityHint  string     `yaml:"hint,omitempty"  json:"hint,omitempty"`
	Frame              [4]float64 `yaml:"frame,flow"      json:"frame"`
	DebugLine          string     `yaml:"debug,omitempty" json:"debug,omitempty"`
	Depth              int        `yaml:"depth"           json:"depth"`
}

// New builds a fresh Descriptor for n at the given distance from the tree
// root. The frame is converted into root space.
func New(n node.Node, depth int) Descriptor {
	r := node.ConvertToRoot(n)
	return Descriptor{
		TypeName:           ResolveName(n.ClassName(), n.Role(), n.AccessibilityLabel(), n.AccessibilityIdentifier()),
		HierarchyPath:      BuildPath(n),
		AccessibilityID:    n.AccessibilityIdentifier(),
		AccessibilityLabel: n.AccessibilityLabel(),
		AccessibilityHint:  n.AccessibilityHint(),
		Frame:              [4]float64{r.X, r.Y, r.W, r.H},
		DebugLine:          debugLine(n, r),
		Depth:              depth,
	}
}

// debugLine is a one-line diagnostic: raw class, root-space frame, and any
// visibility flags.
func debugLine(n node.Node, r node.Rect) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%.0f, %.0f, %.0f, %.0f)", n.ClassName(), r.X, r.Y, r.W, r.H)
	if n.Hidden() {
		b.WriteString(" hidden")
	}
	if op := n.Opacity(); op < 1 {
		fmt.Fprintf(&b, " opacity=%.2f", op)
	}
	return b.String()
}
