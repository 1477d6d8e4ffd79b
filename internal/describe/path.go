package describe

import (
	"strings"

	"github.com/pinpoint-cli/pinpoint/internal/node"
)

// pathSeparator joins ancestry components root → node.
const pathSeparator = " > "

// maxPathComponents caps the rendered path length. Longer chains keep the
// first 2 and last 3 components around a single "..." marker.
const maxPathComponents = 6

// wrapperPatterns match resolved names of framework-internal wrapper nodes
// that carry no information for a human: transition containers, clipping
// and flip helpers, theme frames, and the engine's own overlay layers.
var wrapperPatterns = []string{
	"Transition",
	"Clip",
	"Flip",
	"Theme",
	"Hosting",
	"PinpointHighlight",
	"PinpointCapture",
}

// BuildPath renders the ancestor chain from the tree root down to n,
// eliding wrapper nodes and degenerate bounds, middle-truncating long
// chains. An empty chain yields an empty string, never an error.
func BuildPath(n node.Node) string {
	var parts []string
	for cur := n; cur != nil; cur = cur.Parent() {
		name := ResolveName(cur.ClassName(), cur.Role(), cur.AccessibilityLabel(), cur.AccessibilityIdentifier())
		if isWrapper(name) || cur.Bounds().Degenerate() {
			continue
		}
		parts = append(parts, name)
	}
	// parts is node → root; flip to root → node.
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	parts = truncateMiddle(parts)
	return strings.Join(parts, pathSeparator)
}

func isWrapper(name string) bool {
	for _, p := range wrapperPatterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}

// truncateMiddle keeps the first 2 and last 3 components of chains longer
// than maxPathComponents, preserving root-to-leaf order.
func truncateMiddle(parts []string) []string {
	if len(parts) <= maxPathComponents {
		return parts
	}
	out := make([]string, 0, maxPathComponents)
	out = append(out, parts[:2]...)
	out = append(out, "...")
	out = append(out, parts[len(parts)-3:]...)
	return out
}
