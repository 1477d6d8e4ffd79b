package session

import "github.com/pinpoint-cli/pinpoint/internal/node"

// highlight tracks one overlaid node together with the visual style it had
// before the overlay, so removal can restore it verbatim.
type highlight struct {
	n        node.Node
	original node.Style
}

// highlighter enforces the at-most-one invariant: zero or one hovered node
// and zero or one selected node at any instant. Every apply is paired with
// the removal of the previous highlight, removal first.
type highlighter struct {
	hoverStyle  node.Style
	selectStyle node.Style
	hover       *highlight
	selection   *highlight
}

// setHover moves the hover highlight to n. No-op when n is already
// hovered. Stale handles are skipped silently.
func (h *highlighter) setHover(n node.Node) {
	if h.hover != nil && h.hover.n == n {
		return
	}
	h.clearHover()
	if n == nil || !n.Valid() {
		return
	}
	h.hover = &highlight{n: n, original: n.Style()}
	n.SetStyle(h.hoverStyle)
}

// setSelection moves the selection highlight to n, clearing any hover
// first so a node is never carrying both styles.
func (h *highlighter) setSelection(n node.Node) {
	h.clearHover()
	h.clearSelection()
	if n == nil || !n.Valid() {
		return
	}
	h.selection = &highlight{n: n, original: n.Style()}
	n.SetStyle(h.selectStyle)
}

func (h *highlighter) clearHover() {
	restore(h.hover)
	h.hover = nil
}

func (h *highlighter) clearSelection() {
	restore(h.selection)
	h.selection = nil
}

func (h *highlighter) clearAll() {
	h.clearHover()
	h.clearSelection()
}

func (h *highlighter) hoveredNode() node.Node {
	if h.hover == nil {
		return nil
	}
	return h.hover.n
}

func (h *highlighter) selectedNode() node.Node {
	if h.selection == nil {
		return nil
	}
	return h.selection.n
}

// restore writes the captured style back. A node that disappeared while
// highlighted is skipped: a visual glitch in the host beats a crash here.
func restore(hl *highlight) {
	if hl == nil || hl.n == nil || !hl.n.Valid() {
		return
	}
	hl.n.SetStyle(hl.original)
}
