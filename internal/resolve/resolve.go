package resolve

import (
	"github.com/pinpoint-cli/pinpoint/internal/describe"
	"github.com/pinpoint-cli/pinpoint/internal/node"
)

// Engine is the resolution façade: point in, descriptor out. It is used
// identically for hover preview and click selection.
type Engine struct {
	tree   node.Tree
	policy Policy
}

// Resolution pairs a fresh descriptor with the weak handle it was built
// from. The handle is only good for the event that produced it (applying a
// highlight); it must be re-validated before any use.
type Resolution struct {
	Descriptor describe.Descriptor
	Node       node.Node
}

// New creates an Engine over a host tree.
func New(tree node.Tree, pol Policy) *Engine {
	return &Engine{tree: tree, policy: pol}
}

// Policy returns the engine's ranking thresholds.
func (e *Engine) Policy() Policy { return e.policy }

// Resolve identifies the most relevant node under p (root space). The
// second return is false when nothing is under the point; resolution never
// fails otherwise. Hosts that implement node.HitTester supply the single
// deepest hit directly and skip ranking.
func (e *Engine) Resolve(p node.Point) (*Resolution, bool) {
	root := e.tree.Root()
	if root == nil || !root.Valid() {
		return nil, false
	}

	if ht, ok := e.tree.(node.HitTester); ok {
		n := ht.HitTest(p)
		if n == nil || !n.Valid() {
			return nil, false
		}
		return &Resolution{Descriptor: describe.New(n, Depth(n)), Node: n}, true
	}

	cands := Collect(root, p)
	chosen, ok := Rank(cands, node.ConvertToRoot(root).Area(), e.policy)
	if !ok || !chosen.Node.Valid() {
		return nil, false
	}
	return &Resolution{Descriptor: describe.New(chosen.Node, chosen.Depth), Node: chosen.Node}, true
}

// ResolveAll returns descriptors for the full ranked candidate set under p,
// best first. Used by diagnostic surfaces; the state machine only ever
// consumes Resolve.
func (e *Engine) ResolveAll(p node.Point) []describe.Descriptor {
	root := e.tree.Root()
	if root == nil || !root.Valid() {
		return nil
	}
	cands := Collect(root, p)
	sortCandidates(cands)
	out := make([]describe.Descriptor, 0, len(cands))
	for _, c := range cands {
		if !c.Node.Valid() {
			continue
		}
		out = append(out, describe.New(c.Node, c.Depth))
	}
	return out
}
