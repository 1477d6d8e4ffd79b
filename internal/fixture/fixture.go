// Package fixture implements the node contract over a declarative YAML
// tree. It is the host used by the CLI, the MCP server, the interactive
// inspector, and the engine's own tests: a real windowing backend plugs in
// through the same interfaces.
package fixture

import (
	"fmt"
	"os"

	"github.com/pinpoint-cli/pinpoint/internal/node"
	"gopkg.in/yaml.v3"
)

// Spec is the YAML document describing a tree.
type Spec struct {
	// Origin is "top-left" (default) or "bottom-left". Bottom-left frames
	// are flipped into the engine's space at load time using Height.
	Origin string   `yaml:"origin,omitempty"`
	Height float64  `yaml:"height,omitempty"`
	App    string   `yaml:"app,omitempty"`
	Root   NodeSpec `yaml:"root"`
}

// NodeSpec describes one node.
type NodeSpec struct {
	Class    string     `yaml:"class"`
	ID       string     `yaml:"id,omitempty"`
	Label    string     `yaml:"label,omitempty"`
	Hint     string     `yaml:"hint,omitempty"`
	Role     string     `yaml:"role,omitempty"`
	Frame    [4]float64 `yaml:"frame,flow"`
	Hidden   bool       `yaml:"hidden,omitempty"`
	Opacity  *float64   `yaml:"opacity,omitempty"`
	Style    node.Style `yaml:"style,omitempty"`
	Children []NodeSpec `yaml:"children,omitempty"`
}

// Tree is an in-memory live tree. Nodes can be removed after load to
// simulate host-side mutation between resolution and use.
type Tree struct {
	App  string
	root *Node
}

// Node implements node.Node over a NodeSpec.
type Node struct {
	spec    NodeSpec
	bounds  node.Rect
	style   node.Style
	parent  *Node
	childs  []*Node
	removed bool
}

// Load reads a Spec from a YAML file and builds the tree.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse tree %s: %w", path, err)
	}
	return New(spec)
}

// New builds a tree from an in-memory Spec.
func New(spec Spec) (*Tree, error) {
	flip := false
	switch spec.Origin {
	case "", "top-left":
	case "bottom-left":
		if spec.Height <= 0 {
			return nil, fmt.Errorf("bottom-left origin requires a positive height")
		}
		flip = true
	default:
		return nil, fmt.Errorf("unknown origin %q (use top-left or bottom-left)", spec.Origin)
	}
	t := &Tree{App: spec.App}
	t.root = build(spec.Root, nil, flip, spec.Height)
	return t, nil
}

// build converts a NodeSpec subtree. For bottom-left documents every frame
// is flipped within its parent's height; the root flips within the document
// height.
func build(spec NodeSpec, parent *Node, flip bool, containerHeight float64) *Node {
	r := node.Rect{X: spec.Frame[0], Y: spec.Frame[1], W: spec.Frame[2], H: spec.Frame[3]}
	if flip {
		r = node.FlipY(r, containerHeight)
	}
	n := &Node{spec: spec, bounds: r, style: spec.Style, parent: parent}
	for _, cs := range spec.Children {
		n.childs = append(n.childs, build(cs, n, flip, spec.Frame[3]))
	}
	return n
}

// Root returns the tree root.
func (t *Tree) Root() node.Node { return t.root }

// Remove detaches the first node with the given accessibility identifier,
// leaving any outstanding handles to it stale. Returns false if no node
// matched.
func (t *Tree) Remove(id string) bool {
	target := t.find(func(n *Node) bool { return n.spec.ID == id })
	if target == nil || target.parent == nil {
		return false
	}
	siblings := target.parent.childs
	for i, c := range siblings {
		if c == target {
			target.parent.childs = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	target.markRemoved()
	return true
}

// FindByID returns the first node with the given accessibility identifier.
func (t *Tree) FindByID(id string) *Node {
	return t.find(func(n *Node) bool { return n.spec.ID == id })
}

func (t *Tree) find(match func(*Node) bool) *Node {
	var walk func(*Node) *Node
	walk = func(n *Node) *Node {
		if match(n) {
			return n
		}
		for _, c := range n.childs {
			if hit := walk(c); hit != nil {
				return hit
			}
		}
		return nil
	}
	return walk(t.root)
}

func (n *Node) markRemoved() {
	n.removed = true
	for _, c := range n.childs {
		c.markRemoved()
	}
}

func (n *Node) Bounds() node.Rect { return n.bounds }
func (n *Node) Hidden() bool      { return n.spec.Hidden }

func (n *Node) Opacity() float64 {
	if n.spec.Opacity == nil {
		return 1
	}
	return *n.spec.Opacity
}

func (n *Node) AccessibilityIdentifier() string { return n.spec.ID }
func (n *Node) AccessibilityLabel() string      { return n.spec.Label }
func (n *Node) AccessibilityHint() string       { return n.spec.Hint }
func (n *Node) Role() node.Role                 { return node.Role(n.spec.Role) }
func (n *Node) ClassName() string               { return n.spec.Class }

func (n *Node) Parent() node.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) Children() []node.Node {
	out := make([]node.Node, len(n.childs))
	for i, c := range n.childs {
		out[i] = c
	}
	return out
}

func (n *Node) Valid() bool { return !n.removed }

func (n *Node) Style() node.Style { return n.style }

func (n *Node) SetStyle(s node.Style) {
	if n.removed {
		return
	}
	n.style = s
}

// SingleHit wraps a Tree so it advertises only a native hit-test primitive,
// the way opaque hosts do. The engine then skips enumeration and ranking.
type SingleHit struct {
	*Tree
}

// HitTest returns the deepest visible node containing p in root space.
func (s SingleHit) HitTest(p node.Point) node.Node {
	var deepest node.Node
	var walk func(n node.Node, origin node.Point)
	walk = func(n node.Node, origin node.Point) {
		b := n.Bounds().Offset(origin.X, origin.Y)
		if n.Hidden() || !b.Contains(p) {
			return
		}
		deepest = n
		for _, c := range n.Children() {
			walk(c, node.Point{X: b.X, Y: b.Y})
		}
	}
	walk(s.Tree.Root(), node.Point{})
	if deepest == nil {
		return nil
	}
	return deepest
}
