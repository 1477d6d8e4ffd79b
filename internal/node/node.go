// Package node defines the contract between the resolution engine and the
// host UI framework that owns the live view tree. The engine never owns
// nodes: every Node held across a host callback must be re-checked with
// Valid before use.
package node

// Role is a coarse accessibility role reported by the host.
type Role string

const (
	RoleNone       Role = ""
	RoleButton     Role = "button"
	RoleStaticText Role = "static-text"
	RoleImage      Role = "image"
	RoleTextField  Role = "text-field"
	RoleCheckbox   Role = "checkbox"
	RoleSlider     Role = "slider"
	RoleLink       Role = "link"
	RoleList       Role = "list"
	RoleTable      Role = "table"
	RoleScrollArea Role = "scroll-area"
	RoleTabGroup   Role = "tab-group"
)

// Style is the visual border/outline state of a node that highlighting
// overwrites. It is captured before a highlight is applied and written back
// verbatim when the highlight is removed.
type Style struct {
	BorderWidth float64 `yaml:"border-width" json:"borderWidth"`
	BorderColor string  `yaml:"border-color" json:"borderColor"`
	Background  string  `yaml:"background"   json:"background"`
}

// Node is one visual element in the host's live tree. Implementations are
// non-owning handles: the underlying element may disappear at any time, in
// which case Valid reports false and all other methods return zero values.
type Node interface {
	// Bounds returns the node's rectangle in its parent's coordinate
	// space (top-left origin). The root's bounds are in root space.
	Bounds() Rect
	Hidden() bool
	Opacity() float64

	AccessibilityIdentifier() string
	AccessibilityLabel() string
	AccessibilityHint() string
	Role() Role

	// ClassName is the host's raw class or debug descriptor for the node.
	// It may be compiler-mangled or carry generic parameters.
	ClassName() string

	Parent() Node
	Children() []Node

	// Valid reports whether the underlying host element still exists.
	Valid() bool

	// Style and SetStyle read and write the node's highlightable visual
	// attributes. SetStyle on an invalid node is a silent no-op.
	Style() Style
	SetStyle(Style)
}

// Tree is a queryable live view tree supplied by the host.
type Tree interface {
	Root() Node
}

// HitTester is implemented by hosts that expose only an opaque native
// hit-test primitive instead of full subtree enumeration. When a Tree
// implements HitTester the engine takes the single deepest hit node as the
// only candidate.
type HitTester interface {
	// HitTest returns the deepest node containing p in root space, or nil.
	HitTest(p Point) Node
}

// ExitFunc is invoked when the session asks the host to leave annotation
// mode entirely (cancel pressed with nothing hovered, selected, or open).
type ExitFunc func()
