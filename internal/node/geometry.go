package node

// Point is a location in a top-left-origin coordinate space.
type Point struct {
	X, Y float64
}

// Rect is a rectangle in a top-left-origin coordinate space
// (y increases downward).
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r. Edges on the left/top are
// inclusive, right/bottom exclusive, so adjacent rects don't both claim a
// shared border point.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Area returns the rectangle's area in square units.
func (r Rect) Area() float64 {
	if r.W <= 0 || r.H <= 0 {
		return 0
	}
	return r.W * r.H
}

// Degenerate reports whether either dimension is below one unit.
// Degenerate rects are invisible for practical purposes and are dropped
// from hierarchy paths.
func (r Rect) Degenerate() bool {
	return r.W < 1 || r.H < 1
}

// Offset returns r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// FlipY converts a rect expressed in a bottom-left-origin space into the
// engine's top-left-origin space, given the height of the containing space.
func FlipY(r Rect, containerHeight float64) Rect {
	return Rect{X: r.X, Y: containerHeight - (r.Y + r.H), W: r.W, H: r.H}
}

// ConvertToRoot returns n's bounds translated into the root's coordinate
// space by accumulating ancestor origins. Bounds reported by a Node are in
// its parent's space; the root's bounds are already in root space.
func ConvertToRoot(n Node) Rect {
	r := n.Bounds()
	for p := n.Parent(); p != nil; p = p.Parent() {
		pb := p.Bounds()
		r = r.Offset(pb.X, pb.Y)
	}
	return r
}
