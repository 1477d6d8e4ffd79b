package markup

import (
	"image"
	"image/color"
	"testing"

	"github.com/pinpoint-cli/pinpoint/internal/node"
)

var boxColor = color.RGBA{R: 232, G: 163, B: 61, A: 255}

func TestAnnotateDrawsBoxOutline(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 100))
	out := Annotate(src, []Box{{Frame: [4]float64{10, 20, 30, 40}}}, node.Rect{W: 100, H: 100})

	// Corners and edge midpoints of the outline.
	for _, p := range []image.Point{
		{10, 20}, {39, 20}, {10, 59}, {39, 59}, {25, 20}, {10, 40},
	} {
		if got := out.RGBAAt(p.X, p.Y); got != boxColor {
			t.Errorf("pixel (%d,%d) = %v, want box color", p.X, p.Y, got)
		}
	}
	// Interior stays untouched.
	if got := out.RGBAAt(25, 40); got == boxColor {
		t.Error("box interior was filled")
	}
	// Source image is not mutated.
	if got := src.RGBAAt(10, 20); got == boxColor {
		t.Error("annotate mutated its input image")
	}
}

func TestAnnotateScalesTreeSpaceToPixels(t *testing.T) {
	// 200x200 image over a 100x100 tree: everything doubles.
	src := image.NewRGBA(image.Rect(0, 0, 200, 200))
	out := Annotate(src, []Box{{Frame: [4]float64{10, 10, 20, 20}}}, node.Rect{W: 100, H: 100})

	if got := out.RGBAAt(20, 20); got != boxColor {
		t.Errorf("scaled top-left = %v, want box color", got)
	}
	if got := out.RGBAAt(10, 10); got == boxColor {
		t.Error("unscaled coordinate should not be drawn")
	}
}

func TestAnnotateClampsOutOfBoundsFrames(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 50, 50))
	// Must not panic; the visible edges still draw.
	out := Annotate(src, []Box{{Frame: [4]float64{-10, -10, 100, 100}}}, node.Rect{W: 50, H: 50})
	if got := out.RGBAAt(0, 25); got != boxColor {
		t.Errorf("clamped left edge = %v, want box color", got)
	}
}

func TestAnnotateDrawsLabelPixels(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 120, 60))
	out := Annotate(src, []Box{{Frame: [4]float64{10, 10, 100, 40}, Label: "Button"}}, node.Rect{W: 120, H: 60})

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	found := false
	for y := 10; y < 50 && !found; y++ {
		for x := 10; x < 110; x++ {
			if out.RGBAAt(x, y) == white {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("no label glyph pixels drawn")
	}
}
