// Package markup draws resolved element frames onto a screenshot: a box
// around each frame with a centered, outlined label. Tree coordinates are
// scaled into image pixels using the root frame.
package markup

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/pinpoint-cli/pinpoint/internal/node"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Box is one frame to draw, with its label text.
type Box struct {
	Frame [4]float64
	Label string
}

// Annotate draws boxes onto a copy of img. space is the tree's root frame;
// the ratio of image dimensions to space dimensions absorbs any capture
// scaling.
func Annotate(img image.Image, boxes []Box, space node.Rect) *image.RGBA {
	rgba := toRGBA(img)

	imgBounds := img.Bounds()
	scaleX, scaleY := 1.0, 1.0
	if space.W > 0 {
		scaleX = float64(imgBounds.Dx()) / space.W
	}
	if space.H > 0 {
		scaleY = float64(imgBounds.Dy()) / space.H
	}

	boxColor := color.RGBA{R: 232, G: 163, B: 61, A: 255}
	textColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor := color.RGBA{R: 0, G: 0, B: 0, A: 200}

	for _, b := range boxes {
		x := int((b.Frame[0] - space.X) * scaleX)
		y := int((b.Frame[1] - space.Y) * scaleY)
		w := int(b.Frame[2] * scaleX)
		h := int(b.Frame[3] * scaleY)

		drawRectangle(rgba, x, y, x+w, y+h, boxColor)
		if b.Label != "" {
			drawTextWithOutline(rgba, b.Label, x+w/2, y+h/2, textColor, outlineColor)
		}
	}
	return rgba
}

func toRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

func within(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws a rectangle outline, clamped to the image.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}
	for x := x1; x < x2; x++ {
		if within(bounds, x, y1) {
			img.Set(x, y1, c)
		}
		if within(bounds, x, y2-1) {
			img.Set(x, y2-1, c)
		}
	}
	for y := y1; y < y2; y++ {
		if within(bounds, x1, y) {
			img.Set(x1, y, c)
		}
		if within(bounds, x2-1, y) {
			img.Set(x2-1, y, c)
		}
	}
}

// drawTextWithOutline centers text at (x, y) with a 1px outline for
// visibility on any background. basicfont.Face7x13 is 7px per glyph,
// 13px tall.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	offsetX := x - len(text)*7/2
	offsetY := y - 13/2

	drawAt := func(px, py int, c color.Color) {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: basicfont.Face7x13,
			Dot: fixed.Point26_6{
				X: fixed.Int26_6(px * 64),
				Y: fixed.Int26_6(py * 64),
			},
		}
		d.DrawString(text)
	}

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawAt(offsetX+dx, offsetY+dy, outlineColor)
		}
	}
	drawAt(offsetX, offsetY, textColor)
}
