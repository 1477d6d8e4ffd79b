package inspector

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/pinpoint-cli/pinpoint/internal/node"
	"github.com/pinpoint-cli/pinpoint/internal/report"
	"github.com/pinpoint-cli/pinpoint/internal/session"
)

// captureBarHeight is the number of rows the feedback input bar occupies.
const captureBarHeight = 2

func (u *UI) render() {
	u.screen.Clear()
	u.drawNode(u.tree.Root(), node.Point{})
	u.drawStatus()
	if u.session.HistoryOpen() {
		u.drawHistory()
	}
	if u.showCapture {
		u.drawCaptureBar()
	}
	u.screen.Show()
}

// drawNode paints a node's border in its current style, then recurses.
// Because highlights are applied by rewriting node styles, hover and
// selection render with no special casing here.
func (u *UI) drawNode(n node.Node, origin node.Point) {
	if n.Hidden() {
		return
	}
	b := n.Bounds().Offset(origin.X, origin.Y)
	x1, y1 := int(b.X), int(b.Y)
	x2, y2 := int(b.X+b.W)-1, int(b.Y+b.H)-1

	st := styleFor(n.Style())
	drawBox(u.screen, x1, y1, x2, y2, st)

	label := n.ClassName()
	if id := n.AccessibilityIdentifier(); id != "" {
		label += " [" + id + "]"
	}
	if w := x2 - x1 - 1; w > 0 {
		drawText(u.screen, x1+1, y1, runewidth.Truncate(label, w, "…"), st)
	}

	for _, c := range n.Children() {
		u.drawNode(c, node.Point{X: b.X, Y: b.Y})
	}
}

// styleFor maps a node's visual style to a tcell style. Border width picks
// the emphasis; the border color is passed through.
func styleFor(s node.Style) tcell.Style {
	st := tcell.StyleDefault
	if s.BorderColor != "" {
		st = st.Foreground(tcell.GetColor(s.BorderColor))
	}
	if s.BorderWidth >= 3 {
		st = st.Bold(true).Underline(true)
	} else if s.BorderWidth >= 2 {
		st = st.Bold(true)
	}
	return st
}

func (u *UI) drawStatus() {
	w, h := u.screen.Size()
	st := tcell.StyleDefault.Reverse(true)

	var line string
	switch {
	case u.toast != "":
		line = u.toast
	case u.session.Selection() != nil:
		line = "SELECTED  " + report.Summary(*u.session.Selection())
	case u.session.Hovered() != nil:
		line = report.Summary(*u.session.Hovered())
	default:
		line = "pinpoint — move the mouse to inspect, click to select, q to quit"
	}
	line = runewidth.Truncate(line, w, "…")
	drawText(u.screen, 0, h-1, padRight(line, w), st)
}

func (u *UI) drawCaptureBar() {
	w, h := u.screen.Size()
	st := tcell.StyleDefault.Reverse(true)
	prompt := "Feedback: " + u.session.Draft()
	if u.session.State() == session.Selected {
		prompt += "▏"
	}
	drawText(u.screen, 0, h-captureBarHeight, padRight(runewidth.Truncate(prompt, w, "…"), w), st)
	hint := "Enter submit · Esc cancel · Ctrl-H history"
	drawText(u.screen, 0, h-captureBarHeight+1, padRight(runewidth.Truncate(hint, w, "…"), w), tcell.StyleDefault.Dim(true))
}

func (u *UI) drawHistory() {
	w, _ := u.screen.Size()
	st := tcell.StyleDefault.Reverse(true)
	entries := u.session.History().Entries()

	drawText(u.screen, 0, 0, padRight(fmt.Sprintf(" History (%d) — Ctrl-L clears ", len(entries)), w), st)
	row := 1
	for i := len(entries) - 1; i >= 0 && row < 10; i-- {
		e := entries[i]
		line := fmt.Sprintf(" %s — %s", report.Summary(e.Descriptor), e.Feedback)
		drawText(u.screen, 0, row, runewidth.Truncate(line, w, "…"), tcell.StyleDefault)
		row++
	}
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int, st tcell.Style) {
	if x2 < x1 || y2 < y1 {
		return
	}
	for x := x1; x <= x2; x++ {
		s.SetContent(x, y1, tcell.RuneHLine, nil, st)
		s.SetContent(x, y2, tcell.RuneHLine, nil, st)
	}
	for y := y1; y <= y2; y++ {
		s.SetContent(x1, y, tcell.RuneVLine, nil, st)
		s.SetContent(x2, y, tcell.RuneVLine, nil, st)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, st)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, st)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, st)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, st)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, nil, st)
		col += runewidth.RuneWidth(r)
	}
}

func padRight(s string, w int) string {
	for runewidth.StringWidth(s) < w {
		s += " "
	}
	return s
}
