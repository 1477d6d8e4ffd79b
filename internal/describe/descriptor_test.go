package describe

import (
	"strings"
	"testing"

	"github.com/pinpoint-cli/pinpoint/internal/fixture"
)

func TestNewDescriptor(t *testing.T) {
	opacity := 0.5
	tree, err := fixture.New(fixture.Spec{
		Root: fixture.NodeSpec{
			Class: "UIWindow",
			Frame: [4]float64{0, 0, 200, 100},
			Children: []fixture.NodeSpec{{
				Class: "UIStackView",
				Frame: [4]float64{10, 20, 100, 60},
				Children: []fixture.NodeSpec{{
					Class:   "UIButton",
					ID:      "ok",
					Hint:    "Confirms the dialog",
					Frame:   [4]float64{5, 5, 40, 20},
					Opacity: &opacity,
				}},
			}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	btn := tree.FindByID("ok")

	d := New(btn, 2)

	if d.TypeName != "Button [ok]" {
		t.Errorf("TypeName = %q, want %q", d.TypeName, "Button [ok]")
	}
	if d.Frame != [4]float64{15, 25, 40, 20} {
		t.Errorf("Frame = %v, want root-space [15 25 40 20]", d.Frame)
	}
	if d.Depth != 2 {
		t.Errorf("Depth = %d, want 2", d.Depth)
	}
	if d.AccessibilityID != "ok" || d.AccessibilityHint != "Confirms the dialog" {
		t.Errorf("accessibility fields not carried: %+v", d)
	}
	if !strings.HasPrefix(d.DebugLine, "UIButton (15, 25, 40, 20)") {
		t.Errorf("DebugLine = %q", d.DebugLine)
	}
	if !strings.Contains(d.DebugLine, "opacity=0.50") {
		t.Errorf("DebugLine missing opacity flag: %q", d.DebugLine)
	}
	if d.HierarchyPath != "Window > Stack > Button [ok]" {
		t.Errorf("HierarchyPath = %q", d.HierarchyPath)
	}
}
