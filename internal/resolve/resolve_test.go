package resolve

import (
	"strings"
	"testing"

	"github.com/pinpoint-cli/pinpoint/internal/fixture"
	"github.com/pinpoint-cli/pinpoint/internal/node"
)

// appTree is the shared scenario: a submit button nested four levels under
// a navigation root, with a full-bleed background panel under the same
// point.
func appTree(t *testing.T) *fixture.Tree {
	t.Helper()
	tree, err := fixture.New(fixture.Spec{
		App: "Demo",
		Root: fixture.NodeSpec{
			Class: "NavigationStack",
			Frame: [4]float64{0, 0, 800, 600},
			Children: []fixture.NodeSpec{
				{
					Class: "BackgroundPanel",
					Frame: [4]float64{0, 0, 800, 600},
				},
				{
					Class: "VStackLayout",
					Frame: [4]float64{100, 100, 600, 400},
					Children: []fixture.NodeSpec{{
						Class: "GroupBox",
						Frame: [4]float64{50, 50, 500, 300},
						Children: []fixture.NodeSpec{{
							Class: "HStackLayout",
							Frame: [4]float64{10, 10, 480, 280},
							Children: []fixture.NodeSpec{{
								Class: "UIButton",
								ID:    "submitButton",
								Frame: [4]float64{20, 20, 120, 44},
							}},
						}},
					}},
				},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

// buttonPoint is inside the submit button (root space).
var buttonPoint = node.Point{X: 200, Y: 190}

func TestResolveSubmitButtonScenario(t *testing.T) {
	engine := New(appTree(t), DefaultPolicy())

	res, ok := engine.Resolve(buttonPoint)
	if !ok {
		t.Fatal("expected a resolution")
	}
	d := res.Descriptor
	if !strings.HasPrefix(d.TypeName, "Button") {
		t.Errorf("TypeName = %q, want Button prefix", d.TypeName)
	}
	if !strings.Contains(d.TypeName, "[submitButton]") {
		t.Errorf("TypeName = %q, want [submitButton] decoration", d.TypeName)
	}
	if d.Depth != 4 {
		t.Errorf("Depth = %d, want 4", d.Depth)
	}
	if strings.Contains(d.HierarchyPath, "BackgroundPanel") {
		t.Errorf("background panel leaked into path: %q", d.HierarchyPath)
	}
	ranked := engine.ResolveAll(buttonPoint)
	if len(ranked) == 0 {
		t.Fatal("expected ranked candidates")
	}
	if ranked[0].TypeName != d.TypeName {
		t.Errorf("ranked[0] = %q, want the resolved element %q", ranked[0].TypeName, d.TypeName)
	}
	if strings.Contains(ranked[0].DebugLine, "BackgroundPanel") {
		t.Error("background panel ranked first")
	}
}

func TestResolveIdempotent(t *testing.T) {
	engine := New(appTree(t), DefaultPolicy())

	a, okA := engine.Resolve(buttonPoint)
	b, okB := engine.Resolve(buttonPoint)
	if !okA || !okB {
		t.Fatal("expected resolutions")
	}
	if a.Descriptor.TypeName != b.Descriptor.TypeName ||
		a.Descriptor.HierarchyPath != b.Descriptor.HierarchyPath ||
		a.Descriptor.Frame != b.Descriptor.Frame {
		t.Errorf("resolution not idempotent:\n%+v\n%+v", a.Descriptor, b.Descriptor)
	}
}

func TestResolveEmptyChrome(t *testing.T) {
	engine := New(appTree(t), DefaultPolicy())

	if res, ok := engine.Resolve(node.Point{X: 2000, Y: 50}); ok {
		t.Errorf("expected no node outside the root, got %+v", res.Descriptor)
	}
}

func TestAccessibilityTieBreak(t *testing.T) {
	// The labeled candidate is shallower and larger than the unlabeled
	// one; the identifier must still win.
	tree, err := fixture.New(fixture.Spec{
		Root: fixture.NodeSpec{
			Class: "UIWindow",
			Frame: [4]float64{0, 0, 400, 400},
			Children: []fixture.NodeSpec{{
				Class: "CardView",
				ID:    "profileCard",
				Frame: [4]float64{50, 50, 200, 200},
				Children: []fixture.NodeSpec{{
					Class: "DecorShape",
					Frame: [4]float64{10, 10, 60, 60},
				}},
			}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	engine := New(tree, DefaultPolicy())

	res, ok := engine.Resolve(node.Point{X: 80, Y: 80})
	if !ok {
		t.Fatal("expected a resolution")
	}
	if res.Descriptor.AccessibilityID != "profileCard" {
		t.Errorf("resolved %q, want the identified card", res.Descriptor.TypeName)
	}
}

func TestRankSkipsFilterWhenNothingUsableSurvives(t *testing.T) {
	// Every candidate exceeds 70% of the root area; the filter must be
	// skipped rather than return nothing.
	tree, err := fixture.New(fixture.Spec{
		Root: fixture.NodeSpec{
			Class: "UIWindow",
			Frame: [4]float64{0, 0, 100, 100},
			Children: []fixture.NodeSpec{{
				Class: "ContentView",
				Frame: [4]float64{0, 0, 95, 95},
			}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	engine := New(tree, DefaultPolicy())

	res, ok := engine.Resolve(node.Point{X: 50, Y: 50})
	if !ok {
		t.Fatal("expected a resolution")
	}
	if res.Descriptor.Depth != 1 {
		t.Errorf("want the deeper full-bleed child, got depth %d", res.Descriptor.Depth)
	}
}

func TestRankFallsBackBelowMinArea(t *testing.T) {
	tree, err := fixture.New(fixture.Spec{
		Root: fixture.NodeSpec{
			Class: "UIWindow",
			Frame: [4]float64{0, 0, 8, 1},
			Children: []fixture.NodeSpec{{
				Class: "TickMark",
				Frame: [4]float64{1, 0, 2, 1},
			}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	engine := New(tree, DefaultPolicy())

	res, ok := engine.Resolve(node.Point{X: 1.5, Y: 0.5})
	if !ok {
		t.Fatal("tiny candidates should still resolve via the fallback pool")
	}
	if res.Descriptor.Depth != 1 {
		t.Errorf("want the deepest tiny candidate, got depth %d", res.Descriptor.Depth)
	}
}

func TestCollectSkipsHiddenAndTransparent(t *testing.T) {
	transparent := 0.0
	tree, err := fixture.New(fixture.Spec{
		Root: fixture.NodeSpec{
			Class: "UIWindow",
			Frame: [4]float64{0, 0, 100, 100},
			Children: []fixture.NodeSpec{
				{Class: "UIButton", ID: "ghost", Frame: [4]float64{10, 10, 30, 30}, Hidden: true},
				{Class: "UIButton", ID: "faded", Frame: [4]float64{10, 10, 30, 30}, Opacity: &transparent},
				{Class: "PinpointHighlightLayer", Frame: [4]float64{10, 10, 30, 30}},
				{Class: "UIButton", ID: "real", Frame: [4]float64{10, 10, 30, 30}},
			},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	cands := Collect(tree.Root(), node.Point{X: 20, Y: 20})
	for _, c := range cands {
		switch c.Node.AccessibilityIdentifier() {
		case "ghost", "faded":
			t.Errorf("invisible node %q collected", c.Node.AccessibilityIdentifier())
		}
		if strings.Contains(c.Node.ClassName(), "Pinpoint") {
			t.Error("engine overlay layer collected")
		}
	}

	engine := New(tree, DefaultPolicy())
	res, ok := engine.Resolve(node.Point{X: 20, Y: 20})
	if !ok || res.Descriptor.AccessibilityID != "real" {
		t.Errorf("want the visible button, got %+v", res)
	}
}

func TestResolveSingleHitMode(t *testing.T) {
	engine := New(fixture.SingleHit{Tree: appTree(t)}, DefaultPolicy())

	res, ok := engine.Resolve(buttonPoint)
	if !ok {
		t.Fatal("expected a resolution")
	}
	if !strings.Contains(res.Descriptor.TypeName, "[submitButton]") {
		t.Errorf("single-hit resolved %q", res.Descriptor.TypeName)
	}
	if res.Descriptor.Depth != 4 {
		t.Errorf("Depth = %d, want 4", res.Descriptor.Depth)
	}
	if _, ok := engine.Resolve(node.Point{X: 2000, Y: 2000}); ok {
		t.Error("single-hit outside root should miss")
	}
}

func TestResolveStaleTree(t *testing.T) {
	tree := appTree(t)
	engine := New(tree, DefaultPolicy())

	tree.Remove("submitButton")
	res, ok := engine.Resolve(buttonPoint)
	if !ok {
		t.Fatal("expected a resolution from the remaining tree")
	}
	if res.Descriptor.AccessibilityID == "submitButton" {
		t.Error("resolved a removed node")
	}
}
