package describe

import (
	"strings"
	"testing"

	"github.com/pinpoint-cli/pinpoint/internal/fixture"
	"github.com/pinpoint-cli/pinpoint/internal/node"
)

// chain builds a fixture tree nesting the given classes root-first and
// returns the deepest node.
func chain(t *testing.T, classes ...string) node.Node {
	t.Helper()
	spec := fixture.NodeSpec{Class: classes[len(classes)-1], Frame: [4]float64{0, 0, 100, 100}}
	for i := len(classes) - 2; i >= 0; i-- {
		spec = fixture.NodeSpec{
			Class:    classes[i],
			Frame:    [4]float64{0, 0, 100, 100},
			Children: []fixture.NodeSpec{spec},
		}
	}
	tree, err := fixture.New(fixture.Spec{Root: spec})
	if err != nil {
		t.Fatal(err)
	}
	n := tree.Root()
	for len(n.Children()) > 0 {
		n = n.Children()[0]
	}
	return n
}

func TestBuildPathShortChain(t *testing.T) {
	n := chain(t, "PanelA", "PanelB", "UIButton")
	got := BuildPath(n)
	want := "PanelA > PanelB > Button"
	if got != want {
		t.Errorf("BuildPath = %q, want %q", got, want)
	}
}

func TestBuildPathTruncation(t *testing.T) {
	n := chain(t, "PanelA", "PanelB", "PanelC", "PanelD", "PanelE", "PanelF", "PanelG", "PanelH")
	got := BuildPath(n)
	tokens := strings.Split(got, " > ")
	if len(tokens) != 6 {
		t.Fatalf("truncated path has %d tokens, want 6: %q", len(tokens), got)
	}
	if tokens[2] != "..." {
		t.Errorf("token 3 = %q, want \"...\"", tokens[2])
	}
	want := []string{"PanelA", "PanelB", "...", "PanelF", "PanelG", "PanelH"}
	for i, w := range want {
		if tokens[i] != w {
			t.Errorf("token %d = %q, want %q", i+1, tokens[i], w)
		}
	}
}

func TestBuildPathElidesWrappers(t *testing.T) {
	n := chain(t, "UIWindow", "TransitionContainerView", "ClipEffectShape", "UIButton")
	got := BuildPath(n)
	want := "Window > Button"
	if got != want {
		t.Errorf("BuildPath = %q, want %q", got, want)
	}
}

func TestBuildPathElidesDegenerateBounds(t *testing.T) {
	spec := fixture.Spec{
		Root: fixture.NodeSpec{
			Class: "UIWindow",
			Frame: [4]float64{0, 0, 100, 100},
			Children: []fixture.NodeSpec{{
				Class: "PanelDivider",
				Frame: [4]float64{0, 0, 0.5, 100},
				Children: []fixture.NodeSpec{{
					Class: "UIButton",
					Frame: [4]float64{0, 0, 20, 10},
				}},
			}},
		},
	}
	tree, err := fixture.New(spec)
	if err != nil {
		t.Fatal(err)
	}
	n := tree.Root().Children()[0].Children()[0]
	got := BuildPath(n)
	want := "Window > Button"
	if got != want {
		t.Errorf("BuildPath = %q, want %q", got, want)
	}
}

func TestBuildPathAllElided(t *testing.T) {
	n := chain(t, "ThemeFrameHost", "TransitionContainerView")
	if got := BuildPath(n); got != "" {
		t.Errorf("BuildPath over wrappers only = %q, want empty", got)
	}
}
