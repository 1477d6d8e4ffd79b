package report

import (
	"strings"
	"testing"

	"github.com/pinpoint-cli/pinpoint/internal/describe"
)

func TestRenderFullDescriptor(t *testing.T) {
	d := describe.Descriptor{
		TypeName:           "Button [submitButton]",
		HierarchyPath:      "Window > Stack > Button [submitButton]",
		AccessibilityID:    "submitButton",
		AccessibilityLabel: "Submit",
		AccessibilityHint:  "Sends the form",
		Frame:              [4]float64{15, 25, 120, 44},
		DebugLine:          "UIButton (15, 25, 120, 44)",
	}
	got := Render(d, "too close to the cancel button\nneeds more spacing", "OrderApp")

	want := []string{
		"## UI Feedback",
		"- App: OrderApp",
		"- Element: Button [submitButton]",
		"- Path: Window > Stack > Button [submitButton]",
		"- Frame: (15, 25) 120×44",
		"- Identifier: submitButton",
		"- Label: Submit",
		"- Hint: Sends the form",
		"- Debug: UIButton (15, 25, 120, 44)",
		"### Feedback",
		"> too close to the cancel button",
		"> needs more spacing",
	}
	for _, w := range want {
		if !strings.Contains(got, w) {
			t.Errorf("output missing %q:\n%s", w, got)
		}
	}
}

func TestRenderOmitsEmptyFields(t *testing.T) {
	d := describe.Descriptor{
		TypeName: "View",
		Frame:    [4]float64{0, 0, 10, 10},
	}
	got := Render(d, "hard to see", "")

	for _, absent := range []string{"- App:", "- Path:", "- Identifier:", "- Label:", "- Hint:", "- Debug:"} {
		if strings.Contains(got, absent) {
			t.Errorf("output should omit %q when empty:\n%s", absent, got)
		}
	}
	if !strings.Contains(got, "- Element: View") {
		t.Errorf("element line missing:\n%s", got)
	}
}

func TestRenderBlockquotesTrailingNewlines(t *testing.T) {
	got := Render(describe.Descriptor{TypeName: "View"}, "one line\n\n", "")
	if strings.Contains(got, ">  \n") || strings.HasSuffix(got, "> \n> \n") {
		t.Errorf("trailing newlines should not produce empty quote lines:\n%q", got)
	}
	if !strings.Contains(got, "> one line\n") {
		t.Errorf("feedback line missing:\n%q", got)
	}
}

func TestSummary(t *testing.T) {
	d := describe.Descriptor{TypeName: "Slider", HierarchyPath: "Window > Slider"}
	if got := Summary(d); got != "Slider — Window > Slider" {
		t.Errorf("Summary = %q", got)
	}
	if got := Summary(describe.Descriptor{TypeName: "Slider"}); got != "Slider" {
		t.Errorf("Summary without path = %q", got)
	}
}
