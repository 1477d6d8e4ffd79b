// Package report renders a resolved element plus free-text feedback into
// the text document handed to the clipboard. It is a pure function of its
// inputs.
package report

import (
	"fmt"
	"strings"

	"github.com/pinpoint-cli/pinpoint/internal/describe"
)

// Render produces the output document for one annotation.
func Render(d describe.Descriptor, feedback, app string) string {
	var b strings.Builder
	b.WriteString("## UI Feedback\n\n")
	if app != "" {
		fmt.Fprintf(&b, "- App: %s\n", app)
	}
	fmt.Fprintf(&b, "- Element: %s\n", d.TypeName)
	if d.HierarchyPath != "" {
		fmt.Fprintf(&b, "- Path: %s\n", d.HierarchyPath)
	}
	fmt.Fprintf(&b, "- Frame: (%.0f, %.0f) %.0f×%.0f\n", d.Frame[0], d.Frame[1], d.Frame[2], d.Frame[3])
	if d.AccessibilityID != "" {
		fmt.Fprintf(&b, "- Identifier: %s\n", d.AccessibilityID)
	}
	if d.AccessibilityLabel != "" {
		fmt.Fprintf(&b, "- Label: %s\n", d.AccessibilityLabel)
	}
	if d.AccessibilityHint != "" {
		fmt.Fprintf(&b, "- Hint: %s\n", d.AccessibilityHint)
	}
	if d.DebugLine != "" {
		fmt.Fprintf(&b, "- Debug: %s\n", d.DebugLine)
	}
	b.WriteString("\n### Feedback\n\n")
	for _, line := range strings.Split(strings.TrimRight(feedback, "\n"), "\n") {
		fmt.Fprintf(&b, "> %s\n", line)
	}
	return b.String()
}

// Summary is a one-line rendering for status bars and history lists.
func Summary(d describe.Descriptor) string {
	if d.HierarchyPath != "" {
		return fmt.Sprintf("%s — %s", d.TypeName, d.HierarchyPath)
	}
	return d.TypeName
}
