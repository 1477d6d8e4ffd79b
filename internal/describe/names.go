package describe

import (
	"strings"

	"github.com/pinpoint-cli/pinpoint/internal/node"
)

// nameRule maps a substring of a raw class descriptor to a friendly name.
// Rules are evaluated top to bottom, first match wins, so more specific
// patterns must come before their generalizations (SecureTextField before
// TextField, TextField before Text).
type nameRule struct {
	pattern string
	name    string
}

var nameRules = []nameRule{
	{"SecureTextField", "SecureTextField"},
	{"SearchField", "SearchField"},
	{"TextField", "TextField"},
	{"TextEditor", "TextEditor"},
	{"TextView", "TextEditor"},
	{"DatePicker", "DatePicker"},
	{"ColorPicker", "ColorPicker"},
	{"SegmentedControl", "Picker"},
	{"Picker", "Picker"},
	{"PopUpButton", "Picker"},
	{"Checkbox", "Toggle"},
	{"Switch", "Toggle"},
	{"Toggle", "Toggle"},
	{"Slider", "Slider"},
	{"Stepper", "Stepper"},
	{"ProgressIndicator", "ProgressView"},
	{"ProgressView", "ProgressView"},
	{"ActivityIndicator", "ProgressView"},
	{"NavigationBar", "NavigationBar"},
	{"NavigationStack", "NavigationStack"},
	{"TabBar", "TabBar"},
	{"TabView", "TabView"},
	{"Toolbar", "Toolbar"},
	{"MenuItem", "MenuItem"},
	{"Menu", "Menu"},
	{"Link", "Link"},
	{"Button", "Button"},
	{"ImageView", "Image"},
	{"Image", "Image"},
	{"StaticText", "Text"},
	{"Label", "Text"},
	{"Text", "Text"},
	{"ScrollView", "ScrollView"},
	{"TableView", "List"},
	{"OutlineView", "List"},
	{"CollectionView", "List"},
	{"List", "List"},
	{"Table", "Table"},
	{"Divider", "Divider"},
	{"Spacer", "Spacer"},
	{"StackView", "Stack"},
	{"Stack", "Stack"},
	{"Window", "Window"},
}

// roleNames is the second-chance classifier: authoritative accessibility
// roles mapped to friendly names. Applied only when no pattern matched the
// raw descriptor; a role never overrides a name resolved from a specific
// pattern.
var roleNames = map[node.Role]string{
	node.RoleButton:     "Button",
	node.RoleStaticText: "Text",
	node.RoleImage:      "Image",
	node.RoleTextField:  "TextField",
	node.RoleCheckbox:   "Toggle",
	node.RoleSlider:     "Slider",
	node.RoleLink:       "Link",
	node.RoleList:       "List",
	node.RoleTable:      "Table",
	node.RoleScrollArea: "ScrollView",
	node.RoleTabGroup:   "TabView",
}

// mangledPrefixes identify compiler-mangled private symbols. Mangled
// descriptors get a narrower keyword scan instead of the full rule table.
var mangledPrefixes = []string{"_$s", "$s", "_Tt", "_T0"}

// mangledKeywords are the only class fragments worth trusting inside a
// mangled symbol.
var mangledKeywords = []nameRule{
	{"Text", "Text"},
	{"Image", "Image"},
	{"Button", "Button"},
	{"Stack", "Stack"},
}

// frameworkPrefixes are stripped (at most one) from a raw descriptor as the
// final fallback. Longer prefixes first so "UIKit." wins over "UI".
var frameworkPrefixes = []string{"SwiftUI.", "UIKit.", "AppKit.", "NS", "UI", "_"}

// ResolveName maps a raw class descriptor plus optional accessibility
// metadata to a human-readable type name. It never returns an empty string:
// the worst case is the cleaned (or original) raw descriptor.
func ResolveName(rawClass string, role node.Role, label, id string) string {
	if name, ok := matchRules(rawClass, nameRules); ok {
		return decorate(name, label, id)
	}

	if name, ok := roleNames[role]; ok {
		return decorate(name, label, id)
	}

	if isMangled(rawClass) {
		if name, ok := matchRules(rawClass, mangledKeywords); ok {
			return decorate(name, label, id)
		}
		return "View"
	}

	if cleaned := cleanRawName(rawClass); cleaned != "" {
		return cleaned
	}
	if rawClass == "" {
		return "View"
	}
	return rawClass
}

func matchRules(raw string, rules []nameRule) (string, bool) {
	for _, r := range rules {
		if strings.Contains(raw, r.pattern) {
			return r.name, true
		}
	}
	return "", false
}

// decorate embeds the literal accessibility label or identifier into a
// resolved name: `Button "Submit"` or `Button [submitButton]`. The label
// wins when both are present.
func decorate(name, label, id string) string {
	if label != "" {
		return name + " \"" + label + "\""
	}
	if id != "" {
		return name + " [" + id + "]"
	}
	return name
}

func isMangled(raw string) bool {
	for _, p := range mangledPrefixes {
		if strings.HasPrefix(raw, p) {
			return true
		}
	}
	return false
}

// cleanRawName strips at most one known framework prefix and any
// generic-parameter suffix from a raw descriptor.
func cleanRawName(raw string) string {
	s := raw
	if i := strings.IndexByte(s, '<'); i >= 0 {
		s = s[:i]
	}
	for _, p := range frameworkPrefixes {
		if strings.HasPrefix(s, p) && len(s) > len(p) {
			s = s[len(p):]
			break
		}
	}
	return s
}
