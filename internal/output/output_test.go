package output

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	OK   bool   `yaml:"ok" json:"ok"`
	Name string `yaml:"name" json:"name"`
}

func capture(t *testing.T, format Format, pretty bool, v interface{}) string {
	t.Helper()
	prevW, prevF, prevP := Writer, OutputFormat, PrettyOutput
	defer func() { Writer, OutputFormat, PrettyOutput = prevW, prevF, prevP }()

	var buf bytes.Buffer
	Writer = &buf
	OutputFormat = format
	PrettyOutput = pretty
	if err := Print(v); err != nil {
		t.Fatalf("Print: %v", err)
	}
	return buf.String()
}

func TestPrintYAML(t *testing.T) {
	got := capture(t, FormatYAML, false, sample{OK: true, Name: "Button"})
	if !strings.Contains(got, "ok: true") || !strings.Contains(got, "name: Button") {
		t.Errorf("yaml output:\n%s", got)
	}
}

func TestPrintJSON(t *testing.T) {
	got := capture(t, FormatJSON, false, sample{OK: true, Name: "Button"})
	want := `{"ok":true,"name":"Button"}` + "\n"
	if got != want {
		t.Errorf("json output = %q, want %q", got, want)
	}
}

func TestPrintPrettyJSON(t *testing.T) {
	got := capture(t, FormatJSON, true, sample{OK: true, Name: "Button"})
	if !strings.Contains(got, "\n  \"ok\": true") {
		t.Errorf("pretty json output = %q", got)
	}
}
