// Package clipboard writes annotation output to the system clipboard via
// whichever native helper is installed (pbcopy on macOS, wl-copy or xclip
// elsewhere).
package clipboard

import (
	"fmt"
	"os/exec"
	"strings"
)

// helpers are tried in order; the first one on PATH wins.
var helpers = [][]string{
	{"pbcopy"},
	{"wl-copy"},
	{"xclip", "-selection", "clipboard"},
	{"xsel", "--clipboard", "--input"},
}

// Clipboard emits text through a native clipboard helper.
type Clipboard struct {
	cmd []string
}

// New locates a clipboard helper. Returns an error when none is installed.
func New() (*Clipboard, error) {
	for _, h := range helpers {
		if _, err := exec.LookPath(h[0]); err == nil {
			return &Clipboard{cmd: h}, nil
		}
	}
	return nil, fmt.Errorf("no clipboard helper found (tried pbcopy, wl-copy, xclip, xsel)")
}

// Emit writes text to the clipboard.
func (c *Clipboard) Emit(text string) error {
	cmd := exec.Command(c.cmd[0], c.cmd[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", c.cmd[0], err)
	}
	return nil
}

// Memory is an in-process sink used by tests and as the fallback when no
// helper is available.
type Memory struct {
	Texts []string
}

// Emit appends text to the in-memory log.
func (m *Memory) Emit(text string) error {
	m.Texts = append(m.Texts, text)
	return nil
}
