// Package inspector is an interactive terminal host for the annotate
// session: it renders a tree document with tcell, tracks the mouse for
// hover highlighting, and captures feedback for selected elements. Tree
// coordinates map 1:1 onto terminal cells.
package inspector

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pinpoint-cli/pinpoint/internal/fixture"
	"github.com/pinpoint-cli/pinpoint/internal/node"
	"github.com/pinpoint-cli/pinpoint/internal/resolve"
	"github.com/pinpoint-cli/pinpoint/internal/session"
)

// Options configures an interactive session.
type Options struct {
	App    string
	Policy resolve.Policy
	Sink   session.Sink
}

// interrupt payloads marshaled onto the tcell event loop by session timers.
type (
	toastExpired  struct{}
	captureClosed struct{}
	exitRequested struct{}
)

// UI is one running inspector.
type UI struct {
	screen  tcell.Screen
	tree    *fixture.Tree
	session *session.Session

	toast       string
	showCapture bool
	quit        bool
}

// Run drives the inspector until the user exits annotation mode.
func Run(tree *fixture.Tree, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	ui := &UI{screen: screen, tree: tree}

	app := opts.App
	if app == "" {
		app = tree.App
	}
	post := func(data interface{}) func() {
		return func() { _ = screen.PostEvent(tcell.NewEventInterrupt(data)) }
	}
	ui.session = session.New(session.Config{
		Engine: resolve.New(tree, opts.Policy),
		App:    app,
		Sink:   opts.Sink,
		Hooks: session.Hooks{
			OnCaptureClose: post(captureClosed{}),
			OnToastExpired: post(toastExpired{}),
			OnExit:         post(exitRequested{}),
		},
	})

	for !ui.quit {
		ui.render()
		ui.handle(screen.PollEvent())
	}
	return nil
}

func (u *UI) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventMouse:
		u.handleMouse(ev)
	case *tcell.EventKey:
		u.handleKey(ev)
	case *tcell.EventInterrupt:
		switch ev.Data().(type) {
		case toastExpired:
			u.toast = ""
		case captureClosed:
			u.showCapture = false
		case exitRequested:
			u.quit = true
		}
	}
}

func (u *UI) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pt := node.Point{X: float64(x), Y: float64(y)}

	if ev.Buttons()&tcell.Button1 != 0 {
		if u.session.State() == session.Selected && u.inCaptureBar(y) {
			return // clicks inside the feedback bar stay with the form
		}
		if desc, ok := u.session.Click(pt); ok {
			u.showCapture = true
			_ = desc
		} else if u.session.State() != session.Selected {
			u.showCapture = false
		}
		return
	}
	u.session.PointerMoved(pt)
}

func (u *UI) handleKey(ev *tcell.EventKey) {
	// Keys that work in any state.
	switch ev.Key() {
	case tcell.KeyCtrlC:
		u.quit = true
		return
	case tcell.KeyEscape:
		u.session.Cancel()
		if u.session.State() != session.Selected {
			u.showCapture = false
		}
		return
	case tcell.KeyCtrlH:
		u.session.ToggleHistory()
		return
	case tcell.KeyCtrlL:
		u.session.ClearHistory()
		return
	}

	if u.session.State() != session.Selected {
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			u.quit = true
		}
		return
	}

	// Feedback capture.
	switch ev.Key() {
	case tcell.KeyEnter:
		if _, ok := u.session.Submit(); ok {
			u.toast = "Copied to clipboard"
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		draft := u.session.Draft()
		if draft != "" {
			u.session.SetDraft(draft[:len(draft)-1])
		}
	case tcell.KeyRune:
		u.session.SetDraft(u.session.Draft() + string(ev.Rune()))
	}
}

// inCaptureBar reports whether a terminal row falls inside the feedback
// input bar at the bottom of the screen.
func (u *UI) inCaptureBar(y int) bool {
	if !u.showCapture {
		return false
	}
	_, h := u.screen.Size()
	return y >= h-captureBarHeight
}
