// Package session owns the interactive hover/select/highlight state
// machine built on top of point resolution. All methods must be called
// from one logical thread: hosts that deliver events on worker goroutines
// marshal them before entering the session.
package session

import (
	"strings"
	"time"

	"github.com/pinpoint-cli/pinpoint/internal/describe"
	"github.com/pinpoint-cli/pinpoint/internal/node"
	"github.com/pinpoint-cli/pinpoint/internal/report"
	"github.com/pinpoint-cli/pinpoint/internal/resolve"
)

// State is the primary interaction state. History visibility is orthogonal
// and tracked separately.
type State int

const (
	Idle State = iota
	Hovering
	Selected
)

func (s State) String() string {
	switch s {
	case Hovering:
		return "hovering"
	case Selected:
		return "selected"
	default:
		return "idle"
	}
}

// Sink receives the rendered output document when an annotation is
// submitted. The clipboard is the usual implementation.
type Sink interface {
	Emit(text string) error
}

// Hooks are optional host callbacks for effects the engine cannot perform
// itself.
type Hooks struct {
	// OnSelect fires after a selection highlight is applied; hosts with a
	// feedback capture surface give it input focus here.
	OnSelect func(describe.Descriptor)
	// OnCaptureClose fires a short delay after submission.
	OnCaptureClose func()
	// OnToastExpired fires when the "copied" confirmation should dismiss.
	OnToastExpired func()
	// OnExit fires when the user cancels with nothing hovered, selected,
	// or open: the host should leave annotation mode entirely.
	OnExit func()
}

// DefaultHoverStyle and DefaultSelectStyle are the overlay styles applied
// when the config leaves them zero.
var (
	DefaultHoverStyle  = node.Style{BorderWidth: 2, BorderColor: "#4A90D9"}
	DefaultSelectStyle = node.Style{BorderWidth: 3, BorderColor: "#E8A33D"}
)

// Config assembles a session. Engine and Sink are required.
type Config struct {
	Engine      *resolve.Engine
	App         string
	Sink        Sink
	HoverStyle  node.Style
	SelectStyle node.Style
	CloseDelay  time.Duration // capture surface close after submit
	ToastDelay  time.Duration // copied-toast auto dismiss
	Schedule    Scheduler
	Now         func() time.Time
	Hooks       Hooks
}

// Session is the explicit, session-scoped context for one overlay
// activation: highlight state, draft feedback, and history all live here,
// never in globals.
type Session struct {
	engine *resolve.Engine
	app    string
	sink   Sink
	hl     highlighter
	hist   History
	tasks  delayedTasks
	hooks  Hooks
	now    func() time.Time

	closeDelay time.Duration
	toastDelay time.Duration

	state       State
	hovered     *describe.Descriptor
	selected    *describe.Descriptor
	draft       string
	historyOpen bool
}

// New creates an idle session.
func New(cfg Config) *Session {
	if cfg.HoverStyle == (node.Style{}) {
		cfg.HoverStyle = DefaultHoverStyle
	}
	if cfg.SelectStyle == (node.Style{}) {
		cfg.SelectStyle = DefaultSelectStyle
	}
	if cfg.Schedule == nil {
		cfg.Schedule = defaultScheduler
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.CloseDelay == 0 {
		cfg.CloseDelay = 400 * time.Millisecond
	}
	if cfg.ToastDelay == 0 {
		cfg.ToastDelay = 1500 * time.Millisecond
	}
	return &Session{
		engine:     cfg.Engine,
		app:        cfg.App,
		sink:       cfg.Sink,
		hl:         highlighter{hoverStyle: cfg.HoverStyle, selectStyle: cfg.SelectStyle},
		tasks:      delayedTasks{schedule: cfg.Schedule},
		hooks:      cfg.Hooks,
		now:        cfg.Now,
		closeDelay: cfg.CloseDelay,
		toastDelay: cfg.ToastDelay,
	}
}

// PointerMoved re-resolves under p and moves the hover highlight. Hover is
// suppressed while a selection is active, and a failed resolution leaves
// the session exactly where it was.
func (s *Session) PointerMoved(p node.Point) {
	if s.state == Selected {
		return
	}
	res, ok := s.engine.Resolve(p)
	if !ok {
		return
	}
	if res.Node == s.hl.hoveredNode() {
		return
	}
	s.hl.setHover(res.Node)
	s.hovered = &res.Descriptor
	s.state = Hovering
}

// Click selects the node under p. While a selection is active a click is
// the host telling us the user clicked outside the capture surface, which
// cancels. Returns the new selection's descriptor, or false when nothing
// changed.
func (s *Session) Click(p node.Point) (*describe.Descriptor, bool) {
	if s.state == Selected {
		s.Cancel()
		return nil, false
	}
	res, ok := s.engine.Resolve(p)
	if !ok {
		return nil, false
	}
	s.hl.setSelection(res.Node)
	s.hovered = nil
	s.selected = &res.Descriptor
	s.draft = ""
	s.state = Selected
	if s.hooks.OnSelect != nil {
		s.hooks.OnSelect(res.Descriptor)
	}
	return s.selected, true
}

// SetDraft replaces the draft feedback text. Ignored outside Selected.
func (s *Session) SetDraft(text string) {
	if s.state == Selected {
		s.draft = text
	}
}

// Draft returns the current draft feedback text.
func (s *Session) Draft() string { return s.draft }

// Submit turns the selection plus non-empty draft feedback into a history
// entry, emits the rendered document to the sink, and returns to Idle.
// With no selection or an empty draft it is an inert no-op.
func (s *Session) Submit() (Entry, bool) {
	if s.state != Selected || s.selected == nil || strings.TrimSpace(s.draft) == "" {
		return Entry{}, false
	}
	rendered := report.Render(*s.selected, s.draft, s.app)
	entry := s.hist.Append(*s.selected, s.draft, rendered, s.now())
	s.hl.clearSelection()
	s.selected = nil
	s.draft = ""
	s.state = Idle

	if s.sink != nil {
		// Emission failures degrade silently: the entry is already in
		// history and the session must not get stuck on clipboard trouble.
		_ = s.sink.Emit(rendered)
	}
	if s.hooks.OnCaptureClose != nil {
		s.tasks.after(s.closeDelay, s.hooks.OnCaptureClose)
	}
	if s.hooks.OnToastExpired != nil {
		s.tasks.after(s.toastDelay, s.hooks.OnToastExpired)
	}
	return entry, true
}

// Cancel unwinds one layer of interaction: an active selection, then an
// open history panel, then a hover. With nothing left to unwind it asks
// the host to exit annotation mode.
func (s *Session) Cancel() {
	switch {
	case s.state == Selected:
		s.tasks.cancelAll()
		s.hl.clearSelection()
		s.selected = nil
		s.draft = ""
		s.state = Idle
	case s.historyOpen:
		s.historyOpen = false
	case s.state == Hovering:
		s.hl.clearHover()
		s.hovered = nil
		s.state = Idle
	default:
		if s.hooks.OnExit != nil {
			s.hooks.OnExit()
		}
	}
}

// ToggleHistory flips the history panel independent of selection state.
func (s *Session) ToggleHistory() { s.historyOpen = !s.historyOpen }

// Hide is called when the host deactivates annotation mode: all highlights
// are restored and transient state dropped, but history survives until an
// explicit clear.
func (s *Session) Hide() {
	s.tasks.cancelAll()
	s.hl.clearAll()
	s.hovered = nil
	s.selected = nil
	s.draft = ""
	s.historyOpen = false
	s.state = Idle
}

// ClearHistory empties the annotation log.
func (s *Session) ClearHistory() { s.hist.Clear() }

// State returns the primary interaction state.
func (s *Session) State() State { return s.state }

// HistoryOpen reports whether the history panel is showing.
func (s *Session) HistoryOpen() bool { return s.historyOpen }

// History exposes the session's annotation log.
func (s *Session) History() *History { return &s.hist }

// Hovered returns the descriptor under the pointer, if any.
func (s *Session) Hovered() *describe.Descriptor { return s.hovered }

// Selection returns the selected descriptor, if any.
func (s *Session) Selection() *describe.Descriptor { return s.selected }

// App returns the configured application name.
func (s *Session) App() string { return s.app }
