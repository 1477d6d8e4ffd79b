package session

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/pinpoint-cli/pinpoint/internal/describe"
)

// Entry is one submitted annotation. Entries own their descriptor copy and
// stay inspectable after the originating node is gone.
type Entry struct {
	ID         string              `yaml:"id"        json:"id"`
	Descriptor describe.Descriptor `yaml:"element"   json:"element"`
	Feedback   string              `yaml:"feedback"  json:"feedback"`
	CreatedAt  time.Time           `yaml:"created"   json:"created"`
	Rendered   string              `yaml:"rendered"  json:"rendered"`
}

// History is the in-memory annotation log for one overlay session. It
// survives overlay hide/show cycles and is cleared only by explicit user
// action.
type History struct {
	entries []Entry
}

// Append records an entry in submission order and returns it with its
// assigned ID.
func (h *History) Append(desc describe.Descriptor, feedback, rendered string, at time.Time) Entry {
	e := Entry{
		ID:         ulid.Make().String(),
		Descriptor: desc,
		Feedback:   feedback,
		CreatedAt:  at,
		Rendered:   rendered,
	}
	h.entries = append(h.entries, e)
	return e
}

// Entries returns a copy of the log, oldest first.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// Clear removes all entries.
func (h *History) Clear() { h.entries = nil }
