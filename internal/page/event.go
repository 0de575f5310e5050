package page

import "github.com/howell-dev/portfolio/internal/view"

// Event types pushed to the browser.
const (
	EventActive   = "active"
	EventReveal   = "reveal"
	EventObserve  = "observe"
	EventScrollTo = "scroll-to"
	EventMenu     = "menu"
	EventNotify   = "notify"
	EventReset    = "reset-form"
)

// Event is a state change the browser has to reflect.
type Event struct {
	Type    string           `json:"type"`
	Section view.Section     `json:"section,omitempty"`
	Top     float64          `json:"top,omitempty"`
	ID      string           `json:"id,omitempty"`
	Class   string           `json:"class,omitempty"`
	Open    bool             `json:"open,omitempty"`
	Notify  *view.Submission `json:"notify,omitempty"`
	Rev     uint64           `json:"rev,omitempty"`
}

// Sink receives events. It must not block.
type Sink func(Event)
