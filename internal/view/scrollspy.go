package view

import "sync"

// Lookahead is added to the scroll offset so a section becomes active a little
// before its top edge reaches the top of the viewport.
const Lookahead = 100

// Locate returns the first section, in declared order, whose region contains
// scrollY+Lookahead. Sections missing from the layout are skipped.
func Locate(scrollY float64, layout Layout) (Section, bool) {
	pos := scrollY + Lookahead
	for _, s := range Sections {
		b, ok := layout.Region(s)
		if !ok {
			continue
		}
		if b.Contains(pos) {
			return s, true
		}
	}
	return "", false
}

// ScrollSpy tracks the active section across scroll events.
type ScrollSpy struct {
	mu     sync.Mutex
	active Section
}

// NewScrollSpy returns a spy whose active section is Home.
func NewScrollSpy() *ScrollSpy {
	return &ScrollSpy{active: Home}
}

// Active returns the currently active section.
func (s *ScrollSpy) Active() Section {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Scroll recomputes the active section for the given offset. When no section
// matches the previous value is kept. changed is true when the active section
// moved.
func (s *ScrollSpy) Scroll(scrollY float64, layout Layout) (active Section, changed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := Locate(scrollY, layout)
	if !ok || next == s.active {
		return s.active, false
	}
	s.active = next
	return next, true
}
