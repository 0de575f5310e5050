// Package page keeps the view state of every mounted portfolio page.
package page

import (
	"context"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/howell-dev/portfolio/internal/view"
)

// Page is one browser page: its scroll spy, reveal trigger, navigation and
// contact form controller.
type Page struct {
	ID     string
	Locale language.Tag

	spy     *view.ScrollSpy
	reveal  *view.RevealTrigger
	nav     *view.Navigator
	contact *view.Controller

	mu       sync.Mutex
	layout   view.Layout
	scrollY  float64
	sinks    map[int]Sink
	nextSink int
	mounted  bool
	release  func()
	closed   bool
	lastSeen time.Time
}

type pageOptions struct {
	id       string
	locale   language.Tag
	clock    view.Clock
	sender   view.Sender
	animated []view.Animated
}

func newPage(opts pageOptions) *Page {
	p := &Page{
		ID:       opts.id,
		Locale:   opts.locale,
		spy:      view.NewScrollSpy(),
		reveal:   view.NewRevealTrigger(opts.clock, opts.animated),
		nav:      view.NewNavigator(),
		sinks:    make(map[int]Sink),
		lastSeen: opts.clock.Now(),
	}
	p.contact = view.NewController(view.ControllerOptions{
		Clock:  opts.clock,
		Sender: opts.sender,
		Locale: opts.locale,
		Hooks: view.Hooks{
			OnChange: func(s view.Submission, rev uint64) {
				p.publish(Event{Type: EventNotify, Notify: &s, Rev: rev})
			},
			OnReset: func() {
				p.publish(Event{Type: EventReset})
			},
		},
	})
	return p
}

// Attach registers a sink and, on the first attach, starts the reveal
// trigger's settle delay. The returned func detaches the sink.
func (p *Page) Attach(sink Sink) (detach func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextSink
	p.nextSink++
	p.sinks[id] = sink
	if !p.mounted && !p.closed {
		p.mounted = true
		p.release = p.reveal.Mount(func() {
			p.publish(Event{Type: EventObserve})
		})
	}
	return func() {
		p.mu.Lock()
		delete(p.sinks, id)
		p.mu.Unlock()
	}
}

// Attached reports whether any sink is registered.
func (p *Page) Attached() bool {
	return p.Attachments() > 0
}

// Attachments is the number of registered sinks.
func (p *Page) Attachments() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.sinks)
}

func (p *Page) publish(ev Event) {
	p.mu.Lock()
	sinks := make([]Sink, 0, len(p.sinks))
	for _, s := range p.sinks {
		sinks = append(sinks, s)
	}
	p.mu.Unlock()
	for _, s := range sinks {
		s(ev)
	}
}

func (p *Page) touch(now time.Time) {
	p.mu.Lock()
	p.lastSeen = now
	p.mu.Unlock()
}

// Layout records fresh geometry and re-evaluates the scroll position
// against it.
func (p *Page) Layout(layout view.Layout, scrollY float64) {
	p.mu.Lock()
	p.layout = layout
	p.mu.Unlock()
	p.Scroll(scrollY)
}

// Scroll updates the active section and reveals elements that came into
// view.
func (p *Page) Scroll(scrollY float64) {
	p.mu.Lock()
	p.scrollY = scrollY
	layout := p.layout
	p.mu.Unlock()

	if active, changed := p.spy.Scroll(scrollY, layout); changed {
		p.publish(Event{Type: EventActive, Section: active})
	}
	for _, el := range p.reveal.Scan(scrollY, layout) {
		p.publish(Event{Type: EventReveal, ID: el.ID, Class: el.Class()})
	}
}

// Intersect handles a single intersection report from the browser.
func (p *Page) Intersect(id string, ratio float64) {
	if el, ok := p.reveal.Observe(id, ratio); ok {
		p.publish(Event{Type: EventReveal, ID: el.ID, Class: el.Class()})
	}
}

// Navigate scrolls to a section and closes the mobile menu. Unknown or
// unmeasured sections are ignored.
func (p *Page) Navigate(s view.Section) bool {
	p.mu.Lock()
	layout := p.layout
	p.mu.Unlock()

	return p.nav.NavigateTo(s, layout, view.ScrollerFunc(func(s view.Section, b view.Bounds) {
		p.publish(Event{Type: EventScrollTo, Section: s, Top: b.Top})
		p.publish(Event{Type: EventMenu, Open: false})
	}))
}

// ToggleMenu flips the mobile menu.
func (p *Page) ToggleMenu() bool {
	open := p.nav.ToggleMenu()
	p.publish(Event{Type: EventMenu, Open: open})
	return open
}

// Submit hands the contact form to the submission controller.
func (p *Page) Submit(ctx context.Context, form view.ContactForm) (view.Submission, error) {
	return p.contact.Submit(ctx, form)
}

// Dismiss closes a success or error notification.
func (p *Page) Dismiss() bool {
	return p.contact.Dismiss()
}

// Snapshot is a read-only copy of the page state.
type Snapshot struct {
	Active     view.Section
	MenuOpen   bool
	Revealed   map[string]bool
	Submission view.Submission
	// Rev orders notification renders; a render with a lower Rev is stale.
	Rev uint64
}

func (p *Page) Snapshot() Snapshot {
	sub, rev := p.contact.Revision()
	return Snapshot{
		Active:     p.spy.Active(),
		MenuOpen:   p.nav.MenuOpen(),
		Revealed:   p.reveal.Snapshot(),
		Submission: sub,
		Rev:        rev,
	}
}

// Close unmounts the page: observation stops, the dismiss timer is
// cancelled and late send results are dropped.
func (p *Page) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	release := p.release
	p.sinks = make(map[int]Sink)
	p.mu.Unlock()

	if release != nil {
		release()
	}
	p.contact.Close()
}

func (p *Page) wait() {
	p.contact.Wait()
}
