package view

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"golang.org/x/text/language"
)

// DismissAfter is how long a success or error notification stays up.
const DismissAfter = 5 * time.Second

var (
	// ErrBusy is returned by Submit while a send is outstanding.
	ErrBusy = errors.New("view: submission already in flight")
	// ErrClosed is returned once the controller has been torn down.
	ErrClosed = errors.New("view: controller closed")
)

// ContactForm is the payload forwarded to the email service.
type ContactForm struct {
	Name    string
	Email   string
	Message string
	Date    string
	Time    string
}

// Sender delivers a contact form. It is called once per submission and is
// not cancelled when the page goes away.
type Sender interface {
	Send(ctx context.Context, form ContactForm) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, form ContactForm) error

func (f SenderFunc) Send(ctx context.Context, form ContactForm) error { return f(ctx, form) }

// Hooks are called with the controller lock held, in commit order. They must
// not call back into the Controller.
type Hooks struct {
	// OnChange receives every committed state with its revision. Revisions
	// increase with every commit.
	OnChange func(s Submission, rev uint64)
	// OnReset clears the form inputs after a successful send.
	OnReset func()
}

// ControllerOptions configure a Controller.
type ControllerOptions struct {
	Clock  Clock
	Sender Sender
	Locale language.Tag
	Hooks  Hooks
}

// Controller owns the contact form submission state and its single
// auto-dismiss timer.
type Controller struct {
	mu     sync.Mutex
	clock  Clock
	sender Sender
	locale language.Tag
	hooks  Hooks

	state  Submission
	timer  Timer
	gen    uint64
	closed bool

	inflight sync.WaitGroup
}

func NewController(opts ControllerOptions) *Controller {
	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	locale := opts.Locale
	if locale == language.Und {
		locale = stampLocales[0]
	}
	return &Controller{
		clock:  clock,
		sender: opts.Sender,
		locale: locale,
		hooks:  opts.Hooks,
	}
}

// State returns the current submission state.
func (c *Controller) State() Submission {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Revision returns the current state together with its revision.
func (c *Controller) Revision() (Submission, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.gen
}

// Submit moves to loading, stamps the form with the current date and time
// and hands it to the sender in the background. While a send is outstanding
// further submissions are ignored and ErrBusy is returned.
func (c *Controller) Submit(ctx context.Context, form ContactForm) (Submission, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.state, ErrClosed
	}
	next, ok := Reduce(c.state, Event{Kind: EventSubmit})
	if !ok {
		return c.state, ErrBusy
	}
	form.Date, form.Time = FormatStamp(c.clock.Now(), c.locale)
	c.commitLocked(next)

	c.inflight.Add(1)
	go c.send(context.WithoutCancel(ctx), form)
	return next, nil
}

func (c *Controller) send(ctx context.Context, form ContactForm) {
	defer c.inflight.Done()

	var err error
	if c.sender == nil {
		err = errors.New("no email sender configured")
	} else {
		err = c.sender.Send(ctx, form)
	}
	if err != nil {
		log.Printf("contact: send failed: %v", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		log.Printf("contact: page closed before send settled, dropping result")
		return
	}
	ev := Event{Kind: EventResolve}
	if err != nil {
		ev = Event{Kind: EventReject, Err: err}
	}
	next, ok := Reduce(c.state, ev)
	if !ok {
		return
	}
	c.commitLocked(next)
	if next.Status == StatusSuccess && c.hooks.OnReset != nil {
		c.hooks.OnReset()
	}
}

// Dismiss returns a success or error notification to idle and cancels its
// timer. It reports whether anything changed.
func (c *Controller) Dismiss() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.applyLocked(Event{Kind: EventDismiss})
}

func (c *Controller) expire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.timer = nil
	c.applyLocked(Event{Kind: EventExpire})
}

func (c *Controller) applyLocked(ev Event) bool {
	if c.closed {
		return false
	}
	next, ok := Reduce(c.state, ev)
	if !ok {
		return false
	}
	c.commitLocked(next)
	return true
}

// commitLocked cancels any pending timer, stores next and schedules the
// auto-dismiss for success and error.
func (c *Controller) commitLocked(next Submission) {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	c.state = next
	if next.Dismissible() {
		gen := c.gen
		c.timer = c.clock.AfterFunc(DismissAfter, func() { c.expire(gen) })
	}
	if c.hooks.OnChange != nil {
		c.hooks.OnChange(next, c.gen)
	}
}

// Close tears the controller down: the timer is cancelled and results of
// sends still in flight are dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.gen++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Wait blocks until every send started by Submit has settled.
func (c *Controller) Wait() {
	c.inflight.Wait()
}
