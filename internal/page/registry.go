package page

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/howell-dev/portfolio/internal/view"
)

// Options configure a Registry.
type Options struct {
	// Animated is the declared set of elements that reveal on scroll.
	Animated []view.Animated
	// Sender forwards contact forms.
	Sender view.Sender
	// TTL bounds how long a page that was attached once may stay idle
	// before it is swept.
	TTL time.Duration
	// PendingTTL bounds how long a page that never attached may live.
	// It is capped at TTL.
	PendingTTL time.Duration
	Clock      view.Clock
}

// Registry tracks mounted pages by id.
type Registry struct {
	opts Options

	mu    sync.Mutex
	pages map[string]*Page
}

func NewRegistry(opts Options) *Registry {
	if opts.Clock == nil {
		opts.Clock = view.SystemClock{}
	}
	if opts.TTL <= 0 {
		opts.TTL = 30 * time.Minute
	}
	if opts.PendingTTL <= 0 {
		opts.PendingTTL = 2 * time.Minute
	}
	opts.PendingTTL = min(opts.PendingTTL, opts.TTL)
	return &Registry{opts: opts, pages: make(map[string]*Page)}
}

// Mount creates a page for a fresh render.
func (r *Registry) Mount(locale language.Tag) *Page {
	p := newPage(pageOptions{
		id:       uuid.NewString(),
		locale:   locale,
		clock:    r.opts.Clock,
		sender:   r.opts.Sender,
		animated: r.opts.Animated,
	})
	r.mu.Lock()
	r.pages[p.ID] = p
	r.mu.Unlock()
	return p
}

// Get returns a mounted page and refreshes its idle time.
func (r *Registry) Get(id string) (*Page, bool) {
	r.mu.Lock()
	p, ok := r.pages[id]
	r.mu.Unlock()
	if ok {
		p.touch(r.opts.Clock.Now())
	}
	return p, ok
}

// Unmount closes and forgets a page.
func (r *Registry) Unmount(id string) {
	r.mu.Lock()
	p, ok := r.pages[id]
	delete(r.pages, id)
	r.mu.Unlock()
	if ok {
		p.Close()
	}
}

// Release unmounts a page once its last browser has detached. It reports
// whether the page was unmounted.
func (r *Registry) Release(id string) bool {
	r.mu.Lock()
	p, ok := r.pages[id]
	if ok && p.Attached() {
		ok = false
	}
	if ok {
		delete(r.pages, id)
	}
	r.mu.Unlock()
	if ok {
		p.Close()
	}
	return ok
}

// Len is the number of mounted pages.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pages)
}

// Sweep unmounts pages that have no attached browser and have been idle
// longer than their TTL: PendingTTL for pages that never attached, TTL for
// the rest. It returns how many were removed.
func (r *Registry) Sweep() int {
	now := r.opts.Clock.Now()
	cutoff := now.Add(-r.opts.TTL)
	pendingCutoff := now.Add(-r.opts.PendingTTL)

	r.mu.Lock()
	var stale []*Page
	for id, p := range r.pages {
		p.mu.Lock()
		limit := cutoff
		if !p.mounted {
			limit = pendingCutoff
		}
		idle := len(p.sinks) == 0 && p.lastSeen.Before(limit)
		p.mu.Unlock()
		if idle {
			stale = append(stale, p)
			delete(r.pages, id)
		}
	}
	r.mu.Unlock()

	for _, p := range stale {
		p.Close()
	}
	return len(stale)
}

// Run sweeps idle pages every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				log.Printf("page: swept %d idle pages", n)
			}
		}
	}
}

// Close unmounts every page and waits for outstanding sends to settle.
func (r *Registry) Close() {
	r.mu.Lock()
	pages := r.pages
	r.pages = make(map[string]*Page)
	r.mu.Unlock()

	for _, p := range pages {
		p.Close()
	}
	for _, p := range pages {
		p.wait()
	}
}
