package view

import (
	"math"
	"sync"
	"time"
)

const (
	// RevealThreshold is the visible-area ratio at which an element reveals.
	RevealThreshold = 0.1
	// RevealMargin shrinks the bottom of the viewport so elements reveal
	// slightly before they reach the true bottom edge.
	RevealMargin = 50
	// SettleDelay postpones observation after mount until layout is stable.
	SettleDelay = 100 * time.Millisecond
)

// Animated is an element tagged with an entrance animation.
type Animated struct {
	ID   string `yaml:"id" json:"id"`
	Kind string `yaml:"kind" json:"kind"`
}

// Class is the CSS class applied when the element is revealed.
func (a Animated) Class() string { return "animate-" + a.Kind }

// IntersectionRatio returns the fraction of box visible inside the viewport
// [scrollY, scrollY+viewport-RevealMargin).
func IntersectionRatio(box Bounds, scrollY, viewport float64) float64 {
	top := scrollY
	bottom := scrollY + viewport - RevealMargin
	if bottom <= top {
		return 0
	}
	if box.Height <= 0 {
		if box.Top >= top && box.Top <= bottom {
			return 1
		}
		return 0
	}
	lo := math.Max(box.Top, top)
	hi := math.Min(box.Top+box.Height, bottom)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / box.Height
}

// RevealTrigger flips declared elements to revealed the first time they
// enter the viewport. Revealed ids never revert.
type RevealTrigger struct {
	mu       sync.Mutex
	clock    Clock
	declared map[string]Animated
	order    []string
	revealed map[string]bool
	armed    bool
	closed   bool
	settle   Timer
}

// NewRevealTrigger watches the given elements. Duplicate ids keep the first
// declaration.
func NewRevealTrigger(clock Clock, elements []Animated) *RevealTrigger {
	r := &RevealTrigger{
		clock:    clock,
		declared: make(map[string]Animated, len(elements)),
		revealed: make(map[string]bool),
	}
	for _, el := range elements {
		if el.ID == "" {
			continue
		}
		if _, dup := r.declared[el.ID]; dup {
			continue
		}
		r.declared[el.ID] = el
		r.order = append(r.order, el.ID)
	}
	return r
}

// Mount starts observation after SettleDelay and calls onArmed once it has
// begun. The returned release stops observation for good.
func (r *RevealTrigger) Mount(onArmed func()) (release func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || r.settle != nil {
		return r.release
	}
	r.settle = r.clock.AfterFunc(SettleDelay, func() {
		r.mu.Lock()
		if r.closed {
			r.mu.Unlock()
			return
		}
		r.armed = true
		r.mu.Unlock()
		if onArmed != nil {
			onArmed()
		}
	})
	return r.release
}

func (r *RevealTrigger) release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.armed = false
	if r.settle != nil {
		r.settle.Stop()
	}
}

// Armed reports whether observation has begun and not been released.
func (r *RevealTrigger) Armed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.armed
}

// Observe handles one intersection entry. It returns the element and true
// only on the transition to revealed.
func (r *RevealTrigger) Observe(id string, ratio float64) (Animated, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.observeLocked(id, ratio)
}

func (r *RevealTrigger) observeLocked(id string, ratio float64) (Animated, bool) {
	if !r.armed {
		return Animated{}, false
	}
	el, ok := r.declared[id]
	if !ok || r.revealed[id] {
		return Animated{}, false
	}
	if ratio < RevealThreshold {
		return Animated{}, false
	}
	r.revealed[id] = true
	return el, true
}

// Scan measures every declared, not yet revealed element in the layout
// against the viewport at scrollY and returns the ones newly revealed, in
// declaration order.
func (r *RevealTrigger) Scan(scrollY float64, layout Layout) []Animated {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.armed {
		return nil
	}
	var out []Animated
	for _, id := range r.order {
		if r.revealed[id] {
			continue
		}
		box, ok := layout.Elements[id]
		if !ok {
			continue
		}
		if el, ok := r.observeLocked(id, IntersectionRatio(box, scrollY, layout.Viewport)); ok {
			out = append(out, el)
		}
	}
	return out
}

// Revealed reports whether id has been revealed.
func (r *RevealTrigger) Revealed(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revealed[id]
}

// Snapshot copies the reveal state.
func (r *RevealTrigger) Snapshot() map[string]bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]bool, len(r.revealed))
	for id, v := range r.revealed {
		out[id] = v
	}
	return out
}
