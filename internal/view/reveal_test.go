package view

import (
	"math"
	"testing"
)

var testAnimated = []Animated{
	{ID: "hero-title", Kind: "fade-up"},
	{ID: "about-photo", Kind: "fade-right"},
	{ID: "about-text", Kind: "fade-left"},
}

func TestIntersectionRatio(t *testing.T) {
	tests := []struct {
		name     string
		box      Bounds
		scrollY  float64
		viewport float64
		want     float64
	}{
		{"fully visible", Bounds{Top: 100, Height: 200}, 0, 1000, 1},
		{"below viewport", Bounds{Top: 1200, Height: 200}, 0, 1000, 0},
		{"inside bottom margin", Bounds{Top: 960, Height: 100}, 0, 1000, 0},
		{"half above margin", Bounds{Top: 900, Height: 100}, 0, 1000, 0.5},
		{"scrolled past", Bounds{Top: 0, Height: 100}, 500, 1000, 0},
		{"partly scrolled past", Bounds{Top: 400, Height: 200}, 500, 1000, 0.5},
		{"zero height visible", Bounds{Top: 10, Height: 0}, 0, 1000, 1},
		{"viewport smaller than margin", Bounds{Top: 0, Height: 10}, 0, 40, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntersectionRatio(tt.box, tt.scrollY, tt.viewport)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("IntersectionRatio = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRevealIgnoredUntilSettled(t *testing.T) {
	clock := newManualClock()
	r := NewRevealTrigger(clock, testAnimated)
	armed := 0
	release := r.Mount(func() { armed++ })
	defer release()

	if _, ok := r.Observe("hero-title", 1); ok {
		t.Fatal("revealed before settle delay")
	}
	clock.Advance(SettleDelay / 2)
	if r.Armed() {
		t.Fatal("armed too early")
	}
	clock.Advance(SettleDelay / 2)
	if !r.Armed() || armed != 1 {
		t.Fatalf("armed = %v, callback ran %d times", r.Armed(), armed)
	}

	el, ok := r.Observe("hero-title", 1)
	if !ok || el.Class() != "animate-fade-up" {
		t.Fatalf("Observe = %+v, %v", el, ok)
	}
}

func TestRevealIsMonotonic(t *testing.T) {
	clock := newManualClock()
	r := NewRevealTrigger(clock, testAnimated)
	defer r.Mount(nil)()
	clock.Advance(SettleDelay)

	if _, ok := r.Observe("about-photo", 0.05); ok {
		t.Fatal("revealed below threshold")
	}
	if _, ok := r.Observe("about-photo", RevealThreshold); !ok {
		t.Fatal("not revealed at threshold")
	}
	for _, ratio := range []float64{0, 0.5, 1, 0} {
		if _, ok := r.Observe("about-photo", ratio); ok {
			t.Fatalf("second reveal at ratio %v", ratio)
		}
		if !r.Revealed("about-photo") {
			t.Fatal("revealed element reverted")
		}
	}
}

func TestRevealIgnoresUndeclaredIDs(t *testing.T) {
	clock := newManualClock()
	r := NewRevealTrigger(clock, testAnimated)
	defer r.Mount(nil)()
	clock.Advance(SettleDelay)

	if _, ok := r.Observe("footer", 1); ok {
		t.Fatal("undeclared element revealed")
	}
	if len(r.Snapshot()) != 0 {
		t.Fatalf("snapshot = %v, want empty", r.Snapshot())
	}
}

func TestRevealScan(t *testing.T) {
	clock := newManualClock()
	r := NewRevealTrigger(clock, testAnimated)
	defer r.Mount(nil)()
	clock.Advance(SettleDelay)

	layout := Layout{
		Elements: map[string]Bounds{
			"hero-title":  {Top: 100, Height: 100},
			"about-photo": {Top: 1000, Height: 400},
			"about-text":  {Top: 1100, Height: 400},
		},
		Viewport: 800,
	}
	got := r.Scan(0, layout)
	if len(got) != 1 || got[0].ID != "hero-title" {
		t.Fatalf("Scan(0) = %+v", got)
	}

	got = r.Scan(600, layout)
	if len(got) != 2 || got[0].ID != "about-photo" || got[1].ID != "about-text" {
		t.Fatalf("Scan(600) = %+v", got)
	}

	if got := r.Scan(0, layout); len(got) != 0 {
		t.Fatalf("rescan revealed again: %+v", got)
	}
}

func TestRevealReleaseStopsObservation(t *testing.T) {
	clock := newManualClock()
	r := NewRevealTrigger(clock, testAnimated)
	called := false
	release := r.Mount(func() { called = true })
	release()

	clock.Advance(SettleDelay)
	if called || r.Armed() {
		t.Fatal("observation started after release")
	}
	if _, ok := r.Observe("hero-title", 1); ok {
		t.Fatal("revealed after release")
	}
	if clock.Pending() != 0 {
		t.Fatalf("pending timers = %d", clock.Pending())
	}
}
