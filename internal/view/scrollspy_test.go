package view

import "testing"

func testLayout() Layout {
	return Layout{
		Sections: map[Section]Bounds{
			Home:     {Top: 0, Height: 800},
			About:    {Top: 800, Height: 600},
			Skills:   {Top: 1400, Height: 700},
			Projects: {Top: 2100, Height: 900},
			Contact:  {Top: 3000, Height: 800},
		},
		Viewport: 900,
	}
}

func TestLocate(t *testing.T) {
	layout := testLayout()
	tests := []struct {
		scrollY float64
		want    Section
		ok      bool
	}{
		{0, Home, true},
		{699, Home, true},
		{700, About, true},
		{1299, About, true},
		{1300, Skills, true},
		{1500, Skills, true},
		{2000, Projects, true},
		{2900, Contact, true},
		{3699, Contact, true},
		{3700, "", false},
		{-200, "", false},
	}
	for _, tt := range tests {
		got, ok := Locate(tt.scrollY, layout)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Locate(%v) = %q, %v; want %q, %v", tt.scrollY, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLocateFirstMatchWins(t *testing.T) {
	layout := Layout{Sections: map[Section]Bounds{
		About:  {Top: 0, Height: 1000},
		Skills: {Top: 0, Height: 1000},
	}}
	got, ok := Locate(0, layout)
	if !ok || got != About {
		t.Fatalf("Locate = %q, %v; want about", got, ok)
	}
}

func TestLocateSkipsUnmeasuredSections(t *testing.T) {
	layout := Layout{Sections: map[Section]Bounds{
		Contact: {Top: 0, Height: 500},
	}}
	got, ok := Locate(10, layout)
	if !ok || got != Contact {
		t.Fatalf("Locate = %q, %v; want contact", got, ok)
	}
}

func TestScrollSpyKeepsPreviousWhenNothingMatches(t *testing.T) {
	spy := NewScrollSpy()
	if spy.Active() != Home {
		t.Fatalf("initial active = %q, want home", spy.Active())
	}
	layout := testLayout()

	active, changed := spy.Scroll(1500, layout)
	if active != Skills || !changed {
		t.Fatalf("Scroll(1500) = %q, %v; want skills, true", active, changed)
	}

	active, changed = spy.Scroll(10000, layout)
	if active != Skills || changed {
		t.Fatalf("Scroll(10000) = %q, %v; want skills, false", active, changed)
	}

	active, changed = spy.Scroll(1600, layout)
	if active != Skills || changed {
		t.Fatalf("Scroll(1600) = %q, %v; want skills unchanged", active, changed)
	}

	active, _ = spy.Scroll(-500, Layout{})
	if active != Skills {
		t.Fatalf("empty layout reset active to %q", active)
	}
}
