package view

import "testing"

func TestNavigateToClosesMenu(t *testing.T) {
	n := NewNavigator()
	if !n.ToggleMenu() {
		t.Fatal("toggle did not open menu")
	}

	var scrolled Section
	var top float64
	ok := n.NavigateTo(Projects, testLayout(), ScrollerFunc(func(s Section, b Bounds) {
		scrolled, top = s, b.Top
	}))
	if !ok {
		t.Fatal("NavigateTo(projects) = false")
	}
	if scrolled != Projects || top != 2100 {
		t.Fatalf("scrolled to %q at %v", scrolled, top)
	}
	if n.MenuOpen() {
		t.Fatal("menu still open after navigation")
	}

	if !n.NavigateTo(Home, testLayout(), nil) || n.MenuOpen() {
		t.Fatal("navigation with closed menu changed menu state")
	}
}

func TestNavigateToMissingRegionIsNoop(t *testing.T) {
	n := NewNavigator()
	n.ToggleMenu()

	called := false
	ok := n.NavigateTo("blog", testLayout(), ScrollerFunc(func(Section, Bounds) { called = true }))
	if ok || called {
		t.Fatal("navigated to a missing region")
	}
	if !n.MenuOpen() {
		t.Fatal("menu closed by failed navigation")
	}
}

func TestToggleMenu(t *testing.T) {
	n := NewNavigator()
	for i, want := range []bool{true, false, true} {
		if got := n.ToggleMenu(); got != want {
			t.Fatalf("toggle %d = %v, want %v", i, got, want)
		}
	}
}

func TestIsActiveExactMatch(t *testing.T) {
	if !IsActive(Skills, Skills) {
		t.Error("skills not active for skills")
	}
	if IsActive(Projects, "project") || IsActive("proj", Projects) {
		t.Error("prefix matched")
	}
}
