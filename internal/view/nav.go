package view

import "sync"

// NavItem is one entry of the navigation bar.
type NavItem struct {
	ID    Section
	Label string
	Icon  string
}

// NavItems are rendered in both the desktop and the mobile navigation.
var NavItems = []NavItem{
	{ID: Home, Label: "Home", Icon: "home"},
	{ID: About, Label: "About", Icon: "user"},
	{ID: Skills, Label: "Skills", Icon: "code"},
	{ID: Projects, Label: "Projects", Icon: "briefcase"},
	{ID: Contact, Label: "Contact", Icon: "mail"},
}

// IsActive reports whether the entry for id is highlighted. Only exact
// matches count.
func IsActive(id, active Section) bool {
	return id == active
}

// Scroller performs the smooth scroll to a region.
type Scroller interface {
	ScrollTo(s Section, b Bounds)
}

// ScrollerFunc adapts a function to Scroller.
type ScrollerFunc func(s Section, b Bounds)

func (f ScrollerFunc) ScrollTo(s Section, b Bounds) { f(s, b) }

// Navigator owns the mobile menu flag and handles click-to-scroll.
type Navigator struct {
	mu       sync.Mutex
	menuOpen bool
}

func NewNavigator() *Navigator {
	return &Navigator{}
}

// MenuOpen reports whether the mobile menu is open.
func (n *Navigator) MenuOpen() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.menuOpen
}

// ToggleMenu flips the menu flag and returns the new value.
func (n *Navigator) ToggleMenu() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.menuOpen = !n.menuOpen
	return n.menuOpen
}

// NavigateTo scrolls to the section's region and closes the menu. It does
// nothing and returns false when the region is not in the layout.
func (n *Navigator) NavigateTo(s Section, layout Layout, scroller Scroller) bool {
	b, ok := layout.Region(s)
	if !ok {
		return false
	}
	n.mu.Lock()
	n.menuOpen = false
	n.mu.Unlock()
	if scroller != nil {
		scroller.ScrollTo(s, b)
	}
	return true
}
