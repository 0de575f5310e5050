// Package view holds the per-page UI state of the portfolio: which section is
// in view, which animated elements have been revealed, whether the mobile menu
// is open, and the contact form notification.
package view

// Section identifies one of the fixed page sections.
type Section string

const (
	Home     Section = "home"
	About    Section = "about"
	Skills   Section = "skills"
	Projects Section = "projects"
	Contact  Section = "contact"
)

// Sections lists the page sections in declared order. The scroll spy checks
// them in this order and the first match wins.
var Sections = []Section{Home, About, Skills, Projects, Contact}

// Valid reports whether s is one of the known sections.
func (s Section) Valid() bool {
	for _, known := range Sections {
		if s == known {
			return true
		}
	}
	return false
}

// Bounds is the measured region of a section or element in document
// coordinates (offsetTop / offsetHeight).
type Bounds struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// Contains reports whether y lies in [Top, Top+Height).
func (b Bounds) Contains(y float64) bool {
	return y >= b.Top && y < b.Top+b.Height
}

// Layout is the geometry reported by the browser after render or resize.
type Layout struct {
	Sections map[Section]Bounds `json:"sections"`
	Elements map[string]Bounds  `json:"elements"`
	Viewport float64            `json:"viewport"`
}

// Region returns the bounds of a section, if it was measured.
func (l Layout) Region(s Section) (Bounds, bool) {
	b, ok := l.Sections[s]
	return b, ok
}
