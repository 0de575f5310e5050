// Package content loads the portfolio page copy.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"os"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"

	"github.com/howell-dev/portfolio/internal/view"
)

//go:embed default.yaml
var defaultContent []byte

type Site struct {
	Name          string       `yaml:"name"`
	Title         string       `yaml:"title"`
	Tagline       string       `yaml:"tagline"`
	About         About        `yaml:"about"`
	Skills        []SkillGroup `yaml:"skills"`
	ProjectsIntro string       `yaml:"projects_intro"`
	Projects      []Project    `yaml:"projects"`
	Contact       ContactInfo  `yaml:"contact"`
	Socials       []Social     `yaml:"socials"`

	animated []view.Animated
	kinds    map[string]string
}

type About struct {
	Heading string `yaml:"heading"`
	Photo   string `yaml:"photo"`
	Body    string `yaml:"body"`

	// HTML is Body rendered from markdown.
	HTML template.HTML `yaml:"-"`
}

type SkillGroup struct {
	ID    string   `yaml:"-"`
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

type Project struct {
	ID          string   `yaml:"-"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Palette     []string `yaml:"palette"`
	Tech        []string `yaml:"tech"`
	LiveURL     string   `yaml:"live_url"`
	CodeURL     string   `yaml:"code_url"`
}

type ContactInfo struct {
	Intro    string `yaml:"intro"`
	Blurb    string `yaml:"blurb"`
	Email    string `yaml:"email"`
	Location string `yaml:"location"`
}

type Social struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
	URL  string `yaml:"url"`
}

// Load reads the site copy from path, or the built-in copy when path is
// empty.
func Load(path string) (*Site, error) {
	data := defaultContent
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading content %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes YAML site copy. Unknown keys are rejected.
func Parse(data []byte) (*Site, error) {
	var s Site
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(s.About.Body), &buf); err != nil {
		return nil, fmt.Errorf("rendering about: %w", err)
	}
	s.About.HTML = template.HTML(buf.String())

	s.declare()
	return &s, nil
}

func (s *Site) validate() error {
	var errs []error
	if s.Name == "" {
		errs = append(errs, errors.New("content: name is required"))
	}
	for i, g := range s.Skills {
		if g.Name == "" {
			errs = append(errs, fmt.Errorf("content: skills[%d] has no name", i))
		}
	}
	for i, p := range s.Projects {
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("content: projects[%d] has no title", i))
		}
		if len(p.Palette) != 0 && len(p.Palette) != 2 {
			errs = append(errs, fmt.Errorf("content: projects[%d] palette needs two colours", i))
		}
	}
	return errors.Join(errs...)
}

// declare assigns ids to repeated blocks and builds the list of elements
// that animate in on scroll.
func (s *Site) declare() {
	s.kinds = make(map[string]string)
	add := func(id, kind string) {
		s.animated = append(s.animated, view.Animated{ID: id, Kind: kind})
		s.kinds[id] = kind
	}

	for _, id := range []string{"hero-badge", "hero-heading", "hero-title", "hero-tagline", "hero-actions", "hero-socials"} {
		add(id, "fade-up")
	}
	add("about-heading", "fade-up")
	add("about-photo", "fade-right")
	add("about-text", "fade-left")

	add("skills-heading", "fade-up")
	for i := range s.Skills {
		s.Skills[i].ID = fmt.Sprintf("skill-group-%d", i)
		add(s.Skills[i].ID, "fade-up")
	}

	add("projects-heading", "fade-up")
	for i := range s.Projects {
		s.Projects[i].ID = fmt.Sprintf("project-%d", i)
		if len(s.Projects[i].Palette) == 0 {
			s.Projects[i].Palette = []string{"gray-100", "slate-100"}
		}
		add(s.Projects[i].ID, "fade-up")
	}

	add("contact-heading", "fade-up")
	add("contact-info", "fade-right")
	add("contact-form", "fade-left")
}

// Animated lists every element that reveals on scroll, in page order.
func (s *Site) Animated() []view.Animated {
	out := make([]view.Animated, len(s.animated))
	copy(out, s.animated)
	return out
}

// AnimationKind returns the animation declared for id.
func (s *Site) AnimationKind(id string) (string, bool) {
	k, ok := s.kinds[id]
	return k, ok
}
