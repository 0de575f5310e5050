package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/howell-dev/portfolio/internal/content"
	"github.com/howell-dev/portfolio/internal/view"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFiles embed.FS

func staticFS() http.FileSystem {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func parseTemplates(site *content.Site) (*template.Template, error) {
	funcs := template.FuncMap{
		// anim renders the id and data-animate attributes of an element
		// that reveals on scroll.
		"anim": func(id string) (template.HTMLAttr, error) {
			kind, ok := site.AnimationKind(id)
			if !ok {
				return "", fmt.Errorf("element %q is not declared as animated", id)
			}
			return template.HTMLAttr(fmt.Sprintf(`id=%q data-animate=%q`, id, kind)), nil
		},
		"active": func(id, current view.Section) bool {
			return view.IsActive(id, current)
		},
		"lines": func(s string) []string {
			return strings.Split(strings.TrimSpace(s), "\n")
		},
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return tmpl, nil
}

func (s *Server) renderToast(data toastData) string {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "toast.html", data); err != nil {
		log.Printf("web: rendering toast: %v", err)
		return ""
	}
	return buf.String()
}
