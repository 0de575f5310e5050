package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/howell-dev/portfolio/internal/content"
	"github.com/howell-dev/portfolio/internal/view"
)

type homeData struct {
	Site     *content.Site
	PageID   string
	NavItems []view.NavItem
	Active   view.Section
	MenuOpen bool
	Toast    toastData
	Year     int
}

// handleHome renders the page and mounts its view state.
func (s *Server) handleHome(c *gin.Context) {
	p := s.pages.Mount(view.MatchLocale(c.GetHeader("Accept-Language")))
	snap := p.Snapshot()

	c.HTML(http.StatusOK, "index.html", homeData{
		Site:     s.site,
		PageID:   p.ID,
		NavItems: view.NavItems,
		Active:   snap.Active,
		MenuOpen: snap.MenuOpen,
		Toast:    toastData{Submission: snap.Submission, Rev: snap.Rev, PageID: p.ID},
		Year:     s.clock.Now().Year(),
	})
}
