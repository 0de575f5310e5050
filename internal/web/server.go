// Package web serves the portfolio page, its websocket view channel, the
// contact endpoint and the admin dashboard.
package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/howell-dev/portfolio/internal/config"
	"github.com/howell-dev/portfolio/internal/content"
	"github.com/howell-dev/portfolio/internal/page"
	"github.com/howell-dev/portfolio/internal/store"
	"github.com/howell-dev/portfolio/internal/view"
)

// Mailer forwards template parameters to the email service.
type Mailer interface {
	Send(ctx context.Context, params map[string]string) error
}

// Deps are the collaborators of a Server.
type Deps struct {
	Config config.Config
	Site   *content.Site
	DB     *store.DB
	Mailer Mailer
	Clock  view.Clock
}

type Server struct {
	cfg   config.Config
	site  *content.Site
	db    *store.DB
	clock view.Clock
	pages *page.Registry
	tmpl  *template.Template

	engine     *gin.Engine
	httpServer *http.Server

	adminToken  string
	hashingSalt string

	bg sync.WaitGroup
}

func New(deps Deps) (*Server, error) {
	if deps.DB == nil || deps.Site == nil {
		return nil, errors.New("web: database and site content are required")
	}
	clock := deps.Clock
	if clock == nil {
		clock = view.SystemClock{}
	}
	s := &Server{
		cfg:         deps.Config,
		site:        deps.Site,
		db:          deps.DB,
		clock:       clock,
		adminToken:  generateToken(),
		hashingSalt: generateToken(),
	}
	s.pages = page.NewRegistry(page.Options{
		Animated:   deps.Site.Animated(),
		Sender:     s.contactSender(deps.Mailer),
		TTL:        deps.Config.PageTTL,
		PendingTTL: deps.Config.PendingTTL,
		Clock:      clock,
	})

	tmpl, err := parseTemplates(deps.Site)
	if err != nil {
		return nil, err
	}
	s.tmpl = tmpl
	s.engine = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.SetHTMLTemplate(s.tmpl)
	r.StaticFS("/static", staticFS())
	r.Use(s.visitorTrackingMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/", s.handleHome)
	r.GET("/ws", s.handleSocket)

	r.POST("/contact", s.handleContact)
	r.POST("/contact/dismiss", s.handleDismiss)
	r.GET("/contact/status", s.handleStatus)

	s.setupAdminRoutes(r)
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Pages exposes the mounted page registry.
func (s *Server) Pages() *page.Registry { return s.pages }

// Start listens on the configured port and runs background maintenance
// until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.background(func() { s.pages.Run(ctx, time.Minute) })
	s.background(s.cleanupOldVisitorData)

	s.httpServer = &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Printf("portfolio listening on %s", s.httpServer.Addr)
	if gin.Mode() == gin.DebugMode {
		log.Printf("Admin token (dev only): %s", s.adminToken)
	}
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops accepting requests, unmounts every page and waits for
// outstanding sends and background work.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}
	s.pages.Close()
	s.bg.Wait()
	return err
}

// Drain waits for background work started by handlers.
func (s *Server) Drain() {
	s.bg.Wait()
}

func (s *Server) background(f func()) {
	s.bg.Add(1)
	go func() {
		defer s.bg.Done()
		f()
	}()
}

func generateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatal("Failed to generate token:", err)
	}
	return hex.EncodeToString(b)
}
