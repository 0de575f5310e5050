package web

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/howell-dev/portfolio/internal/page"
	"github.com/howell-dev/portfolio/internal/store"
	"github.com/howell-dev/portfolio/internal/view"
)

type contactRequest struct {
	Page    string `form:"page" binding:"required"`
	Name    string `form:"name" binding:"required,max=200"`
	Email   string `form:"email" binding:"required,email"`
	Message string `form:"message" binding:"required,max=5000"`
}

// contactSender records each submission, forwards it through the mailer and
// stores the outcome.
func (s *Server) contactSender(mailer Mailer) view.Sender {
	return view.SenderFunc(func(ctx context.Context, form view.ContactForm) error {
		id := uuid.NewString()
		err := s.db.RecordMessage(ctx, store.Message{
			ID:        id,
			Name:      form.Name,
			Email:     form.Email,
			Body:      form.Message,
			Date:      form.Date,
			Time:      form.Time,
			CreatedAt: s.clock.Now(),
		})
		if err != nil {
			log.Printf("contact: %v", err)
		}

		var sendErr error
		if mailer == nil {
			sendErr = errors.New("no mailer configured")
		} else {
			sendErr = mailer.Send(ctx, map[string]string{
				"name":    form.Name,
				"email":   form.Email,
				"message": form.Message,
				"date":    form.Date,
				"time":    form.Time,
			})
		}

		if err := s.db.SettleMessage(ctx, id, sendErr, s.clock.Now()); err != nil {
			log.Printf("contact: %v", err)
		}
		if sendErr == nil {
			log.Printf("contact: message %s forwarded", id)
		}
		return sendErr
	})
}

func (s *Server) lookupPage(c *gin.Context, id string) (*page.Page, bool) {
	p, ok := s.pages.Get(id)
	if !ok {
		c.HTML(http.StatusNotFound, "contact-error.html", gin.H{
			"error": "This page has expired. Please reload and try again.",
		})
	}
	return p, ok
}

// handleContact starts a submission and answers with the notification
// fragment. Later states are pushed over the page's websocket.
func (s *Server) handleContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusUnprocessableEntity, "contact-error.html", gin.H{
			"error": "Please fill in your name, a valid email address and a message.",
		})
		return
	}
	p, ok := s.lookupPage(c, req.Page)
	if !ok {
		return
	}

	_, err := p.Submit(c.Request.Context(), view.ContactForm{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	switch {
	case errors.Is(err, view.ErrBusy):
		log.Printf("contact: page %s submitted while sending, ignored", p.ID)
	case err != nil:
		log.Printf("contact: page %s: %v", p.ID, err)
	}
	s.toast(c, p)
}

func (s *Server) handleDismiss(c *gin.Context) {
	p, ok := s.lookupPage(c, c.PostForm("page"))
	if !ok {
		return
	}
	p.Dismiss()
	s.toast(c, p)
}

func (s *Server) handleStatus(c *gin.Context) {
	p, ok := s.lookupPage(c, c.Query("page"))
	if !ok {
		return
	}
	s.toast(c, p)
}

// toastData feeds toast.html. Rev lets the browser drop renders older than
// the one it already shows.
type toastData struct {
	view.Submission
	Rev    uint64
	PageID string
}

// toast answers with the page's current notification, which may already be
// past the state a handler just committed.
func (s *Server) toast(c *gin.Context, p *page.Page) {
	snap := p.Snapshot()
	c.Header("X-Toast-Rev", strconv.FormatUint(snap.Rev, 10))
	c.HTML(http.StatusOK, "toast.html", toastData{
		Submission: snap.Submission,
		Rev:        snap.Rev,
		PageID:     p.ID,
	})
}
