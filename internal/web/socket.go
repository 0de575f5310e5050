package web

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/howell-dev/portfolio/internal/page"
	"github.com/howell-dev/portfolio/internal/view"
)

const (
	writeWait   = 10 * time.Second
	sendBacklog = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

// clientMessage is what the browser reports over the socket.
type clientMessage struct {
	Type    string       `json:"type"` // layout, scroll, intersect, navigate, menu, dismiss
	// Y is the scroll offset. Layout travels with layout messages and with
	// scroll messages so geometry is never older than the last scroll.
	Y       float64      `json:"y"`
	Layout  *view.Layout `json:"layout,omitempty"`
	Section view.Section `json:"section,omitempty"`
	ID      string       `json:"id,omitempty"`
	Ratio   float64      `json:"ratio,omitempty"`
}

// serverMessage is a page event plus the rendered toast for notify events.
type serverMessage struct {
	page.Event
	HTML string `json:"html,omitempty"`
}

// handleSocket attaches a browser to its page. The page is unmounted when
// its last socket closes.
func (s *Server) handleSocket(c *gin.Context) {
	p, ok := s.pages.Get(c.Query("page"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown page"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("web: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	out := make(chan page.Event, sendBacklog)
	done := make(chan struct{})
	detach := p.Attach(func(ev page.Event) {
		select {
		case out <- ev:
		case <-done:
		default:
			log.Printf("web: page %s backlog full, dropping %s event", p.ID, ev.Type)
		}
	})
	defer func() {
		detach()
		close(done)
		s.pages.Release(p.ID)
	}()

	go s.writeEvents(conn, p.ID, out, done)

	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("web: websocket read: %v", err)
			}
			return
		}
		s.dispatch(p, msg)
	}
}

func (s *Server) dispatch(p *page.Page, msg clientMessage) {
	switch msg.Type {
	case "layout":
		if msg.Layout != nil {
			p.Layout(*msg.Layout, msg.Y)
		}
	case "scroll":
		if msg.Layout != nil {
			p.Layout(*msg.Layout, msg.Y)
		} else {
			p.Scroll(msg.Y)
		}
	case "intersect":
		p.Intersect(msg.ID, msg.Ratio)
	case "navigate":
		p.Navigate(msg.Section)
	case "menu":
		p.ToggleMenu()
	case "dismiss":
		p.Dismiss()
	default:
		log.Printf("web: page %s sent unknown message type %q", p.ID, msg.Type)
	}
}

func (s *Server) writeEvents(conn *websocket.Conn, pageID string, out <-chan page.Event, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case ev := <-out:
			msg := serverMessage{Event: ev}
			if ev.Type == page.EventNotify && ev.Notify != nil {
				msg.HTML = s.renderToast(toastData{Submission: *ev.Notify, Rev: ev.Rev, PageID: pageID})
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("web: websocket write: %v", err)
				conn.Close()
				return
			}
		}
	}
}
