// websocket.go - Live preview push channel
//
// Clients subscribe to one preview session; whenever the session mutates
// (block appended, fields changed) the recomposed draft is pushed to every
// subscriber. This replaces polling GET /api/sessions/:id/preview.
package api

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/maintgen/backend/internal/session"
)

const (
	wsWriteTimeout = 10 * time.Second
	wsSendBuffer   = 8
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The form is same-origin (embedded) or behind the CORS config; the
	// socket carries no credentials and only derived preview text.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// PreviewHub fans recomposed drafts out to websocket subscribers.
type PreviewHub struct {
	mu         sync.RWMutex
	subs       map[string]map[*previewClient]struct{} // sessionID -> clients
	sessionMgr *session.Manager
	service    *NoticeService
}

type previewClient struct {
	conn *websocket.Conn
	send chan []byte
}

// NewPreviewHub creates the hub and hooks it into the session manager's
// change notifications.
func NewPreviewHub(sessionMgr *session.Manager, service *NoticeService) *PreviewHub {
	hub := &PreviewHub{
		subs:       make(map[string]map[*previewClient]struct{}),
		sessionMgr: sessionMgr,
		service:    service,
	}
	sessionMgr.SetChangeListener(hub.notify)
	return hub
}

// HandlePreviewSocket upgrades the connection and streams draft updates for
// one session until the client disconnects.
func (hub *PreviewHub) HandlePreviewSocket(c echo.Context) error {
	id := c.Param("id")
	if _, ok := hub.sessionMgr.Get(id); !ok {
		return NewNotFoundError("session", id)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return NewBadRequestError("websocket upgrade failed", err)
	}

	client := &previewClient{
		conn: conn,
		send: make(chan []byte, wsSendBuffer),
	}
	hub.subscribe(id, client)

	// Push the current state immediately so a fresh subscriber is not blank
	// until the next edit.
	if payload, ok := hub.renderPreview(id); ok {
		client.enqueue(payload)
	}

	go client.writeLoop()
	client.readLoop() // blocks until close

	hub.unsubscribe(id, client)
	return nil
}

// notify recomposes the session's draft and broadcasts it.
func (hub *PreviewHub) notify(sessionID string) {
	hub.mu.RLock()
	clients := hub.subs[sessionID]
	hub.mu.RUnlock()
	if len(clients) == 0 {
		return
	}

	payload, ok := hub.renderPreview(sessionID)
	if !ok {
		return
	}

	hub.mu.RLock()
	defer hub.mu.RUnlock()
	for client := range hub.subs[sessionID] {
		client.enqueue(payload)
	}
}

func (hub *PreviewHub) renderPreview(sessionID string) ([]byte, bool) {
	s, ok := hub.sessionMgr.Get(sessionID)
	if !ok {
		return nil, false
	}

	draft, circuits, err := hub.service.BuildDraft(s.Fields, s.Blocks, s.FileIDs)
	if err != nil {
		// Push the error so the form can surface it inline (e.g. an
		// end-before-start window) instead of silently going stale.
		if apiErr, isAPI := err.(*APIError); isAPI {
			payload, jsonErr := json.Marshal(map[string]interface{}{"error": apiErr})
			return payload, jsonErr == nil
		}
		return nil, false
	}

	payload, err := json.Marshal(previewResponse{Draft: draft, Circuits: circuits})
	return payload, err == nil
}

func (hub *PreviewHub) subscribe(sessionID string, client *previewClient) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	if hub.subs[sessionID] == nil {
		hub.subs[sessionID] = make(map[*previewClient]struct{})
	}
	hub.subs[sessionID][client] = struct{}{}
}

func (hub *PreviewHub) unsubscribe(sessionID string, client *previewClient) {
	hub.mu.Lock()
	defer hub.mu.Unlock()
	if clients, ok := hub.subs[sessionID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(hub.subs, sessionID)
		}
	}
	close(client.send)
}

// enqueue drops the update when the client's buffer is full; a slow viewer
// only misses intermediate previews, never the final state it asks for next.
func (c *previewClient) enqueue(payload []byte) {
	select {
	case c.send <- payload:
	default:
	}
}

func (c *previewClient) writeLoop() {
	defer c.conn.Close()
	for payload := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// readLoop discards inbound frames; the socket is push-only. Returning on
// error detects disconnects.
func (c *previewClient) readLoop() {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
