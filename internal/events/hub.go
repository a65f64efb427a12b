// Package events pushes server events to connected clients over websockets,
// so a settings change in one window re-renders every other open view.
package events

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"nhooyr.io/websocket"
)

type Hub struct {
	mu      sync.RWMutex
	clients map[*client]bool
}

type client struct {
	conn   *websocket.Conn
	userID string
	send   chan []byte
}

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*client]bool)}
}

// Broadcast sends an event to every client of one user. Slow clients are
// skipped rather than blocking the sender.
func (h *Hub) Broadcast(userID, event string, data interface{}) {
	msg, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		if c.userID != userID {
			continue
		}
		select {
		case c.send <- msg:
		default:
		}
	}
}

// ServeWS upgrades the request and pumps messages until the client leaves.
// userID comes from the auth middleware, not the client.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, userID string) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("[events] websocket accept failed: %v", err)
		return
	}

	c := &client{conn: conn, userID: userID, send: make(chan []byte, 16)}
	h.addClient(c)
	defer h.removeClient(c)

	ctx := r.Context()
	for {
		select {
		case msg := <-c.send:
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := conn.Write(writeCtx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				return
			}
		case <-ctx.Done():
			conn.Close(websocket.StatusNormalClosure, "")
			return
		}
	}
}

func (h *Hub) addClient(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = true
}

func (h *Hub) removeClient(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}
