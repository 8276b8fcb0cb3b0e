package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// EventHub fans out storefront events (new orders, new catering
// requests) to connected admin dashboards.

type WSClient struct {
	Conn *websocket.Conn
}

type EventHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

// Events is the process-wide hub. Broadcast is safe before any client
// connects.
var Events = NewEventHub()

func NewEventHub() *EventHub {
	return &EventHub{clients: make(map[*WSClient]struct{})}
}

func (h *EventHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *EventHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *EventHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *EventHub) Broadcast(eventType string, payload any) {
	msg, _ := json.Marshal(map[string]any{
		"type": eventType,
		"at":   time.Now().UTC(),
		"data": payload,
	})
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
