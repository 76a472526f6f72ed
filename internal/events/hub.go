// Package events pushes change notifications to open browser pages over
// WebSocket so ranking views can refetch after an admin action.
package events

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hashicorp/go-hclog"
)

const (
	ShowsReseeded = "shows.reseeded"
	RanksUpdated  = "ranks.updated"
)

type Event struct {
	Type  string    `json:"type"`
	Year  int       `json:"year,omitempty"`
	Count int       `json:"count"`
	At    time.Time `json:"at"`
}

// Publisher is what the admin pipelines need from the hub.
type Publisher interface {
	Publish(e Event)
}

type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	log     hclog.Logger
}

type Stats struct {
	WSClients int `json:"ws_clients"`
}

func NewHub(logger hclog.Logger) *Hub {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		log:     logger,
	}
}

func (h *Hub) Add(ws *websocket.Conn) {
	h.mu.Lock()
	h.clients[ws] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) Remove(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

// Publish sends e to every client, dropping clients whose write fails.
func (h *Hub) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now().UTC()
	}
	b, err := json.Marshal(e)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ws := range h.clients {
		_ = ws.SetWriteDeadline(time.Now().Add(2 * time.Second))
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			_ = ws.Close()
			delete(h.clients, ws)
		}
	}
	h.log.Debug("event published", "type", e.Type, "clients", len(h.clients))
}

func (h *Hub) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Stats{WSClients: len(h.clients)}
}
