package feed

import (
	"context"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Event is the frame pushed to every connected dashboard.
type Event struct {
	Topic   string    `json:"topic"`
	Payload any       `json:"payload"`
	At      time.Time `json:"at"`
}

// Hub fans domain events out to connected dashboard clients. Unlike a chat
// hub there is no per-user addressing; every client sees the whole floor.
type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(connID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[connID]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[connID] = conn
}

func (h *Hub) Unregister(connID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[connID]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, connID)
	}
}

func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

// Publish implements the events sink. Dead connections are dropped on write
// failure.
func (h *Hub) Publish(_ context.Context, topic string, payload any) error {
	ev := Event{Topic: topic, Payload: payload, At: time.Now().UTC()}

	h.mutex.RLock()
	conns := make(map[string]*websocket.Conn, len(h.connections))
	for id, c := range h.connections {
		conns[id] = c
	}
	h.mutex.RUnlock()

	for id, conn := range conns {
		if err := conn.WriteJSON(ev); err != nil {
			h.Unregister(id)
		}
	}
	return nil
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}
