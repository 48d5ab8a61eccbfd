package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/chicodelphi/nutricaoBRL/models"
)

// LogUpdate is pushed to connected clients after every daily log mutation.
type LogUpdate struct {
	Type string           `json:"type"` // "meal_logged" | "water_adjusted"
	Log  *models.DailyLog `json:"log"`
}

// RealtimeHub fans daily-log updates out over websockets. Single-user
// deployment, so there is one flat client set.
type RealtimeHub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *RealtimeHub) Register(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	_ = conn.Close()
}

// ClientCount reports how many connections are currently registered.
func (h *RealtimeHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *RealtimeHub) Broadcast(update LogUpdate) {
	msg, _ := json.Marshal(update)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.clients {
		_ = conn.WriteMessage(websocket.TextMessage, msg)
	}
}
