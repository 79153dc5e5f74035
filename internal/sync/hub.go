package sync

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans session events (favorite toggles, profile updates) out to the
// owning user's connected websocket clients. Delivery is best-effort; a
// failed write drops the client.
type Hub struct {
	mu        sync.Mutex
	wsClients map[*websocket.Conn]string // conn -> user id ("" if anonymous)
}

type Stats struct {
	WSClients int `json:"ws_clients"`
}

func NewHub() *Hub {
	return &Hub{
		wsClients: make(map[*websocket.Conn]string),
	}
}

func (h *Hub) AddWS(ws *websocket.Conn, userID string) {
	h.mu.Lock()
	h.wsClients[ws] = userID
	h.mu.Unlock()
}

func (h *Hub) RemoveWS(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.wsClients, ws)
	h.mu.Unlock()
	_ = ws.Close()
}

// BroadcastToUser sends only to connections authenticated as userID.
// Anonymous connections never receive user-scoped events.
func (h *Hub) BroadcastToUser(userID string, v any) {
	if userID == "" {
		return
	}

	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	b = append(b, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	for ws, owner := range h.wsClients {
		if owner != userID {
			continue
		}
		if err := ws.WriteMessage(websocket.TextMessage, b); err != nil {
			_ = ws.Close()
			delete(h.wsClients, ws)
		}
	}
}

func (h *Hub) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Stats{
		WSClients: len(h.wsClients),
	}
}
