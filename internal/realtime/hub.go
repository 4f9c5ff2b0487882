package realtime

import (
	"sync"
)

// Client represents a single websocket client connection.
// We keep it minimal here; the actual network conn is managed in the ws handler.
type Client interface {
	Send(message []byte) bool
	Close()
}

// Hub maintains active team subscriptions and broadcasts change events to
// every client watching a team.
type Hub struct {
	mu              sync.RWMutex
	teamIdToClients map[string]map[Client]struct{}
}

var hubInstance *Hub
var once sync.Once

// GetHub returns a singleton hub instance.
func GetHub() *Hub {
	once.Do(func() {
		hubInstance = &Hub{
			teamIdToClients: make(map[string]map[Client]struct{}),
		}
	})
	return hubInstance
}

// Register adds a client under a team ID.
func (h *Hub) Register(teamID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.teamIdToClients[teamID]; !ok {
		h.teamIdToClients[teamID] = make(map[Client]struct{})
	}
	h.teamIdToClients[teamID][client] = struct{}{}
}

// Unregister removes a client; if the team has no more clients, cleans up map.
func (h *Hub) Unregister(teamID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if clients, ok := h.teamIdToClients[teamID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.teamIdToClients, teamID)
		}
	}
}

// Broadcast sends a message to all clients watching a team.
func (h *Hub) Broadcast(teamID string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	clients := h.teamIdToClients[teamID]
	for c := range clients {
		if ok := c.Send(message); !ok {
			// client write failed; let the handler clean it up on its side
		}
	}
}
