// Package ws implements the real-time fan-out transport over websockets.
// Connected clients are grouped into rooms (per user, per shop, and the
// shared riders pool) and receive order updates as JSON frames. Delivery is
// best effort: a slow or closed client drops frames, never the mutation
// that produced them.
package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"laundromart/internal/core/ports"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Identity describes the authenticated principal behind a connection and
// decides which rooms it joins.
type Identity struct {
	UserID  string
	ShopID  string
	IsRider bool
}

func (id Identity) rooms() []string {
	rooms := []string{ports.UserRoom(id.UserID)}
	if id.IsRider {
		rooms = append(rooms, ports.RoomRiders)
	}
	if id.ShopID != "" {
		rooms = append(rooms, ports.ShopRoom(id.ShopID))
	}
	return rooms
}

// frame is the wire shape of an emitted event.
type frame struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub tracks connected clients and their room memberships.
type Hub struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	rooms map[string]map[*client]struct{}
}

// NewHub creates an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(_ *http.Request) bool { return true },
		},
		rooms: make(map[string]map[*client]struct{}),
	}
}

// Serve upgrades the request to a websocket connection and registers it in
// the identity's rooms. Blocks until the peer disconnects.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, identity Identity) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := newClient(conn)
	h.register(c, identity.rooms())
	defer h.unregister(c)

	go c.writePump()
	c.readPump()
	return nil
}

// Emit sends the event to every client in the room. Frames to stalled
// clients are dropped.
func (h *Hub) Emit(room, event string, payload any) error {
	raw, err := json.Marshal(frame{Event: event, Data: payload})
	if err != nil {
		return err
	}

	h.mu.RLock()
	clients := make([]*client, 0, len(h.rooms[room]))
	for c := range h.rooms[room] {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if !c.send(raw) {
			h.logger.Debug("dropping frame for stalled client", zap.String("room", room))
		}
	}

	return nil
}

// RoomSize reports the number of clients currently in a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

func (h *Hub) register(c *client, rooms []string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, room := range rooms {
		if h.rooms[room] == nil {
			h.rooms[room] = make(map[*client]struct{})
		}
		h.rooms[room][c] = struct{}{}
	}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	for room, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	h.mu.Unlock()
	c.close()
}
