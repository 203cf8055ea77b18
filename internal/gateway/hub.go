package gateway

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
)

// Hub maintains the set of live connections and the room table mapping each
// user id to that user's connections. A user may hold several simultaneous
// connections (multiple devices); all of them receive the user's events.
//
// Delivery is fire-and-forget: a dropped or slow connection never surfaces an
// error to the caller, and an empty room simply drops the event.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]struct{}
	logger *zap.Logger
}

// NewHub creates an empty Hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]struct{}),
		logger: logger,
	}
}

// ServeConn binds an upgraded connection to the user's room and starts the
// client pumps. Room membership is torn down automatically on disconnect.
func (h *Hub) ServeConn(conn *websocket.Conn, userID string) {
	client := &Client{UserID: userID, Hub: h, Conn: conn, Send: make(chan []byte, 256)}
	h.addClient(client)
	go client.writePump()
	go client.readPump()
}

// PublishToUser delivers the event to every live connection in the user's
// room. If the room is empty the event is dropped; persisted state is the
// durability mechanism, not the socket push.
func (h *Hub) PublishToUser(userID string, event string, payload interface{}) {
	message, err := h.encode(event, payload)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[userID] {
		h.deliver(client, message)
	}
}

// Broadcast delivers the event to every live connection regardless of room.
func (h *Hub) Broadcast(event string, payload interface{}) {
	message, err := h.encode(event, payload)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, room := range h.rooms {
		for client := range room {
			h.deliver(client, message)
		}
	}
}

// ConnectionCount reports the number of live connections in the user's room.
func (h *Hub) ConnectionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[userID])
}

func (h *Hub) encode(event string, payload interface{}) ([]byte, error) {
	message, err := json.Marshal(domain.Event{Name: event, Payload: payload})
	if err != nil {
		h.logger.Error("failed to encode event", zap.String("event", event), zap.Error(err))
		return nil, err
	}
	return message, nil
}

func (h *Hub) deliver(client *Client, message []byte) {
	select {
	case client.Send <- message:
	default:
		// Slow client with a full buffer; drop the event rather than block
		// the publisher.
		h.logger.Warn("dropping event for slow client", zap.String("user_id", client.UserID))
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room := h.rooms[client.UserID]
	if room == nil {
		room = make(map[*Client]struct{})
		h.rooms[client.UserID] = room
	}
	room[client] = struct{}{}
	h.logger.Debug("client joined room", zap.String("user_id", client.UserID), zap.Int("connections", len(room)))
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	room, ok := h.rooms[client.UserID]
	if !ok {
		return
	}
	if _, ok := room[client]; !ok {
		return
	}
	delete(room, client)
	close(client.Send)
	if len(room) == 0 {
		delete(h.rooms, client.UserID)
	}
	h.logger.Debug("client left room", zap.String("user_id", client.UserID))
}
