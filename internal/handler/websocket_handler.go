package handler

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
	"github.com/eligiorbautista/niyoghub-server/internal/gateway"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// All origins allowed; the session credential is the access control.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebsocketHandler upgrades authenticated requests and binds the connection to
// the caller's room.
type WebsocketHandler struct {
	hub    *gateway.Hub
	logger *zap.Logger
}

// NewWebsocketHandler creates a new WebsocketHandler.
func NewWebsocketHandler(hub *gateway.Hub, logger *zap.Logger) *WebsocketHandler {
	return &WebsocketHandler{hub: hub, logger: logger}
}

// HandleConnection handles GET /ws.
func (h *WebsocketHandler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, h.logger, domain.ErrUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	h.hub.ServeConn(conn, identity.UserID.String())
}
