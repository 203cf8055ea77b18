package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
)

// NewRouter wires every handler into the HTTP surface.
func NewRouter(
	auth *AuthHandler,
	messages *MessageHandler,
	notifications *NotificationHandler,
	announcements *AnnouncementHandler,
	ws *WebsocketHandler,
	middleware *AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Auth (no credential required).
	r.HandleFunc("/api/auth/register", auth.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", auth.Login).Methods("POST")

	// Messages.
	r.Handle("/api/messages/send/{id}", middleware.Require(http.HandlerFunc(messages.Send))).Methods("POST")
	r.Handle("/api/messages/{id}", middleware.Require(http.HandlerFunc(messages.History))).Methods("GET")

	// Notifications. markAllAsRead is registered before the {id} PATCH so the
	// literal path wins.
	r.Handle("/api/notifications/create", middleware.Require(http.HandlerFunc(notifications.Create))).Methods("POST")
	r.Handle("/api/notifications/markAllAsRead/{userId}", middleware.Require(http.HandlerFunc(notifications.MarkAllRead))).Methods("PATCH")
	r.Handle("/api/notifications/{userId}", middleware.Require(http.HandlerFunc(notifications.ListForUser))).Methods("GET")
	r.Handle("/api/notifications/{id}", middleware.Require(http.HandlerFunc(notifications.MarkRead))).Methods("PATCH")
	r.Handle("/api/notifications/{id}", middleware.Require(http.HandlerFunc(notifications.Delete))).Methods("DELETE")

	// Announcements (admin only).
	r.Handle("/api/announcements/publish", middleware.RequireRole(domain.RoleAdmin, http.HandlerFunc(announcements.PublishArticle))).Methods("POST")

	// Realtime.
	r.Handle("/ws", middleware.Require(http.HandlerFunc(ws.HandleConnection))).Methods("GET")

	return r
}
