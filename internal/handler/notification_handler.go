package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
	"github.com/eligiorbautista/niyoghub-server/internal/service"
)

// NotificationHandler serves the notification REST surface.
type NotificationHandler struct {
	notifications service.INotificationService
	logger        *zap.Logger
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifications service.INotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, logger: logger}
}

type createNotificationRequest struct {
	UserID  string                  `json:"user_id"`
	Type    domain.NotificationType `json:"type"`
	Message string                  `json:"message"`
}

// Create handles POST /api/notifications/create.
func (h *NotificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body."})
		return
	}
	if req.UserID == "" || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "user_id and message are required."})
		return
	}

	notification, err := h.notifications.Create(r.Context(), req.UserID, req.Type, req.Message)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, notification)
}

// ListForUser handles GET /api/notifications/{userId}.
func (h *NotificationHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notifications.ListForUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

// MarkRead handles PATCH /api/notifications/{id}.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	notification, err := h.notifications.MarkRead(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, notification)
}

type markAllReadResponse struct {
	Message  string `json:"message"`
	Modified int64  `json:"modified"`
}

// MarkAllRead handles PATCH /api/notifications/markAllAsRead/{userId}.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	count, err := h.notifications.MarkAllRead(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, markAllReadResponse{
		Message:  "All notifications marked as read",
		Modified: count,
	})
}

// Delete handles DELETE /api/notifications/{id}.
func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.notifications.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Notification deleted successfully"})
}
