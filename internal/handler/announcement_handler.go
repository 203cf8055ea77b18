package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/eligiorbautista/niyoghub-server/internal/service"
)

// AnnouncementHandler lets the article collaborator trigger platform-wide
// broadcasts. Restricted to admin identities.
type AnnouncementHandler struct {
	announcements service.IAnnouncementService
	logger        *zap.Logger
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(announcements service.IAnnouncementService, logger *zap.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{announcements: announcements, logger: logger}
}

type publishArticleRequest struct {
	ArticleID string `json:"article_id"`
	Title     string `json:"title"`
}

// PublishArticle handles POST /api/announcements/publish.
func (h *AnnouncementHandler) PublishArticle(w http.ResponseWriter, r *http.Request) {
	var req publishArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body."})
		return
	}
	if req.ArticleID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "article_id is required."})
		return
	}

	h.announcements.PublishArticle(req.ArticleID, req.Title)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Article broadcast sent"})
}
