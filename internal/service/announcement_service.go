package service

import (
	"github.com/eligiorbautista/niyoghub-server/internal/domain"
)

// AnnouncementService fans platform-wide events out to every live connection.
// Article storage itself lives with the article collaborator; this is only the
// realtime hook it calls after publishing.
type AnnouncementService struct {
	gateway IRealtimeGateway
}

// NewAnnouncementService creates a new AnnouncementService.
func NewAnnouncementService(gateway IRealtimeGateway) *AnnouncementService {
	return &AnnouncementService{gateway: gateway}
}

// ArticlePublishedPayload is the broadcast payload for a published article.
type ArticlePublishedPayload struct {
	ArticleID string `json:"article_id"`
	Title     string `json:"title"`
}

// PublishArticle broadcasts the published article to all connections.
func (s *AnnouncementService) PublishArticle(articleID, title string) {
	s.gateway.Broadcast(domain.EventArticlePublished, ArticlePublishedPayload{
		ArticleID: articleID,
		Title:     title,
	})
}
