package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
)

// NotificationService owns the notification lifecycle. Every mutation persists
// first and then pushes the matching event to the target user's room.
type NotificationService struct {
	notifications INotificationRepository
	gateway       IRealtimeGateway
	logger        *zap.Logger
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notifications INotificationRepository, gateway IRealtimeGateway, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		gateway:       gateway,
		logger:        logger,
	}
}

// Create persists a new unread notification and publishes it to the target
// user's room.
func (s *NotificationService) Create(ctx context.Context, userID string, nType domain.NotificationType, message string) (*domain.Notification, error) {
	if !nType.Valid() {
		return nil, domain.ErrInvalidNotificationType
	}

	notification := domain.NewNotification(userID, nType, message)
	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	s.gateway.PublishToUser(userID, domain.EventNewNotification, notification)
	return notification, nil
}

// ListForUser returns all notifications for the user.
func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.notifications.ListByUser(ctx, userID)
}

// MarkRead flags one notification as read and publishes the updated record to
// its owner's room. The transition is idempotent.
func (s *NotificationService) MarkRead(ctx context.Context, id string) (*domain.Notification, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	notification, err := s.notifications.MarkRead(ctx, objectID)
	if err != nil {
		return nil, err
	}

	s.gateway.PublishToUser(notification.UserID, domain.EventNotificationRead, notification)
	return notification, nil
}

// MarkAllRead flags every unread notification for the user as read; zero
// unread is a successful no-op. Returns the number of records modified.
func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	count, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}

	s.gateway.PublishToUser(userID, domain.EventAllNotificationsRead, nil)
	return count, nil
}

// Delete removes the notification and tells its owner's room about the
// deletion.
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	notification, err := s.notifications.Delete(ctx, objectID)
	if err != nil {
		return err
	}

	s.gateway.PublishToUser(notification.UserID, domain.EventNotificationDeleted, notification.ID.Hex())
	return nil
}
