package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
)

const notificationCollection = "notifications"

// NotificationRepository handles database operations for notifications.
type NotificationRepository struct {
	DB *mongo.Database
}

// NewNotificationRepository creates a new NotificationRepository.
func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

// Create inserts a new notification record.
func (r *NotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	result, err := r.DB.Collection(notificationCollection).InsertOne(ctx, notification)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	notification.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// ListByUser retrieves all notifications for a user.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	cursor, err := r.DB.Collection(notificationCollection).Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	notifications := []*domain.Notification{}
	if err = cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead sets read=true on one notification and returns the updated record.
// Returns domain.ErrNotFound if the id does not exist.
func (r *NotificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID) (*domain.Notification, error) {
	collection := r.DB.Collection(notificationCollection)

	result, err := collection.UpdateByID(ctx, id, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, domain.ErrNotFound
	}

	var notification domain.Notification
	if err := collection.FindOne(ctx, bson.M{"_id": id}).Decode(&notification); err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkAllRead sets read=true on every unread notification for the user and
// returns the number of modified records. Zero unread is a successful no-op.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	result, err := r.DB.Collection(notificationCollection).UpdateMany(ctx,
		bson.M{"user_id": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

// Delete removes the notification and returns the deleted record so callers
// can target the owning user's room. Returns domain.ErrNotFound if absent.
func (r *NotificationRepository) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Notification, error) {
	var notification domain.Notification
	err := r.DB.Collection(notificationCollection).FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &notification, nil
}
