package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType classifies what a notification is about.
type NotificationType string

const (
	NotificationSystem       NotificationType = "system"        // updates, maintenance
	NotificationUserActivity NotificationType = "user_activity" // user actions
	NotificationMessage      NotificationType = "message"       // new messages
	NotificationReminder     NotificationType = "reminder"      // events, deadlines, tasks
	NotificationSecurity     NotificationType = "security"      // password changes, login attempts
	NotificationPromotion    NotificationType = "promotion"     // promotional notices
	NotificationEvent        NotificationType = "event"         // upcoming or new events
)

// Valid reports whether t is one of the known notification types.
func (t NotificationType) Valid() bool {
	switch t {
	case NotificationSystem, NotificationUserActivity, NotificationMessage,
		NotificationReminder, NotificationSecurity, NotificationPromotion,
		NotificationEvent:
		return true
	}
	return false
}

// Notification is a per-user notification record. The read flag is the only
// mutable field.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Type      NotificationType   `bson:"type" json:"type"`
	Message   string             `bson:"message" json:"message"`
	Read      bool               `bson:"read" json:"read"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// NewNotification creates an unread notification for the target user.
func NewNotification(userID string, nType NotificationType, message string) *Notification {
	return &Notification{
		UserID:    userID,
		Type:      nType,
		Message:   message,
		Read:      false,
		CreatedAt: time.Now(),
	}
}
