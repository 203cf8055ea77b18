package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
)

// --- Service Interfaces ---

// IMessageService defines the interface for the message delivery flow.
type IMessageService interface {
	Send(ctx context.Context, senderID, receiverID string, text string, attachment *AttachmentUpload) (*domain.Message, error)
	History(ctx context.Context, userID1, userID2 string) ([]*domain.Message, error)
}

// INotificationService defines the interface for notification operations.
type INotificationService interface {
	Create(ctx context.Context, userID string, nType domain.NotificationType, message string) (*domain.Notification, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id string) error
}

// IAuthService defines the interface for authentication and identity
// resolution.
type IAuthService interface {
	Register(email, fullName, password string) (*domain.User, string, error)
	Login(email, password string) (*domain.User, string, error)
	Resolve(credential string) (*domain.Identity, error)
}

// IAnnouncementService defines the interface for platform-wide announcements.
type IAnnouncementService interface {
	PublishArticle(articleID, title string)
}

// --- Repository Interfaces ---

// IConversationRepository defines the interface for conversation persistence.
type IConversationRepository interface {
	FindOrCreate(ctx context.Context, userID1, userID2 string) (*domain.Conversation, bool, error)
	FindByParticipantPair(ctx context.Context, userID1, userID2 string) (*domain.Conversation, error)
}

// IMessageRepository defines the interface for message persistence.
type IMessageRepository interface {
	Append(ctx context.Context, conversationID primitive.ObjectID, message *domain.Message) error
	ListByConversation(ctx context.Context, conversationID primitive.ObjectID) ([]*domain.Message, error)
}

// INotificationRepository defines the interface for notification persistence.
type INotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*domain.Notification, error)
}

// IUserRepository defines the interface for user persistence.
type IUserRepository interface {
	CreateUser(user *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(id uuid.UUID) (*domain.User, error)
}

// --- Collaborator Interfaces ---

// IAttachmentStore classifies and durably stores uploaded attachments.
type IAttachmentStore interface {
	Save(mediaType, originalFilename string, r io.Reader) (*domain.Attachment, error)
}

// IRealtimeGateway pushes events to live connections. Delivery is
// fire-and-forget; implementations never report per-connection failures.
type IRealtimeGateway interface {
	PublishToUser(userID string, event string, payload interface{})
	Broadcast(event string, payload interface{})
}

// AttachmentUpload carries one multipart upload into the send flow.
type AttachmentUpload struct {
	MediaType        string
	OriginalFilename string
	Data             io.Reader
}
