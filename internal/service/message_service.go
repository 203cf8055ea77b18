package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
)

// MessageService orchestrates the send flow: classify and store the
// attachment, persist the message, then publish the realtime event. Nothing is
// published before the persist succeeds; once persisted, publish problems are
// logged and never rolled back.
type MessageService struct {
	conversations IConversationRepository
	messages      IMessageRepository
	attachments   IAttachmentStore
	gateway       IRealtimeGateway
	logger        *zap.Logger
}

// NewMessageService creates a new MessageService.
func NewMessageService(
	conversations IConversationRepository,
	messages IMessageRepository,
	attachments IAttachmentStore,
	gateway IRealtimeGateway,
	logger *zap.Logger,
) *MessageService {
	return &MessageService{
		conversations: conversations,
		messages:      messages,
		attachments:   attachments,
		gateway:       gateway,
		logger:        logger,
	}
}

// Send delivers a direct message from sender to receiver. At least one of text
// or attachment must be present. Any failure before the persisted write aborts
// with no side effects; after it, the message is durable regardless of
// realtime delivery.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID string, text string, attachment *AttachmentUpload) (*domain.Message, error) {
	if text == "" && attachment == nil {
		return nil, domain.ErrInvalidMessage
	}

	var attachmentRef *domain.Attachment
	if attachment != nil {
		ref, err := s.attachments.Save(attachment.MediaType, attachment.OriginalFilename, attachment.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to store attachment: %w", err)
		}
		attachmentRef = ref
	}

	conversation, _, err := s.conversations.FindOrCreate(ctx, senderID, receiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve conversation: %w", err)
	}

	message, err := domain.NewMessage(senderID, receiverID, text, attachmentRef)
	if err != nil {
		return nil, err
	}
	if err := s.messages.Append(ctx, conversation.ID, message); err != nil {
		return nil, fmt.Errorf("failed to persist message: %w", err)
	}

	// Persisted; realtime notice is best-effort from here on. The event is
	// targeted at the two participants' rooms only.
	s.gateway.PublishToUser(receiverID, domain.EventNewMessage, message)
	s.gateway.PublishToUser(senderID, domain.EventNewMessage, message)

	return message, nil
}

// History returns all messages between the two users sorted ascending by
// creation time. No conversation yet means an empty list, not an error.
func (s *MessageService) History(ctx context.Context, userID1, userID2 string) ([]*domain.Message, error) {
	conversation, err := s.conversations.FindByParticipantPair(ctx, userID1, userID2)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve conversation: %w", err)
	}
	if conversation == nil {
		return []*domain.Message{}, nil
	}
	return s.messages.ListByConversation(ctx, conversation.ID)
}
