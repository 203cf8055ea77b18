package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attachment references a stored upload: the category folder it was classified
// into, its generated storage name and the relative path under the upload root.
type Attachment struct {
	Category string `bson:"category" json:"category"`
	Name     string `bson:"name" json:"name"`
	Path     string `bson:"path" json:"path"`
}

// Message is a single direct message, owned by exactly one conversation.
// Messages are immutable once created.
type Message struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ConversationID primitive.ObjectID `bson:"conversation_id" json:"conversation_id"`
	SenderID       string             `bson:"sender_id" json:"sender_id"`
	ReceiverID     string             `bson:"receiver_id" json:"receiver_id"`
	Message        string             `bson:"message" json:"message"`
	Attachment     *Attachment        `bson:"attachment,omitempty" json:"attachment,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// NewMessage creates a message for a sender/receiver pair. At least one of
// text or attachment must be present.
func NewMessage(senderID, receiverID, text string, attachment *Attachment) (*Message, error) {
	if text == "" && attachment == nil {
		return nil, ErrInvalidMessage
	}
	return &Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Message:    text,
		Attachment: attachment,
		CreatedAt:  time.Now(),
	}, nil
}
