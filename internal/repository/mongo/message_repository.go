package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
)

const messageCollection = "messages"

// MessageRepository handles database operations for direct messages.
type MessageRepository struct {
	DB *mongo.Database
}

// NewMessageRepository creates a new MessageRepository.
func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{DB: db}
}

// Append inserts the message and pushes its id onto the conversation's ordered
// message list. A message must never be durable without being reachable from
// its conversation, so a failed push removes the inserted message again.
func (r *MessageRepository) Append(ctx context.Context, conversationID primitive.ObjectID, message *domain.Message) error {
	message.ConversationID = conversationID

	messages := r.DB.Collection(messageCollection)
	result, err := messages.InsertOne(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	message.ID = result.InsertedID.(primitive.ObjectID)

	conversations := r.DB.Collection(conversationCollection)
	_, err = conversations.UpdateByID(ctx, conversationID, bson.M{
		"$push": bson.M{"messages": message.ID},
	})
	if err != nil {
		// Undo the insert so the message is not durable while unreachable.
		_, _ = messages.DeleteOne(ctx, bson.M{"_id": message.ID})
		return fmt.Errorf("failed to link message to conversation: %w", err)
	}
	return nil
}

// ListByConversation retrieves all messages for a conversation sorted
// ascending by creation time.
func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID primitive.ObjectID) ([]*domain.Message, error) {
	collection := r.DB.Collection(messageCollection)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := collection.Find(ctx, bson.M{"conversation_id": conversationID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	messages := []*domain.Message{}
	if err = cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
