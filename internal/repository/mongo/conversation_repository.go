package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
)

const conversationCollection = "conversations"

// ConversationRepository handles database operations for conversations.
// Lookups are keyed by the normalized participant-pair key, which carries a
// unique index so concurrent first-contact sends cannot create duplicates.
type ConversationRepository struct {
	DB *mongo.Database
}

// NewConversationRepository creates a new ConversationRepository and ensures
// the unique pair-key index exists.
func NewConversationRepository(ctx context.Context, db *mongo.Database) (*ConversationRepository, error) {
	r := &ConversationRepository{DB: db}

	idxCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	_, err := db.Collection(conversationCollection).Indexes().CreateOne(idxCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "pair_key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pair_key index: %w", err)
	}
	return r, nil
}

// FindOrCreate returns the unique conversation for the unordered pair
// {userID1, userID2}, creating it if absent. The returned bool reports whether
// the conversation was newly created. Safe under concurrent first contact:
// a duplicate-key insert falls back to the winning document.
func (r *ConversationRepository) FindOrCreate(ctx context.Context, userID1, userID2 string) (*domain.Conversation, bool, error) {
	collection := r.DB.Collection(conversationCollection)
	key := domain.PairKey(userID1, userID2)

	conv, err := r.findByPairKey(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if conv != nil {
		return conv, false, nil
	}

	newConv := domain.NewConversation(userID1, userID2)
	result, err := collection.InsertOne(ctx, newConv)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost the race; the other writer's conversation is the one.
			conv, ferr := r.findByPairKey(ctx, key)
			if ferr != nil {
				return nil, false, ferr
			}
			if conv == nil {
				return nil, false, fmt.Errorf("conversation vanished after duplicate key for pair %s", key)
			}
			return conv, false, nil
		}
		return nil, false, err
	}

	newConv.ID = result.InsertedID.(primitive.ObjectID)
	return newConv, true, nil
}

// FindByParticipantPair returns the conversation for the unordered pair, or
// nil when none exists.
func (r *ConversationRepository) FindByParticipantPair(ctx context.Context, userID1, userID2 string) (*domain.Conversation, error) {
	return r.findByPairKey(ctx, domain.PairKey(userID1, userID2))
}

func (r *ConversationRepository) findByPairKey(ctx context.Context, key string) (*domain.Conversation, error) {
	var conv domain.Conversation
	err := r.DB.Collection(conversationCollection).FindOne(ctx, bson.M{"pair_key": key}).Decode(&conv)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &conv, nil
}
