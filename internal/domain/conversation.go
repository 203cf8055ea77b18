package domain

import (
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Conversation is the persistent record of the message thread between exactly
// two users. The participant pair is immutable after creation; the only
// mutation is appending a message reference.
type Conversation struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	PairKey      string               `bson:"pair_key" json:"-"`
	Participants []string             `bson:"participants" json:"participants"`
	Messages     []primitive.ObjectID `bson:"messages" json:"messages"`
	CreatedAt    time.Time            `bson:"created_at" json:"created_at"`
}

// PairKey derives the order-independent lookup key for two user ids, so that
// the pair {A,B} and {B,A} resolve to the same conversation.
func PairKey(userID1, userID2 string) string {
	ids := []string{userID1, userID2}
	sort.Strings(ids)
	return strings.Join(ids, "_")
}

// NewConversation creates an empty conversation for the given pair.
func NewConversation(userID1, userID2 string) *Conversation {
	return &Conversation{
		PairKey:      PairKey(userID1, userID2),
		Participants: []string{userID1, userID2},
		Messages:     []primitive.ObjectID{},
		CreatedAt:    time.Now(),
	}
}
