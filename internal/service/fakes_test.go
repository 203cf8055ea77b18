package service

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
	"github.com/eligiorbautista/niyoghub-server/internal/upload"
)

type fakeConversationRepo struct {
	mu    sync.Mutex
	byKey map[string]*domain.Conversation
	err   error
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{byKey: make(map[string]*domain.Conversation)}
}

func (f *fakeConversationRepo) FindOrCreate(ctx context.Context, a, b string) (*domain.Conversation, bool, error) {
	if f.err != nil {
		return nil, false, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := domain.PairKey(a, b)
	if conv, ok := f.byKey[key]; ok {
		return conv, false, nil
	}
	conv := domain.NewConversation(a, b)
	conv.ID = primitive.NewObjectID()
	f.byKey[key] = conv
	return conv, true, nil
}

func (f *fakeConversationRepo) FindByParticipantPair(ctx context.Context, a, b string) (*domain.Conversation, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byKey[domain.PairKey(a, b)], nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	appended []*domain.Message
	err      error
}

func (f *fakeMessageRepo) Append(ctx context.Context, conversationID primitive.ObjectID, message *domain.Message) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	message.ID = primitive.NewObjectID()
	message.ConversationID = conversationID
	f.appended = append(f.appended, message)
	return nil
}

func (f *fakeMessageRepo) ListByConversation(ctx context.Context, conversationID primitive.ObjectID) ([]*domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	messages := []*domain.Message{}
	for _, m := range f.appended {
		if m.ConversationID == conversationID {
			messages = append(messages, m)
		}
	}
	return messages, nil
}

type fakeAttachmentStore struct {
	saved int
	err   error
}

func (f *fakeAttachmentStore) Save(mediaType, originalFilename string, r io.Reader) (*domain.Attachment, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved++
	name := upload.StorageName(originalFilename)
	category := upload.Classify(mediaType)
	return &domain.Attachment{Category: category, Name: name, Path: category + "/" + name}, nil
}

type fakeNotificationRepo struct {
	mu      sync.Mutex
	records map[primitive.ObjectID]*domain.Notification
	order   []primitive.ObjectID
	err     error
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{records: make(map[primitive.ObjectID]*domain.Notification)}
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	n.ID = primitive.NewObjectID()
	f.records[n.ID] = n
	f.order = append(f.order, n.ID)
	return nil
}

func (f *fakeNotificationRepo) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	notifications := []*domain.Notification{}
	for _, id := range f.order {
		if n, ok := f.records[id]; ok && n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	return notifications, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id primitive.ObjectID) (*domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	n.Read = true
	return n, nil
}

func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, n := range f.records {
		if n.UserID == userID && !n.Read {
			n.Read = true
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) Delete(ctx context.Context, id primitive.ObjectID) (*domain.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n, ok := f.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(f.records, id)
	return n, nil
}

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*domain.User
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) CreateUser(user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetUserByID(id uuid.UUID) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type publishedEvent struct {
	UserID    string // empty for broadcasts
	Event     string
	Payload   interface{}
	Broadcast bool
}

type recordingGateway struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (g *recordingGateway) PublishToUser(userID string, event string, payload interface{}) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.events = append(g.events, publishedEvent{UserID: userID, Event: event, Payload: payload})
}

func (g *recordingGateway) Broadcast(event string, payload interface{}) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.events = append(g.events, publishedEvent{Event: event, Payload: payload, Broadcast: true})
}
