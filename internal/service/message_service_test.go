package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
)

type messageServiceFixture struct {
	conversations *fakeConversationRepo
	messages      *fakeMessageRepo
	attachments   *fakeAttachmentStore
	gateway       *recordingGateway
	service       *MessageService
}

func newMessageServiceFixture() *messageServiceFixture {
	f := &messageServiceFixture{
		conversations: newFakeConversationRepo(),
		messages:      &fakeMessageRepo{},
		attachments:   &fakeAttachmentStore{},
		gateway:       &recordingGateway{},
	}
	f.service = NewMessageService(f.conversations, f.messages, f.attachments, f.gateway, zap.NewNop())
	return f
}

func TestMessageServiceSend(t *testing.T) {
	ctx := context.Background()

	t.Run("first contact creates the conversation and publishes to both rooms", func(t *testing.T) {
		f := newMessageServiceFixture()

		msg, err := f.service.Send(ctx, "u1", "u2", "hi", nil)
		require.NoError(t, err)
		assert.Equal(t, "u1", msg.SenderID)
		assert.Equal(t, "u2", msg.ReceiverID)
		assert.False(t, msg.ID.IsZero())

		require.Len(t, f.conversations.byKey, 1)
		require.Len(t, f.messages.appended, 1)

		require.Len(t, f.gateway.events, 2)
		targets := []string{f.gateway.events[0].UserID, f.gateway.events[1].UserID}
		assert.ElementsMatch(t, []string{"u1", "u2"}, targets)
		for _, ev := range f.gateway.events {
			assert.Equal(t, domain.EventNewMessage, ev.Event)
			assert.False(t, ev.Broadcast)
		}
	})

	t.Run("second send reuses the conversation regardless of direction", func(t *testing.T) {
		f := newMessageServiceFixture()

		first, err := f.service.Send(ctx, "u1", "u2", "hi", nil)
		require.NoError(t, err)
		reply, err := f.service.Send(ctx, "u2", "u1", "hello back", nil)
		require.NoError(t, err)

		assert.Equal(t, first.ConversationID, reply.ConversationID)
		assert.Len(t, f.conversations.byKey, 1)
	})

	t.Run("concurrent first contact from both directions yields one conversation", func(t *testing.T) {
		f := newMessageServiceFixture()

		const senders = 16
		errs := make(chan error, senders)
		var wg sync.WaitGroup
		for i := 0; i < senders; i++ {
			wg.Add(1)
			from, to := "u1", "u2"
			if i%2 == 1 {
				from, to = "u2", "u1"
			}
			go func(from, to string) {
				defer wg.Done()
				_, err := f.service.Send(ctx, from, to, "hello", nil)
				errs <- err
			}(from, to)
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			require.NoError(t, err)
		}

		require.Len(t, f.conversations.byKey, 1)
		require.Len(t, f.messages.appended, senders)
		conv := f.conversations.byKey[domain.PairKey("u1", "u2")]
		for _, m := range f.messages.appended {
			assert.Equal(t, conv.ID, m.ConversationID)
		}
	})

	t.Run("neither text nor attachment fails with no side effects", func(t *testing.T) {
		f := newMessageServiceFixture()

		_, err := f.service.Send(ctx, "u1", "u2", "", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidMessage)
		assert.Empty(t, f.conversations.byKey)
		assert.Empty(t, f.messages.appended)
		assert.Empty(t, f.gateway.events)
	})

	t.Run("attachment-only message is valid", func(t *testing.T) {
		f := newMessageServiceFixture()

		msg, err := f.service.Send(ctx, "u1", "u2", "", &AttachmentUpload{
			MediaType:        "image/png",
			OriginalFilename: "a.PNG",
			Data:             strings.NewReader("bytes"),
		})
		require.NoError(t, err)
		require.NotNil(t, msg.Attachment)
		assert.Equal(t, "images", msg.Attachment.Category)
		assert.True(t, strings.HasSuffix(msg.Attachment.Name, ".PNG"))
		assert.Equal(t, 1, f.attachments.saved)
	})

	t.Run("attachment store failure aborts before any persist", func(t *testing.T) {
		f := newMessageServiceFixture()
		f.attachments.err = errors.New("disk full")

		_, err := f.service.Send(ctx, "u1", "u2", "hi", &AttachmentUpload{
			MediaType:        "image/png",
			OriginalFilename: "a.png",
			Data:             strings.NewReader("bytes"),
		})
		require.Error(t, err)
		assert.Empty(t, f.conversations.byKey)
		assert.Empty(t, f.messages.appended)
		assert.Empty(t, f.gateway.events)
	})

	t.Run("persist failure publishes nothing", func(t *testing.T) {
		f := newMessageServiceFixture()
		f.messages.err = errors.New("write failed")

		_, err := f.service.Send(ctx, "u1", "u2", "hi", nil)
		require.Error(t, err)
		assert.Empty(t, f.gateway.events)
	})
}

func TestMessageServiceHistory(t *testing.T) {
	ctx := context.Background()

	t.Run("no conversation yields an empty list", func(t *testing.T) {
		f := newMessageServiceFixture()

		messages, err := f.service.History(ctx, "u1", "u2")
		require.NoError(t, err)
		assert.NotNil(t, messages)
		assert.Empty(t, messages)
	})

	t.Run("returns appended messages in order for either direction", func(t *testing.T) {
		f := newMessageServiceFixture()

		for _, text := range []string{"one", "two", "three"} {
			_, err := f.service.Send(ctx, "u1", "u2", text, nil)
			require.NoError(t, err)
		}

		messages, err := f.service.History(ctx, "u2", "u1")
		require.NoError(t, err)
		require.Len(t, messages, 3)
		for i := 1; i < len(messages); i++ {
			assert.False(t, messages[i].CreatedAt.Before(messages[i-1].CreatedAt))
		}
		assert.Equal(t, "one", messages[0].Message)
		assert.Equal(t, "three", messages[2].Message)
	})
}
