package gateway

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/eligiorbautista/niyoghub-server/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestClient(h *Hub, userID string) *Client {
	// No Conn and no pumps: tests read the Send channel directly.
	c := &Client{UserID: userID, Hub: h, Send: make(chan []byte, 4)}
	h.addClient(c)
	return c
}

func receiveEvent(t *testing.T, c *Client) domain.Event {
	t.Helper()
	select {
	case raw := <-c.Send:
		var ev domain.Event
		require.NoError(t, json.Unmarshal(raw, &ev))
		return ev
	default:
		t.Fatal("no event delivered")
		return domain.Event{}
	}
}

func TestPublishToUser(t *testing.T) {
	t.Run("delivers only to the target room", func(t *testing.T) {
		h := NewHub(zap.NewNop())
		u9 := newTestClient(h, "u9")
		other := newTestClient(h, "u3")

		h.PublishToUser("u9", domain.EventNewNotification, map[string]string{"id": "n1"})

		ev := receiveEvent(t, u9)
		assert.Equal(t, domain.EventNewNotification, ev.Name)
		assert.Empty(t, other.Send)
	})

	t.Run("all connections of one user receive the event", func(t *testing.T) {
		h := NewHub(zap.NewNop())
		phone := newTestClient(h, "u1")
		laptop := newTestClient(h, "u1")
		require.Equal(t, 2, h.ConnectionCount("u1"))

		h.PublishToUser("u1", domain.EventNewMessage, "payload")

		assert.Equal(t, domain.EventNewMessage, receiveEvent(t, phone).Name)
		assert.Equal(t, domain.EventNewMessage, receiveEvent(t, laptop).Name)
	})

	t.Run("empty room drops the event", func(t *testing.T) {
		h := NewHub(zap.NewNop())
		// Must not panic or block.
		h.PublishToUser("nobody", domain.EventNewNotification, nil)
	})

	t.Run("slow client does not block the publisher", func(t *testing.T) {
		h := NewHub(zap.NewNop())
		c := &Client{UserID: "u1", Hub: h, Send: make(chan []byte)} // unbuffered, never read
		h.addClient(c)

		done := make(chan struct{})
		go func() {
			h.PublishToUser("u1", domain.EventNewMessage, "x")
			close(done)
		}()
		<-done
	})
}

func TestBroadcast(t *testing.T) {
	h := NewHub(zap.NewNop())
	a := newTestClient(h, "u1")
	b := newTestClient(h, "u2")

	h.Broadcast(domain.EventArticlePublished, map[string]string{"article_id": "a1"})

	assert.Equal(t, domain.EventArticlePublished, receiveEvent(t, a).Name)
	assert.Equal(t, domain.EventArticlePublished, receiveEvent(t, b).Name)
}

func TestRoomTeardown(t *testing.T) {
	h := NewHub(zap.NewNop())
	c := newTestClient(h, "u1")
	require.Equal(t, 1, h.ConnectionCount("u1"))

	h.removeClient(c)
	assert.Equal(t, 0, h.ConnectionCount("u1"))

	// Send channel is closed so the write pump exits.
	_, open := <-c.Send
	assert.False(t, open)

	// Removing twice is harmless.
	h.removeClient(c)
}
