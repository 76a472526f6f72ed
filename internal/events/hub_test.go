package events

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishReachesClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(nil)
	r := gin.New()
	r.GET("/ws", WSHandler(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	_, welcome, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"welcome"}`, string(welcome))

	require.Eventually(t, func() bool { return hub.Stats().WSClients == 1 }, time.Second, 10*time.Millisecond)

	hub.Publish(Event{Type: RanksUpdated, Year: 2025, Count: 31})

	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	var got Event
	require.NoError(t, json.Unmarshal(msg, &got))
	assert.Equal(t, RanksUpdated, got.Type)
	assert.Equal(t, 2025, got.Year)
	assert.Equal(t, 31, got.Count)
	assert.False(t, got.At.IsZero())

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.Stats().WSClients == 0 }, time.Second, 10*time.Millisecond)
}

func TestHub_PublishWithoutClients(t *testing.T) {
	hub := NewHub(nil)
	hub.Publish(Event{Type: ShowsReseeded, Count: 3})
	assert.Equal(t, 0, hub.Stats().WSClients)
}

func TestSubscribe_DeliversEventsUntilCancelled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hub := NewHub(nil)
	r := gin.New()
	r.GET("/ws", WSHandler(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Event, 4)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Subscribe(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", func(e Event) { got <- e })
	}()

	require.Eventually(t, func() bool { return hub.Stats().WSClients == 1 }, time.Second, 10*time.Millisecond)
	hub.Publish(Event{Type: ShowsReseeded, Count: 38})

	select {
	case e := <-got:
		assert.Equal(t, ShowsReseeded, e.Type)
		assert.Equal(t, 38, e.Count)
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}

	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("subscribe did not return after cancel")
	}
}

func TestSubscribe_DialError(t *testing.T) {
	err := Subscribe(context.Background(), "ws://127.0.0.1:1/ws", func(Event) {})
	assert.Error(t, err)
}
