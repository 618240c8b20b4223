package services

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastEntryConcurrentWithPings(t *testing.T) {
	hub := NewRealtimeHub()
	upgrader := websocket.Upgrader{}
	registered := make(chan *WSClient, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		cl := &WSClient{UserID: 1, Conn: conn}
		hub.Register(cl)
		registered <- cl
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()

	cl := <-registered

	// Broadcasts and keep-alive pings race on the same connection; both
	// must serialize through the client's writer.
	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			hub.BroadcastEntry(1, EntryEvent{Type: "food_entry", Action: "created"})
		}()
		go func() {
			defer wg.Done()
			_ = cl.Ping()
		}()
	}
	wg.Wait()

	// Ping frames are consumed transparently by the reader; every data
	// message must arrive intact.
	for i := 0; i < n; i++ {
		require.NoError(t, client.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, msg, err := client.ReadMessage()
		require.NoError(t, err)
		assert.Contains(t, string(msg), "food_entry")
	}
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewRealtimeHub()
	upgrader := websocket.Upgrader{}
	registered := make(chan *WSClient, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		cl := &WSClient{UserID: 7, Conn: conn}
		hub.Register(cl)
		registered <- cl
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer client.Close()

	cl := <-registered
	hub.Unregister(cl)

	// Broadcasting to a user with no clients is a no-op.
	hub.BroadcastEntry(7, EntryEvent{Type: "workout_entry", Action: "deleted"})
}
