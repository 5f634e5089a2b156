// ABOUTME: Unit tests for the WebSocket relay client
// ABOUTME: Runs against an in-process echo server via httptest
package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func echoHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

func TestRelay_Connect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer server.Close()

	wsURL := "ws" + server.URL[4:]

	relay := NewRelay(wsURL)
	require.NoError(t, relay.Connect(context.Background()))
	defer relay.Close()

	assert.True(t, relay.IsConnected())
}

func TestRelay_SendInstruction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(echoHandler))
	defer server.Close()

	relay := NewRelay("ws" + server.URL[4:])
	require.NoError(t, relay.Connect(context.Background()))
	defer relay.Close()

	ins := Instruction{ID: "abc", Kind: "review", Title: "Review", Text: "fix bug"}
	require.NoError(t, relay.SendInstruction(ins))

	select {
	case msg := <-relay.Incoming():
		var got Instruction
		require.NoError(t, json.Unmarshal(msg, &got))
		assert.Equal(t, ins, got)
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for echo")
	}
}

func TestRelay_ConnectFailure(t *testing.T) {
	relay := NewRelay("ws://localhost:1")
	err := relay.Connect(context.Background())

	assert.Error(t, err)
	assert.False(t, relay.IsConnected())
}

func TestRelay_SendWhenDisconnected(t *testing.T) {
	relay := NewRelay("ws://localhost:1")
	assert.Error(t, relay.Send([]byte("x")))
}
