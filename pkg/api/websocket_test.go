package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetworks/conductor/pkg/bus"
)

// wsFrame is the union of control frames and serialized bus events a client
// can receive.
type wsFrame struct {
	Type         string         `json:"type"`
	Topic        string         `json:"topic"`
	Message      string         `json:"message"`
	ConnectionID string         `json:"connection_id"`
	TicketID     int            `json:"ticket_id"`
	Payload      map[string]any `json:"payload"`
}

func newWSServer(t *testing.T) (*ConnManager, *bus.Bus, string) {
	t.Helper()
	b := bus.New(testLogger())
	t.Cleanup(b.Close)
	mgr := NewConnManager(b, 5*time.Second, testLogger())

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		mgr.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(srv.Close)

	return mgr, b, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dialWS(t *testing.T, ctx context.Context, url string) *websocket.Conn {
	t.Helper()
	conn, resp, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readFrame(t *testing.T, ctx context.Context, conn *websocket.Conn) wsFrame {
	t.Helper()
	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var f wsFrame
	require.NoError(t, json.Unmarshal(data, &f))
	return f
}

func sendFrame(t *testing.T, ctx context.Context, conn *websocket.Conn, msg ClientMessage) {
	t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func TestConnManager_ConsoleRoomByDefault(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, b, url := newWSServer(t)

	conn := dialWS(t, ctx, url)
	hello := readFrame(t, ctx, conn)
	require.Equal(t, "connection.established", hello.Type)
	assert.NotEmpty(t, hello.ConnectionID)

	b.PublishTicket(7, bus.TypeMessage, map[string]any{"role": "assistant"})

	// Ticket events mirror onto the console topic; a fresh connection only
	// holds the console room, so exactly the console copy arrives.
	evt := readFrame(t, ctx, conn)
	assert.Equal(t, string(bus.TypeMessage), evt.Type)
	assert.Equal(t, string(bus.TopicConsole), evt.Topic)
	assert.Equal(t, 7, evt.TicketID)

	b.PublishTicket(7, bus.TypeUsage, map[string]any{"total_tokens": 512})
	next := readFrame(t, ctx, conn)
	assert.Equal(t, string(bus.TypeUsage), next.Type)
	assert.Equal(t, string(bus.TopicConsole), next.Topic)
}

func TestConnManager_TicketRoomFiltering(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, b, url := newWSServer(t)

	conn := dialWS(t, ctx, url)
	require.Equal(t, "connection.established", readFrame(t, ctx, conn).Type)

	sendFrame(t, ctx, conn, ClientMessage{Action: "subscribe", Topic: "ticket:7"})
	confirmed := readFrame(t, ctx, conn)
	require.Equal(t, "subscription.confirmed", confirmed.Type)
	assert.Equal(t, "ticket:7", confirmed.Topic)

	sendFrame(t, ctx, conn, ClientMessage{Action: "unsubscribe", Topic: "console"})
	// The read loop handles frames in order, so a pong means the
	// unsubscribe has been applied.
	sendFrame(t, ctx, conn, ClientMessage{Action: "ping"})
	require.Equal(t, "pong", readFrame(t, ctx, conn).Type)

	b.PublishTicket(9, bus.TypeTool, map[string]any{"tool": "shell"})
	b.PublishTicket(7, bus.TypeTicketStatus, map[string]any{"status": "in_progress"})

	// Both copies of the ticket 9 event are filtered; the next frame is the
	// ticket 7 event on its own topic.
	evt := readFrame(t, ctx, conn)
	assert.Equal(t, string(bus.TypeTicketStatus), evt.Type)
	assert.Equal(t, "ticket:7", evt.Topic)
	assert.Equal(t, 7, evt.TicketID)
}

func TestConnManager_RejectsUnknownTopic(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, _, url := newWSServer(t)

	conn := dialWS(t, ctx, url)
	require.Equal(t, "connection.established", readFrame(t, ctx, conn).Type)

	sendFrame(t, ctx, conn, ClientMessage{Action: "subscribe", Topic: "ticket:-1"})

	errFrame := readFrame(t, ctx, conn)
	assert.Equal(t, "error", errFrame.Type)
	assert.Contains(t, errFrame.Message, "unknown topic")
}

func TestConnManager_TracksActiveConnections(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	mgr, _, url := newWSServer(t)

	conn := dialWS(t, ctx, url)
	require.Equal(t, "connection.established", readFrame(t, ctx, conn).Type)
	assert.Equal(t, 1, mgr.ActiveConnections())

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, ""))
	require.Eventually(t, func() bool {
		return mgr.ActiveConnections() == 0
	}, 5*time.Second, 20*time.Millisecond)
}
