package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/fleetworks/conductor/pkg/bus"
)

// ClientMessage is a frame sent by a WebSocket client. Clients join and
// leave rooms ("console" or "ticket:<id>") with subscribe/unsubscribe
// actions; every connection starts in the console room.
type ClientMessage struct {
	Action string `json:"action"`
	Topic  string `json:"topic,omitempty"`
}

// ConnManager bridges the event bus onto WebSocket connections. Every
// connection holds its own bus subscription, so a slow client overflows its
// own buffer (and receives a dropped marker) without affecting anyone else.
type ConnManager struct {
	bus          *bus.Bus
	writeTimeout time.Duration
	logger       *slog.Logger

	mu          sync.RWMutex
	connections map[string]*wsConn
}

// wsConn is a single WebSocket client.
//
// rooms is read by the pump goroutine and written by the read loop, so it is
// guarded by roomMu. Writes to the socket itself may come from both
// goroutines; the websocket package serializes concurrent writers.
type wsConn struct {
	id     string
	conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc

	roomMu sync.RWMutex
	rooms  map[bus.Topic]bool
}

func (c *wsConn) wants(topic bus.Topic) bool {
	c.roomMu.RLock()
	defer c.roomMu.RUnlock()
	return c.rooms[topic]
}

// NewConnManager creates a ConnManager publishing from the given bus.
func NewConnManager(b *bus.Bus, writeTimeout time.Duration, logger *slog.Logger) *ConnManager {
	return &ConnManager{
		bus:          b,
		writeTimeout: writeTimeout,
		logger:       logger,
		connections:  make(map[string]*wsConn),
	}
}

// HandleConnection manages the lifecycle of a single WebSocket connection.
// Called by the HTTP handler after upgrade; blocks until the connection
// closes.
func (m *ConnManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	c := &wsConn{
		id:     uuid.New().String(),
		conn:   conn,
		ctx:    ctx,
		cancel: cancel,
		rooms:  map[bus.Topic]bool{bus.TopicConsole: true},
	}

	m.register(c)
	defer m.unregister(c)

	events, stop := m.bus.Subscribe()
	defer stop()

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": c.id,
	})

	go m.pump(c, events)

	// Read loop. Room changes happen here; anything else closes the
	// connection.
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			m.logger.Warn("Invalid WebSocket frame",
				"connection_id", c.id, "error", err)
			continue
		}

		m.handleClientMessage(c, &msg)
	}
}

// ActiveConnections returns the count of connected clients.
func (m *ConnManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

// pump forwards bus events selected by the client's rooms. Dropped markers
// pass unconditionally so the client learns its buffer overflowed even when
// the flushing event belongs to a room it left.
func (m *ConnManager) pump(c *wsConn, events <-chan bus.Event) {
	for {
		select {
		case <-c.ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				c.cancel()
				return
			}
			if evt.Type != bus.TypeDropped && !c.wants(evt.Topic) {
				continue
			}
			data, err := json.Marshal(evt)
			if err != nil {
				m.logger.Warn("Failed to marshal bus event",
					"type", string(evt.Type), "error", err)
				continue
			}
			if err := m.sendRaw(c, data); err != nil {
				m.logger.Warn("WebSocket send failed, dropping client",
					"connection_id", c.id, "error", err)
				c.cancel()
				return
			}
		}
	}
}

func (m *ConnManager) handleClientMessage(c *wsConn, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		topic, ok := parseTopic(msg.Topic)
		if !ok {
			m.sendJSON(c, map[string]string{"type": "error", "message": "unknown topic: " + msg.Topic})
			return
		}
		c.roomMu.Lock()
		c.rooms[topic] = true
		c.roomMu.Unlock()
		m.sendJSON(c, map[string]string{
			"type":  "subscription.confirmed",
			"topic": string(topic),
		})

	case "unsubscribe":
		topic, ok := parseTopic(msg.Topic)
		if !ok {
			m.sendJSON(c, map[string]string{"type": "error", "message": "unknown topic: " + msg.Topic})
			return
		}
		c.roomMu.Lock()
		delete(c.rooms, topic)
		c.roomMu.Unlock()

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})

	default:
		m.sendJSON(c, map[string]string{"type": "error", "message": "unknown action: " + msg.Action})
	}
}

// parseTopic validates a client-supplied room name.
func parseTopic(raw string) (bus.Topic, bool) {
	if raw == string(bus.TopicConsole) {
		return bus.TopicConsole, true
	}
	rest, ok := strings.CutPrefix(raw, "ticket:")
	if !ok {
		return "", false
	}
	id, err := strconv.Atoi(rest)
	if err != nil || id <= 0 {
		return "", false
	}
	return bus.TicketTopic(id), true
}

func (m *ConnManager) register(c *wsConn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.id] = c
}

func (m *ConnManager) unregister(c *wsConn) {
	m.mu.Lock()
	delete(m.connections, c.id)
	m.mu.Unlock()

	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

// sendJSON marshals and sends a control message to a single connection.
func (m *ConnManager) sendJSON(c *wsConn, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		m.logger.Warn("Failed to marshal WebSocket message",
			"connection_id", c.id, "error", err)
		return
	}
	if err := m.sendRaw(c, data); err != nil {
		m.logger.Warn("Failed to send WebSocket message",
			"connection_id", c.id, "error", err)
	}
}

// sendRaw sends raw bytes to a single connection with a write timeout.
func (m *ConnManager) sendRaw(c *wsConn, data []byte) error {
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	return c.conn.Write(writeCtx, websocket.MessageText, data)
}
