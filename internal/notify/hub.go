package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

type message struct {
	Namespace string  `json:"namespace"`
	Payload   Payload `json:"payload"`
}

type conn struct {
	ws   *websocket.Conn
	send chan []byte
}

// writeLoop is the only writer of the connection.
func (c *conn) writeLoop() {
	for data := range c.send {
		c.ws.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
			c.ws.Close()
			return
		}
	}
}

// Hub pushes payloads to the websocket connections of each recipient.
type Hub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu    sync.RWMutex
	conns map[string]map[*conn]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger: logger.With(slog.String("component", "ws_hub")),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// connections are authenticated by token, not by cookies
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[string]map[*conn]struct{}),
	}
}

// Serve upgrades the request and keeps the connection registered for
// recipientID until the client goes away. Client messages are discarded.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, recipientID string) error {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &conn{ws: ws, send: make(chan []byte, sendBuffer)}
	h.register(recipientID, c)
	go c.writeLoop()
	defer func() {
		h.unregister(recipientID, c)
		ws.Close()
	}()

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return nil
		}
	}
}

func (h *Hub) Emit(_ context.Context, namespace, recipientID string, payload Payload) error {
	data, err := json.Marshal(message{Namespace: namespace, Payload: payload})
	if err != nil {
		return err
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.conns[recipientID] {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("websocket send buffer full, dropping payload", slog.String("recipient", recipientID))
		}
	}
	return nil
}

// Connections returns the number of open connections of a recipient.
func (h *Hub) Connections(recipientID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[recipientID])
}

func (h *Hub) register(recipientID string, c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[recipientID] == nil {
		h.conns[recipientID] = make(map[*conn]struct{})
	}
	h.conns[recipientID][c] = struct{}{}
}

func (h *Hub) unregister(recipientID string, c *conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.conns[recipientID][c]; !ok {
		return
	}
	close(c.send)
	delete(h.conns[recipientID], c)
	if len(h.conns[recipientID]) == 0 {
		delete(h.conns, recipientID)
	}
}

// Close drops every connection.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, set := range h.conns {
		for c := range set {
			c.ws.Close()
		}
	}
	return nil
}
