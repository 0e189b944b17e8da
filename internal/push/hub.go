package push

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/models"
)

const writeTimeout = 5 * time.Second

// Hub fans push events out to every connected WebSocket client on the
// server. A client that cannot be written to is dropped; correctness does
// not depend on delivery, since clients reconcile over HTTP anyway.
type Hub struct {
	mu        sync.RWMutex
	clients   map[*websocket.Conn]struct{}
	broadcast chan models.PushMessage
	logger    *logger.Logger
}

// NewHub builds an empty hub. Run must be started before Broadcast is useful.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:   make(map[*websocket.Conn]struct{}),
		broadcast: make(chan models.PushMessage, 64),
		logger:    log,
	}
}

// Run delivers broadcasts until the context is canceled, then closes every
// remaining connection.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case msg := <-h.broadcast:
			h.deliver(msg)
		}
	}
}

// Broadcast queues an event for delivery to all clients. Never blocks: when
// the queue is full the event is dropped and logged.
func (h *Hub) Broadcast(msg models.PushMessage) {
	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn().Str("func", "Hub.Broadcast").Str("type", msg.Type).Msg("broadcast queue full, dropping event")
	}
}

// Add registers a connection for broadcasts.
func (h *Hub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Info().Str("func", "Hub.Add").Int("clients", count).Msg("push client connected")
}

// Remove unregisters and closes a connection. Safe to call more than once.
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, known := h.clients[conn]
	delete(h.clients, conn)
	count := len(h.clients)
	h.mu.Unlock()

	if !known {
		return
	}
	_ = conn.Close(websocket.StatusNormalClosure, "")
	h.logger.Info().Str("func", "Hub.Remove").Int("clients", count).Msg("push client disconnected")
}

func (h *Hub) deliver(msg models.PushMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error().Err(err).Str("func", "Hub.deliver").Msg("failed to marshal push event")
		return
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err = conn.Write(ctx, websocket.MessageText, data)
		cancel()
		if err != nil {
			h.logger.Warn().Err(err).Str("func", "Hub.deliver").Msg("dropping unresponsive push client")
			h.Remove(conn)
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	for conn := range h.clients {
		_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
		delete(h.clients, conn)
	}
	h.mu.Unlock()
}
