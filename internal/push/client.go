package push

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"

	"github.com/stefpopov/go-wine-cellar/internal/logger"
	"github.com/stefpopov/go-wine-cellar/internal/store"
	"github.com/stefpopov/go-wine-cellar/models"
)

// ClientConfig tunes the push connection lifecycle.
type ClientConfig struct {
	PingInterval          time.Duration
	InitialReconnectDelay time.Duration
	MaxReconnectDelay     time.Duration
}

// Client keeps one live push connection and mirrors server events into the
// local record store. It never gives up: every disconnect is followed by a
// reconnect attempt after a backoff delay.
type Client struct {
	url    string
	store  store.RecordStore
	cfg    ClientConfig
	state  atomic.Int32
	logger *logger.Logger
}

// NewClient builds a push client for the given WebSocket endpoint.
func NewClient(url string, recordStore store.RecordStore, cfg ClientConfig, log *logger.Logger) *Client {
	return &Client{
		url:    url,
		store:  recordStore,
		cfg:    cfg,
		logger: log,
	}
}

// State reports the current connection phase.
func (c *Client) State() State {
	return State(c.state.Load())
}

func (c *Client) setState(s State) {
	c.state.Store(int32(s))
}

// Run dials, serves, and reconnects until the context is canceled.
func (c *Client) Run(ctx context.Context) {
	defer c.setState(StateDisconnected)

	attempt := 0
	for {
		if ctx.Err() != nil {
			return
		}

		c.setState(StateConnecting)
		conn, _, err := websocket.Dial(ctx, c.url, nil)
		if err == nil {
			c.setState(StateConnected)
			attempt = 0
			c.logger.Info().Str("func", "Client.Run").Str("url", c.url).Msg("push connection established")

			c.serve(ctx, conn)
		}

		c.setState(StateDisconnected)
		if ctx.Err() != nil {
			return
		}

		// every way into Disconnected waits out the same backoff, whether the
		// dial failed or an established connection dropped; a server that
		// accepts and immediately closes must not be hammered
		delay := reconnectDelay(c.cfg.InitialReconnectDelay, c.cfg.MaxReconnectDelay, attempt)
		attempt++
		c.logger.Warn().Err(err).
			Str("func", "Client.Run").
			Dur("delay", delay).
			Int("attempt", attempt).
			Msg("push connection down, reconnecting after backoff")

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

// serve reads events until the connection drops or the context is canceled.
func (c *Client) serve(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close(websocket.StatusNormalClosure, "")

	pingCtx, stopPing := context.WithCancel(ctx)
	defer stopPing()
	go c.keepAlive(pingCtx, conn)

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		c.apply(ctx, data)
	}
}

func (c *Client) keepAlive(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(c.cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.Ping(ctx); err != nil {
				return
			}
		}
	}
}

// apply mirrors a single server event into the local store. A frame that
// cannot be decoded is logged and dropped; the connection stays up.
func (c *Client) apply(ctx context.Context, data []byte) {
	var msg models.PushMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.logger.Warn().Err(err).Str("func", "Client.apply").Msg("malformed push frame, dropping")
		return
	}

	switch msg.Type {
	case models.PushWineAdded, models.PushWineUpdated:
		wine, err := msg.Wine()
		if err != nil {
			c.logger.Warn().Err(err).Str("func", "Client.apply").Str("type", msg.Type).Msg("malformed push payload, dropping")
			return
		}
		wine.Status = models.StatusSynced
		if _, err = c.store.Upsert(ctx, wine); err != nil {
			c.logger.Error().Err(err).Str("func", "Client.apply").Int64("id", wine.ID).Msg("failed to store pushed wine")
		}

	case models.PushWineDeleted:
		id, err := msg.DeletedID()
		if err != nil {
			c.logger.Warn().Err(err).Str("func", "Client.apply").Str("type", msg.Type).Msg("malformed push payload, dropping")
			return
		}
		if err = c.store.DeletePermanently(ctx, id); err != nil {
			c.logger.Error().Err(err).Str("func", "Client.apply").Int64("id", id).Msg("failed to delete pushed wine")
		}

	default:
		c.logger.Warn().Str("func", "Client.apply").Str("type", msg.Type).Msg("unknown push event type, dropping")
	}
}
