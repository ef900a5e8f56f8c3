package livesync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"crm/internal/domain/entity"
	"crm/internal/domain/service"
	"crm/internal/errors"
	"crm/internal/infra/persistence/snapshot"

	"github.com/gorilla/websocket"
)

const (
	defaultReconnectInterval = 3 * time.Second
	maxSnapshotMessageSize   = 64 << 20
)

// Client follows an upstream server's snapshot channel, reconnecting after every close.
//
// Thread-safety: State may be called concurrently with Run.
type Client struct {
	url       string
	reconnect time.Duration
	dialer    *websocket.Dialer
	logger    *slog.Logger

	mu    sync.RWMutex
	state service.ConnectionState
}

var _ service.SnapshotSource = (*Client)(nil)

// NewClient creates a client for the websocket at url.
func NewClient(url string, reconnect time.Duration, logger *slog.Logger) *Client {
	if reconnect <= 0 {
		reconnect = defaultReconnectInterval
	}

	return &Client{
		url:       url,
		reconnect: reconnect,
		dialer:    websocket.DefaultDialer,
		logger:    logger,
		state:     service.ConnectionClosed,
	}
}

// State reports the current connection state.
func (c *Client) State() service.ConnectionState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

func (c *Client) setState(state service.ConnectionState) {
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
}

// Run delivers every decoded snapshot to onSnapshot until ctx is cancelled.
// Malformed messages are logged and skipped.
func (c *Client) Run(ctx context.Context, onSnapshot func(*entity.AppState)) error {
	defer c.setState(service.ConnectionClosed)

	for {
		if err := c.session(ctx, onSnapshot); err != nil && ctx.Err() == nil {
			c.logger.Warn("Upstream channel closed, reconnecting",
				slog.String("url", c.url),
				slog.Duration("retry_in", c.reconnect),
				slog.Any("error", err),
			)
		}
		c.setState(service.ConnectionClosed)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.reconnect):
		}
	}
}

// session runs one connection until it fails or ctx is cancelled.
func (c *Client) session(ctx context.Context, onSnapshot func(*entity.AppState)) error {
	c.setState(service.ConnectionConnecting)

	conn, resp, err := c.dialer.DialContext(ctx, c.url, nil)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return errors.Wrapf(err, "dial %s", c.url)
	}
	defer conn.Close()

	conn.SetReadLimit(maxSnapshotMessageSize)
	c.setState(service.ConnectionOpen)
	c.logger.Info("Connected to upstream", slog.String("url", c.url))

	// Unblock ReadMessage when ctx is cancelled
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return errors.Wrap(err, "read snapshot")
		}

		state, err := snapshot.Decode(data)
		if err != nil {
			c.logger.Warn("Ignoring malformed snapshot message", slog.Any("error", err))

			continue
		}
		onSnapshot(state)
	}
}
