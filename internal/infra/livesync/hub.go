// Package livesync pushes saved snapshots to connected websocket clients and
// follows an upstream server's snapshot channel.
package livesync

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"crm/internal/domain/entity"
	"crm/internal/domain/service"
	"crm/internal/infra/persistence/snapshot"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 4
	// snapshots only flow from server to client, anything read is discarded
	maxInboundMessageSize = 4 << 10
)

// Hub tracks connected clients and fans snapshots out to them.
//
// Thread-safety: all methods are safe for concurrent use.
type Hub struct {
	mu       sync.Mutex
	clients  map[*hubClient]struct{}
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

type hubClient struct {
	conn *websocket.Conn
	send chan []byte
	once sync.Once
}

var _ service.SnapshotBroadcaster = (*Hub)(nil)

// NewHub creates an empty hub. Any origin may connect.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*hubClient]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1 << 16,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// ServeHTTP upgrades the request and keeps the client registered until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the error response
		h.logger.Warn("Websocket upgrade failed", slog.Any("error", err))

		return
	}

	client := &hubClient{conn: conn, send: make(chan []byte, sendBufferSize)}
	h.register(client)

	go h.writePump(client)
	h.readPump(client)
}

// Broadcast sends state to every connected client. Clients that cannot keep up are dropped.
func (h *Hub) Broadcast(_ context.Context, state *entity.AppState) error {
	data, err := snapshot.Encode(state, false)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			h.logger.Warn("Dropping slow websocket client", slog.String("remote", client.conn.RemoteAddr().String()))
			h.removeLocked(client)
		}
	}

	return nil
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

// Close disconnects every client.
func (h *Hub) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		h.removeLocked(client)
	}

	return nil
}

func (h *Hub) register(client *hubClient) {
	h.mu.Lock()
	h.clients[client] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("Client connected", slog.Int("clients", count))
}

func (h *Hub) unregister(client *hubClient) {
	h.mu.Lock()
	h.removeLocked(client)
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Info("Client disconnected", slog.Int("clients", count))
}

// removeLocked closes the client's queue once. Callers hold mu.
func (h *Hub) removeLocked(client *hubClient) {
	delete(h.clients, client)
	client.once.Do(func() { close(client.send) })
}

func (h *Hub) readPump(client *hubClient) {
	defer func() {
		h.unregister(client)
		client.conn.Close()
	}()

	client.conn.SetReadLimit(maxInboundMessageSize)
	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Websocket error", slog.Any("error", err))
			}

			return
		}
	}
}

func (h *Hub) writePump(client *hubClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		client.conn.Close()
	}()

	for {
		select {
		case data, ok := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = client.conn.WriteMessage(websocket.CloseMessage, []byte{})

				return
			}
			if err := client.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				h.logger.Warn("Failed to send message to a client", slog.Any("error", err))

				return
			}
		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
