package service

import (
	"context"

	"crm/internal/domain/entity"
)

// ConnectionState is the state of a live snapshot channel.
type ConnectionState string

const (
	ConnectionDisabled   ConnectionState = "disabled"
	ConnectionConnecting ConnectionState = "connecting"
	ConnectionOpen       ConnectionState = "open"
	ConnectionClosed     ConnectionState = "closed"
)

// SnapshotBroadcaster pushes a saved snapshot to every live client.
type SnapshotBroadcaster interface {
	Broadcast(ctx context.Context, state *entity.AppState) error
}

// SnapshotSource delivers canonical snapshots pushed by an upstream server.
type SnapshotSource interface {
	// Run blocks until ctx is cancelled, reconnecting whenever the channel closes.
	Run(ctx context.Context, onSnapshot func(*entity.AppState)) error
	// State reports the current connection state.
	State() ConnectionState
}
