package testutil

import (
	"strconv"
	"sync"

	"crm/internal/domain/service"
)

// SequentialIDs generates predictable ids: <prefix>1, <prefix>2, ...
type SequentialIDs struct {
	mu  sync.Mutex
	seq int
}

var _ service.IDGenerator = (*SequentialIDs)(nil)

// New returns the next id with prefix.
func (g *SequentialIDs) New(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.seq++

	return prefix + strconv.Itoa(g.seq)
}
