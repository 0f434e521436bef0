package events

import (
	"sync"
	"time"
)

// Type identifies a ledger event
type Type string

const (
	PostCreated  Type = "post.created"
	PostReported Type = "post.reported"
	Followed     Type = "user.followed"
	Unfollowed   Type = "user.unfollowed"
	Liked        Type = "post.liked"
	Unliked      Type = "post.unliked"
	Tipped       Type = "post.tipped"
)

// Event carries the facts external projections need to stay eventually
// consistent with the ledger. PostCreated is the id-discovery contract:
// consumers learn minted post ids from it rather than guessing from counts.
type Event struct {
	Type      Type      `json:"type"`
	PostID    uint      `json:"post_id,omitempty"`
	Actor     string    `json:"actor"`            // address that performed the operation
	Target    string    `json:"target,omitempty"` // followed address or tip recipient
	IPFSHash  string    `json:"ipfs_hash,omitempty"`
	Amount    int64     `json:"amount,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// HandlerFunc consumes a ledger event
type HandlerFunc func(Event)

// Bus is an in-process fan-out of ledger events. Publish is synchronous and
// ordered; subscribers must not block for long. The ledger never depends on
// subscriber state, so a failing subscriber cannot break an operation.
type Bus struct {
	mu   sync.RWMutex
	subs []HandlerFunc
}

// NewBus creates an empty event bus
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a handler for all subsequent events
func (b *Bus) Subscribe(fn HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

// Publish delivers the event to every subscriber in registration order
func (b *Bus) Publish(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	b.mu.RLock()
	subs := make([]HandlerFunc, len(b.subs))
	copy(subs, b.subs)
	b.mu.RUnlock()
	for _, fn := range subs {
		fn(e)
	}
}
