package sync

import (
	gosync "sync"
	"time"

	"github.com/google/uuid"

	pkgLog "personal-task-tracker/pkg/log"
)

// subscriberBuffer bounds the per-session event queue. A session that falls
// this far behind starts losing events rather than blocking publishers.
const subscriberBuffer = 16

type subscriber struct {
	id     string
	userID string
	ch     chan Event
}

// Hub fans task change events out to each user's open sessions.
type Hub struct {
	l pkgLog.Logger

	mu          gosync.RWMutex
	subscribers map[string][]*subscriber // userID -> sessions
}

// NewHub creates an empty hub.
func NewHub(l pkgLog.Logger) *Hub {
	return &Hub{
		l:           l,
		subscribers: make(map[string][]*subscriber),
	}
}

// Subscribe registers a new session for the user and returns its event
// channel plus an unsubscribe func. The channel is closed on unsubscribe.
func (h *Hub) Subscribe(userID string) (<-chan Event, func()) {
	sub := &subscriber{
		id:     uuid.NewString(),
		userID: userID,
		ch:     make(chan Event, subscriberBuffer),
	}

	h.mu.Lock()
	h.subscribers[userID] = append(h.subscribers[userID], sub)
	h.mu.Unlock()

	return sub.ch, func() { h.unsubscribe(sub) }
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()

	subs := h.subscribers[sub.userID]
	for i, s := range subs {
		if s.id == sub.id {
			h.subscribers[sub.userID] = append(subs[:i], subs[i+1:]...)
			close(s.ch)
			break
		}
	}
	if len(h.subscribers[sub.userID]) == 0 {
		delete(h.subscribers, sub.userID)
	}
}

// Publish delivers the event to every open session of the given user. Events
// for sessions with a full buffer are dropped.
func (h *Hub) Publish(userID string, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers[userID] {
		select {
		case sub.ch <- event:
		default:
			// Session is not draining. Dropping keeps Publish non-blocking.
		}
	}
}

// SessionCount returns the number of open sessions for the user.
func (h *Hub) SessionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[userID])
}
