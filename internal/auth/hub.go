package auth

import "sync"

type EventType string

const (
	SignedIn  EventType = "signed_in"
	SignedOut EventType = "signed_out"
)

type Event struct {
	Type   EventType `json:"type"`
	UserID string    `json:"user_id"`
}

// Hub is the single process-wide observer of session changes. Every consumer
// that cares about sign-in/sign-out subscribes here instead of polling the
// token state itself. Subscriptions are counted per user and fully released
// when the last one goes away.
type Hub struct {
	mu   sync.Mutex
	subs map[string]map[*Subscription]struct{}
}

type Subscription struct {
	C      chan Event
	hub    *Hub
	userID string
	once   sync.Once
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*Subscription]struct{})}
}

// Subscribe registers interest in session events for one user. The caller
// must Release the subscription when done.
func (h *Hub) Subscribe(userID string) *Subscription {
	s := &Subscription{C: make(chan Event, 8), hub: h, userID: userID}
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.subs[userID]
	if !ok {
		set = make(map[*Subscription]struct{})
		h.subs[userID] = set
	}
	set[s] = struct{}{}
	return s
}

// Release removes the subscription and closes its channel. Safe to call more
// than once.
func (s *Subscription) Release() {
	s.once.Do(func() {
		h := s.hub
		h.mu.Lock()
		defer h.mu.Unlock()
		if set, ok := h.subs[s.userID]; ok {
			delete(set, s)
			if len(set) == 0 {
				delete(h.subs, s.userID)
			}
		}
		close(s.C)
	})
}

// Publish delivers an event to every live subscriber for the user. Slow
// subscribers drop events rather than block the publisher.
func (h *Hub) Publish(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs[ev.UserID] {
		select {
		case s.C <- ev:
		default:
		}
	}
}

// Subscribers reports the live subscription count for a user.
func (h *Hub) Subscribers(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[userID])
}
