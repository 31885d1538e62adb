// Package feedback keeps the short-lived toast message shown after an
// action, one per login session.
package feedback

import (
	"encoding/json"
	"sync"
	"time"

	"listingadmin/internal/logger"
)

// Message kinds.
const (
	KindSuccess = "success"
	KindError   = "error"
)

// Message is the current toast of a session.
type Message struct {
	Text      string    `json:"text"`
	Kind      string    `json:"kind"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Event is pushed to websocket clients when a message is shown.
type Event struct {
	Type string  `json:"type"`
	Data Message `json:"data"`
}

// Publisher delivers an encoded event to the clients of one session.
type Publisher interface {
	Publish(sessionID string, payload []byte)
}

// Notifier holds at most one message per session. A newer message replaces
// the older one; a message disappears once its TTL elapses.
type Notifier struct {
	mu        sync.Mutex
	messages  map[string]Message
	ttl       time.Duration
	now       func() time.Time
	publisher Publisher
	logger    *logger.Logger
}

func NewNotifier(ttl time.Duration, publisher Publisher, logger *logger.Logger) *Notifier {
	return &Notifier{
		messages:  make(map[string]Message),
		ttl:       ttl,
		now:       time.Now,
		publisher: publisher,
		logger:    logger,
	}
}

// SetClock replaces time.Now; used by tests.
func (n *Notifier) SetClock(now func() time.Time) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.now = now
}

// Show replaces the session's message and pushes it to its clients.
// Calls without a session are ignored.
func (n *Notifier) Show(sessionID, kind, text string) {
	if sessionID == "" {
		return
	}

	n.mu.Lock()
	now := n.now()
	n.pruneLocked(now)
	msg := Message{Text: text, Kind: kind, ExpiresAt: now.Add(n.ttl)}
	n.messages[sessionID] = msg
	n.mu.Unlock()

	if n.publisher == nil {
		return
	}

	payload, err := json.Marshal(Event{Type: "feedback", Data: msg})
	if err != nil {
		n.logger.Error("Error encoding feedback event: %v", err)
		return
	}
	n.publisher.Publish(sessionID, payload)
}

// Current returns the live message of a session and clears it once expired.
func (n *Notifier) Current(sessionID string) (Message, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	msg, ok := n.messages[sessionID]
	if !ok {
		return Message{}, false
	}
	if !n.now().Before(msg.ExpiresAt) {
		delete(n.messages, sessionID)
		return Message{}, false
	}
	return msg, true
}

// pruneLocked drops expired messages of sessions that never read them.
func (n *Notifier) pruneLocked(now time.Time) {
	for id, msg := range n.messages {
		if !now.Before(msg.ExpiresAt) {
			delete(n.messages, id)
		}
	}
}

// Clear drops the session's message, e.g. on logout.
func (n *Notifier) Clear(sessionID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.messages, sessionID)
}
