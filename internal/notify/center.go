package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

type Notification struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"createdAt"`
}

// Center is the single owner of user-facing notifications. Producer
// components push entries; the web layer renders Active ones; entries expire
// after the toast duration or on explicit dismissal. This replaces ambient
// event dispatch with one explicit queue.
type Center struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries []Notification
	now     func() time.Time
}

func NewCenter(ttl time.Duration) *Center {
	return &Center{ttl: ttl, now: time.Now}
}

func (c *Center) Push(message string, severity Severity) uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := Notification{
		ID:        uuid.New(),
		Message:   message,
		Severity:  severity,
		CreatedAt: c.now(),
	}
	c.entries = append(c.entries, n)
	return n.ID
}

// Active prunes expired entries and returns the remaining ones in push order.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	cutoff := c.now().Add(-c.ttl)
	kept := c.entries[:0]
	for _, n := range c.entries {
		if n.CreatedAt.After(cutoff) {
			kept = append(kept, n)
		}
	}
	c.entries = kept

	out := make([]Notification, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Center) Dismiss(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, n := range c.entries {
		if n.ID == id {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}
