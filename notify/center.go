package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Display durations per level, matching how long each kind of message
// stays on screen.
const (
	successDuration = 3 * time.Second
	errorDuration   = 5 * time.Second
	warningDuration = 4 * time.Second
	infoDuration    = 4 * time.Second
)

const defaultLimit = 50

type Notification struct {
	ID        uuid.UUID `json:"id"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Center keeps the recent notifications so a UI can show and dismiss them.
// It implements Notifier and can wrap another sink (typically the log).
type Center struct {
	mu    sync.Mutex
	notes []Notification
	limit int
	next  Notifier

	now func() time.Time
}

func NewCenter(next Notifier) *Center {
	return &Center{limit: defaultLimit, next: next, now: time.Now}
}

func (c *Center) push(level Level, message string, duration time.Duration) {
	c.mu.Lock()
	now := c.now()
	c.notes = append(c.notes, Notification{
		ID:        uuid.New(),
		Level:     level,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(duration),
	})
	c.pruneLocked(now)
	c.mu.Unlock()

	if c.next != nil {
		switch level {
		case LevelSuccess:
			c.next.Success(message)
		case LevelError:
			c.next.Error(message)
		case LevelWarning:
			c.next.Warning(message)
		default:
			c.next.Info(message)
		}
	}
}

func (c *Center) Success(message string) { c.push(LevelSuccess, message, successDuration) }
func (c *Center) Error(message string)   { c.push(LevelError, message, errorDuration) }
func (c *Center) Warning(message string) { c.push(LevelWarning, message, warningDuration) }
func (c *Center) Info(message string)    { c.push(LevelInfo, message, infoDuration) }

// pruneLocked drops expired notifications and caps the list. Caller holds
// the lock.
func (c *Center) pruneLocked(now time.Time) {
	kept := c.notes[:0]
	for _, n := range c.notes {
		if n.ExpiresAt.After(now) {
			kept = append(kept, n)
		}
	}
	c.notes = kept
	if len(c.notes) > c.limit {
		c.notes = c.notes[len(c.notes)-c.limit:]
	}
}

// Active returns the notifications that have not yet expired.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pruneLocked(c.now())
	out := make([]Notification, len(c.notes))
	copy(out, c.notes)
	return out
}

// Dismiss removes a notification before its timeout. Unknown ids are
// ignored.
func (c *Center) Dismiss(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.notes[:0]
	for _, n := range c.notes {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	c.notes = kept
}
