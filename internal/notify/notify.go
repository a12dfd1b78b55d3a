// Package notify holds the transient toast notifications shown after a
// mutation. Each one is visible for DisplayFor, then leaves over
// ExitAnimation and is gone; they expire independently and stack.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DisplayFor    = 3000 * time.Millisecond
	ExitAnimation = 300 * time.Millisecond

	publishTimeout = 2 * time.Second
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// Toast is a notification as currently displayed.
type Toast struct {
	Notification
	Leaving bool `json:"leaving"`
}

// Publisher receives a copy of every notification. Failures are logged and
// never reach the caller of Emit.
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}

// Center keeps the notifications that have not expired yet.
type Center struct {
	mu    sync.Mutex
	items []Notification
	pub   Publisher
	log   *zap.Logger
	now   func() time.Time
}

// NewCenter constructs a Center. pub may be nil.
func NewCenter(pub Publisher, log *zap.Logger) *Center {
	return &Center{pub: pub, log: log, now: time.Now}
}

// Emit records a notification and hands it to the publisher without
// waiting for it.
func (c *Center) Emit(ctx context.Context, message string, kind Kind) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		CreatedAt: c.now(),
	}

	c.mu.Lock()
	c.items = append(c.items, n)
	c.mu.Unlock()

	if c.pub != nil {
		go c.publish(context.WithoutCancel(ctx), n)
	}
	return n
}

// Active returns the notifications still on screen at now, oldest first,
// and forgets the expired ones.
func (c *Center) Active(now time.Time) []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.items[:0]
	toasts := make([]Toast, 0, len(c.items))
	for _, n := range c.items {
		age := now.Sub(n.CreatedAt)
		if age >= DisplayFor+ExitAnimation {
			continue
		}
		kept = append(kept, n)
		toasts = append(toasts, Toast{Notification: n, Leaving: age >= DisplayFor})
	}
	c.items = kept
	return toasts
}

func (c *Center) publish(ctx context.Context, n Notification) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := c.pub.Publish(ctx, n); err != nil {
		c.log.Warn("notification publish failed", zap.String("id", n.ID), zap.Error(err))
	}
}
