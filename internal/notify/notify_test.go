package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type recordingPublisher struct {
	mu   sync.Mutex
	got  []Notification
	err  error
	done chan struct{}
}

func (p *recordingPublisher) Publish(ctx context.Context, n Notification) error {
	p.mu.Lock()
	p.got = append(p.got, n)
	p.mu.Unlock()
	p.done <- struct{}{}
	return p.err
}

func newTestCenter(pub Publisher, now *time.Time) *Center {
	c := NewCenter(pub, zap.NewNop())
	c.now = func() time.Time { return *now }
	return c
}

func TestNotificationLifetime(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	c := newTestCenter(nil, &now)

	n := c.Emit(context.Background(), "Item agregado exitosamente", KindSuccess)
	if n.ID == "" || n.Kind != KindSuccess {
		t.Fatalf("unexpected notification %+v", n)
	}

	if toasts := c.Active(now.Add(2999 * time.Millisecond)); len(toasts) != 1 || toasts[0].Leaving {
		t.Fatalf("expected one visible toast, got %+v", toasts)
	}
	if toasts := c.Active(now.Add(3100 * time.Millisecond)); len(toasts) != 1 || !toasts[0].Leaving {
		t.Fatalf("expected one leaving toast, got %+v", toasts)
	}
	if toasts := c.Active(now.Add(3300 * time.Millisecond)); len(toasts) != 0 {
		t.Fatalf("expected no toast after exit animation, got %+v", toasts)
	}
}

func TestNotificationsStackAndExpireIndependently(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	c := newTestCenter(nil, &now)

	first := c.Emit(context.Background(), "uno", KindSuccess)
	now = now.Add(2 * time.Second)
	second := c.Emit(context.Background(), "dos", KindInfo)
	if first.ID == second.ID {
		t.Fatal("notification ids must be unique")
	}

	toasts := c.Active(now)
	if len(toasts) != 2 || toasts[0].Message != "uno" || toasts[1].Message != "dos" {
		t.Fatalf("expected both toasts oldest first, got %+v", toasts)
	}

	toasts = c.Active(now.Add(1500 * time.Millisecond))
	if len(toasts) != 1 || toasts[0].ID != second.ID {
		t.Fatalf("expected only the second toast, got %+v", toasts)
	}
}

func TestEmitPublishesWithoutBlocking(t *testing.T) {
	now := time.Now()
	pub := &recordingPublisher{err: errors.New("redis down"), done: make(chan struct{}, 1)}
	c := newTestCenter(pub, &now)

	n := c.Emit(context.Background(), "Envío creado exitosamente", KindSuccess)

	select {
	case <-pub.done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher was not called")
	}
	pub.mu.Lock()
	defer pub.mu.Unlock()
	if len(pub.got) != 1 || pub.got[0].ID != n.ID {
		t.Fatalf("unexpected published notifications %+v", pub.got)
	}
}
