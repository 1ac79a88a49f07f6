// Package notify publishes domain events to interested parties. Delivery is best effort:
// callers never fail because a notice could not be sent.
package notify

//go:generate mockgen -destination=mocks/mock_publisher.go -package=mocks . Publisher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	EventAchievementGranted = "achievement.granted"
	EventWildcardGranted    = "wildcard.granted"
	EventWildcardUsed       = "wildcard.used"
	EventEditionArchived    = "edition.archived"
)

type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Payload    map[string]any `json:"payload,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// NewEvent stamps a new event with an id and the current time.
func NewEvent(eventType string, payload map[string]any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Notifier sends events and swallows delivery failures after logging them.
type Notifier struct {
	publisher Publisher
	log       *slog.Logger
}

func NewNotifier(publisher Publisher, log *slog.Logger) *Notifier {
	if publisher == nil {
		publisher = Noop{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Notifier{publisher: publisher, log: log}
}

func (n *Notifier) Notify(ctx context.Context, eventType string, payload map[string]any) {
	if n == nil {
		return
	}
	event := NewEvent(eventType, payload)
	if err := n.publisher.Publish(ctx, event); err != nil {
		n.log.Warn("notification not delivered", "type", eventType, "event_id", event.ID, "error", err)
	}
}

// Noop discards every event.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }

// Memory records events in order. It is safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	events []Event
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Publish(_ context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Types returns the event types in publish order.
func (m *Memory) Types() []string {
	events := m.Events()
	types := make([]string, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}
