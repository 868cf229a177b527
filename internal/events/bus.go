package events

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/meshwork-io/grpc-hub/internal/metrics"
)

// DefaultBufferSize is the per-subscriber event buffer. When a
// subscriber's buffer is full, further events are dropped for that
// subscriber only.
const DefaultBufferSize = 64

// TypeConnection is the synthetic event delivered once to every new
// subscriber. The registry event types live in the registry package.
const TypeConnection = "connection"

// Event is the fan-out unit. Seq is assigned by the bus and increases
// monotonically across all events.
type Event struct {
	Type        string    `json:"event_type"`
	ServiceName string    `json:"service_name,omitempty"`
	Data        any       `json:"data,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Seq         uint64    `json:"seq"`
}

// Subscription is one observer's handle on the bus. Events arrive on C
// in sequence order; the channel is closed on Unsubscribe or bus close.
type Subscription struct {
	id      int
	ch      chan Event
	dropped atomic.Uint64
}

// C returns the subscriber's event channel.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

// Dropped reports how many events were discarded because this
// subscriber's buffer was full. Safe to call while publishes are in
// flight.
func (s *Subscription) Dropped() uint64 {
	return s.dropped.Load()
}

// Bus multiplexes registry events to any number of subscribers. Each
// subscriber owns a bounded buffer, so a slow consumer never blocks the
// publisher or delays other subscribers.
type Bus struct {
	mu     sync.Mutex
	seq    uint64
	nextID int
	subs   map[int]*Subscription
	buffer int
	logger *slog.Logger
	closed bool
}

// NewBus creates a bus with the default per-subscriber buffer size.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:   make(map[int]*Subscription),
		buffer: DefaultBufferSize,
		logger: logger.With("component", "events"),
	}
}

// Subscribe attaches a new observer. The subscription's buffer already
// holds a synthetic connection event when this returns.
func (b *Bus) Subscribe() *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &Subscription{
		id: b.nextID,
		ch: make(chan Event, b.buffer),
	}
	b.nextID++
	if b.closed {
		close(sub.ch)
		return sub
	}
	b.subs[sub.id] = sub
	metrics.EventSubscribers.Set(float64(len(b.subs)))

	b.seq++
	sub.ch <- Event{
		Type:      TypeConnection,
		Data:      map[string]string{"message": "connected to hub event stream"},
		Timestamp: time.Now(),
		Seq:       b.seq,
	}
	return sub
}

// Unsubscribe detaches the observer and closes its channel. Buffered
// undelivered events are discarded with the channel.
func (b *Bus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub.id]; !ok {
		return
	}
	delete(b.subs, sub.id)
	close(sub.ch)
	metrics.EventSubscribers.Set(float64(len(b.subs)))
}

// Publish delivers an event to every subscriber. It never blocks: a
// subscriber whose buffer is full misses this event and stays
// subscribed.
func (b *Bus) Publish(eventType, serviceName string, data any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	b.seq++
	evt := Event{
		Type:        eventType,
		ServiceName: serviceName,
		Data:        data,
		Timestamp:   time.Now(),
		Seq:         b.seq,
	}

	metrics.EventsPublished.WithLabelValues(eventType).Inc()
	for _, sub := range b.subs {
		select {
		case sub.ch <- evt:
		default:
			sub.dropped.Add(1)
			metrics.EventsDropped.Inc()
			b.logger.Warn("slow subscriber, event dropped",
				"subscriber", sub.id,
				"event_type", eventType,
				"seq", evt.Seq,
			)
		}
	}
}

// SubscriberCount reports the number of attached subscribers.
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close detaches every subscriber and closes their channels. Further
// publishes are no-ops and further subscriptions get a closed channel.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
	metrics.EventSubscribers.Set(0)
}
