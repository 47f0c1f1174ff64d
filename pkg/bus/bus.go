// Package bus implements the in-process event bus that fans daemon activity
// out to WebSocket clients and other subscribers. Publishing never blocks:
// the bus drops on overflow and tells slow subscribers how much they missed.
package bus

import (
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// Topic routes events to subscribers.
type Topic string

// TopicConsole carries every event in the system regardless of ticket. Ticket
// events are mirrored here so a single subscription can observe the daemon.
const TopicConsole Topic = "console"

// TicketTopic returns the topic carrying events for one ticket.
func TicketTopic(ticketID int) Topic {
	return Topic("ticket:" + strconv.Itoa(ticketID))
}

// Type discriminates event payloads.
type Type string

const (
	TypeTicketStatus  Type = "ticket.status"
	TypeMessage       Type = "ticket.message"
	TypeTool          Type = "ticket.tool"
	TypeUsage         Type = "session.usage"
	TypeDispatch      Type = "scheduler.dispatch"
	TypePermission    Type = "permission.request"
	TypeWatchdogAlert Type = "watchdog.alert"
	TypeNotifySent    Type = "notify.sent"
	TypeMapStale      Type = "project.map_stale"

	// TypeDropped is synthesized by the bus itself when a subscriber's
	// buffer overflowed. Its payload carries the number of lost events
	// under the "count" key.
	TypeDropped Type = "dropped"
)

// Event is a single bus message. Payload keys are event-type specific and
// serialized as-is to WebSocket clients.
type Event struct {
	Topic     Topic          `json:"topic"`
	Type      Type           `json:"type"`
	TicketID  int            `json:"ticket_id,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Payload   map[string]any `json:"payload,omitempty"`
}

const (
	inboxSize        = 1024
	subscriberBuffer = 64
)

type subscriber struct {
	ch     chan Event
	topics map[Topic]struct{}

	// dropped counts events lost since the last successful delivery.
	// Guarded by Bus.mu.
	dropped int
}

func (s *subscriber) wants(t Topic) bool {
	if len(s.topics) == 0 {
		return true
	}
	_, ok := s.topics[t]
	return ok
}

// Bus is a single-process publish/subscribe hub. A single dispatch goroutine
// preserves per-topic delivery order.
type Bus struct {
	logger *slog.Logger

	inbox chan Event
	done  chan struct{}
	wg    sync.WaitGroup
	once  sync.Once

	mu   sync.Mutex
	subs map[*subscriber]struct{}

	publishDrops atomic.Int64
}

// New creates a started bus. Callers must Close it to release the dispatch
// goroutine.
func New(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bus{
		logger: logger.With("component", "bus"),
		inbox:  make(chan Event, inboxSize),
		done:   make(chan struct{}),
		subs:   make(map[*subscriber]struct{}),
	}
	b.wg.Add(1)
	go b.dispatch()
	return b
}

// Publish enqueues an event for delivery. It never blocks: when the inbox is
// full the event is counted as dropped and discarded. The timestamp is filled
// in when the caller left it zero.
func (b *Bus) Publish(evt Event) {
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}
	select {
	case <-b.done:
		return
	default:
	}
	select {
	case b.inbox <- evt:
	default:
		if n := b.publishDrops.Add(1); n == 1 || n%1000 == 0 {
			b.logger.Warn("Event bus inbox full, dropping events", "total_dropped", n)
		}
	}
}

// PublishTicket publishes a ticket-scoped event and mirrors it on the console
// topic.
func (b *Bus) PublishTicket(ticketID int, typ Type, payload map[string]any) {
	now := time.Now().UTC()
	b.Publish(Event{Topic: TicketTopic(ticketID), Type: typ, TicketID: ticketID, Timestamp: now, Payload: payload})
	b.Publish(Event{Topic: TopicConsole, Type: typ, TicketID: ticketID, Timestamp: now, Payload: payload})
}

// Subscribe registers interest in the given topics (none means all) and
// returns the delivery channel plus a cancel function. The channel is closed
// by cancel or by Close; cancel is safe to call more than once.
func (b *Bus) Subscribe(topics ...Topic) (<-chan Event, func()) {
	sub := &subscriber{ch: make(chan Event, subscriberBuffer)}
	if len(topics) > 0 {
		sub.topics = make(map[Topic]struct{}, len(topics))
		for _, t := range topics {
			sub.topics[t] = struct{}{}
		}
	}

	b.mu.Lock()
	select {
	case <-b.done:
		b.mu.Unlock()
		close(sub.ch)
		return sub.ch, func() {}
	default:
	}
	b.subs[sub] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[sub]; ok {
			delete(b.subs, sub)
			close(sub.ch)
		}
	}
	return sub.ch, cancel
}

// SubscriberCount reports the number of live subscriptions.
func (b *Bus) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close stops dispatch after draining buffered events and closes every
// subscriber channel.
func (b *Bus) Close() {
	b.once.Do(func() { close(b.done) })
	b.wg.Wait()
}

func (b *Bus) dispatch() {
	defer b.wg.Done()
	for {
		select {
		case evt := <-b.inbox:
			b.fanout(evt)
		case <-b.done:
			for {
				select {
				case evt := <-b.inbox:
					b.fanout(evt)
				default:
					b.closeSubscribers()
					return
				}
			}
		}
	}
}

func (b *Bus) fanout(evt Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs {
		if !sub.wants(evt.Topic) {
			continue
		}
		b.deliver(sub, evt)
	}
}

// deliver attempts a non-blocking send. A subscriber that previously
// overflowed first receives a dropped marker carrying the gap size so clients
// know to re-sync.
func (b *Bus) deliver(sub *subscriber, evt Event) {
	if sub.dropped > 0 {
		marker := Event{
			Topic:     evt.Topic,
			Type:      TypeDropped,
			TicketID:  evt.TicketID,
			Timestamp: time.Now().UTC(),
			Payload:   map[string]any{"count": sub.dropped},
		}
		select {
		case sub.ch <- marker:
			sub.dropped = 0
		default:
			sub.dropped++
			return
		}
	}
	select {
	case sub.ch <- evt:
	default:
		sub.dropped++
	}
}

func (b *Bus) closeSubscribers() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs {
		delete(b.subs, sub)
		close(sub.ch)
	}
}
