package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishTicketMirrorsToConsole(t *testing.T) {
	b := New(nil)
	defer b.Close()

	ticketCh, cancelTicket := b.Subscribe(TicketTopic(42))
	defer cancelTicket()
	consoleCh, cancelConsole := b.Subscribe(TopicConsole)
	defer cancelConsole()

	b.PublishTicket(42, TypeTicketStatus, map[string]any{"status": "in_progress"})

	select {
	case evt := <-ticketCh:
		assert.Equal(t, TicketTopic(42), evt.Topic)
		assert.Equal(t, TypeTicketStatus, evt.Type)
		assert.Equal(t, 42, evt.TicketID)
		assert.Equal(t, "in_progress", evt.Payload["status"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for ticket event")
	}

	select {
	case evt := <-consoleCh:
		assert.Equal(t, TopicConsole, evt.Topic)
		assert.Equal(t, 42, evt.TicketID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for console mirror")
	}
}

func TestSubscribeFiltersTopics(t *testing.T) {
	b := New(nil)
	defer b.Close()

	ch, cancel := b.Subscribe(TicketTopic(1))
	defer cancel()

	b.Publish(Event{Topic: TicketTopic(2), Type: TypeMessage})
	b.Publish(Event{Topic: TicketTopic(1), Type: TypeMessage, TicketID: 1})

	select {
	case evt := <-ch:
		// The ticket 2 event must have been filtered out.
		assert.Equal(t, 1, evt.TicketID)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}

func TestSubscribeAllTopics(t *testing.T) {
	b := New(nil)
	defer b.Close()

	ch, cancel := b.Subscribe()
	defer cancel()

	b.Publish(Event{Topic: TicketTopic(7), Type: TypeMessage, TicketID: 7})
	b.Publish(Event{Topic: TopicConsole, Type: TypeDispatch})

	got := make([]Event, 0, 2)
	for len(got) < 2 {
		select {
		case evt := <-ch:
			got = append(got, evt)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %d events", len(got))
		}
	}
	assert.Equal(t, TypeMessage, got[0].Type)
	assert.Equal(t, TypeDispatch, got[1].Type)
}

func TestSlowSubscriberReceivesDroppedMarker(t *testing.T) {
	b := New(nil)
	defer b.Close()

	ch, cancel := b.Subscribe(TopicConsole)
	defer cancel()

	const overflow = 6
	for i := 0; i < subscriberBuffer+overflow; i++ {
		b.Publish(Event{Topic: TopicConsole, Type: TypeMessage, Payload: map[string]any{"seq": i}})
	}

	require.Eventually(t, func() bool { return len(ch) == subscriberBuffer }, 2*time.Second, 5*time.Millisecond)
	// Give dispatch time to register the overflow drops.
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < subscriberBuffer; i++ {
		evt := <-ch
		assert.Equal(t, i, evt.Payload["seq"])
	}

	// The next delivery is preceded by a marker carrying the gap size.
	b.Publish(Event{Topic: TopicConsole, Type: TypeMessage, Payload: map[string]any{"seq": -1}})

	select {
	case evt := <-ch:
		require.Equal(t, TypeDropped, evt.Type)
		assert.Equal(t, overflow, evt.Payload["count"])
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for dropped marker")
	}
	select {
	case evt := <-ch:
		assert.Equal(t, TypeMessage, evt.Type)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event after marker")
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	b := New(nil)
	defer b.Close()

	ch, cancel := b.Subscribe(TopicConsole)
	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open, "channel should be closed after cancel")
	assert.Equal(t, 0, b.SubscriberCount())
}

func TestCloseClosesSubscribers(t *testing.T) {
	b := New(nil)

	ch, _ := b.Subscribe(TopicConsole)
	b.Publish(Event{Topic: TopicConsole, Type: TypeMessage})
	b.Close()

	// The buffered event is drained before the channel closes.
	var events int
	for range ch {
		events++
	}
	assert.Equal(t, 1, events)

	// Publishing and subscribing after Close are no-ops.
	b.Publish(Event{Topic: TopicConsole, Type: TypeMessage})
	late, cancel := b.Subscribe(TopicConsole)
	cancel()
	_, open := <-late
	assert.False(t, open)
}

func TestPublishFillsTimestamp(t *testing.T) {
	b := New(nil)
	defer b.Close()

	ch, cancel := b.Subscribe(TopicConsole)
	defer cancel()

	b.Publish(Event{Topic: TopicConsole, Type: TypeMessage})

	select {
	case evt := <-ch:
		assert.False(t, evt.Timestamp.IsZero())
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}
