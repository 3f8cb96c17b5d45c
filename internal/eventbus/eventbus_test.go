package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventRecorder struct {
	mu     sync.Mutex
	events []DomainEvent
}

func (r *eventRecorder) handle(e DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *eventRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func (r *eventRecorder) last() DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

func TestPublishReachesSubscriber(t *testing.T) {
	b := New()
	rec := &eventRecorder{}
	b.Subscribe(EventSearchRequested, rec.handle)

	b.Publish(SearchRequestedEvent{Seq: 1, Query: "sto", Types: "text,image,document", Limit: 20})

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)

	ev, ok := rec.last().(SearchRequestedEvent)
	require.True(t, ok)
	assert.Equal(t, uint64(1), ev.Seq)
	assert.Equal(t, "sto", ev.Query)
}

func TestSubscribeFiltersByType(t *testing.T) {
	b := New()
	rec := &eventRecorder{}
	b.Subscribe(EventSuggestionsArrived, rec.handle)

	b.Publish(SearchRequestedEvent{Seq: 1})
	b.Publish(SuggestionsArrivedEvent{Seq: 1})

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)

	// Give the dispatcher a moment; the SearchRequested event must never land
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	rec := &eventRecorder{}
	unsubscribe := b.Subscribe(EventSearchFailed, rec.handle)

	b.Publish(SearchFailedEvent{Seq: 1})
	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)

	unsubscribe()
	b.Publish(SearchFailedEvent{Seq: 2})

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestMultipleSubscribers(t *testing.T) {
	b := New()
	a, c := &eventRecorder{}, &eventRecorder{}
	b.Subscribe(EventSearchRequested, a.handle)
	b.Subscribe(EventSearchRequested, c.handle)

	b.Publish(SearchRequestedEvent{Seq: 7})

	require.Eventually(t, func() bool {
		return a.count() == 1 && c.count() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestHandlerPanicDoesNotKillBus(t *testing.T) {
	b := New()
	rec := &eventRecorder{}
	b.Subscribe(EventSearchRequested, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventSearchRequested, rec.handle)

	b.Publish(SearchRequestedEvent{Seq: 1})
	b.Publish(SearchRequestedEvent{Seq: 2})

	require.Eventually(t, func() bool { return rec.count() == 2 }, time.Second, 5*time.Millisecond)
}
