package suggest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitesift/internal/eventbus"
)

type busRecorder struct {
	mu     sync.Mutex
	events []eventbus.DomainEvent
}

func (r *busRecorder) record(e eventbus.DomainEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *busRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func (r *busRecorder) first() eventbus.DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return nil
	}
	return r.events[0]
}

func TestServiceAnswersSearchRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"query": "sto",
			"time_ms": 3.2,
			"suggestions": [{"title": "Stoly", "url": "/stoly", "image": "", "category": "", "score": null}]
		}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	bus := eventbus.New()
	rec := &busRecorder{}
	bus.Subscribe(eventbus.EventSuggestionsArrived, rec.record)

	NewService(context.Background(), bus, client)

	bus.Publish(eventbus.SearchRequestedEvent{Seq: 42, Query: "sto", Types: "text,image,document", Limit: 20})

	require.Eventually(t, func() bool { return rec.count() == 1 }, 2*time.Second, 10*time.Millisecond)

	ev, ok := rec.first().(eventbus.SuggestionsArrivedEvent)
	require.True(t, ok)
	assert.Equal(t, uint64(42), ev.Seq)
	require.NotNil(t, ev.Response)
	assert.Equal(t, 3.2, ev.Response.TimeMS)
	require.Len(t, ev.Response.Suggestions, 1)
}

func TestServicePublishesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	bus := eventbus.New()
	rec := &busRecorder{}
	bus.Subscribe(eventbus.EventSearchFailed, rec.record)

	NewService(context.Background(), bus, client)

	bus.Publish(eventbus.SearchRequestedEvent{Seq: 7, Query: "sto", Types: "text", Limit: 20})

	require.Eventually(t, func() bool { return rec.count() == 1 }, 2*time.Second, 10*time.Millisecond)

	ev, ok := rec.first().(eventbus.SearchFailedEvent)
	require.True(t, ok)
	assert.Equal(t, uint64(7), ev.Seq)
	assert.Equal(t, "sto", ev.Query)
	assert.Error(t, ev.Err)
}

func TestServiceCheckHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status": "ok", "documents": 10, "model": "m"}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL)
	require.NoError(t, err)

	bus := eventbus.New()
	rec := &busRecorder{}
	bus.Subscribe(eventbus.EventHealthChecked, rec.record)

	svc := NewService(context.Background(), bus, client)
	svc.CheckHealth()

	require.Eventually(t, func() bool { return rec.count() == 1 }, 2*time.Second, 10*time.Millisecond)

	ev, ok := rec.first().(eventbus.HealthCheckedEvent)
	require.True(t, ok)
	require.NoError(t, ev.Err)
	assert.Equal(t, "ok", ev.Health.Status)
}
