package suggest

import (
	"context"

	"go.uber.org/zap"

	"sitesift/internal/eventbus"
)

// Service bridges the event bus and the HTTP client: the UI publishes
// SearchRequested, the service answers with SuggestionsArrived or
// SearchFailed. Superseded requests are not aborted here; the UI drops
// stale responses by sequence number.
type Service struct {
	bus    eventbus.EventBus
	client *Client
	ctx    context.Context
}

// NewService creates the service and subscribes it to search requests
func NewService(ctx context.Context, bus eventbus.EventBus, client *Client) *Service {
	s := &Service{
		bus:    bus,
		client: client,
		ctx:    ctx,
	}

	bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		if req, ok := e.(eventbus.SearchRequestedEvent); ok {
			s.handleSearch(req)
		}
	})

	return s
}

func (s *Service) handleSearch(req eventbus.SearchRequestedEvent) {
	resp, err := s.client.Suggest(s.ctx, req.Query, req.Types, req.Limit)
	if err != nil {
		zap.S().Warnw("suggest request failed", "seq", req.Seq, "query", req.Query, "err", err)
		s.bus.Publish(eventbus.SearchFailedEvent{Seq: req.Seq, Query: req.Query, Err: err})
		return
	}

	zap.S().Debugw("suggest request completed",
		"seq", req.Seq, "query", req.Query, "results", len(resp.Suggestions), "time_ms", resp.TimeMS)
	s.bus.Publish(eventbus.SuggestionsArrivedEvent{Seq: req.Seq, Response: resp})
}

// CheckHealth probes the backend once and publishes the outcome. Meant to
// run in a goroutine at startup; a dead backend is reported, not fatal.
func (s *Service) CheckHealth() {
	hs, err := s.client.Health(s.ctx)
	if err != nil {
		zap.S().Warnw("backend health probe failed", "err", err)
	} else {
		zap.S().Infow("backend healthy", "documents", hs.Documents, "model", hs.Model)
	}
	s.bus.Publish(eventbus.HealthCheckedEvent{Health: hs, Err: err})
}
