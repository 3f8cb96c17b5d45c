package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested    EventType = "SearchRequested"
	EventSuggestionsArrived EventType = "SuggestionsArrived"
	EventSearchFailed       EventType = "SearchFailed"
	EventHealthChecked      EventType = "HealthChecked"
	EventError              EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent is emitted by the UI when a debounced query (or an
// immediate filter re-query) should hit the suggest endpoint. Seq is the
// request sequence number; only the response carrying the most recently
// issued Seq may reach the screen.
type SearchRequestedEvent struct {
	Seq   uint64
	Query string
	Types string // comma-joined enabled type tags
	Limit int
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SuggestionsArrivedEvent is emitted when a suggest call completes.
type SuggestionsArrivedEvent struct {
	Seq      uint64
	Response *SuggestResponse
}

func (e SuggestionsArrivedEvent) Type() EventType { return EventSuggestionsArrived }

// SearchFailedEvent is emitted when a suggest call fails or returns garbage
type SearchFailedEvent struct {
	Seq   uint64
	Query string
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// HealthCheckedEvent carries the result of the startup backend probe
type HealthCheckedEvent struct {
	Health *HealthStatus
	Err    error
}

func (e HealthCheckedEvent) Type() EventType { return EventHealthChecked }

// ErrorEvent is emitted when an error occurs outside a search
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
