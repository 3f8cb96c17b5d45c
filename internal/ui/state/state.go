package state

import "sitesift/internal/domain"

// PanelState is the lifecycle of the search surface. Transitions run
// Closed → Expanding → Open → Collapsing → Closed; only one transition may
// be in flight at a time.
type PanelState int

const (
	PanelClosed PanelState = iota
	PanelExpanding
	PanelOpen
	PanelCollapsing
)

func (p PanelState) String() string {
	switch p {
	case PanelClosed:
		return "closed"
	case PanelExpanding:
		return "expanding"
	case PanelOpen:
		return "open"
	case PanelCollapsing:
		return "collapsing"
	}
	return "unknown"
}

// Transitioning reports whether an animated phase is in flight.
func (p PanelState) Transitioning() bool {
	return p == PanelExpanding || p == PanelCollapsing
}

// LightboxState is the navigable subset of image results built at
// activation time. It does not survive a re-render of the result list.
type LightboxState struct {
	Items []domain.Suggestion
	Index int
}

// AppState is the single owned instance of widget state. One AppState per
// widget instance; no package-level mutables.
type AppState struct {
	Panel   PanelState
	Query   string
	Filters domain.FilterSet

	// Rendered response state
	Results  []domain.Suggestion
	Latency  float64 // backend-reported time_ms of the rendered response
	Searched bool    // a response for the current query has been rendered
	Failed   bool    // last request ended in the inline error placeholder

	// Selection: -1 means focus is in the input field
	Selected   int
	ListOffset int

	// Request correlation. DebounceSeq supersedes pending settle timers;
	// IssuedSeq is the sequence of the most recently dispatched request and
	// the only one whose response may render. Zero means none outstanding.
	DebounceSeq uint64
	IssuedSeq   uint64
	nextSeq     uint64

	Loading bool

	Lightbox *LightboxState

	StatusMessage string
}

// NewAppState creates widget state with all filters enabled
func NewAppState() *AppState {
	return &AppState{
		Panel:    PanelClosed,
		Filters:  domain.NewFilterSet(),
		Selected: -1,
	}
}

// NextSeq hands out the next request sequence number and records it as the
// latest issued one.
func (s *AppState) NextSeq() uint64 {
	s.nextSeq++
	s.IssuedSeq = s.nextSeq
	return s.nextSeq
}

// InvalidateInflight makes any in-flight response stale without issuing a
// new request (used when the query drops below the minimum length).
func (s *AppState) InvalidateInflight() {
	s.IssuedSeq = 0
	s.Loading = false
}

// ClearResults wipes the rendered list and resets selection to the input.
func (s *AppState) ClearResults() {
	s.Results = nil
	s.Latency = 0
	s.Searched = false
	s.Failed = false
	s.Selected = -1
	s.ListOffset = 0
	s.Lightbox = nil
	s.Loading = false
}

// SetResults installs a freshly arrived response and resets selection.
func (s *AppState) SetResults(results []domain.Suggestion, latency float64) {
	s.Results = results
	s.Latency = latency
	s.Searched = true
	s.Failed = false
	s.Selected = -1
	s.ListOffset = 0
	s.Lightbox = nil
	s.Loading = false
}

// SetFailed switches the list into the inline error placeholder.
func (s *AppState) SetFailed() {
	s.Results = nil
	s.Searched = false
	s.Failed = true
	s.Selected = -1
	s.ListOffset = 0
	s.Lightbox = nil
	s.Loading = false
}
