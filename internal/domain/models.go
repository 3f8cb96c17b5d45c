package domain

import "strings"

// ResultType classifies a suggestion by what activating it does.
type ResultType string

const (
	TypeText     ResultType = "text"
	TypeImage    ResultType = "image"
	TypeDocument ResultType = "document"
)

// AllTypes is the canonical serialization order for the types parameter.
var AllTypes = []ResultType{TypeText, TypeImage, TypeDocument}

// FilterSet maps a result type to its enabled state. Every type is an
// independent toggle; the all-disabled set is valid and yields an empty
// result set rather than an error.
type FilterSet map[ResultType]bool

// NewFilterSet returns a set with every known type enabled.
func NewFilterSet() FilterSet {
	fs := make(FilterSet, len(AllTypes))
	for _, t := range AllTypes {
		fs[t] = true
	}
	return fs
}

// Toggle flips the enabled state of one type.
func (fs FilterSet) Toggle(t ResultType) {
	fs[t] = !fs[t]
}

// Enabled reports whether a type is currently enabled.
func (fs FilterSet) Enabled(t ResultType) bool {
	return fs[t]
}

// CSV serializes the enabled types as a comma-joined list in canonical
// order, e.g. "text,image". The empty string means nothing is enabled.
func (fs FilterSet) CSV() string {
	var enabled []string
	for _, t := range AllTypes {
		if fs[t] {
			enabled = append(enabled, string(t))
		}
	}
	return strings.Join(enabled, ",")
}

// Clone returns an independent copy of the set.
func (fs FilterSet) Clone() FilterSet {
	out := make(FilterSet, len(fs))
	for t, on := range fs {
		out[t] = on
	}
	return out
}

// Suggestion is one ranked result returned by the suggest endpoint.
// Image and Category may be empty; Score is nil when the backend omits it.
type Suggestion struct {
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Image    string   `json:"image"`
	Category string   `json:"category"`
	Score    *float64 `json:"score"`
}

// SuggestResponse is the payload of one suggest call. A response belongs
// to exactly one request and is consumed by at most one render.
type SuggestResponse struct {
	Query       string       `json:"query"`
	TimeMS      float64      `json:"time_ms"`
	Suggestions []Suggestion `json:"suggestions"`
}

// HealthStatus is the payload of the backend health probe.
type HealthStatus struct {
	Status    string `json:"status"`
	Documents int    `json:"documents"`
	Model     string `json:"model"`
}
