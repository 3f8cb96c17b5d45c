package ui

import (
	"sitesift/internal/eventbus"
	"sitesift/internal/ui/state"
)

// EventMsg wraps a domain event forwarded from the bus into the program
type EventMsg struct {
	Event eventbus.DomainEvent
}

// debounceMsg fires when a settle timer elapses. Seq identifies which
// edit armed the timer; a newer edit makes older timers dead on arrival.
type debounceMsg struct {
	seq uint64
}

// panelMsg completes one animated phase of the panel state machine
type panelMsg struct {
	to state.PanelState
}

// clearStatusMsg wipes a transient status message
type clearStatusMsg struct{}

// pagerDoneMsg reports an in-place document preview finishing
type pagerDoneMsg struct {
	url string
	err error
}

// browserDoneMsg reports an external browser launch finishing
type browserDoneMsg struct {
	url string
	err error
}
