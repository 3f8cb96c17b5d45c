package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"sitesift/internal/config"
	"sitesift/internal/domain"
	"sitesift/internal/eventbus"
	"sitesift/internal/ui/logic"
	"sitesift/internal/ui/state"
	"sitesift/internal/ui/views"
)

// Lines of panel chrome around the result list: input, filter chips,
// spacing, footer, status, help.
const chromeLines = 8

// Model is the root Bubble Tea model: panel state machine, debounced
// dispatcher, keyboard controller, filter toggles and lightbox control.
// All mutable widget state lives in one AppState instance.
type Model struct {
	cfg   *config.Config
	bus   eventbus.EventBus
	state *state.AppState

	input    textinput.Model
	spin     spinner.Model
	renderer *views.Renderer

	// origin resolves origin-relative thumbnail and page paths; either the
	// configured image_base or the suggest endpoint's origin.
	origin string

	pages *PageOps

	width  int
	height int

	program *tea.Program
}

// NewModel creates the widget model. fetcher may be nil; document preview
// then degrades to opening in the browser.
func NewModel(cfg *config.Config, bus eventbus.EventBus, origin string, fetcher Fetcher) *Model {
	ti := textinput.New()
	ti.Placeholder = "search the site…"
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	base := cfg.ImageBase
	if base == "" {
		base = origin
	}

	return &Model{
		cfg:      cfg,
		bus:      bus,
		state:    state.NewAppState(),
		input:    ti,
		spin:     sp,
		renderer: views.NewRenderer(),
		origin:   base,
		pages:    NewPageOps(fetcher),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pages.SetProgram(p)
}

// State exposes the widget state for inspection
func (m *Model) State() *state.AppState {
	return m.state
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 20; w > 0 && w < 60 {
			m.input.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.state.Loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case debounceMsg:
		return m.handleDebounce(msg)

	case panelMsg:
		return m.handlePanelPhase(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			zap.S().Warnw("document preview failed", "url", msg.url, "err", msg.err)
			return m.flashStatus("preview failed")
		}
		return m, nil

	case browserDoneMsg:
		if msg.err != nil {
			zap.S().Warnw("browser launch failed", "url", msg.url, "err", msg.err)
			return m.flashStatus("could not open browser")
		}
		return m, nil
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	return m.renderer.Render(views.ViewState{
		Width:      m.width,
		Height:     m.height,
		Panel:      m.state.Panel,
		InputView:  m.input.View(),
		SpinnerDot: m.spin.View(),
		Loading:    m.state.Loading,
		Query:      m.state.Query,
		Filters:    m.state.Filters,
		Results:    m.state.Results,
		Selected:   m.state.Selected,
		Offset:     m.state.ListOffset,
		ListHeight: m.listHeight(),
		Latency:    m.state.Latency,
		Searched:   m.state.Searched,
		Failed:     m.state.Failed,
		Status:     m.state.StatusMessage,
		Lightbox:   m.state.Lightbox,
		ImageBase:  m.origin,
		ImageLabel: m.cfg.ImageCategory,
	})
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// The lightbox owns the keyboard while active; no key it handles may
	// also reach the list controller or close the panel underneath it.
	if m.state.Lightbox != nil && m.state.Panel == state.PanelOpen {
		return m.handleLightboxKey(key)
	}

	switch m.state.Panel {
	case state.PanelClosed:
		switch key {
		case "ctrl+k", "/":
			return m.openPanel()
		case "q":
			return m, tea.Quit
		}
		return m, nil

	case state.PanelExpanding, state.PanelCollapsing:
		// Transition guard: input is ignored mid-flight
		return m, nil
	}

	switch key {
	case "ctrl+k", "esc":
		return m.closePanel()

	case "up":
		m.moveSelection(-1)
		return m, nil

	case "down":
		m.moveSelection(1)
		return m, nil

	case "enter":
		if m.state.Selected >= 0 {
			return m.activate(m.state.Selected, false)
		}
		return m, nil

	case "o":
		// Only an action key while focus is on the list; otherwise it is
		// ordinary input text.
		if m.state.Selected >= 0 {
			return m.activate(m.state.Selected, true)
		}

	case "f1":
		return m.toggleFilter(domain.TypeText)
	case "f2":
		return m.toggleFilter(domain.TypeImage)
	case "f3":
		return m.toggleFilter(domain.TypeDocument)
	}

	if m.state.Selected >= 0 {
		// Focus is on the result list; typing resumes only at index -1
		return m, nil
	}

	prev := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != prev {
		return m, tea.Batch(cmd, m.onQueryChanged(m.input.Value()))
	}
	return m, cmd
}

// onQueryChanged is called on every input edit: it supersedes any pending
// settle timer and either clears (below the minimum length) or arms a new
// debounce timer for the trimmed query.
func (m *Model) onQueryChanged(raw string) tea.Cmd {
	query := strings.TrimSpace(raw)
	m.state.Query = query
	m.state.DebounceSeq++
	seq := m.state.DebounceSeq

	if len([]rune(query)) < m.cfg.MinChars {
		m.state.ClearResults()
		m.state.InvalidateInflight()
		return nil
	}

	delay := time.Duration(m.cfg.DebounceMS) * time.Millisecond
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}

func (m *Model) handleDebounce(msg debounceMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.state.DebounceSeq {
		// A newer edit superseded this timer
		return m, nil
	}
	if m.state.Panel != state.PanelOpen || len([]rune(m.state.Query)) < m.cfg.MinChars {
		// The panel closed or the query shrank while the timer was pending
		return m, nil
	}
	return m, m.dispatch()
}

// dispatch publishes exactly one search request carrying the current
// query and filter state and marks its sequence as the only one whose
// response may render.
func (m *Model) dispatch() tea.Cmd {
	seq := m.state.NextSeq()
	m.bus.Publish(eventbus.SearchRequestedEvent{
		Seq:   seq,
		Query: m.state.Query,
		Types: m.state.Filters.CSV(),
		Limit: m.cfg.Limit,
	})
	m.state.Loading = true
	return m.spin.Tick
}

// toggleFilter flips one result-type filter and, when the current query
// qualifies, re-dispatches immediately, bypassing the debounce.
func (m *Model) toggleFilter(t domain.ResultType) (tea.Model, tea.Cmd) {
	m.state.Filters.Toggle(t)
	if len([]rune(m.state.Query)) >= m.cfg.MinChars {
		m.state.DebounceSeq++ // cancel any pending settle timer
		return m, m.dispatch()
	}
	return m, nil
}

func (m *Model) handleEvent(ev eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch ev := ev.(type) {
	case eventbus.SuggestionsArrivedEvent:
		if ev.Seq != m.state.IssuedSeq {
			zap.S().Debugw("dropping superseded response", "seq", ev.Seq, "latest", m.state.IssuedSeq)
			return m, nil
		}
		if m.state.Panel != state.PanelOpen {
			return m, nil
		}
		m.state.SetResults(ev.Response.Suggestions, ev.Response.TimeMS)
		m.input.Focus()
		return m, nil

	case eventbus.SearchFailedEvent:
		if ev.Seq != m.state.IssuedSeq || m.state.Panel != state.PanelOpen {
			return m, nil
		}
		m.state.SetFailed()
		m.input.Focus()
		return m, nil

	case eventbus.HealthCheckedEvent:
		if ev.Err != nil {
			return m.flashStatus("suggest backend unreachable")
		}
		return m, nil
	}

	return m, nil
}

// moveSelection shifts the selection clamped to [-1, n-1]; -1 hands focus
// back to the text input.
func (m *Model) moveSelection(delta int) {
	n := len(m.state.Results)
	m.state.Selected = logic.MoveSelection(m.state.Selected, delta, n)
	if m.state.Selected < 0 {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.state.ListOffset = logic.EnsureVisible(m.state.ListOffset, m.state.Selected, m.listHeight(), n)
}

// activate routes a result exactly like a click: image candidates open
// the lightbox, documents preview in place, everything else (and any
// external=true request) opens the system browser.
func (m *Model) activate(index int, external bool) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.state.Results) {
		return m, nil
	}
	s := m.state.Results[index]

	if !external && logic.IsImageCandidate(s, m.cfg.ImageCategory) {
		items := logic.ImageItems(m.state.Results, m.cfg.ImageCategory)
		m.state.Lightbox = &state.LightboxState{
			Items: items,
			Index: logic.LocateItem(items, s),
		}
		return m, nil
	}

	if !external && logic.IsDocumentCategory(s.Category) && m.pages.CanPreview() {
		return m, m.pages.PreviewCmd(s.URL)
	}

	return m, m.pages.OpenBrowserCmd(logic.ResolveImageURL(s.URL, m.origin))
}

func (m *Model) handleLightboxKey(key string) (tea.Model, tea.Cmd) {
	lb := m.state.Lightbox
	switch key {
	case "esc", "q":
		// Closes only the lightbox; the panel stays open underneath
		m.state.Lightbox = nil
	case "left", "h":
		if lb.Index > 0 {
			lb.Index--
		}
	case "right", "l":
		if lb.Index < len(lb.Items)-1 {
			lb.Index++
		}
	case "enter", "o":
		url := lb.Items[lb.Index].URL
		return m, m.pages.OpenBrowserCmd(logic.ResolveImageURL(url, m.origin))
	}
	// Every key is consumed here so the list controller never reacts to
	// the same keystroke.
	return m, nil
}

// openPanel starts the Closed → Expanding → Open transition.
func (m *Model) openPanel() (tea.Model, tea.Cmd) {
	if m.state.Panel != state.PanelClosed {
		return m, nil
	}
	m.state.Panel = state.PanelExpanding
	delay := time.Duration(m.cfg.UISettings.ExpandMS) * time.Millisecond
	return m, tea.Tick(delay, func(time.Time) tea.Msg {
		return panelMsg{to: state.PanelOpen}
	})
}

// closePanel starts the Open → Collapsing → Closed transition. The result
// panel disappears immediately; the trigger returns after the teardown
// delay releases the guard.
func (m *Model) closePanel() (tea.Model, tea.Cmd) {
	if m.state.Panel != state.PanelOpen {
		return m, nil
	}
	m.state.Panel = state.PanelCollapsing
	m.state.ClearResults()
	m.state.InvalidateInflight()
	m.state.Query = ""
	m.state.DebounceSeq++ // kill any settle timer still pending
	m.input.Blur()
	delay := time.Duration(m.cfg.UISettings.CollapseMS) * time.Millisecond
	return m, tea.Tick(delay, func(time.Time) tea.Msg {
		return panelMsg{to: state.PanelClosed}
	})
}

func (m *Model) handlePanelPhase(msg panelMsg) (tea.Model, tea.Cmd) {
	switch msg.to {
	case state.PanelOpen:
		if m.state.Panel != state.PanelExpanding {
			return m, nil // stale phase message
		}
		m.state.Panel = state.PanelOpen
		m.state.ClearResults()
		m.state.Query = ""
		m.input.Reset()
		m.input.Focus()
		return m, textinput.Blink

	case state.PanelClosed:
		if m.state.Panel != state.PanelCollapsing {
			return m, nil
		}
		m.state.Panel = state.PanelClosed
	}
	return m, nil
}

func (m *Model) flashStatus(text string) (tea.Model, tea.Cmd) {
	m.state.StatusMessage = text
	return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m *Model) listHeight() int {
	h := m.height - chromeLines
	if h < 3 {
		h = 3
	}
	return h
}
