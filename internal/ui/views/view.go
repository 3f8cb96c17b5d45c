package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sitesift/internal/domain"
	"sitesift/internal/ui/logic"
	"sitesift/internal/ui/state"
)

// ViewState is everything the renderer needs for one frame. The model
// builds it; the renderer never reaches back into mutable state.
type ViewState struct {
	Width  int
	Height int

	Panel      state.PanelState
	InputView  string
	SpinnerDot string
	Loading    bool

	Query      string
	Filters    domain.FilterSet
	Results    []domain.Suggestion
	Selected   int
	Offset     int
	ListHeight int
	Latency    float64
	Searched   bool
	Failed     bool

	Status   string
	Lightbox *state.LightboxState

	ImageBase  string
	ImageLabel string
}

// Renderer turns a ViewState into a frame
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new Renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render renders the whole frame for the current panel state
func (r *Renderer) Render(vs ViewState) string {
	if vs.Width <= 0 {
		return "Loading..."
	}

	if vs.Lightbox != nil {
		return r.renderLightbox(vs)
	}

	switch vs.Panel {
	case state.PanelClosed, state.PanelCollapsing:
		return r.renderTrigger(vs, false)
	case state.PanelExpanding:
		return r.renderTrigger(vs, true)
	default:
		return r.renderPanel(vs)
	}
}

// renderTrigger draws the idle floating trigger, or its stretched shape
// mid-transition.
func (r *Renderer) renderTrigger(vs ViewState, expanded bool) string {
	label := "⌕ search  ctrl+k"
	var pill string
	if expanded {
		pill = r.styles.TriggerBar.Render(label)
	} else {
		pill = r.styles.Trigger.Render(label)
	}
	return lipgloss.Place(vs.Width, vs.Height, lipgloss.Center, lipgloss.Center, pill)
}

// renderPanel draws the open search surface: input, filter chips, result
// list and footer.
func (r *Renderer) renderPanel(vs ViewState) string {
	var b strings.Builder

	b.WriteString(r.styles.Prompt.Render("Search: "))
	b.WriteString(vs.InputView)
	if vs.Loading {
		b.WriteString(" ")
		b.WriteString(vs.SpinnerDot)
	}
	b.WriteString("\n")
	b.WriteString(r.renderFilters(vs.Filters))
	b.WriteString("\n\n")

	b.WriteString(r.renderList(vs))

	b.WriteString("\n")
	b.WriteString(r.renderFooter(vs))

	if vs.Status != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Status.Render(vs.Status))
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Help.Render("↑/↓ select · enter open · F1/F2/F3 filters · esc close"))

	return b.String()
}

// renderFilters draws one chip per result type, struck through when off.
func (r *Renderer) renderFilters(fs domain.FilterSet) string {
	chips := make([]string, 0, len(domain.AllTypes))
	for _, t := range domain.AllTypes {
		if fs.Enabled(t) {
			chips = append(chips, r.styles.FilterOn.Render("["+string(t)+"]"))
		} else {
			chips = append(chips, r.styles.FilterOff.Render("["+string(t)+"]"))
		}
	}
	return strings.Join(chips, " ")
}

func (r *Renderer) renderList(vs ViewState) string {
	if vs.Failed {
		return r.styles.Error.Render("search failed · keep typing to retry")
	}
	if len(vs.Results) == 0 {
		if vs.Searched {
			return r.styles.Dim.Render(fmt.Sprintf("nothing found for %q", logic.Sanitize(vs.Query)))
		}
		return r.styles.Dim.Render("type to search…")
	}

	height := vs.ListHeight
	if height <= 0 || height > len(vs.Results) {
		height = len(vs.Results)
	}
	end := vs.Offset + height
	if end > len(vs.Results) {
		end = len(vs.Results)
	}

	var rows []string
	for i := vs.Offset; i < end; i++ {
		rows = append(rows, r.renderRow(vs, i))
	}
	return strings.Join(rows, "\n")
}

// renderRow draws one suggestion. The selected row is rendered unstyled
// under a background wash so highlight resets cannot break the bar.
func (r *Renderer) renderRow(vs ViewState, i int) string {
	s := vs.Results[i]
	title := logic.Sanitize(s.Title)
	category := logic.Sanitize(s.Category)

	thumb := r.thumbCell(s, vs)

	var meta string
	if category != "" {
		meta += "  " + r.styles.Category.Render(category)
	}
	if pct, ok := logic.ScorePercent(s.Score); ok {
		meta += "  " + r.styles.Score.Render(fmt.Sprintf("%d%%", pct))
	}

	if i == vs.Selected {
		line := fmt.Sprintf("> %s %s%s", r.plainThumb(s, vs), title, plainMeta(s, category))
		return r.styles.SelectionBg.Render(padRight(line, vs.Width))
	}

	styledTitle := r.highlightTitle(title, vs.Query)
	return fmt.Sprintf("  %s %s%s", thumb, styledTitle, meta)
}

// thumbCell renders the thumbnail marker: the resolved image URL gets an
// image marker, anything else degrades to the category glyph.
func (r *Renderer) thumbCell(s domain.Suggestion, vs ViewState) string {
	if resolved := logic.ResolveImageURL(s.Image, vs.ImageBase); resolved != "" {
		return r.styles.Glyph.Render("[img]")
	}
	return r.styles.Dim.Render("[" + logic.CategoryGlyph(s.Category, vs.ImageLabel) + "]")
}

func (r *Renderer) plainThumb(s domain.Suggestion, vs ViewState) string {
	if s.Image != "" {
		return "[img]"
	}
	return "[" + logic.CategoryGlyph(s.Category, vs.ImageLabel) + "]"
}

func plainMeta(s domain.Suggestion, category string) string {
	var meta string
	if category != "" {
		meta += "  " + category
	}
	if pct, ok := logic.ScorePercent(s.Score); ok {
		meta += fmt.Sprintf("  %d%%", pct)
	}
	return meta
}

// highlightTitle styles every query-term hit inside the title.
func (r *Renderer) highlightTitle(title, query string) string {
	segs := logic.HighlightSegments(title, query)
	var b strings.Builder
	for _, seg := range segs {
		if seg.Match {
			b.WriteString(r.styles.Highlight.Render(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

func (r *Renderer) renderFooter(vs ViewState) string {
	if !vs.Searched {
		return ""
	}
	return r.styles.Footer.Render(
		fmt.Sprintf("%.1f ms · %d results", vs.Latency, len(vs.Results)))
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
