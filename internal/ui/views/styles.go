package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Trigger     lipgloss.Style
	TriggerBar  lipgloss.Style
	Prompt      lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	FilterOn    lipgloss.Style
	FilterOff   lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Category    lipgloss.Style
	Score       lipgloss.Style
	Glyph       lipgloss.Style
	Error       lipgloss.Style
	Footer      lipgloss.Style
	LightboxBox lipgloss.Style
	Help        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Trigger: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2),
		TriggerBar: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 8),
		Prompt:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		FilterOn:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		FilterOff:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Category:    lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Score:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Glyph:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		LightboxBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		Help: lipgloss.NewStyle().Faint(true),
	}
}
