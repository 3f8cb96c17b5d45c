package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"sitesift/internal/ui/logic"
)

// renderLightbox draws the full-screen image preview with prev/next hints,
// a position counter and the originating page link. Boundary hints are
// dropped instead of wrapping.
func (r *Renderer) renderLightbox(vs ViewState) string {
	lb := vs.Lightbox
	if lb == nil || len(lb.Items) == 0 {
		return ""
	}
	item := lb.Items[lb.Index]

	title := logic.Sanitize(item.Title)
	imageURL := logic.ResolveImageURL(logic.Sanitize(item.Image), vs.ImageBase)
	pageURL := logic.Sanitize(item.URL)

	var b strings.Builder
	b.WriteString(r.styles.Prompt.Render(title))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Glyph.Render(imageURL))
	b.WriteString("\n\n")
	if item.Category != "" {
		b.WriteString(r.styles.Category.Render(logic.Sanitize(item.Category)))
		if pct, ok := logic.ScorePercent(item.Score); ok {
			b.WriteString(r.styles.Score.Render(fmt.Sprintf("  %d%%", pct)))
		}
		b.WriteString("\n")
	}
	b.WriteString(r.styles.Dim.Render("page: " + pageURL))
	b.WriteString("\n\n")

	prev := "          "
	if lb.Index > 0 {
		prev = "← previous"
	}
	next := "      "
	if lb.Index < len(lb.Items)-1 {
		next = "next →"
	}
	counter := fmt.Sprintf("%d / %d", lb.Index+1, len(lb.Items))
	b.WriteString(r.styles.Help.Render(prev))
	b.WriteString("   ")
	b.WriteString(r.styles.Footer.Render(counter))
	b.WriteString("   ")
	b.WriteString(r.styles.Help.Render(next))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Help.Render("enter/o open page · esc close"))

	box := r.styles.LightboxBox.Render(b.String())
	return lipgloss.Place(vs.Width, vs.Height, lipgloss.Center, lipgloss.Center, box)
}
