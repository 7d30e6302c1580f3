package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/stepview/pkg/algorithms"
)

// infoWidth sizes the description overlay to the terminal.
func infoWidth(total int) int {
	w := total - 12
	if w > 72 {
		w = 72
	}
	if w < 40 {
		w = 40
	}
	return w
}

// renderDescription runs the catalog's markdown through glamour. On any
// rendering failure the raw markdown is shown instead; the pane is
// informational and must never take the viewer down.
func renderDescription(spec algorithms.Spec, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return spec.Description
	}
	out, err := r.Render(spec.Description)
	if err != nil {
		return spec.Description
	}
	return strings.TrimRight(out, "\n")
}

// renderInfoOverlay shows the cached description centered on screen.
func (m Model) renderInfoOverlay() string {
	t := m.theme

	body := m.infoView
	if body == "" {
		body = renderDescription(m.spec, infoWidth(m.width))
	}

	var b strings.Builder
	b.WriteString(t.PrimaryBold.Render(m.spec.Name))
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(t.MutedText.Render("esc close"))

	box := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Render(b.String())

	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
