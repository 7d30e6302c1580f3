package ui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vanderheijden86/stepview/pkg/trace"
)

const (
	minPseudocodeWidth = 24
	maxPseudocodeWidth = 44
)

// pseudocodeWidth sizes the listing pane to its longest line plus the
// marker and number gutter, inside fixed bounds.
func pseudocodeWidth(listing []string) int {
	w := minPseudocodeWidth
	for _, line := range listing {
		if lw := runewidth.StringWidth(line) + 6; lw > w {
			w = lw
		}
	}
	if w > maxPseudocodeWidth {
		w = maxPseudocodeWidth
	}
	return w
}

// renderPseudocode draws the listing with the line the current frame
// points at marked. A terminal frame points at no line, so a finished
// trace shows the whole listing dimmed.
func (m Model) renderPseudocode(width, height int, frame trace.Frame) string {
	t := m.theme

	lines := make([]string, 0, len(m.spec.Pseudocode)+1)
	lines = append(lines, t.SecondaryText.Render(truncate(" pseudocode", width)))
	for i, pc := range m.spec.Pseudocode {
		text := truncate(fmt.Sprintf("%2d  %s", i, pc), width-2)
		if i == frame.PCLine {
			lines = append(lines, t.PCActive.Render("▶ "+text))
		} else {
			lines = append(lines, t.PCDim.Render("  "+text))
		}
	}
	if len(lines) > height && height > 0 {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}
