package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ═══════════════════════════════════════════════════════════════════
// Shared color tokens
// ═══════════════════════════════════════════════════════════════════

var (
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"}
	ColorDanger  = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}
)

// ═══════════════════════════════════════════════════════════════════
// Shared render helpers
// ═══════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal rule of the given width.
func RenderDivider(width int, t Theme) string {
	if width < 1 {
		return ""
	}
	return t.Renderer.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", width))
}

// RenderProgressBar renders the playback position as a filled bar.
// frac is clamped into [0, 1]; the bar turns green once it reaches the
// final frame so a finished run reads at a glance.
func RenderProgressBar(frac float64, width int, t Theme) string {
	if width < 1 {
		return ""
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	color := t.Primary
	if frac >= 1 {
		color = t.Visited
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return t.Renderer.NewStyle().Foreground(color).Render(bar)
}
