package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/stepview/pkg/trace"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeBg returns the given hex color for TrueColor terminals and
// lipgloss.NoColor{} otherwise, so 16/256-color terminals use the
// terminal's own background instead of a down-converted approximation
// that may clash with palettes like Solarized.
func ThemeBg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.TrueColor {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

// Role classifies what a frame highlight says about one array cell.
// Higher values win when a cell appears in more than one highlight set,
// so the swap flash is never hidden behind the pivot marker it lands on.
type Role int

const (
	RoleNone Role = iota
	RoleMarked
	RolePivot
	RoleCompared
	RoleSwapped
)

// RoleOf resolves the highest-priority role index i holds in h.
func RoleOf(i int, h trace.Highlights) Role {
	role := RoleNone
	for _, idx := range h.Indices {
		if idx == i {
			role = RoleMarked
		}
	}
	if h.Pivot != nil && *h.Pivot == i && role < RolePivot {
		role = RolePivot
	}
	for _, idx := range h.Compared {
		if idx == i && role < RoleCompared {
			role = RoleCompared
		}
	}
	for _, idx := range h.Swapped {
		if idx == i && role < RoleSwapped {
			role = RoleSwapped
		}
	}
	return role
}

type Theme struct {
	Renderer *lipgloss.Renderer

	// Colors
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor

	// Highlight roles
	Compared lipgloss.AdaptiveColor
	Swapped  lipgloss.AdaptiveColor
	Pivot    lipgloss.AdaptiveColor
	Marked   lipgloss.AdaptiveColor
	Visited  lipgloss.AdaptiveColor
	Bar      lipgloss.AdaptiveColor

	// UI Elements
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor

	// Styles
	Base     lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style

	// Pre-computed render styles. These are created once at startup
	// instead of per-frame; the board repaints every cell on every tick.
	MutedText     lipgloss.Style // footer hints, scroll info
	SecondaryText lipgloss.Style // frame counter, input summary
	PrimaryBold   lipgloss.Style // algorithm name, active markers
	ErrorText     lipgloss.Style // parse and generation failures
	ExplainText   lipgloss.Style // per-frame narration line
	BarNone       lipgloss.Style
	BarMarked     lipgloss.Style
	BarPivot      lipgloss.Style
	BarCompared   lipgloss.Style
	BarSwapped    lipgloss.Style
	PCActive      lipgloss.Style // pseudocode line the frame points at
	PCDim         lipgloss.Style // the other pseudocode lines
}

// DefaultTheme returns the standard Dracula-inspired theme (adaptive).
// Light mode values are darkened where needed to keep WCAG AA contrast.
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}, // Purple
		Secondary: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}, // Gray
		Subtext:   lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BFBFBF"}, // Dim

		Compared: lipgloss.AdaptiveColor{Light: "#8A6D00", Dark: "#F1FA8C"}, // Yellow - under comparison
		Swapped:  lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}, // Red - just exchanged
		Pivot:    lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}, // Purple - pivot / probe midpoint
		Marked:   lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}, // Cyan - bracket, merged run, found cell
		Visited:  lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}, // Green - visited node
		Bar:      lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"}, // Gray - unhighlighted cell

		Border:    lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#44475A"},
		Highlight: lipgloss.AdaptiveColor{Light: "#E0E0E0", Dark: "#44475A"},
		Muted:     lipgloss.AdaptiveColor{Light: "#555555", Dark: "#6272A4"},
	}

	t.Base = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#F8F8F2"})

	t.Header = r.NewStyle().
		Background(t.Primary).
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#282A36"}).
		Bold(true).
		Padding(0, 1)

	t.Selected = r.NewStyle().
		Background(t.Highlight).
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(t.Primary).
		PaddingLeft(1).
		Bold(true)

	t.MutedText = r.NewStyle().Foreground(t.Muted)
	t.SecondaryText = r.NewStyle().Foreground(t.Secondary)
	t.PrimaryBold = r.NewStyle().Foreground(t.Primary).Bold(true)
	t.ErrorText = r.NewStyle().Foreground(t.Swapped).Bold(true)
	t.ExplainText = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#F8F8F2"}).Bold(true)
	t.BarNone = r.NewStyle().Foreground(t.Bar)
	t.BarMarked = r.NewStyle().Foreground(t.Marked)
	t.BarPivot = r.NewStyle().Foreground(t.Pivot)
	t.BarCompared = r.NewStyle().Foreground(t.Compared)
	t.BarSwapped = r.NewStyle().Foreground(t.Swapped).Bold(true)
	t.PCActive = r.NewStyle().Foreground(t.Primary).Bold(true)
	t.PCDim = r.NewStyle().Foreground(t.Muted)

	return t
}

// RoleColor maps a highlight role to its theme color.
func (t Theme) RoleColor(role Role) lipgloss.AdaptiveColor {
	switch role {
	case RoleSwapped:
		return t.Swapped
	case RoleCompared:
		return t.Compared
	case RolePivot:
		return t.Pivot
	case RoleMarked:
		return t.Marked
	default:
		return t.Bar
	}
}

// RoleStyle maps a highlight role to its precomputed bar style.
func (t Theme) RoleStyle(role Role) lipgloss.Style {
	switch role {
	case RoleSwapped:
		return t.BarSwapped
	case RoleCompared:
		return t.BarCompared
	case RolePivot:
		return t.BarPivot
	case RoleMarked:
		return t.BarMarked
	default:
		return t.BarNone
	}
}

// TestTheme returns a theme suitable for use in tests.
func TestTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(os.Stdout))
}
