package ui

import (
	"testing"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/stepview/pkg/trace"
)

func TestDefaultTheme(t *testing.T) {
	renderer := lipgloss.NewRenderer(nil)
	theme := DefaultTheme(renderer)

	if theme.Renderer != renderer {
		t.Error("DefaultTheme renderer mismatch")
	}
	// Check a few known colors are set (not zero value)
	if isColorEmpty(theme.Primary) {
		t.Error("DefaultTheme Primary color is empty")
	}
	if isColorEmpty(theme.Swapped) {
		t.Error("DefaultTheme Swapped color is empty")
	}
	if isColorEmpty(theme.Visited) {
		t.Error("DefaultTheme Visited color is empty")
	}
}

func isColorEmpty(c lipgloss.AdaptiveColor) bool {
	return c.Light == "" && c.Dark == ""
}

func TestRoleColor(t *testing.T) {
	theme := DefaultTheme(lipgloss.NewRenderer(nil))

	tests := []struct {
		role Role
		want lipgloss.AdaptiveColor
	}{
		{RoleSwapped, theme.Swapped},
		{RoleCompared, theme.Compared},
		{RolePivot, theme.Pivot},
		{RoleMarked, theme.Marked},
		{RoleNone, theme.Bar},
	}

	for _, tt := range tests {
		if got := theme.RoleColor(tt.role); got != tt.want {
			t.Errorf("RoleColor(%d) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestRoleOfPriority(t *testing.T) {
	pivot := 1
	hl := trace.Highlights{
		Compared: []int{1, 2},
		Swapped:  []int{1},
		Pivot:    &pivot,
		Indices:  []int{1, 3},
	}

	tests := []struct {
		idx  int
		want Role
	}{
		{1, RoleSwapped},  // in every set; swap wins
		{2, RoleCompared}, // compared only
		{3, RoleMarked},   // indices only
		{0, RoleNone},
	}
	for _, tt := range tests {
		if got := RoleOf(tt.idx, hl); got != tt.want {
			t.Errorf("RoleOf(%d) = %d, want %d", tt.idx, got, tt.want)
		}
	}
}

func TestRoleOfPivotBeatsMarked(t *testing.T) {
	pivot := 4
	hl := trace.Highlights{Pivot: &pivot, Indices: []int{4}}
	if got := RoleOf(4, hl); got != RolePivot {
		t.Errorf("RoleOf(4) = %d, want RolePivot", got)
	}
}

// ── Color profile detection tests ────────────────────────────────────

func TestColorProfile_Detection(t *testing.T) {
	// TermProfile is set at init(); just verify it's a valid value
	valid := map[colorprofile.Profile]bool{
		colorprofile.Unknown:   true,
		colorprofile.NoTTY:     true,
		colorprofile.ASCII:     true,
		colorprofile.ANSI:      true,
		colorprofile.ANSI256:   true,
		colorprofile.TrueColor: true,
	}
	if !valid[TermProfile] {
		t.Errorf("TermProfile has unexpected value: %d", TermProfile)
	}
}

func TestThemeBg_TrueColor(t *testing.T) {
	saved := TermProfile
	defer func() { TermProfile = saved }()

	TermProfile = colorprofile.TrueColor

	got := ThemeBg("#282A36")
	if _, ok := got.(lipgloss.NoColor); ok {
		t.Error("ThemeBg should return hex color in TrueColor mode, got NoColor")
	}
}

func TestThemeBg_ANSI256(t *testing.T) {
	saved := TermProfile
	defer func() { TermProfile = saved }()

	TermProfile = colorprofile.ANSI256

	got := ThemeBg("#282A36")
	if _, ok := got.(lipgloss.NoColor); !ok {
		t.Errorf("ThemeBg should return NoColor in ANSI256 mode (only TrueColor gets hex bg), got %T", got)
	}
}

func TestThemeFg_TrueColor(t *testing.T) {
	saved := TermProfile
	defer func() { TermProfile = saved }()

	TermProfile = colorprofile.TrueColor

	got := ThemeFg("#FF5555")
	if _, ok := got.(lipgloss.ANSIColor); ok {
		t.Error("ThemeFg should return hex color in TrueColor mode, got ANSIColor")
	}
}

func TestThemeFg_ANSI(t *testing.T) {
	saved := TermProfile
	defer func() { TermProfile = saved }()

	TermProfile = colorprofile.ANSI

	got := ThemeFg("#FF5555")
	ansiColor, ok := got.(lipgloss.ANSIColor)
	if !ok {
		t.Errorf("ThemeFg should return ANSIColor in ANSI mode, got %T", got)
	} else if ansiColor != 7 {
		t.Errorf("ThemeFg should return ANSI white (7) in ANSI mode, got %d", ansiColor)
	}
}
