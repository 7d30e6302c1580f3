package ui

import (
	"strconv"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// truncate shortens s to at most width terminal cells, appending an
// ellipsis when anything was cut. Width-aware so CJK and other wide
// runes cannot push a line past its column.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return runewidth.Truncate(s, width-1, "") + "…"
}

// padRight pads s with spaces to exactly n runes, truncating if longer.
func padRight(s string, n int) string {
	if n <= 0 {
		return ""
	}
	length := utf8.RuneCountInString(s)
	if length == n {
		return s
	}
	if length > n {
		return truncate(s, n)
	}
	padded := make([]byte, 0, len(s)+n-length)
	padded = append(padded, s...)
	for i := length; i < n; i++ {
		padded = append(padded, ' ')
	}
	return string(padded)
}

// formatSpeed renders a playback multiplier the way players label it:
// "1x", "0.5x", "2x". Trailing zeros are dropped.
func formatSpeed(speed float64) string {
	return strconv.FormatFloat(speed, 'f', -1, 64) + "x"
}
