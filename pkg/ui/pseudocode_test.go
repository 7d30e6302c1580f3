package ui

import (
	"strings"
	"testing"

	"github.com/vanderheijden86/stepview/pkg/trace"
)

func TestPseudocodeMarksActiveLine(t *testing.T) {
	m := testModel(t, trace.BubbleSort, sortedTestInput(4))

	frame := m.currentFrame()
	if frame.PCLine < 0 {
		t.Fatal("frame 0 should point at a pseudocode line")
	}
	out := m.renderPseudocode(40, 20, frame)
	if !strings.Contains(out, "▶") {
		t.Error("expected the active-line marker")
	}

	lines := strings.Split(out, "\n")
	want := m.spec.Pseudocode[frame.PCLine]
	found := false
	for _, line := range lines {
		if strings.Contains(line, "▶") && strings.Contains(line, want) {
			found = true
		}
	}
	if !found {
		t.Errorf("marker not on listing line %d, got:\n%s", frame.PCLine, out)
	}
}

func TestPseudocodeTerminalFrameHasNoMarker(t *testing.T) {
	m := testModel(t, trace.BubbleSort, sortedTestInput(4))

	m, _ = press(t, m, "G")
	frame := m.currentFrame()
	if !frame.Terminal() {
		t.Fatal("expected the terminal frame")
	}
	out := m.renderPseudocode(40, 20, frame)
	if strings.Contains(out, "▶") {
		t.Error("a terminal frame points at no line")
	}
}

func TestPseudocodeWidthBounds(t *testing.T) {
	if got := pseudocodeWidth([]string{"ab"}); got != minPseudocodeWidth {
		t.Errorf("short listing width = %d, want %d", got, minPseudocodeWidth)
	}
	long := strings.Repeat("x", 100)
	if got := pseudocodeWidth([]string{long}); got != maxPseudocodeWidth {
		t.Errorf("long listing width = %d, want %d", got, maxPseudocodeWidth)
	}
}

func TestPseudocodeHeightClipped(t *testing.T) {
	m := testModel(t, trace.MergeSort, sortedTestInput(4))

	out := m.renderPseudocode(40, 3, m.currentFrame())
	if got := len(strings.Split(out, "\n")); got > 3 {
		t.Errorf("listing rendered %d lines into a height of 3", got)
	}
}
