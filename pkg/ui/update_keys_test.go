package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vanderheijden86/stepview/pkg/trace"
)

func TestTabTogglesPseudocodePane(t *testing.T) {
	m := testModel(t, trace.BubbleSort, sortedTestInput(6))

	before := m.showPseudo
	m, _ = press(t, m, "tab")
	if m.showPseudo == before {
		t.Error("tab should toggle the pseudocode pane")
	}
	m, _ = press(t, m, "tab")
	if m.showPseudo != before {
		t.Error("second tab should toggle it back")
	}
}

func TestInfoOverlayOpensAndCloses(t *testing.T) {
	m := testModel(t, trace.QuickSort, sortedTestInput(6))

	m, _ = press(t, m, "d")
	if m.focus != focusInfo {
		t.Fatal("d should open the info overlay")
	}
	if m.infoView == "" {
		t.Error("opening the overlay should render the description")
	}

	m, _ = press(t, m, "esc")
	if m.focus != focusBoard {
		t.Error("esc should close the info overlay")
	}
	if m.infoView == "" {
		t.Error("the rendered description should stay cached")
	}
}

func TestInfoCacheInvalidatedOnTraceSwap(t *testing.T) {
	m := testModel(t, trace.BubbleSort, sortedTestInput(6))

	m, _ = press(t, m, "d")
	m, _ = press(t, m, "esc")
	if m.infoView == "" {
		t.Fatal("expected a cached description")
	}

	m, _ = press(t, m, "r")
	if m.infoView != "" {
		t.Error("swapping the trace should drop the cached description")
	}
}

func TestPickerNavigationKeys(t *testing.T) {
	m := testModel(t, trace.BubbleSort, sortedTestInput(6))

	m, _ = press(t, m, "a")
	if got := m.picker.selectedIndex; got != 0 {
		t.Fatalf("picker should open at index 0, got %d", got)
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if got := m.picker.selectedIndex; got != 1 {
		t.Fatalf("down: index = %d, want 1", got)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlJ})
	m = updated.(Model)
	if got := m.picker.selectedIndex; got != 2 {
		t.Fatalf("ctrl+j: index = %d, want 2", got)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlK})
	m = updated.(Model)
	if got := m.picker.selectedIndex; got != 1 {
		t.Fatalf("ctrl+k: index = %d, want 1", got)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if got := m.picker.selectedIndex; got != 0 {
		t.Fatalf("up: index = %d, want 0", got)
	}

	// Clamped at the top
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if got := m.picker.selectedIndex; got != 0 {
		t.Fatalf("up at top: index = %d, want 0", got)
	}
}

func TestOverlayKeysDoNotReachBoard(t *testing.T) {
	m := testModel(t, trace.BubbleSort, sortedTestInput(6))

	m, _ = press(t, m, "a")
	// "g" filters the picker; the board binding would jump to start.
	m.runner.SeekTo(3)
	m, _ = press(t, m, "g")
	if got := m.runner.Idx(); got != 3 {
		t.Errorf("picker swallowed key moved the cursor to %d", got)
	}
	if m.picker.input.Value() != "g" {
		t.Errorf("picker filter = %q, want %q", m.picker.input.Value(), "g")
	}
}

func TestEditorEscCancelsWithoutApplying(t *testing.T) {
	m := testModel(t, trace.BubbleSort, sortedTestInput(4))
	genBefore := m.gen

	m, _ = press(t, m, "i")
	m.editor.input.SetValue("1,2,3")
	m, _ = press(t, m, "esc")
	if m.focus != focusBoard {
		t.Fatal("esc should close the editor")
	}
	if m.gen != genBefore {
		t.Error("esc must not apply the edit")
	}
}

