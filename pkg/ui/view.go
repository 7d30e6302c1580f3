package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/vanderheijden86/stepview/pkg/metrics"
	"github.com/vanderheijden86/stepview/pkg/playback"
	"github.com/vanderheijden86/stepview/pkg/trace"
)

// Width below which the pseudocode pane is dropped even when enabled.
const splitViewThreshold = 80

// View renders the full screen. Overlays replace the board rather than
// stacking on it; the board state is one esc away.
func (m Model) View() string {
	defer metrics.Timer(metrics.UIRender)()

	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	switch m.focus {
	case focusPicker:
		return m.picker.View()
	case focusEditor:
		return m.editor.View()
	case focusInfo:
		return m.renderInfoOverlay()
	}

	frame := m.currentFrame()

	header := m.renderHeader()
	explain := m.renderExplain(frame)
	status := m.renderStatusBar()
	footer := m.renderFooter()

	contentHeight := m.height - 4
	if contentHeight < 3 {
		contentHeight = 3
	}

	var mainRow string
	if m.showPseudo && m.width >= splitViewThreshold {
		pcWidth := pseudocodeWidth(m.spec.Pseudocode)
		boardWidth := m.width - pcWidth - 3
		board := m.renderBoard(boardWidth, contentHeight, frame)
		listing := m.renderPseudocode(pcWidth, contentHeight, frame)
		gap := m.theme.MutedText.Render(" │ ")
		mainRow = lipgloss.JoinHorizontal(lipgloss.Top, board, gap, listing)
	} else {
		mainRow = m.renderBoard(m.width, contentHeight, frame)
	}
	mainRow = lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight).Render(mainRow)

	view := lipgloss.JoinVertical(lipgloss.Left, header, mainRow, explain, status, footer)

	finalStyle := lipgloss.NewStyle().Width(m.width).Height(m.height).MaxHeight(m.height)
	return finalStyle.Render(view)
}

// Styled text is never truncated directly: every piece is cut to width
// as plain text first, then styled, so an ellipsis can never land inside
// an escape sequence.
func (m Model) renderHeader() string {
	t := m.theme
	name := m.spec.Name
	family := "[" + string(m.spec.Family) + "]"
	used := 4 + 1 + runewidth.StringWidth(name) + 1 + runewidth.StringWidth(family) + 2
	summary := truncate(m.input.Summary(m.spec.Family), m.width-used)
	return t.Header.Render("sv") + " " + t.PrimaryBold.Render(name) + " " +
		t.MutedText.Render(family) + "  " + t.SecondaryText.Render(summary)
}

// renderExplain shows the current frame's narration line.
func (m Model) renderExplain(frame trace.Frame) string {
	text := frame.Explain
	if frame.Terminal() {
		text = "✓ " + text
	}
	return m.theme.ExplainText.Render(truncate(" "+text, m.width))
}

func (m Model) renderStatusBar() string {
	t := m.theme

	icon := "⏸"
	if m.runner.Playing() {
		icon = "▶"
		if m.runner.CurrentDirection() == playback.Backward {
			icon = "◀"
		}
	}
	counter := fmt.Sprintf(" %s %d/%d  %s", icon, m.runner.Idx()+1, m.runner.Total(), formatSpeed(m.runner.Speed()))
	status := truncate(m.statusMsg, m.width/2)

	out := t.SecondaryText.Render(counter)
	barWidth := m.width - runewidth.StringWidth(counter) - runewidth.StringWidth(status) - 4
	if barWidth >= 10 {
		out += "  " + RenderProgressBar(m.runner.Progress(), barWidth, t)
	}
	if status != "" {
		if m.statusErr {
			out += "  " + t.ErrorText.Render(status)
		} else {
			out += "  " + t.MutedText.Render(status)
		}
	}
	return out
}

func (m Model) renderFooter() string {
	hints := " space play · h/l step · b back · f fwd · g/G ends · 0-9 seek · [/] speed · a algo · i input · d info · r rand · y yank · tab code · q quit"
	return m.theme.MutedText.Render(truncate(hints, m.width))
}
