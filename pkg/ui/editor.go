package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/stepview/pkg/algorithms"
	"github.com/vanderheijden86/stepview/pkg/trace"
)

// EditorModel is the input editing overlay. One line of text holds the
// whole payload: a comma-separated array for sorting, `array @ target`
// for searches, `adjacency @ start` for traversals.
type EditorModel struct {
	input    textinput.Model
	specName string
	family   trace.Family
	errMsg   string
	width    int
	height   int
	theme    Theme
}

// NewEditorModel builds an empty editor; Load fills it before opening.
func NewEditorModel(theme Theme) EditorModel {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 56
	ti.Focus()
	return EditorModel{input: ti, theme: theme}
}

// Load primes the editor with the current input, formatted in the same
// grammar Parse reads back.
func (m *EditorModel) Load(spec algorithms.Spec, in trace.Input) {
	m.specName = spec.Name
	m.family = spec.Family
	m.errMsg = ""

	switch spec.Family {
	case trace.FamilyGraph:
		m.input.SetValue(trace.FormatGraph(in.Graph) + " @ " + strconv.Itoa(in.Start))
	case trace.FamilySearching:
		m.input.SetValue(trace.FormatArray(in.Array) + " @ " + strconv.Itoa(in.Target))
	default:
		m.input.SetValue(trace.FormatArray(in.Array))
	}
	m.input.CursorEnd()
}

// SetSize records the screen area the overlay centers in.
func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetError pins a parse or generation failure inside the box.
func (m *EditorModel) SetError(err error) {
	m.errMsg = err.Error()
}

// UpdateInput forwards a message to the text input.
func (m *EditorModel) UpdateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.errMsg = ""
	return cmd
}

// Parse reads the edited text back into an input payload.
func (m *EditorModel) Parse() (trace.Input, error) {
	raw := strings.TrimSpace(m.input.Value())

	switch m.family {
	case trace.FamilyGraph:
		head, tail, hasAt := strings.Cut(raw, "@")
		graph, err := trace.ParseGraph(strings.TrimSpace(head))
		if err != nil {
			return trace.Input{}, err
		}
		start := 0
		if hasAt {
			start, err = strconv.Atoi(strings.TrimSpace(tail))
			if err != nil {
				return trace.Input{}, fmt.Errorf("%w: start %q is not an integer", trace.ErrInvalidInput, strings.TrimSpace(tail))
			}
		}
		return trace.Input{Graph: graph, Start: start}, nil

	case trace.FamilySearching:
		head, tail, hasAt := strings.Cut(raw, "@")
		if !hasAt {
			return trace.Input{}, fmt.Errorf("%w: missing target, write `array @ target`", trace.ErrInvalidInput)
		}
		arr, err := trace.ParseArray(strings.TrimSpace(head))
		if err != nil {
			return trace.Input{}, err
		}
		target, err := strconv.Atoi(strings.TrimSpace(tail))
		if err != nil {
			return trace.Input{}, fmt.Errorf("%w: target %q is not an integer", trace.ErrInvalidInput, strings.TrimSpace(tail))
		}
		return trace.Input{Array: arr, Target: target}, nil

	default:
		arr, err := trace.ParseArray(raw)
		if err != nil {
			return trace.Input{}, err
		}
		return trace.Input{Array: arr}, nil
	}
}

func (m EditorModel) hint() string {
	switch m.family {
	case trace.FamilyGraph:
		return "adjacency per node, `;` separated, then `@ start` (e.g. 1,2;0;0 @ 0)"
	case trace.FamilySearching:
		return "comma-separated values, then `@ target` (e.g. 1,3,5,7 @ 5)"
	default:
		return "comma-separated values (e.g. 5,3,8,1)"
	}
}

// View renders the centered editor box.
func (m EditorModel) View() string {
	t := m.theme

	boxWidth := 64
	if m.width > 0 && boxWidth > m.width-4 {
		boxWidth = m.width - 4
	}
	innerWidth := boxWidth - 4

	var b strings.Builder
	b.WriteString(t.PrimaryBold.Render(truncate("edit input · "+m.specName, innerWidth)))
	b.WriteString("\n")
	b.WriteString(t.MutedText.Render(truncate(m.hint(), innerWidth)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString(t.ErrorText.Render(truncate(m.errMsg, innerWidth)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(t.MutedText.Render(truncate("enter apply · esc cancel", innerWidth)))

	box := t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2).
		Width(boxWidth).
		Render(b.String())

	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
