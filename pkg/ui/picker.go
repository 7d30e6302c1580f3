package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/stepview/pkg/algorithms"
)

// maxPickerRows caps the visible result window.
const maxPickerRows = 12

// PickerModel is the algorithm switcher overlay: a filter input over
// the catalog with a windowed result list.
type PickerModel struct {
	input         textinput.Model
	specs         []algorithms.Spec
	filtered      []algorithms.Spec
	selectedIndex int
	width         int
	height        int
	theme         Theme
}

// NewPickerModel builds a picker over the full catalog.
func NewPickerModel(theme Theme) PickerModel {
	ti := textinput.New()
	ti.Placeholder = "type to filter algorithms"
	ti.CharLimit = 48
	ti.Width = 34
	ti.Focus()

	specs := algorithms.Specs()
	return PickerModel{
		input:    ti,
		specs:    specs,
		filtered: specs,
		theme:    theme,
	}
}

// Reset clears the filter and selection for a fresh open.
func (m *PickerModel) Reset() {
	m.input.SetValue("")
	m.filtered = m.specs
	m.selectedIndex = 0
}

// SetSize records the screen area the overlay centers in.
func (m *PickerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// MoveUp moves the selection up.
func (m *PickerModel) MoveUp() {
	if m.selectedIndex > 0 {
		m.selectedIndex--
	}
}

// MoveDown moves the selection down.
func (m *PickerModel) MoveDown() {
	if m.selectedIndex < len(m.filtered)-1 {
		m.selectedIndex++
	}
}

// Selected returns the spec under the cursor.
func (m *PickerModel) Selected() (algorithms.Spec, bool) {
	if len(m.filtered) == 0 || m.selectedIndex >= len(m.filtered) {
		return algorithms.Spec{}, false
	}
	return m.filtered[m.selectedIndex], true
}

// UpdateInput forwards a message to the filter input and refilters.
func (m *PickerModel) UpdateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return cmd
}

func (m *PickerModel) applyFilter() {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.filtered = m.specs
	} else {
		type scored struct {
			spec  algorithms.Spec
			score int
			pos   int
		}
		matches := make([]scored, 0, len(m.specs))
		for i, s := range m.specs {
			score := fuzzyScore(query, s.Name)
			if kindScore := fuzzyScore(query, string(s.Kind)); kindScore > score {
				score = kindScore
			}
			if score > 0 {
				matches = append(matches, scored{spec: s, score: score, pos: i})
			}
		}
		// Catalog order breaks score ties so results stay stable while
		// typing.
		sort.Slice(matches, func(a, b int) bool {
			if matches[a].score != matches[b].score {
				return matches[a].score > matches[b].score
			}
			return matches[a].pos < matches[b].pos
		})
		m.filtered = make([]algorithms.Spec, len(matches))
		for i, sc := range matches {
			m.filtered[i] = sc.spec
		}
	}

	if m.selectedIndex >= len(m.filtered) {
		m.selectedIndex = 0
	}
}

// fuzzyScore rates how well query matches candidate: exact beats
// prefix beats substring beats subsequence, with consecutive-run and
// word-start bonuses inside the subsequence case. Zero means no match.
func fuzzyScore(query, candidate string) int {
	q := strings.ToLower(query)
	c := strings.ToLower(candidate)

	if q == c {
		return 1000
	}
	if strings.HasPrefix(c, q) {
		return 500 + len(q)
	}
	if strings.Contains(c, q) {
		return 200 + len(q)
	}

	score := 0
	qi := 0
	lastHit := -2
	for ci := 0; ci < len(c) && qi < len(q); ci++ {
		if c[ci] != q[qi] {
			continue
		}
		score += 10
		if ci == lastHit+1 {
			score += 5
		}
		if ci == 0 || c[ci-1] == ' ' || c[ci-1] == '-' {
			score += 8
		}
		lastHit = ci
		qi++
	}
	if qi < len(q) {
		return 0
	}
	return score
}

// View renders the centered picker box.
func (m PickerModel) View() string {
	t := m.theme

	boxWidth := 44
	if m.width > 0 && boxWidth > m.width-4 {
		boxWidth = m.width - 4
	}
	innerWidth := boxWidth - 4

	var b strings.Builder
	b.WriteString(t.PrimaryBold.Render(truncate("switch algorithm", innerWidth)))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(t.MutedText.Render("no matches"))
		b.WriteString("\n")
	}

	start := 0
	if m.selectedIndex >= maxPickerRows {
		start = m.selectedIndex - maxPickerRows + 1
	}
	end := start + maxPickerRows
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	for i := start; i < end; i++ {
		s := m.filtered[i]
		badge := "[" + string(s.Family) + "]"
		row := padRight(s.Name, innerWidth-len(badge)-3) + badge
		if i == m.selectedIndex {
			b.WriteString(t.Selected.Render(truncate(row, innerWidth-2)))
		} else {
			b.WriteString("  " + t.SecondaryText.Render(truncate(row, innerWidth-2)))
		}
		b.WriteString("\n")
	}
	if len(m.filtered) > maxPickerRows {
		b.WriteString(t.MutedText.Render(truncate(
			fmt.Sprintf("(%d-%d of %d)", start+1, end, len(m.filtered)), innerWidth)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(t.MutedText.Render(truncate("↑/↓ select · enter apply · esc cancel", innerWidth)))

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
