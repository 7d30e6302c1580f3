package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vanderheijden86/stepview/pkg/trace"
)

// renderBoard draws the frame's array. Sorting and searching frames
// render as a bar chart of the working array; traversal frames render
// the visit order, which is what their array holds.
func (m Model) renderBoard(width, height int, frame trace.Frame) string {
	if m.spec.Family == trace.FamilyGraph {
		return m.renderTraversalBoard(width, height, frame)
	}
	return m.renderArrayBoard(width, height, frame)
}

// renderArrayBoard draws one column per element, scaled to the value
// range of the current frame and colored by highlight role.
func (m Model) renderArrayBoard(width, height int, frame trace.Frame) string {
	t := m.theme
	arr := frame.Array
	if len(arr) == 0 {
		return t.MutedText.Render(" (empty)")
	}

	legend := m.renderLegend(width)

	rows := height - 2 // legend and value labels
	if rows < 1 {
		rows = 1
	}

	// Column sizing: wide enough for the largest label when it fits,
	// shrinking to bare 1-cell bars before giving up on columns.
	labelW := 1
	for _, v := range arr {
		if w := len(strconv.Itoa(v)); w > labelW {
			labelW = w
		}
	}
	colW := labelW + 1
	showLabels := true
	if colW*len(arr) > width {
		colW = 2
		showLabels = false
	}
	if colW*len(arr) > width {
		colW = 1
	}
	shown := len(arr)
	if colW*shown > width {
		shown = width / colW
		if shown < 1 {
			shown = 1
		}
	}

	minV, maxV := arr[0], arr[0]
	for _, v := range arr {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	heights := make([]int, shown)
	roles := make([]Role, shown)
	for i := 0; i < shown; i++ {
		if maxV == minV {
			heights[i] = rows
		} else {
			heights[i] = 1 + (arr[i]-minV)*(rows-1)/(maxV-minV)
		}
		roles[i] = RoleOf(i, frame.Highlights)
	}

	barCell := strings.Repeat("█", colW-1) + " "
	if colW == 1 {
		barCell = "█"
	}
	gapCell := strings.Repeat(" ", colW)

	var b strings.Builder
	b.WriteString(legend)
	b.WriteString("\n")
	for row := rows; row >= 1; row-- {
		for i := 0; i < shown; i++ {
			if heights[i] >= row {
				b.WriteString(t.RoleStyle(roles[i]).Render(barCell))
			} else {
				b.WriteString(gapCell)
			}
		}
		b.WriteString("\n")
	}

	if showLabels {
		for i := 0; i < shown; i++ {
			b.WriteString(t.RoleStyle(roles[i]).Render(padRight(strconv.Itoa(arr[i]), colW)))
		}
	} else if shown < len(arr) {
		b.WriteString(t.MutedText.Render(truncate(fmt.Sprintf("(%d of %d shown)", shown, len(arr)), width)))
	}
	return b.String()
}

// renderLegend names the highlight colors in play.
func (m Model) renderLegend(width int) string {
	t := m.theme
	if width < 56 {
		return ""
	}
	parts := []string{
		t.BarCompared.Render("■") + t.MutedText.Render(" compared"),
		t.BarSwapped.Render("■") + t.MutedText.Render(" swapped"),
		t.BarPivot.Render("■") + t.MutedText.Render(" pivot"),
		t.BarMarked.Render("■") + t.MutedText.Render(" marked"),
	}
	return " " + strings.Join(parts, "  ")
}

// renderTraversalBoard draws the node set and the visit order so far.
// frame.Array holds visited node ids in visit order; highlights index
// into that order, so the newest visit is resolved through it.
func (m Model) renderTraversalBoard(width, height int, frame trace.Frame) string {
	t := m.theme
	n := len(m.input.Graph)

	visited := make(map[int]bool, len(frame.Array))
	for _, id := range frame.Array {
		visited[id] = true
	}
	newest := -1
	if len(frame.Highlights.Indices) > 0 {
		idx := frame.Highlights.Indices[0]
		if idx >= 0 && idx < len(frame.Array) {
			newest = frame.Array[idx]
		}
	}

	// Cell budget keeps both rows on one line each; anything beyond it
	// collapses into an ellipsis rather than wrapping the board.
	maxCells := (width - 12) / 3
	if maxCells < 1 {
		maxCells = 1
	}

	var nodes strings.Builder
	nodes.WriteString(t.MutedText.Render(" nodes:  "))
	for id := 0; id < n && id < maxCells; id++ {
		label := " " + strconv.Itoa(id) + " "
		switch {
		case id == newest:
			nodes.WriteString(t.Renderer.NewStyle().Foreground(t.Visited).Bold(true).Underline(true).Render(label))
		case visited[id]:
			nodes.WriteString(t.Renderer.NewStyle().Foreground(t.Visited).Render(label))
		case id == m.input.Start:
			nodes.WriteString(t.PrimaryBold.Render(label))
		default:
			nodes.WriteString(t.MutedText.Render(label))
		}
	}
	if n > maxCells {
		nodes.WriteString(t.MutedText.Render("…"))
	}

	// The tail of the visit order stays visible when it outgrows the
	// row; the newest visit is always at or near the end.
	order := frame.Array
	clipped := false
	if len(order) > maxCells {
		order = order[len(order)-maxCells:]
		clipped = true
	}
	var orderRow strings.Builder
	orderRow.WriteString(t.MutedText.Render(" order:  "))
	if clipped {
		orderRow.WriteString(t.MutedText.Render("… → "))
	}
	if len(order) == 0 {
		orderRow.WriteString(t.MutedText.Render("(none yet)"))
	}
	for i, id := range order {
		if i > 0 {
			orderRow.WriteString(t.MutedText.Render(" → "))
		}
		label := strconv.Itoa(id)
		if id == newest {
			orderRow.WriteString(t.Renderer.NewStyle().Foreground(t.Visited).Bold(true).Render(label))
		} else {
			orderRow.WriteString(t.Base.Render(label))
		}
	}

	progress := t.SecondaryText.Render(fmt.Sprintf(" visited %d of %d nodes, start %d", len(frame.Array), n, m.input.Start))

	lines := []string{"", nodes.String(), "", orderRow.String(), "", progress}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines[:height], "\n")
}
