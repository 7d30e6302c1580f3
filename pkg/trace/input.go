package trace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidInput is wrapped by every generator rejection, so callers can
// tell a bad payload from an internal failure with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Input is the payload handed to a generator. Array feeds the sorting
// and searching families (Target additionally for searches); Graph and
// Start feed the traversal family. Unused fields are ignored by the
// receiving generator.
type Input struct {
	Array  []int   `json:"array,omitempty" yaml:"array,omitempty"`
	Target int     `json:"target,omitempty" yaml:"target,omitempty"`
	Graph  [][]int `json:"graph,omitempty" yaml:"graph,omitempty"`
	Start  int     `json:"start,omitempty" yaml:"start,omitempty"`
}

// Clone returns a deep copy of in.
func (in Input) Clone() Input {
	out := Input{Target: in.Target, Start: in.Start}
	out.Array = copyInts(in.Array)
	if in.Graph != nil {
		out.Graph = make([][]int, len(in.Graph))
		for i, adj := range in.Graph {
			out.Graph[i] = copyInts(adj)
		}
	}
	return out
}

// Summary renders a short human description of the payload, used by the
// session history and the UI header.
func (in Input) Summary(family Family) string {
	switch family {
	case FamilyGraph:
		edges := 0
		for _, adj := range in.Graph {
			edges += len(adj)
		}
		return fmt.Sprintf("graph of %d nodes, %d edges, start %d", len(in.Graph), edges, in.Start)
	case FamilySearching:
		return fmt.Sprintf("%d elements, target %d", len(in.Array), in.Target)
	default:
		return fmt.Sprintf("%d elements", len(in.Array))
	}
}

// Size returns the element count the trace operates over.
func (in Input) Size(family Family) int {
	if family == FamilyGraph {
		return len(in.Graph)
	}
	return len(in.Array)
}

// ParseArray reads a comma-separated integer list such as "5,3,8,1".
func ParseArray(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidInput, f)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty array", ErrInvalidInput)
	}
	return out, nil
}

// ParseGraph reads an adjacency list in the form "1,2;0;0", one
// semicolon-separated node per position, each holding a comma-separated
// neighbor list. An empty segment is a node with no neighbors.
func ParseGraph(s string) ([][]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty graph", ErrInvalidInput)
	}
	segments := strings.Split(s, ";")
	out := make([][]int, len(segments))
	for i, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			out[i] = []int{}
			continue
		}
		adj, err := ParseArray(seg)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		out[i] = adj
	}
	return out, nil
}

// FormatArray is the inverse of ParseArray.
func FormatArray(a []int) string {
	parts := make([]string, len(a))
	for i, n := range a {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// FormatGraph is the inverse of ParseGraph.
func FormatGraph(g [][]int) string {
	parts := make([]string, len(g))
	for i, adj := range g {
		parts[i] = FormatArray(adj)
	}
	return strings.Join(parts, ";")
}
