package algorithms

import (
	"context"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/vanderheijden86/stepview/pkg/trace"
)

// Graph generators visualize the visit order: the frame array holds the
// node ids visited so far, growing by one per visit, and highlights
// refer to positions in that order. Traversal walks the adjacency list
// as given, because neighbor order is part of the observable result; the
// gonum graph built alongside validates the structure and gives the
// tests an independent traversal to check against.

// buildGraph validates an adjacency list into a gonum directed graph.
// Self loops are kept out of it (simple graphs reject them) but stay
// legal input: a node is already visited by the time its own edge is
// considered, so they never influence the visit order.
func buildGraph(adj [][]int) (*simple.DirectedGraph, error) {
	if len(adj) == 0 {
		return nil, fmt.Errorf("%w: graph has no nodes", trace.ErrInvalidInput)
	}
	g := simple.NewDirectedGraph()
	for id := range adj {
		g.AddNode(simple.Node(int64(id)))
	}
	for u, neighbors := range adj {
		for _, v := range neighbors {
			if v < 0 || v >= len(adj) {
				return nil, fmt.Errorf("%w: node %d lists neighbor %d, valid ids are 0..%d",
					trace.ErrInvalidInput, u, v, len(adj)-1)
			}
			if v == u {
				continue
			}
			g.SetEdge(g.NewEdge(g.Node(int64(u)), g.Node(int64(v))))
		}
	}
	return g, nil
}

func validateTraversal(in trace.Input) error {
	if _, err := buildGraph(in.Graph); err != nil {
		return err
	}
	if in.Start < 0 || in.Start >= len(in.Graph) {
		return fmt.Errorf("%w: start node %d, valid ids are 0..%d",
			trace.ErrInvalidInput, in.Start, len(in.Graph)-1)
	}
	return nil
}

var bfsPseudocode = []string{
	"queue = [start]",
	"while queue not empty",
	"  v = dequeue",
	"  if v visited: continue",
	"  visit v",
	"  enqueue unvisited neighbors of v",
}

func generateBFS(ctx context.Context, in trace.Input) (*trace.Trace, error) {
	if err := validateTraversal(in); err != nil {
		return nil, err
	}
	n := len(in.Graph)
	rec := trace.NewRecorder(trace.BFS)
	rec.Emit(nil, trace.Highlights{}, 0, "Starting BFS from node %d over %d nodes", in.Start, n)

	visited := make(map[int]bool, n)
	order := make([]int, 0, n)
	queue := []int{in.Start}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v := queue[0]
		queue = queue[1:]
		if visited[v] {
			continue
		}
		visited[v] = true
		order = append(order, v)
		rec.Emit(order, trace.Highlights{Indices: []int{len(order) - 1}}, 4,
			"Visited node %d (%d of %d)", v, len(order), n)

		var added []int
		for _, w := range in.Graph[v] {
			if !visited[w] {
				queue = append(queue, w)
				added = append(added, w)
			}
		}
		if len(added) > 0 {
			rec.Emit(order, trace.Highlights{Indices: []int{len(order) - 1}}, 5,
				"Enqueued %s of node %d", describeNodes(added), v)
		}
	}
	rec.Complete(order, trace.Highlights{}, "BFS from node %d visited %d of %d nodes", in.Start, len(order), n)
	return rec.Trace()
}

var dfsPseudocode = []string{
	"stack = [start]",
	"while stack not empty",
	"  v = pop",
	"  if v visited: continue",
	"  visit v",
	"  push unvisited neighbors of v, last first",
}

// generateDFS pushes neighbors in reverse adjacency order so the first
// listed neighbor pops first, the order the recursive form descends in.
func generateDFS(ctx context.Context, in trace.Input) (*trace.Trace, error) {
	if err := validateTraversal(in); err != nil {
		return nil, err
	}
	n := len(in.Graph)
	rec := trace.NewRecorder(trace.DFS)
	rec.Emit(nil, trace.Highlights{}, 0, "Starting DFS from node %d over %d nodes", in.Start, n)

	visited := make(map[int]bool, n)
	order := make([]int, 0, n)
	stack := []int{in.Start}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[v] {
			continue
		}
		visited[v] = true
		order = append(order, v)
		rec.Emit(order, trace.Highlights{Indices: []int{len(order) - 1}}, 4,
			"Visited node %d (%d of %d)", v, len(order), n)

		var added []int
		neighbors := in.Graph[v]
		for i := len(neighbors) - 1; i >= 0; i-- {
			if w := neighbors[i]; !visited[w] {
				stack = append(stack, w)
				added = append(added, w)
			}
		}
		if len(added) > 0 {
			rec.Emit(order, trace.Highlights{Indices: []int{len(order) - 1}}, 5,
				"Pushed %s of node %d", describeNodes(added), v)
		}
	}
	rec.Complete(order, trace.Highlights{}, "DFS from node %d visited %d of %d nodes", in.Start, len(order), n)
	return rec.Trace()
}

func describeNodes(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	if len(ids) == 1 {
		return "neighbor " + parts[0]
	}
	return "neighbors " + strings.Join(parts, ", ")
}
