package algorithms

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/vanderheijden86/stepview/pkg/trace"
)

func TestBFSVisitOrderExample(t *testing.T) {
	tr, err := Generate(context.Background(), trace.BFS,
		trace.Input{Graph: [][]int{{1, 2}, {0}, {0}}, Start: 0})
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Last().Array; !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("final visit order = %v, want [0 1 2]", got)
	}
	if got := tr.Frames[0].Array; len(got) != 0 || got == nil {
		t.Errorf("starting frame order = %v, want empty non-nil", got)
	}
	if !strings.Contains(tr.Last().Explain, "3 of 3") {
		t.Errorf("terminal explain = %q", tr.Last().Explain)
	}
}

func TestVisitOrderGrowsByOne(t *testing.T) {
	for _, kind := range []trace.Kind{trace.BFS, trace.DFS} {
		tr, err := Generate(context.Background(), kind,
			trace.Input{Graph: [][]int{{1, 2}, {3}, {3}, {}}, Start: 0})
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		prev := 0
		for i, f := range tr.Frames {
			if len(f.Array) != prev && len(f.Array) != prev+1 {
				t.Errorf("%s frame %d: order length jumped %d -> %d", kind, i, prev, len(f.Array))
			}
			prev = len(f.Array)
		}
	}
}

func TestBFSAndDFSDiverge(t *testing.T) {
	in := trace.Input{Graph: [][]int{{1, 2}, {3}, {}, {}}, Start: 0}

	bfs, err := Generate(context.Background(), trace.BFS, in)
	if err != nil {
		t.Fatal(err)
	}
	if got := bfs.Last().Array; !reflect.DeepEqual(got, []int{0, 1, 2, 3}) {
		t.Errorf("BFS order = %v, want [0 1 2 3]", got)
	}

	dfs, err := Generate(context.Background(), trace.DFS, in)
	if err != nil {
		t.Fatal(err)
	}
	if got := dfs.Last().Array; !reflect.DeepEqual(got, []int{0, 1, 3, 2}) {
		t.Errorf("DFS order = %v, want [0 1 3 2]", got)
	}
}

func TestDFSDescendsIntoFirstListedNeighbor(t *testing.T) {
	tr, err := Generate(context.Background(), trace.DFS,
		trace.Input{Graph: [][]int{{2, 1}, {}, {}}, Start: 0})
	if err != nil {
		t.Fatal(err)
	}
	if got := tr.Last().Array; !reflect.DeepEqual(got, []int{0, 2, 1}) {
		t.Errorf("DFS order = %v, want [0 2 1]", got)
	}
}

func TestDuplicateFrontierEntriesAreSkippedSilently(t *testing.T) {
	// Node 2 is enqueued by both 0 and 1; its second dequeue must add no
	// frame.
	tr, err := Generate(context.Background(), trace.BFS,
		trace.Input{Graph: [][]int{{1, 2}, {2}, {}}, Start: 0})
	if err != nil {
		t.Fatal(err)
	}
	// start, visit 0, enqueue 1+2, visit 1, enqueue 2, visit 2, terminal
	if tr.Len() != 7 {
		t.Fatalf("frame count = %d, want 7: %s", tr.Len(), explains(tr))
	}
	if got := tr.Last().Array; !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("visit order = %v", got)
	}
}

func TestTraversalIgnoresUnreachableNodes(t *testing.T) {
	in := trace.Input{Graph: [][]int{{1}, {0}, {3}, {2}}, Start: 0}
	for _, kind := range []trace.Kind{trace.BFS, trace.DFS} {
		tr, err := Generate(context.Background(), kind, in)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if got := tr.Last().Array; !reflect.DeepEqual(got, []int{0, 1}) {
			t.Errorf("%s order = %v, want [0 1]", kind, got)
		}
		if !strings.Contains(tr.Last().Explain, "2 of 4") {
			t.Errorf("%s terminal explain = %q", kind, tr.Last().Explain)
		}
	}
}

func TestTraversalToleratesSelfLoops(t *testing.T) {
	for _, kind := range []trace.Kind{trace.BFS, trace.DFS} {
		tr, err := Generate(context.Background(), kind,
			trace.Input{Graph: [][]int{{0, 1}, {1}}, Start: 0})
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if got := tr.Last().Array; !reflect.DeepEqual(got, []int{0, 1}) {
			t.Errorf("%s order = %v, want [0 1]", kind, got)
		}
	}
}

func TestSingleNodeGraph(t *testing.T) {
	tr, err := Generate(context.Background(), trace.BFS, trace.Input{Graph: [][]int{{}}, Start: 0})
	if err != nil {
		t.Fatal(err)
	}
	// start, the one visit, terminal
	if tr.Len() != 3 {
		t.Fatalf("frame count = %d, want 3", tr.Len())
	}
	if got := tr.Last().Array; !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("order = %v, want [0]", got)
	}
}

func TestTraversalRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		in   trace.Input
	}{
		{name: "empty graph", in: trace.Input{}},
		{name: "neighbor out of range", in: trace.Input{Graph: [][]int{{3}}, Start: 0}},
		{name: "negative neighbor", in: trace.Input{Graph: [][]int{{-1}}, Start: 0}},
		{name: "start out of range", in: trace.Input{Graph: [][]int{{0}}, Start: 5}},
		{name: "negative start", in: trace.Input{Graph: [][]int{{0}}, Start: -1}},
	}
	for _, kind := range []trace.Kind{trace.BFS, trace.DFS} {
		for _, tc := range cases {
			if _, err := Generate(context.Background(), kind, tc.in); !errors.Is(err, trace.ErrInvalidInput) {
				t.Errorf("%s/%s: error = %v, want ErrInvalidInput", kind, tc.name, err)
			}
		}
	}
}

func TestGraphInputNotMutated(t *testing.T) {
	adj := [][]int{{1, 2}, {0}, {0}}
	want := [][]int{{1, 2}, {0}, {0}}
	if _, err := Generate(context.Background(), trace.BFS, trace.Input{Graph: adj, Start: 0}); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(adj, want) {
		t.Errorf("generator mutated the adjacency list: %v", adj)
	}
}

// TestTraversalAgreesWithGonum checks the visit sets against gonum's
// traversals over the same structure, and for BFS that the visit order
// never regresses in depth.
func TestTraversalAgreesWithGonum(t *testing.T) {
	adj := [][]int{
		{1, 3},
		{2, 4},
		{0},
		{4, 5},
		{6},
		{6},
		{},
		{5}, // unreachable from 0
	}
	in := trace.Input{Graph: adj, Start: 0}
	g, err := buildGraph(adj)
	if err != nil {
		t.Fatal(err)
	}

	depths := map[int]int{}
	bf := traverse.BreadthFirst{}
	bf.Walk(g, g.Node(0), func(n graph.Node, d int) bool {
		depths[int(n.ID())] = d
		return false
	})

	bfsTrace, err := Generate(context.Background(), trace.BFS, in)
	if err != nil {
		t.Fatal(err)
	}
	bfsOrder := bfsTrace.Last().Array
	if len(bfsOrder) != len(depths) {
		t.Fatalf("BFS visited %d nodes, gonum reached %d", len(bfsOrder), len(depths))
	}
	last := -1
	for _, v := range bfsOrder {
		d, ok := depths[v]
		if !ok {
			t.Fatalf("BFS visited %d, which gonum never reached", v)
		}
		if d < last {
			t.Errorf("BFS visited depth-%d node %d after a depth-%d node", d, v, last)
		}
		last = d
	}

	reached := map[int]bool{}
	df := traverse.DepthFirst{}
	df.Walk(g, g.Node(0), func(n graph.Node) bool {
		reached[int(n.ID())] = true
		return false
	})
	dfsTrace, err := Generate(context.Background(), trace.DFS, in)
	if err != nil {
		t.Fatal(err)
	}
	dfsOrder := dfsTrace.Last().Array
	if len(dfsOrder) != len(reached) {
		t.Fatalf("DFS visited %d nodes, gonum reached %d", len(dfsOrder), len(reached))
	}
	for _, v := range dfsOrder {
		if !reached[v] {
			t.Errorf("DFS visited %d, which gonum never reached", v)
		}
	}
}

func TestTraversalDeterminism(t *testing.T) {
	in := trace.Input{Graph: [][]int{{1, 2}, {3, 0}, {0, 3}, {1}}, Start: 2}
	for _, kind := range []trace.Kind{trace.BFS, trace.DFS} {
		a, err := Generate(context.Background(), kind, in)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		b, err := Generate(context.Background(), kind, in)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: two runs over the same input differ", kind)
		}
	}
}

func TestTraversalCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, kind := range []trace.Kind{trace.BFS, trace.DFS} {
		if _, err := Generate(ctx, kind, trace.Input{Graph: [][]int{{1}, {}}, Start: 0}); !errors.Is(err, context.Canceled) {
			t.Errorf("%s: error = %v, want context.Canceled", kind, err)
		}
	}
}
