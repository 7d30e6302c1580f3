// Package testutil provides deterministic input fixtures and trace
// assertions shared by tests across the module. All generators produce
// reproducible output for a given seed.
package testutil

import (
	"math/rand"
	"sort"

	"github.com/vanderheijden86/stepview/pkg/trace"
)

// DefaultSeed keeps fixture generation reproducible when callers do not
// care about the exact values.
const DefaultSeed = 42

// Generator produces deterministic arrays and graphs for tests.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator seeded with seed. A zero seed falls back to
// DefaultSeed so forgetting it never introduces flakiness.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewDefault creates a Generator with the default seed.
func NewDefault() *Generator {
	return New(DefaultSeed)
}

// ============================================================================
// Array fixtures
// ============================================================================

// Sorted returns n strictly ascending values.
// Properties: already sorted, no duplicates.
func (g *Generator) Sorted(n int) []int {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = 2*i + 1
	}
	return arr
}

// Reversed returns n strictly descending values.
// Properties: worst case for most sorts, no duplicates.
func (g *Generator) Reversed(n int) []int {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = 2*(n-i) - 1
	}
	return arr
}

// Random returns n values in [5, 99].
// Properties: may contain duplicates.
func (g *Generator) Random(n int) []int {
	arr := make([]int, n)
	for i := range arr {
		arr[i] = g.rng.Intn(95) + 5
	}
	return arr
}

// NearlySorted returns a sorted array with the given number of random
// adjacent swaps applied.
// Properties: permutation of Sorted(n), mostly in order.
func (g *Generator) NearlySorted(n, swaps int) []int {
	arr := g.Sorted(n)
	for s := 0; s < swaps && n > 1; s++ {
		i := g.rng.Intn(n - 1)
		arr[i], arr[i+1] = arr[i+1], arr[i]
	}
	return arr
}

// WithDuplicates returns n values drawn from a small pool so repeats are
// all but guaranteed.
func (g *Generator) WithDuplicates(n int) []int {
	pool := []int{3, 7, 7, 11, 15, 15, 15, 21}
	arr := make([]int, n)
	for i := range arr {
		arr[i] = pool[g.rng.Intn(len(pool))]
	}
	return arr
}

// SortedSearchInput returns a search input over a sorted array. When
// present is true the target is an element of the array, otherwise it is
// a value falling between two elements.
func (g *Generator) SortedSearchInput(n int, present bool) trace.Input {
	arr := g.Sorted(n)
	in := trace.Input{Array: arr}
	if n == 0 {
		return in
	}
	if present {
		in.Target = arr[g.rng.Intn(n)]
	} else {
		in.Target = arr[g.rng.Intn(n)] + 1
	}
	return in
}

// ============================================================================
// Graph topology fixtures
// ============================================================================

// Chain returns a directed chain: 0 -> 1 -> ... -> n-1.
// Properties: acyclic, every node reachable from 0, depth n-1.
func (g *Generator) Chain(n int) [][]int {
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		adj[i] = []int{}
		if i+1 < n {
			adj[i] = append(adj[i], i+1)
		}
	}
	return adj
}

// Ring returns a directed cycle: 0 -> 1 -> ... -> n-1 -> 0.
// Properties: cyclic, every node reachable from any start.
func (g *Generator) Ring(n int) [][]int {
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		adj[i] = []int{(i + 1) % n}
	}
	return adj
}

// Star returns a hub at node 0 pointing at the given number of spokes.
// Properties: acyclic, depth 1 from the hub, spokes are sinks.
func (g *Generator) Star(spokes int) [][]int {
	adj := make([][]int, spokes+1)
	adj[0] = make([]int, spokes)
	for i := 1; i <= spokes; i++ {
		adj[0][i-1] = i
		adj[i] = []int{}
	}
	return adj
}

// Diamond returns 0 -> mid1..midW -> W+1.
// Properties: acyclic, two hops from top to bottom, bottom has fan-in W.
func (g *Generator) Diamond(width int) [][]int {
	if width < 1 {
		width = 1
	}
	n := width + 2
	adj := make([][]int, n)
	adj[0] = make([]int, width)
	for i := 1; i <= width; i++ {
		adj[0][i-1] = i
		adj[i] = []int{n - 1}
	}
	adj[n-1] = []int{}
	return adj
}

// Complete returns a graph where every node points at every other node.
func (g *Generator) Complete(n int) [][]int {
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		adj[i] = make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j != i {
				adj[i] = append(adj[i], j)
			}
		}
	}
	return adj
}

// Disconnected returns the given number of chain islands, each of the
// given size, with no edges between islands.
// Properties: only the start's island is reachable.
func (g *Generator) Disconnected(islands, size int) [][]int {
	adj := make([][]int, islands*size)
	for island := 0; island < islands; island++ {
		base := island * size
		for i := 0; i < size; i++ {
			adj[base+i] = []int{}
			if i+1 < size {
				adj[base+i] = append(adj[base+i], base+i+1)
			}
		}
	}
	return adj
}

// TraversalInput wraps an adjacency list and start node as an input.
func TraversalInput(adj [][]int, start int) trace.Input {
	return trace.Input{Graph: adj, Start: start}
}

// SortedCopy returns a sorted copy of arr, useful as an expected value.
func SortedCopy(arr []int) []int {
	out := append([]int(nil), arr...)
	sort.Ints(out)
	return out
}
