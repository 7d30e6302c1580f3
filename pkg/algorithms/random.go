package algorithms

import (
	"math/rand"
	"sort"

	"github.com/vanderheijden86/stepview/pkg/trace"
)

// Input sizing for generated payloads. Values live in a narrow band so
// terminal bars get a usable vertical resolution.
const (
	DefaultInputSize = 16
	minInputSize     = 2
	maxInputSize     = 128
	minValue         = 5
	maxValue         = 99
)

// RandomInput builds a reproducible input for kind: the same seed always
// yields the same payload, so a session can be replayed from its history
// row. Randomness stays out here, on the input side; generators remain
// pure functions of what they are handed.
func RandomInput(kind trace.Kind, size int, seed int64) trace.Input {
	if size < minInputSize {
		size = DefaultInputSize
	}
	if size > maxInputSize {
		size = maxInputSize
	}
	rng := rand.New(rand.NewSource(seed))

	switch kind.Family() {
	case trace.FamilyGraph:
		return randomGraphInput(rng, size)
	case trace.FamilySearching:
		return randomSearchInput(rng, size, kind == trace.BinarySearch)
	default:
		return trace.Input{Array: randomValues(rng, size)}
	}
}

func randomValues(rng *rand.Rand, size int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = minValue + rng.Intn(maxValue-minValue+1)
	}
	return out
}

// randomSearchInput picks a present target three times out of four, so
// both outcomes show up when exploring.
func randomSearchInput(rng *rand.Rand, size int, sorted bool) trace.Input {
	values := randomValues(rng, size)
	if sorted {
		sort.Ints(values)
	}
	if rng.Intn(4) < 3 {
		return trace.Input{Array: values, Target: values[rng.Intn(size)]}
	}
	return trace.Input{Array: values, Target: maxValue + 1 + rng.Intn(50)}
}

// randomGraphInput lays a ring so every node is reachable from every
// start, then sprinkles extra forward edges on top.
func randomGraphInput(rng *rand.Rand, size int) trace.Input {
	adj := make([][]int, size)
	for v := range adj {
		adj[v] = []int{(v + 1) % size}
		for _, w := range rng.Perm(size)[:rng.Intn(3)] {
			if w != v && w != (v+1)%size {
				adj[v] = append(adj[v], w)
			}
		}
	}
	return trace.Input{Graph: adj, Start: rng.Intn(size)}
}
