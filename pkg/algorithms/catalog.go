// Package algorithms holds the trace generators: one pure function per
// catalog entry that replays an algorithm over an input and records
// every step a viewer should be able to land on. Generators never touch
// the clock, the environment, or shared state, so a (kind, input) pair
// always yields the same trace.
package algorithms

import (
	"context"
	"errors"
	"fmt"

	"github.com/vanderheijden86/stepview/pkg/metrics"
	"github.com/vanderheijden86/stepview/pkg/trace"
)

// ErrUnknownAlgorithm is returned when a kind has no catalog entry.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Generator produces the full trace for one input. The context is
// checked between outer-loop iterations; a cancelled run returns the
// context's error and no partial trace.
type Generator func(ctx context.Context, in trace.Input) (*trace.Trace, error)

// Spec is one catalog entry: the generator plus the presentation
// metadata the UI hangs off it.
type Spec struct {
	Kind   trace.Kind
	Name   string
	Family trace.Family
	// Pseudocode is the listing Frame.PCLine indexes into.
	Pseudocode []string
	// Description is markdown shown in the info pane.
	Description string

	generate Generator
}

// catalog fixes the presentation order. The index built from it is
// checked against the kind registry at startup, so a kind without a
// generator (or a generator without a kind) fails loudly on first use
// instead of surfacing as a dead picker entry.
var catalog = []Spec{
	{
		Kind:        trace.BubbleSort,
		Name:        "Bubble Sort",
		Family:      trace.FamilySorting,
		Pseudocode:  bubbleSortPseudocode,
		Description: bubbleSortDescription,
		generate:    generateBubbleSort,
	},
	{
		Kind:        trace.InsertionSort,
		Name:        "Insertion Sort",
		Family:      trace.FamilySorting,
		Pseudocode:  insertionSortPseudocode,
		Description: insertionSortDescription,
		generate:    generateInsertionSort,
	},
	{
		Kind:        trace.SelectionSort,
		Name:        "Selection Sort",
		Family:      trace.FamilySorting,
		Pseudocode:  selectionSortPseudocode,
		Description: selectionSortDescription,
		generate:    generateSelectionSort,
	},
	{
		Kind:        trace.MergeSort,
		Name:        "Merge Sort",
		Family:      trace.FamilySorting,
		Pseudocode:  mergeSortPseudocode,
		Description: mergeSortDescription,
		generate:    generateMergeSort,
	},
	{
		Kind:        trace.QuickSort,
		Name:        "Quick Sort",
		Family:      trace.FamilySorting,
		Pseudocode:  quickSortPseudocode,
		Description: quickSortDescription,
		generate:    generateQuickSort,
	},
	{
		Kind:        trace.LinearSearch,
		Name:        "Linear Search",
		Family:      trace.FamilySearching,
		Pseudocode:  linearSearchPseudocode,
		Description: linearSearchDescription,
		generate:    generateLinearSearch,
	},
	{
		Kind:        trace.BinarySearch,
		Name:        "Binary Search",
		Family:      trace.FamilySearching,
		Pseudocode:  binarySearchPseudocode,
		Description: binarySearchDescription,
		generate:    generateBinarySearch,
	},
	{
		Kind:        trace.BFS,
		Name:        "Breadth-First Search",
		Family:      trace.FamilyGraph,
		Pseudocode:  bfsPseudocode,
		Description: bfsDescription,
		generate:    generateBFS,
	},
	{
		Kind:        trace.DFS,
		Name:        "Depth-First Search",
		Family:      trace.FamilyGraph,
		Pseudocode:  dfsPseudocode,
		Description: dfsDescription,
		generate:    generateDFS,
	},
}

var byKind = buildIndex()

func buildIndex() map[trace.Kind]Spec {
	idx := make(map[trace.Kind]Spec, len(catalog))
	for _, s := range catalog {
		if !s.Kind.Known() {
			panic(fmt.Sprintf("algorithms: catalog entry %q not in the kind registry", s.Kind))
		}
		if s.Kind.Family() != s.Family {
			panic(fmt.Sprintf("algorithms: %s declared family %q, registry says %q", s.Kind, s.Family, s.Kind.Family()))
		}
		if s.generate == nil || len(s.Pseudocode) == 0 {
			panic(fmt.Sprintf("algorithms: %s entry incomplete", s.Kind))
		}
		if _, dup := idx[s.Kind]; dup {
			panic(fmt.Sprintf("algorithms: %s registered twice", s.Kind))
		}
		idx[s.Kind] = s
	}
	for _, k := range trace.Kinds() {
		if _, ok := idx[k]; !ok {
			panic(fmt.Sprintf("algorithms: kind %s has no catalog entry", k))
		}
	}
	return idx
}

// Specs returns the catalog in presentation order.
func Specs() []Spec {
	out := make([]Spec, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup resolves a kind to its catalog entry.
func Lookup(kind trace.Kind) (Spec, error) {
	s, ok := byKind[kind]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, kind)
	}
	return s, nil
}

// Generate runs the generator registered for kind over in.
func Generate(ctx context.Context, kind trace.Kind, in trace.Input) (*trace.Trace, error) {
	defer metrics.Timer(metrics.TraceGeneration)()

	s, err := Lookup(kind)
	if err != nil {
		return nil, err
	}
	tr, err := s.generate(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return tr, nil
}
