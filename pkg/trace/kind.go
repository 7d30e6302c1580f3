package trace

import "fmt"

// Kind identifies one algorithm in the closed catalog. The set of kinds
// is fixed at compile time; anything else is a configuration error.
type Kind string

const (
	BubbleSort    Kind = "bubble-sort"
	InsertionSort Kind = "insertion-sort"
	SelectionSort Kind = "selection-sort"
	MergeSort     Kind = "merge-sort"
	QuickSort     Kind = "quick-sort"
	LinearSearch  Kind = "linear-search"
	BinarySearch  Kind = "binary-search"
	BFS           Kind = "bfs"
	DFS           Kind = "dfs"
)

// Family groups kinds that share input shape and frame conventions.
type Family string

const (
	FamilySorting   Family = "sorting"
	FamilySearching Family = "searching"
	FamilyGraph     Family = "graph"
)

// kindFamilies doubles as the registry of known kinds; Kinds and Known
// derive from it so a new algorithm only has to be added once here.
var kindFamilies = map[Kind]Family{
	BubbleSort:    FamilySorting,
	InsertionSort: FamilySorting,
	SelectionSort: FamilySorting,
	MergeSort:     FamilySorting,
	QuickSort:     FamilySorting,
	LinearSearch:  FamilySearching,
	BinarySearch:  FamilySearching,
	BFS:           FamilyGraph,
	DFS:           FamilyGraph,
}

// kindOrder fixes the presentation order used by Kinds, the picker and
// --list output.
var kindOrder = []Kind{
	BubbleSort, InsertionSort, SelectionSort, MergeSort, QuickSort,
	LinearSearch, BinarySearch,
	BFS, DFS,
}

// Kinds returns every supported kind in catalog order.
func Kinds() []Kind {
	out := make([]Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}

// Known reports whether k names a supported algorithm.
func (k Kind) Known() bool {
	_, ok := kindFamilies[k]
	return ok
}

// Family returns the family of k, or the empty Family for unknown kinds.
func (k Kind) Family() Family { return kindFamilies[k] }

func (k Kind) String() string { return string(k) }

// ParseKind validates a user-supplied identifier against the catalog.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Known() {
		return "", fmt.Errorf("unknown algorithm %q (run with --list to see valid names)", s)
	}
	return k, nil
}
