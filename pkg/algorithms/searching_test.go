package algorithms

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/vanderheijden86/stepview/pkg/trace"
)

func TestBinarySearchFoundExample(t *testing.T) {
	tr, err := Generate(context.Background(), trace.BinarySearch,
		trace.Input{Array: []int{1, 3, 5, 7, 9, 11}, Target: 7})
	if err != nil {
		t.Fatal(err)
	}
	// Start frame, three probes (mid 2, 4, 3), terminal.
	if tr.Len() != 5 {
		t.Fatalf("frame count = %d, want 5: %s", tr.Len(), explains(tr))
	}

	wantMids := []int{2, 4, 3}
	for i, mid := range wantMids {
		f := tr.Frames[i+1]
		if f.Highlights.Pivot == nil || *f.Highlights.Pivot != mid {
			t.Errorf("probe %d pivot = %v, want %d", i+1, f.Highlights.Pivot, mid)
		}
	}

	foundProbe := tr.Frames[3]
	if !strings.Contains(foundProbe.Explain, "Found") {
		t.Errorf("found probe explain = %q", foundProbe.Explain)
	}

	final := tr.Last()
	if !final.Terminal() {
		t.Fatalf("last frame pcLine = %d, want terminal", final.PCLine)
	}
	if !strings.Contains(final.Explain, "Found") {
		t.Errorf("final explain = %q, want it to contain Found", final.Explain)
	}
	if !reflect.DeepEqual(final.Highlights.Indices, []int{3}) {
		t.Errorf("final highlight indices = %v, want [3]", final.Highlights.Indices)
	}
	if final.Highlights.Pivot == nil || *final.Highlights.Pivot != 3 {
		t.Errorf("final pivot = %v, want 3", final.Highlights.Pivot)
	}
}

func TestBinarySearchBracketShrinks(t *testing.T) {
	tr, err := Generate(context.Background(), trace.BinarySearch,
		trace.Input{Array: []int{1, 3, 5, 7, 9, 11}, Target: 7})
	if err != nil {
		t.Fatal(err)
	}
	prev := len(tr.Frames[0].Highlights.Indices)
	for i := 1; i < tr.Len()-1; i++ {
		cur := len(tr.Frames[i].Highlights.Indices)
		if cur > prev {
			t.Errorf("bracket grew from %d to %d at frame %d", prev, cur, i)
		}
		prev = cur
	}
}

func TestBinarySearchNotFound(t *testing.T) {
	tr, err := Generate(context.Background(), trace.BinarySearch,
		trace.Input{Array: []int{1, 3, 5}, Target: 4})
	if err != nil {
		t.Fatal(err)
	}
	// Probes mid=1 (3<4) then mid=2 (5>4), bracket empties.
	if tr.Len() != 4 {
		t.Fatalf("frame count = %d, want 4: %s", tr.Len(), explains(tr))
	}
	if got := tr.Last().Explain; !strings.Contains(got, "not in the array") {
		t.Errorf("terminal explain = %q", got)
	}
}

func TestBinarySearchRejectsBadInput(t *testing.T) {
	cases := []trace.Input{
		{},                                     // empty array
		{Array: []int{3, 1, 2}, Target: 2},     // unsorted
		{Array: []int{1, 5, 4, 9}, Target: 9},  // locally unsorted
	}
	for i, in := range cases {
		if _, err := Generate(context.Background(), trace.BinarySearch, in); !errors.Is(err, trace.ErrInvalidInput) {
			t.Errorf("case %d: error = %v, want ErrInvalidInput", i, err)
		}
	}
	// Duplicates are legal as long as the order is ascending.
	if _, err := Generate(context.Background(), trace.BinarySearch,
		trace.Input{Array: []int{1, 2, 2, 3}, Target: 2}); err != nil {
		t.Errorf("duplicates rejected: %v", err)
	}
}

func TestBinarySearchAgreesWithStdlib(t *testing.T) {
	arrays := [][]int{
		{2, 4, 6, 8, 10, 12, 14},
		{1, 1, 2, 3, 5, 8, 13, 21},
		{-10, -5, 0, 5, 10},
		{7},
	}
	for _, arr := range arrays {
		for target := -12; target <= 25; target++ {
			tr, err := Generate(context.Background(), trace.BinarySearch,
				trace.Input{Array: arr, Target: target})
			if err != nil {
				t.Fatalf("%v/%d: %v", arr, target, err)
			}
			i := sort.SearchInts(arr, target)
			exists := i < len(arr) && arr[i] == target
			found := strings.Contains(tr.Last().Explain, "Found")
			if found != exists {
				t.Errorf("%v target %d: trace found=%v, stdlib exists=%v", arr, target, found, exists)
			}
			if found {
				idx := *tr.Last().Highlights.Pivot
				if arr[idx] != target {
					t.Errorf("%v target %d: reported index %d holds %d", arr, target, idx, arr[idx])
				}
			}
		}
	}
}

func TestLinearSearchStopsAtFirstMatch(t *testing.T) {
	tr, err := Generate(context.Background(), trace.LinearSearch,
		trace.Input{Array: []int{5, 2, 5}, Target: 5})
	if err != nil {
		t.Fatal(err)
	}
	// Start frame, the single found probe, terminal.
	if tr.Len() != 3 {
		t.Fatalf("frame count = %d, want 3: %s", tr.Len(), explains(tr))
	}
	if got := *tr.Last().Highlights.Pivot; got != 0 {
		t.Errorf("found index = %d, want 0", got)
	}
}

func TestLinearSearchProbesEverythingWhenAbsent(t *testing.T) {
	arr := []int{4, 8, 15, 16, 23, 42}
	tr, err := Generate(context.Background(), trace.LinearSearch,
		trace.Input{Array: arr, Target: 99})
	if err != nil {
		t.Fatal(err)
	}
	// Start frame, one probe per element, terminal.
	if want := 2 + len(arr); tr.Len() != want {
		t.Fatalf("frame count = %d, want %d", tr.Len(), want)
	}
	if got := tr.Last().Explain; !strings.Contains(got, "not in the array") {
		t.Errorf("terminal explain = %q", got)
	}
}

func TestLinearSearchLastElement(t *testing.T) {
	tr, err := Generate(context.Background(), trace.LinearSearch,
		trace.Input{Array: []int{1, 2, 3}, Target: 3})
	if err != nil {
		t.Fatal(err)
	}
	if got := *tr.Last().Highlights.Pivot; got != 2 {
		t.Errorf("found index = %d, want 2", got)
	}
	if !strings.Contains(tr.Last().Explain, "3 probes") {
		t.Errorf("terminal explain = %q, want 3 probes", tr.Last().Explain)
	}
}

func TestSearchDeterminism(t *testing.T) {
	for _, kind := range []trace.Kind{trace.LinearSearch, trace.BinarySearch} {
		in := trace.Input{Array: []int{1, 4, 9, 16, 25}, Target: 16}
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

func TestSearchCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, kind := range []trace.Kind{trace.LinearSearch, trace.BinarySearch} {
		if _, err := Generate(ctx, kind, trace.Input{Array: []int{1, 2, 3}, Target: 2}); !errors.Is(err, context.Canceled) {
			t.Errorf("%s: error = %v, want context.Canceled", kind, err)
		}
	}
}
