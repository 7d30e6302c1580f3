package testutil

import (
	"sort"
	"strings"
	"testing"

	"github.com/vanderheijden86/stepview/pkg/trace"
)

// AssertValidTrace verifies structural soundness: the trace validates,
// and every frame's highlights stay within the bounds of its array.
func AssertValidTrace(t *testing.T, tr *trace.Trace) {
	t.Helper()

	if tr == nil {
		t.Fatal("trace is nil")
	}
	if err := tr.Validate(); err != nil {
		t.Fatalf("trace invalid: %v", err)
	}

	for i, f := range tr.Frames {
		n := len(f.Array)
		checkBounds(t, i, "compared", f.Highlights.Compared, n)
		checkBounds(t, i, "swapped", f.Highlights.Swapped, n)
		checkBounds(t, i, "indices", f.Highlights.Indices, n)
		if p := f.Highlights.Pivot; p != nil && (*p < 0 || *p >= n) {
			t.Errorf("frame %d: pivot %d out of range [0,%d)", i, *p, n)
		}
	}
}

func checkBounds(t *testing.T, frame int, field string, idxs []int, n int) {
	t.Helper()
	for _, idx := range idxs {
		if idx < 0 || idx >= n {
			t.Errorf("frame %d: %s index %d out of range [0,%d)", frame, field, idx, n)
		}
	}
}

// AssertSortedAscending fails unless arr is in non-decreasing order.
func AssertSortedAscending(t *testing.T, arr []int) {
	t.Helper()
	if !sort.IntsAreSorted(arr) {
		t.Errorf("array not sorted ascending: %v", arr)
	}
}

// AssertPermutation fails unless got and want hold the same values with
// the same multiplicities.
func AssertPermutation(t *testing.T, got, want []int) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("length mismatch: got %d values, want %d", len(got), len(want))
		return
	}
	counts := make(map[int]int, len(want))
	for _, v := range want {
		counts[v]++
	}
	for _, v := range got {
		counts[v]--
	}
	for v, c := range counts {
		if c != 0 {
			t.Errorf("value %d count differs by %d between got and want", v, c)
		}
	}
}

// AssertExplains fails unless some frame's explanation contains substr.
func AssertExplains(t *testing.T, tr *trace.Trace, substr string) {
	t.Helper()
	for _, f := range tr.Frames {
		if strings.Contains(f.Explain, substr) {
			return
		}
	}
	t.Errorf("no frame explanation contains %q", substr)
}

// AssertFinalArray fails unless the terminal frame's array equals want.
func AssertFinalArray(t *testing.T, tr *trace.Trace, want []int) {
	t.Helper()
	got := tr.Last().Array
	if len(got) != len(want) {
		t.Errorf("final array = %v, want %v", got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("final array = %v, want %v", got, want)
			return
		}
	}
}
