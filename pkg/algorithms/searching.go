package algorithms

import (
	"context"
	"fmt"

	"github.com/vanderheijden86/stepview/pkg/trace"
)

// Searching generators emit exactly one frame per probe. The probe
// index rides in Highlights.Pivot; binary search additionally keeps the
// live bracket in Highlights.Indices so the discarded half visibly
// drops out frame by frame.

var linearSearchPseudocode = []string{
	"for i in 0 .. n-1",
	"  if a[i] == target",
	"    return i",
	"return not found",
}

func generateLinearSearch(ctx context.Context, in trace.Input) (*trace.Trace, error) {
	if len(in.Array) == 0 {
		return nil, fmt.Errorf("%w: nothing to search", trace.ErrInvalidInput)
	}
	work := append([]int(nil), in.Array...)
	n := len(work)
	target := in.Target
	rec := trace.NewRecorder(trace.LinearSearch)
	rec.Emit(work, trace.Highlights{}, 0, "Searching for %d across %d elements, left to right", target, n)

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if work[i] == target {
			rec.Emit(work, trace.Highlights{Pivot: trace.Index(i), Indices: []int{i}}, 2,
				"Found %d at index %d", target, i)
			rec.Complete(work, trace.Highlights{Pivot: trace.Index(i), Indices: []int{i}},
				"Found %d at index %d after %d %s", target, i, i+1, plural(i+1, "probe", "probes"))
			return rec.Trace()
		}
		rec.Emit(work, trace.Highlights{Pivot: trace.Index(i)}, 1,
			"a[%d]=%d != %d, moving on", i, work[i], target)
	}
	rec.Complete(work, trace.Highlights{}, "%d is not in the array (%d probes)", target, n)
	return rec.Trace()
}

var binarySearchPseudocode = []string{
	"left = 0; right = n - 1",
	"while left <= right",
	"  mid = (left + right) / 2",
	"  if a[mid] == target: return mid",
	"  if a[mid] < target: left = mid + 1",
	"  else: right = mid - 1",
	"return not found",
}

func generateBinarySearch(ctx context.Context, in trace.Input) (*trace.Trace, error) {
	if len(in.Array) == 0 {
		return nil, fmt.Errorf("%w: nothing to search", trace.ErrInvalidInput)
	}
	for i := 1; i < len(in.Array); i++ {
		if in.Array[i-1] > in.Array[i] {
			return nil, fmt.Errorf("%w: binary search needs an ascending array, but a[%d]=%d > a[%d]=%d",
				trace.ErrInvalidInput, i-1, in.Array[i-1], i, in.Array[i])
		}
	}
	work := append([]int(nil), in.Array...)
	n := len(work)
	target := in.Target
	rec := trace.NewRecorder(trace.BinarySearch)
	rec.Emit(work, trace.Highlights{Indices: spanIndices(0, n)}, 0,
		"Searching for %d in a sorted array of %d elements", target, n)

	left, right := 0, n-1
	probes := 0
	for left <= right {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		mid := left + (right-left)/2
		probes++
		bracket := spanIndices(left, right+1)
		switch {
		case work[mid] == target:
			rec.Emit(work, trace.Highlights{Pivot: trace.Index(mid), Indices: bracket}, 3,
				"Found %d at index %d", target, mid)
			rec.Complete(work, trace.Highlights{Pivot: trace.Index(mid), Indices: []int{mid}},
				"Found %d at index %d after %d %s", target, mid, probes, plural(probes, "probe", "probes"))
			return rec.Trace()
		case work[mid] < target:
			rec.Emit(work, trace.Highlights{Pivot: trace.Index(mid), Indices: bracket}, 4,
				"a[%d]=%d < %d, discarding the left half", mid, work[mid], target)
			left = mid + 1
		default:
			rec.Emit(work, trace.Highlights{Pivot: trace.Index(mid), Indices: bracket}, 5,
				"a[%d]=%d > %d, discarding the right half", mid, work[mid], target)
			right = mid - 1
		}
	}
	rec.Complete(work, trace.Highlights{}, "%d is not in the array (%d probes)", target, probes)
	return rec.Trace()
}
