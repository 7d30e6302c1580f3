package algorithms

import (
	"context"
	"fmt"

	"github.com/vanderheijden86/stepview/pkg/trace"
)

// Sorting generators operate on a private copy of the input array. The
// shared granularity rules for the family: a frame per comparison, a
// frame per mutation emitted after the array changed, and structural
// frames where the algorithm has a visible phase (a pivot choice, a run
// merge). Merge sort is the exception on comparisons, see below.

func sortWork(in trace.Input) ([]int, error) {
	if len(in.Array) == 0 {
		return nil, fmt.Errorf("%w: nothing to sort", trace.ErrInvalidInput)
	}
	work := make([]int, len(in.Array))
	copy(work, in.Array)
	return work, nil
}

var bubbleSortPseudocode = []string{
	"for i in 0 .. n-2",
	"  swapped = false",
	"  for j in 0 .. n-2-i",
	"    if a[j] > a[j+1]",
	"      swap a[j], a[j+1]",
	"      swapped = true",
	"  if not swapped: stop",
}

func generateBubbleSort(ctx context.Context, in trace.Input) (*trace.Trace, error) {
	work, err := sortWork(in)
	if err != nil {
		return nil, err
	}
	n := len(work)
	rec := trace.NewRecorder(trace.BubbleSort)
	rec.Emit(work, trace.Highlights{}, 0, "Starting bubble sort on %d elements", n)

	passes := 0
	for i := 0; i < n-1; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		passes++
		swapped := false
		for j := 0; j < n-1-i; j++ {
			rec.Emit(work, trace.Highlights{Compared: []int{j, j + 1}}, 3,
				"Comparing a[%d]=%d with a[%d]=%d", j, work[j], j+1, work[j+1])
			if work[j] > work[j+1] {
				work[j], work[j+1] = work[j+1], work[j]
				swapped = true
				rec.Emit(work, trace.Highlights{Swapped: []int{j, j + 1}}, 4,
					"Swapped %d and %d", work[j+1], work[j])
			}
		}
		if !swapped {
			break
		}
	}
	rec.Complete(work, trace.Highlights{}, "Sorted %d elements in %d %s", n, passes, plural(passes, "pass", "passes"))
	return rec.Trace()
}

var insertionSortPseudocode = []string{
	"for i in 1 .. n-1",
	"  key = a[i]",
	"  j = i - 1",
	"  while j >= 0 and a[j] > key",
	"    a[j+1] = a[j]; j = j - 1",
	"  a[j+1] = key",
}

func generateInsertionSort(ctx context.Context, in trace.Input) (*trace.Trace, error) {
	work, err := sortWork(in)
	if err != nil {
		return nil, err
	}
	n := len(work)
	rec := trace.NewRecorder(trace.InsertionSort)
	rec.Emit(work, trace.Highlights{}, 0, "Starting insertion sort on %d elements", n)

	for i := 1; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		key := work[i]
		rec.Emit(work, trace.Highlights{Indices: []int{i}}, 1, "Picking up key a[%d]=%d", i, key)
		j := i - 1
		for j >= 0 {
			if work[j] > key {
				rec.Emit(work, trace.Highlights{Compared: []int{j, j + 1}}, 3,
					"a[%d]=%d > key %d, shifting right", j, work[j], key)
				work[j+1] = work[j]
				rec.Emit(work, trace.Highlights{Swapped: []int{j, j + 1}}, 4,
					"Shifted %d from index %d to %d", work[j+1], j, j+1)
				j--
				continue
			}
			rec.Emit(work, trace.Highlights{Compared: []int{j, j + 1}}, 3,
				"a[%d]=%d <= key %d, scan stops", j, work[j], key)
			break
		}
		work[j+1] = key
		rec.Emit(work, trace.Highlights{Indices: []int{j + 1}}, 5,
			"Placed key %d at index %d", key, j+1)
	}
	rec.Complete(work, trace.Highlights{}, "Sorted %d elements", n)
	return rec.Trace()
}

var selectionSortPseudocode = []string{
	"for i in 0 .. n-2",
	"  min = i",
	"  for j in i+1 .. n-1",
	"    if a[j] < a[min]: min = j",
	"  swap a[i], a[min]",
}

func generateSelectionSort(ctx context.Context, in trace.Input) (*trace.Trace, error) {
	work, err := sortWork(in)
	if err != nil {
		return nil, err
	}
	n := len(work)
	rec := trace.NewRecorder(trace.SelectionSort)
	rec.Emit(work, trace.Highlights{}, 0, "Starting selection sort on %d elements", n)

	for i := 0; i < n-1; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		min := i
		rec.Emit(work, trace.Highlights{Indices: []int{i}}, 1,
			"Pass %d: assuming a[%d]=%d is the minimum", i+1, i, work[i])
		for j := i + 1; j < n; j++ {
			if work[j] < work[min] {
				rec.Emit(work, trace.Highlights{Compared: []int{j, min}}, 3,
					"a[%d]=%d < a[%d]=%d, new minimum", j, work[j], min, work[min])
				min = j
				continue
			}
			rec.Emit(work, trace.Highlights{Compared: []int{j, min}}, 3,
				"a[%d]=%d >= a[%d]=%d, minimum unchanged", j, work[j], min, work[min])
		}
		if min != i {
			work[i], work[min] = work[min], work[i]
			rec.Emit(work, trace.Highlights{Swapped: []int{i, min}}, 4,
				"Swapped minimum %d into index %d", work[i], i)
		} else {
			rec.Emit(work, trace.Highlights{Indices: []int{i}}, 4,
				"a[%d]=%d already in place", i, work[i])
		}
	}
	rec.Complete(work, trace.Highlights{}, "Sorted %d elements", n)
	return rec.Trace()
}

var mergeSortPseudocode = []string{
	"width = 1",
	"while width < n",
	"  for each pair of adjacent runs of width",
	"    merge the runs",
	"  width = width * 2",
}

// generateMergeSort records the bottom-up variant. Merge frames show
// placements rather than comparisons: during a merge the candidates
// live in a scratch copy, so highlighting their source cells would
// point at positions the write-back has already overwritten.
func generateMergeSort(ctx context.Context, in trace.Input) (*trace.Trace, error) {
	work, err := sortWork(in)
	if err != nil {
		return nil, err
	}
	n := len(work)
	rec := trace.NewRecorder(trace.MergeSort)
	rec.Emit(work, trace.Highlights{}, 0, "Starting merge sort on %d elements", n)

	for width := 1; width < n; width *= 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for lo := 0; lo < n-width; lo += 2 * width {
			mid := lo + width
			hi := mid + width
			if hi > n {
				hi = n
			}
			rec.Emit(work, trace.Highlights{Indices: spanIndices(lo, hi)}, 3,
				"Merging runs a[%d..%d) and a[%d..%d)", lo, mid, mid, hi)

			left := append([]int(nil), work[lo:mid]...)
			right := append([]int(nil), work[mid:hi]...)
			li, ri := 0, 0
			for k := lo; k < hi; k++ {
				var v int
				switch {
				case li < len(left) && (ri >= len(right) || left[li] <= right[ri]):
					v = left[li]
					li++
				default:
					v = right[ri]
					ri++
				}
				work[k] = v
				rec.Emit(work, trace.Highlights{Pivot: trace.Index(k), Indices: spanIndices(lo, hi)}, 3,
					"Placed %d at index %d", v, k)
			}
		}
	}
	rec.Complete(work, trace.Highlights{}, "Sorted %d elements", n)
	return rec.Trace()
}

var quickSortPseudocode = []string{
	"stack = [(0, n-1)]",
	"while stack not empty",
	"  lo, hi = pop; pivot = a[hi]",
	"  i = lo - 1",
	"  for j in lo .. hi-1",
	"    if a[j] <= pivot: i = i + 1; swap a[i], a[j]",
	"  swap a[i+1], a[hi]",
	"  push (lo, i) and (i+2, hi)",
}

// generateQuickSort records Lomuto partitioning driven by an explicit
// segment stack. The left segment is pushed last so it pops first,
// matching the order the recursive form would visit.
func generateQuickSort(ctx context.Context, in trace.Input) (*trace.Trace, error) {
	work, err := sortWork(in)
	if err != nil {
		return nil, err
	}
	n := len(work)
	rec := trace.NewRecorder(trace.QuickSort)
	rec.Emit(work, trace.Highlights{}, 0, "Starting quick sort on %d elements", n)

	type segment struct{ lo, hi int }
	stack := []segment{{0, n - 1}}
	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		seg := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seg.lo >= seg.hi {
			continue
		}
		lo, hi := seg.lo, seg.hi
		pivot := work[hi]
		rec.Emit(work, trace.Highlights{Pivot: trace.Index(hi), Indices: spanIndices(lo, hi+1)}, 2,
			"Partitioning a[%d..%d] around pivot a[%d]=%d", lo, hi, hi, pivot)

		i := lo - 1
		for j := lo; j < hi; j++ {
			rec.Emit(work, trace.Highlights{Compared: []int{j, hi}, Pivot: trace.Index(hi)}, 5,
				"Comparing a[%d]=%d with pivot %d", j, work[j], pivot)
			if work[j] <= pivot {
				i++
				if i != j {
					work[i], work[j] = work[j], work[i]
					rec.Emit(work, trace.Highlights{Swapped: []int{i, j}, Pivot: trace.Index(hi)}, 5,
						"Moved %d left of the pivot boundary", work[i])
				}
			}
		}
		p := i + 1
		if p != hi {
			work[p], work[hi] = work[hi], work[p]
			rec.Emit(work, trace.Highlights{Swapped: []int{p, hi}, Pivot: trace.Index(p)}, 6,
				"Pivot %d placed at final index %d", work[p], p)
		} else {
			rec.Emit(work, trace.Highlights{Pivot: trace.Index(p)}, 6,
				"Pivot %d already at final index %d", work[p], p)
		}
		stack = append(stack, segment{p + 1, hi}, segment{lo, p - 1})
	}
	rec.Complete(work, trace.Highlights{}, "Sorted %d elements", n)
	return rec.Trace()
}

// spanIndices lists lo..hi-1, the half-open range a structural frame
// wants lit up.
func spanIndices(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
