package algorithms

// Info-pane copy, rendered as markdown. Kept next to the generators so
// a change to framing behavior and its written story land in one review.

const bubbleSortDescription = `# Bubble Sort

Repeatedly sweeps the array, swapping adjacent elements that are out of
order. Each pass floats the largest remaining element to the end. A pass
without a single swap proves the array is sorted, so the run stops early.

- Comparisons per frame: one
- Time: O(n²), best case O(n) when already sorted
- Space: O(1), in place
`

const insertionSortDescription = `# Insertion Sort

Grows a sorted prefix one element at a time: pick up the next key, shift
larger prefix elements right, and drop the key into the gap.

- Strong on nearly-sorted input
- Time: O(n²), best case O(n)
- Space: O(1), in place
`

const selectionSortDescription = `# Selection Sort

Scans the unsorted suffix for its minimum and swaps it onto the front of
the suffix. Exactly one swap per pass, no matter how scrambled the input.

- Comparison count is input-independent
- Time: O(n²) in every case
- Space: O(1), in place
`

const mergeSortDescription = `# Merge Sort

Bottom-up variant: treat each element as a sorted run of one, then merge
adjacent runs of width 1, 2, 4, ... until a single run remains. Frames
show each placement as the merged run is written back.

- Time: O(n log n) in every case
- Space: O(n) scratch for the merge
- Stable
`

const quickSortDescription = `# Quick Sort

Partitions around the last element (Lomuto scheme): everything at most
the pivot moves left of a boundary, then the pivot swaps into its final
slot and the two sides are processed the same way, left side first.

- Time: O(n log n) expected, O(n²) worst case
- Space: O(log n) for the segment stack
- The pivot cell stays highlighted through its partition
`

const linearSearchDescription = `# Linear Search

Probes every element from the left until the target appears or the array
runs out. One frame per probe.

- Works on unsorted input
- Time: O(n), Space: O(1)
`

const binarySearchDescription = `# Binary Search

Keeps a bracket of indices that must contain the target, probes its
midpoint, and discards the half that cannot match. Requires ascending
input; the generator rejects anything else.

- The live bracket stays highlighted, shrinking each probe
- Time: O(log n), Space: O(1)
`

const bfsDescription = `# Breadth-First Search

Explores a directed graph outward from the start node, one distance
layer at a time, driven by a FIFO queue. The displayed array is the
visit order, one node appended per visit.

- Neighbor order follows the adjacency list as given
- Unreachable nodes are never visited
- Time: O(V + E)
`

const dfsDescription = `# Depth-First Search

Dives along a path as far as it goes before backtracking, driven by a
LIFO stack. Neighbors are pushed last-first so the first listed neighbor
is explored first, exactly like the recursive form.

- The displayed array is the visit order
- Unreachable nodes are never visited
- Time: O(V + E)
`
