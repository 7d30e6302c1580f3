// Package trace defines the replay model shared by every algorithm in
// stepview: an immutable ordered sequence of frames, each one a full
// snapshot of the working array at an instant a viewer should be able to
// pause on. Generators build traces through a Recorder; the playback and
// UI layers only ever read them.
package trace

// NoPCLine marks a frame that points at no pseudocode line. Only the
// terminal frame of a trace carries it.
const NoPCLine = -1

// Highlights names the indices of a frame's array that the renderer
// should emphasize. The zero value highlights nothing. For the graph
// family the indices refer to positions in the visit-order array, not
// node ids.
type Highlights struct {
	// Compared holds the pair of indices under comparison.
	Compared []int `json:"compared,omitempty"`
	// Swapped holds the pair of indices that were just exchanged.
	Swapped []int `json:"swapped,omitempty"`
	// Pivot is the single distinguished index of the frame, when one
	// exists: a partition pivot, a probe midpoint.
	Pivot *int `json:"pivot,omitempty"`
	// Indices is the remaining set of relevant indices: a search
	// bracket, a locked suffix, the run being merged.
	Indices []int `json:"indices,omitempty"`
}

// Index wraps i for use as a Highlights.Pivot.
func Index(i int) *int { return &i }

// Clone returns a copy of h sharing no memory with it.
func (h Highlights) Clone() Highlights {
	out := Highlights{
		Compared: copyInts(h.Compared),
		Swapped:  copyInts(h.Swapped),
		Indices:  copyInts(h.Indices),
	}
	if h.Pivot != nil {
		out.Pivot = Index(*h.Pivot)
	}
	return out
}

// Frame is one snapshot of algorithm state. Array is a full copy owned
// by the frame: the working array for sorting and searching, the visit
// order so far for graph traversal. Frames are value types and must be
// treated as read-only once emitted.
type Frame struct {
	Array      []int      `json:"array"`
	Highlights Highlights `json:"highlights"`
	Explain    string     `json:"explain"`
	PCLine     int        `json:"pcLine"`
}

// Clone returns a deep copy of f.
func (f Frame) Clone() Frame {
	return Frame{
		Array:      snapshotInts(f.Array),
		Highlights: f.Highlights.Clone(),
		Explain:    f.Explain,
		PCLine:     f.PCLine,
	}
}

// Terminal reports whether f is a terminal frame.
func (f Frame) Terminal() bool { return f.PCLine == NoPCLine }

// copyInts preserves nilness so omitempty highlight fields stay omitted.
func copyInts(src []int) []int {
	if src == nil {
		return nil
	}
	dst := make([]int, len(src))
	copy(dst, src)
	return dst
}

// snapshotInts always allocates. A frame's array is never nil, so an
// empty visit order serializes as [] rather than null.
func snapshotInts(src []int) []int {
	dst := make([]int, len(src))
	copy(dst, src)
	return dst
}
