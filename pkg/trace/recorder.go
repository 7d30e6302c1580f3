package trace

import "fmt"

// Recorder accumulates the frames of a single generator run. Emit
// snapshots the array it is handed, so the generator is free to keep
// mutating its working slice between calls; nothing it does afterwards
// can reach an emitted frame.
type Recorder struct {
	kind   Kind
	frames []Frame
}

// NewRecorder starts an empty recording for kind.
func NewRecorder(kind Kind) *Recorder {
	return &Recorder{kind: kind}
}

// Emit appends a frame. pcLine must point at a pseudocode line; the
// terminal sentinel is reserved for Complete and Trace will reject a
// recording that smuggles it in earlier.
func (r *Recorder) Emit(arr []int, hl Highlights, pcLine int, format string, args ...any) {
	r.frames = append(r.frames, Frame{
		Array:      snapshotInts(arr),
		Highlights: hl.Clone(),
		Explain:    fmt.Sprintf(format, args...),
		PCLine:     pcLine,
	})
}

// Complete appends the terminal frame summarizing the finished run. A
// search that succeeded keeps its found index highlighted here; most
// other runs pass an empty Highlights.
func (r *Recorder) Complete(arr []int, hl Highlights, format string, args ...any) {
	r.frames = append(r.frames, Frame{
		Array:      snapshotInts(arr),
		Highlights: hl.Clone(),
		Explain:    fmt.Sprintf(format, args...),
		PCLine:     NoPCLine,
	})
}

// Len returns the number of frames recorded so far.
func (r *Recorder) Len() int { return len(r.frames) }

// Trace validates the recording and hands it over. The recorder is
// drained by the call and must not be reused.
func (r *Recorder) Trace() (*Trace, error) {
	t := &Trace{Kind: r.kind, Frames: r.frames}
	r.frames = nil
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("recording %s: %w", r.kind, err)
	}
	return t, nil
}
