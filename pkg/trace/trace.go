package trace

import (
	"errors"
	"fmt"
)

var (
	// ErrTooShort rejects traces without both a starting and a terminal
	// frame.
	ErrTooShort = errors.New("trace needs at least a starting and a terminal frame")
	// ErrBadTerminal rejects traces whose sentinel frame is missing or
	// misplaced.
	ErrBadTerminal = errors.New("terminal frame out of place")
)

// Trace is the ordered frame sequence produced by one algorithm run over
// one input. A trace is fully determined by (Kind, Input) and immutable
// once built: playback both ways is just indexing into Frames.
type Trace struct {
	Kind   Kind    `json:"algorithm"`
	Frames []Frame `json:"frames"`
}

// Len returns the number of frames.
func (t *Trace) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Frames)
}

// At returns the frame at i, clamped into range. It panics only on an
// empty trace, which Validate rules out.
func (t *Trace) At(i int) Frame {
	if i < 0 {
		i = 0
	}
	if i >= len(t.Frames) {
		i = len(t.Frames) - 1
	}
	return t.Frames[i]
}

// Last returns the terminal frame.
func (t *Trace) Last() Frame { return t.Frames[len(t.Frames)-1] }

// Validate checks the structural invariants every generator must
// satisfy: at least two frames, exactly one terminal frame, and it last.
func (t *Trace) Validate() error {
	if !t.Kind.Known() {
		return fmt.Errorf("trace kind %q: unknown", t.Kind)
	}
	if len(t.Frames) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooShort, len(t.Frames))
	}
	for i, f := range t.Frames[:len(t.Frames)-1] {
		if f.Terminal() {
			return fmt.Errorf("%w: frame %d of %d is terminal", ErrBadTerminal, i, len(t.Frames))
		}
	}
	if !t.Last().Terminal() {
		return fmt.Errorf("%w: last frame has pcLine %d", ErrBadTerminal, t.Last().PCLine)
	}
	return nil
}
