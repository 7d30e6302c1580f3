// Package playback advances a position through a fixed number of frames
// at a wall-clock rate that is independent of how often the caller
// ticks. The Runner never errors and never panics: every operation
// clamps into range, and every operation before a trace is loaded is a
// no-op. It is not synchronized; a single event loop is expected to own
// it.
package playback

import (
	"math"
	"time"
)

// Direction is the sign applied to consumed steps.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Speed bounds. Requests outside the range clamp rather than fail, so a
// held-down key can never wedge the runner into an invalid state.
const (
	MinSpeed     = 0.1
	MaxSpeed     = 16.0
	DefaultSpeed = 1.0
)

// Runner holds the cursor state for one loaded trace of total frames.
// The zero value is a runner over an empty trace; use NewRunner or
// Reset to attach it to a real one.
type Runner struct {
	idx       int
	playing   bool
	direction Direction
	speed     float64
	total     int

	// carry accumulates fractional frame steps between ticks so that
	// slow speeds and uneven tick intervals still average out to
	// speed frames per second.
	carry float64
}

// Option configures a Runner at construction.
type Option func(*Runner)

// WithSpeed sets the initial playback speed, clamped like SetSpeed.
func WithSpeed(speed float64) Option {
	return func(r *Runner) { r.SetSpeed(speed) }
}

// NewRunner returns a paused runner positioned on frame 0.
func NewRunner(total int, opts ...Option) *Runner {
	r := &Runner{direction: Forward, speed: DefaultSpeed}
	r.Reset(total)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reset points the runner at a freshly loaded trace: frame 0, paused,
// forward, with the fractional carry discarded. Speed survives a reset
// so regenerating an input keeps the user's chosen rate.
func (r *Runner) Reset(total int) {
	if total < 0 {
		total = 0
	}
	r.total = total
	r.idx = 0
	r.playing = false
	r.direction = Forward
	r.carry = 0
}

// Idx returns the current frame index.
func (r *Runner) Idx() int { return r.idx }

// Playing reports whether ticks currently advance the cursor.
func (r *Runner) Playing() bool { return r.playing }

// CurrentDirection returns the direction ticks move the cursor.
func (r *Runner) CurrentDirection() Direction { return r.direction }

// Speed returns the playback rate in frames per second at speed 1.
func (r *Runner) Speed() float64 { return r.speed }

// Total returns the number of frames in the loaded trace.
func (r *Runner) Total() int { return r.total }

// AtStart reports whether the cursor sits on frame 0.
func (r *Runner) AtStart() bool { return r.idx == 0 }

// AtEnd reports whether the cursor sits on the final frame.
func (r *Runner) AtEnd() bool { return r.total > 0 && r.idx == r.total-1 }

// Progress returns the cursor position in [0, 1].
func (r *Runner) Progress() float64 {
	if r.total <= 1 {
		return 0
	}
	return float64(r.idx) / float64(r.total-1)
}

// PlayForward starts advancing toward the final frame. Playing into a
// boundary the cursor already sits on is a no-op.
func (r *Runner) PlayForward() {
	if r.total == 0 || r.AtEnd() {
		return
	}
	r.direction = Forward
	r.playing = true
}

// PlayBackward starts rewinding toward frame 0.
func (r *Runner) PlayBackward() {
	if r.total == 0 || r.AtStart() {
		return
	}
	r.direction = Backward
	r.playing = true
}

// Pause stops automatic advancement. The fractional carry is kept, so
// pause/resume does not distort the average rate.
func (r *Runner) Pause() {
	r.playing = false
}

// TogglePlay pauses when playing and otherwise resumes in the current
// direction.
func (r *Runner) TogglePlay() {
	if r.playing {
		r.Pause()
		return
	}
	if r.direction == Backward {
		r.PlayBackward()
		return
	}
	r.PlayForward()
}

// StepNext moves one frame forward without touching the playing state.
func (r *Runner) StepNext() { r.SeekTo(r.idx + 1) }

// StepPrev moves one frame backward without touching the playing state.
func (r *Runner) StepPrev() { r.SeekTo(r.idx - 1) }

// ToStart jumps to frame 0.
func (r *Runner) ToStart() { r.SeekTo(0) }

// ToEnd jumps to the final frame.
func (r *Runner) ToEnd() { r.SeekTo(r.total - 1) }

// SeekTo moves the cursor to idx, clamped into [0, total-1].
func (r *Runner) SeekTo(idx int) {
	if r.total == 0 {
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx > r.total-1 {
		idx = r.total - 1
	}
	r.idx = idx
}

// SeekFraction moves the cursor to a fraction of the trace in [0, 1].
func (r *Runner) SeekFraction(f float64) {
	if r.total == 0 || math.IsNaN(f) {
		return
	}
	r.SeekTo(int(math.Round(f * float64(r.total-1))))
}

// SetSpeed changes the playback rate, clamped into [MinSpeed, MaxSpeed].
// The accumulated carry is kept so a speed change mid-flight causes no
// jump, only a new slope.
func (r *Runner) SetSpeed(speed float64) {
	if math.IsNaN(speed) {
		return
	}
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	r.speed = speed
}

// Tick advances the cursor by the wall-clock time elapsed since the
// previous tick. Whole frames are consumed from the fractional
// accumulator; the remainder waits for later ticks, which is what keeps
// a 60 Hz caller and a 30 Hz caller converging on the same frames per
// second. Reaching either end pauses the runner on the boundary frame.
// It reports whether the cursor moved.
func (r *Runner) Tick(dt time.Duration) bool {
	if r.total == 0 || !r.playing || dt <= 0 {
		return false
	}
	r.carry += dt.Seconds() * r.speed
	steps := int(r.carry)
	if steps == 0 {
		return false
	}
	r.carry -= float64(steps)

	prev := r.idx
	r.SeekTo(r.idx + int(r.direction)*steps)
	if (r.direction == Forward && r.AtEnd()) || (r.direction == Backward && r.AtStart()) {
		r.playing = false
	}
	return r.idx != prev
}

// State is a serializable snapshot of the runner, emitted by the robot
// modes and the debug log.
type State struct {
	Idx       int     `json:"idx"`
	Total     int     `json:"total"`
	Playing   bool    `json:"playing"`
	Direction string  `json:"direction"`
	Speed     float64 `json:"speed"`
}

// State snapshots the runner.
func (r *Runner) State() State {
	return State{
		Idx:       r.idx,
		Total:     r.total,
		Playing:   r.playing,
		Direction: r.direction.String(),
		Speed:     r.speed,
	}
}
