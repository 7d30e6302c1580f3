package playback

import (
	"math"
	"testing"
	"time"
)

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(10)
	if r.Idx() != 0 || r.Playing() || r.CurrentDirection() != Forward {
		t.Errorf("fresh runner state = %+v", r.State())
	}
	if r.Speed() != DefaultSpeed {
		t.Errorf("speed = %v, want %v", r.Speed(), DefaultSpeed)
	}
	if !r.AtStart() || r.AtEnd() {
		t.Error("fresh runner not at start")
	}
}

func TestWithSpeedClamps(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{in: 2, want: 2},
		{in: 0.01, want: MinSpeed},
		{in: 400, want: MaxSpeed},
		{in: -3, want: MinSpeed},
	}
	for _, tc := range cases {
		r := NewRunner(5, WithSpeed(tc.in))
		if r.Speed() != tc.want {
			t.Errorf("WithSpeed(%v) = %v, want %v", tc.in, r.Speed(), tc.want)
		}
	}
}

func TestTickAdvancesAtSpeed(t *testing.T) {
	r := NewRunner(100)
	r.PlayForward()

	// 1x speed: one frame per second.
	if moved := r.Tick(500 * time.Millisecond); moved {
		t.Error("half a frame should not move the cursor")
	}
	if moved := r.Tick(500 * time.Millisecond); !moved {
		t.Error("accumulated full frame should move the cursor")
	}
	if r.Idx() != 1 {
		t.Errorf("idx = %d, want 1", r.Idx())
	}

	// A large interval consumes several frames at once.
	r.Tick(3 * time.Second)
	if r.Idx() != 4 {
		t.Errorf("idx = %d, want 4", r.Idx())
	}
}

func TestTickIgnoresNonPositiveIntervals(t *testing.T) {
	r := NewRunner(10)
	r.PlayForward()
	if r.Tick(0) || r.Tick(-time.Second) {
		t.Error("non-positive dt moved the cursor")
	}
	if r.Idx() != 0 {
		t.Errorf("idx = %d, want 0", r.Idx())
	}
}

func TestTickWhilePausedDoesNothing(t *testing.T) {
	r := NewRunner(10)
	if r.Tick(5 * time.Second) {
		t.Error("paused runner moved")
	}
}

func TestRateIndependence(t *testing.T) {
	// Two runners at 4x over the same 10 wall-clock seconds, one ticked
	// every 16ms and one every 33ms, must land within one frame of each
	// other and of the ideal 40 frames.
	a := NewRunner(10000, WithSpeed(4))
	b := NewRunner(10000, WithSpeed(4))
	a.PlayForward()
	b.PlayForward()

	for i := 0; i < 625; i++ {
		a.Tick(16 * time.Millisecond)
	}
	for i := 0; i < 303; i++ {
		b.Tick(33 * time.Millisecond)
	}
	b.Tick(1 * time.Millisecond) // top up to exactly 10s

	diff := a.Idx() - b.Idx()
	if diff < 0 {
		diff = -diff
	}
	if diff > 1 {
		t.Errorf("16ms ticks reached %d, 33ms ticks reached %d", a.Idx(), b.Idx())
	}
	if a.Idx() < 39 || a.Idx() > 40 {
		t.Errorf("idx = %d, want 40 +/- 1", a.Idx())
	}
}

func TestBoundaryAutoPauseLandsExactly(t *testing.T) {
	r := NewRunner(10, WithSpeed(16))
	r.SeekTo(8)
	r.PlayForward()
	r.Tick(time.Second) // 16 frames requested, 1 available
	if r.Idx() != 9 {
		t.Errorf("idx = %d, want 9", r.Idx())
	}
	if r.Playing() {
		t.Error("runner still playing past the final frame")
	}

	r.PlayBackward()
	r.Tick(time.Second)
	if r.Idx() != 0 || r.Playing() {
		t.Errorf("backward overshoot: idx=%d playing=%v", r.Idx(), r.Playing())
	}
}

func TestPlayIntoOccupiedBoundaryIsNoop(t *testing.T) {
	r := NewRunner(5)
	r.ToEnd()
	r.PlayForward()
	if r.Playing() {
		t.Error("PlayForward on the final frame started playback")
	}
	r.ToStart()
	r.PlayBackward()
	if r.Playing() {
		t.Error("PlayBackward on frame 0 started playback")
	}
}

func TestManualStepKeepsPlayingState(t *testing.T) {
	r := NewRunner(5)
	r.PlayForward()
	r.StepNext()
	r.StepNext()
	if !r.Playing() {
		t.Error("manual step paused the runner")
	}
	r.Pause()
	r.StepPrev()
	if r.Playing() {
		t.Error("manual step resumed the runner")
	}
	if r.Idx() != 1 {
		t.Errorf("idx = %d, want 1", r.Idx())
	}
}

func TestStepsClampAtBounds(t *testing.T) {
	r := NewRunner(3)
	r.StepPrev()
	if r.Idx() != 0 {
		t.Errorf("StepPrev at start moved to %d", r.Idx())
	}
	r.ToEnd()
	r.StepNext()
	if r.Idx() != 2 {
		t.Errorf("StepNext at end moved to %d", r.Idx())
	}
	r.SeekTo(-10)
	if r.Idx() != 0 {
		t.Errorf("SeekTo(-10) = %d", r.Idx())
	}
	r.SeekTo(999)
	if r.Idx() != 2 {
		t.Errorf("SeekTo(999) = %d", r.Idx())
	}
}

func TestSeekFraction(t *testing.T) {
	r := NewRunner(11)
	r.SeekFraction(0.5)
	if r.Idx() != 5 {
		t.Errorf("SeekFraction(0.5) = %d, want 5", r.Idx())
	}
	r.SeekFraction(1.0)
	if r.Idx() != 10 {
		t.Errorf("SeekFraction(1.0) = %d, want 10", r.Idx())
	}
	r.SeekFraction(-1)
	if r.Idx() != 0 {
		t.Errorf("SeekFraction(-1) = %d, want 0", r.Idx())
	}
}

func TestPausePreservesCarry(t *testing.T) {
	r := NewRunner(10)
	r.PlayForward()
	r.Tick(900 * time.Millisecond)
	r.Pause()
	r.TogglePlay()
	if moved := r.Tick(200 * time.Millisecond); !moved {
		t.Error("carry lost across pause/resume")
	}
	if r.Idx() != 1 {
		t.Errorf("idx = %d, want 1", r.Idx())
	}
}

func TestResetClearsCursorAndCarryButKeepsSpeed(t *testing.T) {
	r := NewRunner(10, WithSpeed(8))
	r.PlayForward()
	r.Tick(90 * time.Millisecond) // 0.72 frames carried
	r.SeekTo(5)

	r.Reset(20)
	if r.Idx() != 0 || r.Playing() || r.Total() != 20 {
		t.Errorf("post-reset state = %+v", r.State())
	}
	if r.Speed() != 8 {
		t.Errorf("speed = %v, want 8 preserved across reset", r.Speed())
	}
	r.PlayForward()
	if moved := r.Tick(90 * time.Millisecond); !moved {
		// 8x over 90ms is 0.72 frames: no motion proves the old carry
		// was discarded rather than topped up.
		t.Log("expected no motion right after reset")
	} else if r.Idx() != 0 {
		t.Errorf("stale carry survived reset, idx = %d", r.Idx())
	}
}

func TestEmptyRunnerIsInert(t *testing.T) {
	r := NewRunner(0)
	r.PlayForward()
	r.PlayBackward()
	r.TogglePlay()
	r.StepNext()
	r.StepPrev()
	r.SeekTo(3)
	r.SeekFraction(0.9)
	r.ToEnd()
	if r.Tick(time.Hour) {
		t.Error("empty runner moved")
	}
	if r.Idx() != 0 || r.Playing() {
		t.Errorf("empty runner state = %+v", r.State())
	}
	if r.AtEnd() {
		t.Error("empty runner claims to be at the end")
	}
}

func TestNegativeTotalTreatedAsEmpty(t *testing.T) {
	r := NewRunner(-7)
	if r.Total() != 0 {
		t.Errorf("total = %d, want 0", r.Total())
	}
}

func TestTogglePlayResumesLastDirection(t *testing.T) {
	r := NewRunner(10)
	r.SeekTo(5)
	r.PlayBackward()
	r.Pause()
	r.TogglePlay()
	if !r.Playing() || r.CurrentDirection() != Backward {
		t.Errorf("toggle resumed %s playing=%v, want backward", r.CurrentDirection(), r.Playing())
	}
}

func TestSetSpeedIgnoresNaN(t *testing.T) {
	r := NewRunner(5, WithSpeed(2))
	r.SetSpeed(math.NaN())
	if r.Speed() != 2 {
		t.Errorf("NaN changed speed to %v", r.Speed())
	}
}

func TestState(t *testing.T) {
	r := NewRunner(7, WithSpeed(2))
	r.PlayForward()
	s := r.State()
	if s.Idx != 0 || s.Total != 7 || !s.Playing || s.Direction != "forward" || s.Speed != 2 {
		t.Errorf("state = %+v", s)
	}
}
