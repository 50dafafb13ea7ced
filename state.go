package twirl

import (
	"sync"
	"time"
)

// renderState is the single piece of shared mutable state between the
// caller's goroutines and the render loop. One mutex guards every field so a
// rendered frame always sees a consistent (frames, message, color) triple —
// an update is never visible half-applied.
type renderState struct {
	mu         sync.Mutex
	frames     FrameSet
	message    string
	color      Color
	frameIndex int
	stopped    bool
}

func newRenderState(frames FrameSet, message string, c Color) *renderState {
	return &renderState{
		frames:  frames,
		message: message,
		color:   c,
	}
}

// nextFrame snapshots one frame's worth of state and advances the frame
// index. ok is false once the spinner has been stopped; no animated frame
// may be drawn after that point.
func (st *renderState) nextFrame() (glyph, message string, c Color, ok bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.stopped {
		return "", "", NoColor, false
	}

	glyph = st.frames.frame(st.frameIndex)
	st.frameIndex++

	return glyph, st.message, st.color, true
}

func (st *renderState) interval() time.Duration {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.frames.Interval
}

// update overwrites the fields whose arguments are non-nil, in one critical
// section. Replacing the frame set resets the frame index to 0 so switching
// to a shorter set never jumps mid-cycle.
func (st *renderState) update(frames *FrameSet, message *string, c *Color) error {
	if frames != nil {
		if err := frames.validate(); err != nil {
			return err
		}
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.stopped {
		return ErrAlreadyStopped
	}
	if frames != nil {
		st.frames = *frames
		st.frameIndex = 0
	}
	if message != nil {
		st.message = *message
	}
	if c != nil {
		st.color = *c
	}

	return nil
}

// terminate flips the stopped flag. It reports false if the spinner was
// already stopped, making double termination a cheap no-op.
func (st *renderState) terminate() bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.stopped {
		return false
	}
	st.stopped = true

	return true
}
