package twirl

import (
	"fmt"
	"time"
)

// FrameSet is an ordered sequence of glyphs cycled by the spinner, paired
// with the delay between two consecutive frames. A FrameSet is never mutated
// once handed to a spinner; updates replace it wholesale.
type FrameSet struct {
	Frames   []string
	Interval time.Duration
}

// NewFrameSet validates frames and interval and builds a FrameSet.
// A frame set needs at least one frame, every frame must be non-empty,
// and the interval must not be negative.
func NewFrameSet(frames []string, interval time.Duration) (FrameSet, error) {
	fs := FrameSet{Frames: frames, Interval: interval}
	if err := fs.validate(); err != nil {
		return FrameSet{}, err
	}
	return fs, nil
}

// MustFrameSet is NewFrameSet for static frame data; it panics on invalid
// input.
func MustFrameSet(frames []string, interval time.Duration) FrameSet {
	fs, err := NewFrameSet(frames, interval)
	if err != nil {
		panic(err)
	}
	return fs
}

func (fs FrameSet) validate() error {
	if len(fs.Frames) == 0 {
		return fmt.Errorf("%w: no frames", ErrInvalidFrameSet)
	}
	for i, f := range fs.Frames {
		if f == "" {
			return errEmptyFrame{Index: i}
		}
	}
	if fs.Interval < 0 {
		return fmt.Errorf("%w: negative interval %v", ErrInvalidFrameSet, fs.Interval)
	}
	return nil
}

// frame returns the glyph at i, wrapping around the end of the sequence.
func (fs FrameSet) frame(i int) string {
	return fs.Frames[i%len(fs.Frames)]
}
