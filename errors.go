package twirl

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFrameSet is returned when a frame set has no frames,
	// contains an empty frame, or has a negative interval.
	ErrInvalidFrameSet = errors.New("invalid frame set")

	// ErrAlreadyStopped is returned by terminating methods called on a
	// spinner that has already been stopped. The call is otherwise a no-op.
	ErrAlreadyStopped = errors.New("spinner already stopped")

	// ErrUnknownColor is returned by ParseColor for names outside the
	// supported color set.
	ErrUnknownColor = errors.New("unknown color")
)

type errEmptyFrame struct {
	Index int
}

func (e errEmptyFrame) Error() string {
	return fmt.Sprintf("%v: frame %d is empty", ErrInvalidFrameSet, e.Index)
}

func (e errEmptyFrame) Unwrap() error {
	return ErrInvalidFrameSet
}
