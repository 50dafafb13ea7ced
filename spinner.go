// Package twirl renders an animated progress spinner on a terminal: a
// cycling glyph sequence next to a status message, drawn by a background
// goroutine while the caller's work runs, and finished with a persisted
// symbol and message.
//
//	fs, _ := spinners.Named("dots")
//	sp, err := twirl.New(fs, "Loading...", twirl.Cyan)
//	if err != nil {
//		return err
//	}
//	doWork()
//	sp.Success("Done!")
//
// A spinner is created running, may be updated from any goroutine, and is
// terminated exactly once by Stop, StopWithMessage, StopAndPersist, or one
// of the Success/Fail/Warn/Info finishers. Terminating an already-stopped
// spinner returns ErrAlreadyStopped and does nothing else.
package twirl

import (
	"fmt"
	"io"
	"time"
)

// Config configures a spinner beyond what New and NewWithStream expose.
type Config struct {
	// Frames is the glyph sequence and frame interval. Required.
	Frames FrameSet

	// Message is shown to the right of the glyph.
	Message string

	// Color is applied to the glyph only; the message keeps the terminal's
	// default styling.
	Color Color

	// Stream picks stdout or stderr. Ignored when Writer is set.
	Stream Stream

	// Writer overrides Stream with an arbitrary destination. Mostly a test
	// seam; a plain writer is treated as a non-terminal unless ForceTTY is
	// set.
	Writer io.Writer

	// ForceTTY enables color and cursor handling even when the destination
	// does not look like a terminal.
	ForceTTY bool

	// ShowElapsed appends the time since construction to every rendered
	// line.
	ShowElapsed bool
}

// Spinner is the caller-facing handle. All methods are safe to call from
// any goroutine holding the handle.
type Spinner struct {
	state       *renderState
	w           io.Writer
	tty         bool
	showElapsed bool
	startedAt   time.Time

	stop chan struct{} // closed by the terminating call
	done chan struct{} // closed by the render loop on exit
}

// New starts a spinner on standard output. It validates the frame set,
// spawns the render loop, and returns immediately.
func New(frames FrameSet, message string, c Color) (*Spinner, error) {
	return NewWithConfig(Config{Frames: frames, Message: message, Color: c})
}

// NewWithStream is New drawing on the given stream instead of stdout.
func NewWithStream(frames FrameSet, message string, c Color, stream Stream) (*Spinner, error) {
	return NewWithConfig(Config{Frames: frames, Message: message, Color: c, Stream: stream})
}

// NewWithConfig starts a spinner from a full Config.
func NewWithConfig(cfg Config) (*Spinner, error) {
	if err := cfg.Frames.validate(); err != nil {
		return nil, err
	}

	w := cfg.Writer
	if w == nil {
		w = cfg.Stream.writer()
	}

	s := &Spinner{
		state:       newRenderState(cfg.Frames, cfg.Message, cfg.Color),
		w:           w,
		tty:         cfg.ForceTTY || isTerminal(w),
		showElapsed: cfg.ShowElapsed,
		startedAt:   time.Now(),
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}

	if s.tty {
		fmt.Fprint(s.w, ansiHideCursor)
	}

	go s.run()

	return s, nil
}

// run is the render loop. It draws a frame immediately, then once per
// interval until the stop channel closes. Interval changes from Update take
// effect on the following iteration.
func (s *Spinner) run() {
	defer close(s.done)

	interval := tickInterval(s.state.interval())
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.renderFrame()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.renderFrame()
			if next := tickInterval(s.state.interval()); next != interval {
				interval = next
				ticker.Reset(interval)
			}
		}
	}
}

// tickInterval clamps a frame interval to something time.Ticker accepts. A
// zero interval is valid in a FrameSet but a ticker needs a positive period.
func tickInterval(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Millisecond
	}
	return d
}

// Update atomically overwrites the frame set, message, and color. Nil
// arguments leave the corresponding field unchanged. Replacing the frame set
// resets the animation to its first frame; on an invalid frame set the
// previous one stays in effect and ErrInvalidFrameSet is returned.
func (s *Spinner) Update(frames *FrameSet, message *string, c *Color) error {
	return s.state.update(frames, message, c)
}

// UpdateText overwrites the message only.
func (s *Spinner) UpdateText(message string) error {
	return s.state.update(nil, &message, nil)
}

// UpdateColor overwrites the glyph color only.
func (s *Spinner) UpdateColor(c Color) error {
	return s.state.update(nil, nil, &c)
}

// UpdateFrames replaces the frame set only.
func (s *Spinner) UpdateFrames(frames FrameSet) error {
	return s.state.update(&frames, nil, nil)
}

// halt flips the stopped flag and joins the render loop. The caller is
// blocked for at most one frame interval plus one render. Only the first
// terminating call gets nil; the rest see ErrAlreadyStopped and must not
// touch the terminal.
func (s *Spinner) halt() error {
	if !s.state.terminate() {
		return ErrAlreadyStopped
	}

	close(s.stop)
	<-s.done

	return nil
}

// Stop terminates the spinner and clears its line, persisting nothing.
func (s *Spinner) Stop() error {
	if err := s.halt(); err != nil {
		return err
	}
	s.clearLine()
	s.restoreCursor()
	return nil
}

// StopWithMessage terminates the spinner and leaves message on its own
// line, without any symbol.
func (s *Spinner) StopWithMessage(message string) error {
	if err := s.halt(); err != nil {
		return err
	}
	s.clearLine()
	fmt.Fprintln(s.w, message)
	s.restoreCursor()
	return nil
}

// StopAndPersist terminates the spinner and replaces its line with
// "symbol message" followed by a newline.
func (s *Spinner) StopAndPersist(symbol, message string) error {
	return s.finish(symbol, NoColor, message)
}

// Success terminates the spinner with a green check mark.
func (s *Spinner) Success(message string) error {
	return s.finish("✓", Green, message)
}

// Fail terminates the spinner with a red cross.
func (s *Spinner) Fail(message string) error {
	return s.finish("✗", Red, message)
}

// Warn terminates the spinner with a yellow warning sign.
func (s *Spinner) Warn(message string) error {
	return s.finish("⚠", Yellow, message)
}

// Info terminates the spinner with a blue info sign.
func (s *Spinner) Info(message string) error {
	return s.finish("ℹ", Blue, message)
}

func (s *Spinner) finish(symbol string, c Color, message string) error {
	if err := s.halt(); err != nil {
		return err
	}
	s.writePersist(symbol, c, message)
	s.restoreCursor()
	return nil
}
