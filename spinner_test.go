package twirl

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer is an io.Writer safe to read while the render loop writes.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

func newTestSpinner(t *testing.T, cfg Config) (*Spinner, *syncBuffer) {
	t.Helper()

	buf := &syncBuffer{}
	cfg.Writer = buf
	sp, err := NewWithConfig(cfg)
	require.NoError(t, err, "spinner should start")
	t.Cleanup(func() { _ = sp.Stop() })

	return sp, buf
}

// segments splits captured output into the individual redraws, each of which
// was written atomically by the render loop.
func segments(out string) []string {
	parts := strings.Split(out, ansiEraseLine)
	var segs []string
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

func TestNewRejectsEmptyFrameSet(t *testing.T) {
	sp, err := New(FrameSet{}, "nope", NoColor)
	require.ErrorIs(t, err, ErrInvalidFrameSet)
	assert.Nil(t, sp, "no spinner handle on invalid frames")
}

func TestSpinnerCyclesThroughFrames(t *testing.T) {
	fs := MustFrameSet([]string{"-", "\\", "|", "/"}, 10*time.Millisecond)
	sp, buf := newTestSpinner(t, Config{Frames: fs, Message: "Loading..."})

	time.Sleep(120 * time.Millisecond)
	require.NoError(t, sp.Stop())

	out := buf.String()
	for _, glyph := range fs.Frames {
		assert.Contains(t, out, glyph+" Loading...", "every frame should have been drawn")
	}
}

func TestUpdateIsNeverVisibleHalfApplied(t *testing.T) {
	fs := MustFrameSet([]string{"X"}, 5*time.Millisecond)
	sp, buf := newTestSpinner(t, Config{Frames: fs, Message: "old"})

	time.Sleep(25 * time.Millisecond)

	next := MustFrameSet([]string{"Y"}, 5*time.Millisecond)
	msg := "new"
	require.NoError(t, sp.Update(&next, &msg, nil))

	time.Sleep(25 * time.Millisecond)
	require.NoError(t, sp.Stop())

	for _, seg := range segments(buf.String()) {
		if seg == "X old" || seg == "Y new" {
			continue
		}
		t.Errorf("torn frame rendered: %q", seg)
	}
}

func TestUpdateTextShowsOnNextFrame(t *testing.T) {
	fs := MustFrameSet([]string{"*"}, 5*time.Millisecond)
	sp, buf := newTestSpinner(t, Config{Frames: fs, Message: "first"})

	require.NoError(t, sp.UpdateText("second"))
	time.Sleep(30 * time.Millisecond)
	require.NoError(t, sp.Stop())

	assert.Contains(t, buf.String(), "* second")
}

func TestStopReturnsPromptlyAndStopsWrites(t *testing.T) {
	fs := MustFrameSet([]string{"-", "|"}, 50*time.Millisecond)
	sp, buf := newTestSpinner(t, Config{Frames: fs, Message: "work"})

	time.Sleep(20 * time.Millisecond)

	start := time.Now()
	require.NoError(t, sp.Stop())
	assert.Less(t, time.Since(start), fs.Interval+100*time.Millisecond,
		"Stop should return within one frame interval plus overhead")

	n := buf.Len()
	time.Sleep(3 * fs.Interval)
	assert.Equal(t, n, buf.Len(), "no writes after Stop returns")
}

func TestStopClearsTheLine(t *testing.T) {
	fs := MustFrameSet([]string{"-"}, 5*time.Millisecond)
	sp, buf := newTestSpinner(t, Config{Frames: fs, Message: "work"})

	time.Sleep(15 * time.Millisecond)
	require.NoError(t, sp.Stop())

	assert.True(t, strings.HasSuffix(buf.String(), ansiEraseLine),
		"output should end with an erased line, got %q", buf.String())
}

func TestStopAndPersistWritesFinalLineExactlyOnce(t *testing.T) {
	fs := MustFrameSet([]string{"-", "\\", "|", "/"}, 10*time.Millisecond)
	sp, buf := newTestSpinner(t, Config{Frames: fs, Message: "Loading..."})

	time.Sleep(45 * time.Millisecond)
	require.NoError(t, sp.StopAndPersist("OK", "Done!"))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "OK Done!\n"), "got %q", out)
	assert.Equal(t, 1, strings.Count(out, "OK Done!\n"))

	// Distinct animated frames were observed before the persist.
	distinct := 0
	for _, glyph := range fs.Frames {
		if strings.Contains(out, glyph+" Loading...") {
			distinct++
		}
	}
	assert.GreaterOrEqual(t, distinct, 3)

	n := buf.Len()
	time.Sleep(3 * fs.Interval)
	assert.Equal(t, n, buf.Len(), "persisted line must never be overwritten")
}

func TestStopWithMessagePersistsBareMessage(t *testing.T) {
	fs := MustFrameSet([]string{"-"}, 5*time.Millisecond)
	sp, buf := newTestSpinner(t, Config{Frames: fs, Message: "working"})

	time.Sleep(15 * time.Millisecond)
	require.NoError(t, sp.StopWithMessage("all wrapped up"))

	assert.True(t, strings.HasSuffix(buf.String(), "all wrapped up\n"))
}

func TestDoubleTerminationIsANoOp(t *testing.T) {
	fs := MustFrameSet([]string{"-"}, 5*time.Millisecond)
	sp, buf := newTestSpinner(t, Config{Frames: fs, Message: "once"})

	require.NoError(t, sp.StopAndPersist("OK", "Done!"))
	n := buf.Len()

	assert.ErrorIs(t, sp.Stop(), ErrAlreadyStopped)
	assert.ErrorIs(t, sp.StopAndPersist("OK", "Done!"), ErrAlreadyStopped)
	assert.ErrorIs(t, sp.Success("again"), ErrAlreadyStopped)
	assert.Equal(t, n, buf.Len(), "second termination must not write")
	assert.Equal(t, 1, strings.Count(buf.String(), "OK Done!\n"))
}

func TestUpdateAfterStopFails(t *testing.T) {
	fs := MustFrameSet([]string{"-"}, 5*time.Millisecond)
	sp, _ := newTestSpinner(t, Config{Frames: fs, Message: "done soon"})

	require.NoError(t, sp.Stop())
	assert.ErrorIs(t, sp.UpdateText("too late"), ErrAlreadyStopped)
}

func TestInvalidUpdateKeepsSpinnerAlive(t *testing.T) {
	fs := MustFrameSet([]string{"-"}, 5*time.Millisecond)
	sp, buf := newTestSpinner(t, Config{Frames: fs, Message: "alive"})

	assert.ErrorIs(t, sp.UpdateFrames(FrameSet{}), ErrInvalidFrameSet)

	n := buf.Len()
	time.Sleep(30 * time.Millisecond)
	assert.Greater(t, buf.Len(), n, "spinner keeps animating with the previous frames")

	require.NoError(t, sp.Stop())
}

func TestFinishersUseTheirSymbols(t *testing.T) {
	tests := []struct {
		name   string
		finish func(*Spinner, string) error
		symbol string
		sgr    string
	}{
		{name: "success", finish: (*Spinner).Success, symbol: "✓", sgr: "\x1b[32;1m"},
		{name: "fail", finish: (*Spinner).Fail, symbol: "✗", sgr: "\x1b[31;1m"},
		{name: "warn", finish: (*Spinner).Warn, symbol: "⚠", sgr: "\x1b[33;1m"},
		{name: "info", finish: (*Spinner).Info, symbol: "ℹ", sgr: "\x1b[34;1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := MustFrameSet([]string{"-"}, 5*time.Millisecond)
			sp, buf := newTestSpinner(t, Config{Frames: fs, Message: "finishing", ForceTTY: true})

			require.NoError(t, tt.finish(sp, "done"))

			out := buf.String()
			assert.Contains(t, out, tt.sgr+tt.symbol, "symbol should be bold colored")
			assert.Contains(t, out, " done\n")
		})
	}
}

func TestColorAppliesToGlyphOnly(t *testing.T) {
	fs := MustFrameSet([]string{"@"}, 5*time.Millisecond)
	sp, buf := newTestSpinner(t, Config{Frames: fs, Message: "msg", Color: Cyan, ForceTTY: true})

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, sp.Stop())

	assert.Contains(t, buf.String(), "\x1b[36m@\x1b[0m msg",
		"glyph colored, message in default styling")
}

func TestNoColorEscapesOnNonTerminal(t *testing.T) {
	fs := MustFrameSet([]string{"@"}, 5*time.Millisecond)
	sp, buf := newTestSpinner(t, Config{Frames: fs, Message: "msg", Color: Cyan})

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, sp.Stop())

	assert.NotContains(t, buf.String(), "\x1b[36", "a plain writer gets no color")
}

func TestCursorHiddenAndRestoredOnTerminal(t *testing.T) {
	fs := MustFrameSet([]string{"-"}, 5*time.Millisecond)
	sp, buf := newTestSpinner(t, Config{Frames: fs, Message: "msg", ForceTTY: true})

	time.Sleep(15 * time.Millisecond)
	require.NoError(t, sp.Stop())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, ansiHideCursor))
	assert.True(t, strings.HasSuffix(out, ansiShowCursor))
}

func TestShowElapsedSuffixOnPersist(t *testing.T) {
	fs := MustFrameSet([]string{"-"}, 5*time.Millisecond)
	sp, buf := newTestSpinner(t, Config{Frames: fs, Message: "timing", ShowElapsed: true})

	time.Sleep(15 * time.Millisecond)
	require.NoError(t, sp.Success("done"))

	assert.Regexp(t, `done \(\d+(ms|\.\ds)\)\n$`, buf.String())
}

func TestZeroIntervalDoesNotPanic(t *testing.T) {
	fs := MustFrameSet([]string{"-", "|"}, 0)
	sp, buf := newTestSpinner(t, Config{Frames: fs, Message: "fast"})

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, sp.Stop())
	assert.Greater(t, buf.Len(), 0)
}

func TestConcurrentUpdatesAndStop(t *testing.T) {
	fs := MustFrameSet([]string{"-", "|"}, time.Millisecond)
	sp, _ := newTestSpinner(t, Config{Frames: fs, Message: "racing"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = sp.UpdateText("msg")
				_ = sp.UpdateColor(Green)
			}
		}(i)
	}
	wg.Wait()

	require.NoError(t, sp.Stop())
	assert.ErrorIs(t, sp.Stop(), ErrAlreadyStopped)
}
