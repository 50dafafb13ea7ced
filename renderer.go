package twirl

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// ANSI control sequences for in-place redraw and cursor visibility.
const (
	ansiEraseLine  = "\r\x1b[K"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
)

// renderFrame draws one animated frame: cursor to column 0, erase to end of
// line, colored glyph, space, message. No trailing newline, so the next
// frame overwrites this one. Write errors are dropped on purpose — a closed
// terminal must never abort the host program.
func (s *Spinner) renderFrame() {
	glyph, message, c, ok := s.state.nextFrame()
	if !ok {
		return
	}

	if s.showElapsed {
		fmt.Fprintf(s.w, "%s%s %s (%s)", ansiEraseLine, c.paint(glyph, s.tty), message, s.elapsed())
		return
	}
	fmt.Fprintf(s.w, "%s%s %s", ansiEraseLine, c.paint(glyph, s.tty), message)
}

// writePersist draws the final line: symbol, space, message, newline. The
// render loop has already exited by the time this runs, so the line is never
// overwritten.
func (s *Spinner) writePersist(symbol string, c Color, message string) {
	sym := c.paint(symbol, s.tty, color.Bold)
	if s.showElapsed {
		fmt.Fprintf(s.w, "%s%s %s (%s)\n", ansiEraseLine, sym, message, s.elapsed())
		return
	}
	fmt.Fprintf(s.w, "%s%s %s\n", ansiEraseLine, sym, message)
}

// clearLine wipes the current animated line without persisting anything.
func (s *Spinner) clearLine() {
	fmt.Fprint(s.w, ansiEraseLine)
}

func (s *Spinner) restoreCursor() {
	if s.tty {
		fmt.Fprint(s.w, ansiShowCursor)
	}
}

func (s *Spinner) elapsed() string {
	elapsed := time.Since(s.startedAt)
	if elapsed < time.Second {
		return fmt.Sprintf("%dms", elapsed.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", elapsed.Seconds())
}
