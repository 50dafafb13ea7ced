package twirl

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Color is the color applied to the spinner glyph. The zero value (NoColor)
// renders the glyph without any escape sequence. Beyond the named colors an
// arbitrary 24-bit color can be built with RGB.
type Color struct {
	name string
	attr color.Attribute
	rgb  bool
	r    uint8
	g    uint8
	b    uint8
}

// NoColor renders glyphs in the terminal's default style.
var NoColor = Color{}

var (
	Black   = Color{name: "black", attr: color.FgBlack}
	Red     = Color{name: "red", attr: color.FgRed}
	Green   = Color{name: "green", attr: color.FgGreen}
	Yellow  = Color{name: "yellow", attr: color.FgYellow}
	Blue    = Color{name: "blue", attr: color.FgBlue}
	Magenta = Color{name: "magenta", attr: color.FgMagenta}
	Cyan    = Color{name: "cyan", attr: color.FgCyan}
	White   = Color{name: "white", attr: color.FgWhite}

	// Bright variants.
	HiBlack   = Color{name: "hi-black", attr: color.FgHiBlack}
	HiRed     = Color{name: "hi-red", attr: color.FgHiRed}
	HiGreen   = Color{name: "hi-green", attr: color.FgHiGreen}
	HiYellow  = Color{name: "hi-yellow", attr: color.FgHiYellow}
	HiBlue    = Color{name: "hi-blue", attr: color.FgHiBlue}
	HiMagenta = Color{name: "hi-magenta", attr: color.FgHiMagenta}
	HiCyan    = Color{name: "hi-cyan", attr: color.FgHiCyan}
	HiWhite   = Color{name: "hi-white", attr: color.FgHiWhite}
)

var namedColors = map[string]Color{
	"black":      Black,
	"red":        Red,
	"green":      Green,
	"yellow":     Yellow,
	"blue":       Blue,
	"magenta":    Magenta,
	"cyan":       Cyan,
	"white":      White,
	"hi-black":   HiBlack,
	"hi-red":     HiRed,
	"hi-green":   HiGreen,
	"hi-yellow":  HiYellow,
	"hi-blue":    HiBlue,
	"hi-magenta": HiMagenta,
	"hi-cyan":    HiCyan,
	"hi-white":   HiWhite,
}

// RGB builds a 24-bit color.
func RGB(r, g, b uint8) Color {
	return Color{
		name: fmt.Sprintf("rgb(%d,%d,%d)", r, g, b),
		rgb:  true,
		r:    r,
		g:    g,
		b:    b,
	}
}

// ParseColor resolves a color name ("green", "hi-cyan", ...) to a Color.
// The empty string resolves to NoColor. Matching is case-insensitive.
func ParseColor(name string) (Color, error) {
	if name == "" || strings.EqualFold(name, "none") {
		return NoColor, nil
	}
	c, ok := namedColors[strings.ToLower(name)]
	if !ok {
		return NoColor, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return c, nil
}

// String returns the color's name, or "none" for NoColor.
func (c Color) String() string {
	if c == NoColor {
		return "none"
	}
	return c.name
}

// paint wraps s in the color's SGR sequence. When enabled is false or the
// color is NoColor, s passes through untouched.
func (c Color) paint(s string, enabled bool, extra ...color.Attribute) string {
	if !enabled || c == NoColor {
		return s
	}
	var p *color.Color
	if c.rgb {
		p = color.RGB(int(c.r), int(c.g), int(c.b))
	} else {
		p = color.New(c.attr)
	}
	p = p.Add(extra...)
	// fatih/color disables itself on non-terminals; the spinner already
	// decided via the enabled flag.
	p.EnableColor()
	return p.Sprint(s)
}
