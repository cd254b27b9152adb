package ansi

import "fmt"

// Colorer is a color that can be set as the foreground or background.
type Colorer interface {
	FG() Seq
	BG() Seq
}

// Color is an index into the terminal's 256 color palette.
type Color uint8

// The 16 named colors, at the start of the palette.
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	LightBlack
	LightRed
	LightGreen
	LightYellow
	LightBlue
	LightMagenta
	LightCyan
	LightWhite
)

// Color256 returns the palette color n.
func Color256(n uint8) Color { return Color(n) }

// RGBCube returns a color from the 6x6x6 color cube within the palette;
// panics if any component is greater than 5.
func RGBCube(r, g, b uint8) Color {
	if r > 5 || g > 5 || b > 5 {
		panic(fmt.Sprintf("ansi: invalid color cube value %d,%d,%d", r, g, b))
	}
	return Color(16 + 36*r + 6*g + b)
}

// Grayscale returns one of the 24 grayscale palette colors, from darkest
// (0) to lightest (23); panics if shade is greater than 23.
func Grayscale(shade uint8) Color {
	if shade >= 24 {
		panic(fmt.Sprintf("ansi: invalid grayscale shade %d", shade))
	}
	return Color(0xE8 + shade)
}

// FG returns the SGR sequence that sets c as the foreground color.
func (c Color) FG() Seq { return SGR.WithInts(38, 5, int(c)) }

// BG returns the SGR sequence that sets c as the background color.
func (c Color) BG() Seq { return SGR.WithInts(48, 5, int(c)) }

// RGB is a 24-bit "true" color.
type RGB struct{ R, G, B uint8 }

// TrueColor returns a 24-bit color.
func TrueColor(r, g, b uint8) RGB { return RGB{r, g, b} }

// FG returns the SGR sequence that sets c as the foreground color.
func (c RGB) FG() Seq { return SGR.WithInts(38, 2, int(c.R), int(c.G), int(c.B)) }

// BG returns the SGR sequence that sets c as the background color.
func (c RGB) BG() Seq { return SGR.WithInts(48, 2, int(c.R), int(c.G), int(c.B)) }

// Color resets.
var (
	ResetFG = SGR.WithInts(39)
	ResetBG = SGR.WithInts(49)
)

// Text style sequences.
var (
	SGRReset   = SGR.With()
	Bold       = SGR.WithInts(1)
	Faint      = SGR.WithInts(2)
	Italic     = SGR.WithInts(3)
	Underline  = SGR.WithInts(4)
	Blink      = SGR.WithInts(5)
	Invert     = SGR.WithInts(7)
	CrossedOut = SGR.WithInts(9)
	Framed     = SGR.WithInts(51)

	NoBold       = SGR.WithInts(21)
	NoFaint      = SGR.WithInts(22)
	NoItalic     = SGR.WithInts(23)
	NoUnderline  = SGR.WithInts(24)
	NoBlink      = SGR.WithInts(25)
	NoInvert     = SGR.WithInts(27)
	NoCrossedOut = SGR.WithInts(29)
)
