package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/jcorbin/rawterm/ansi"
)

var (
	showBG     = flag.Bool("bg", false, "show colors as backgrounds rather than foregrounds")
	trueColor  = flag.Bool("truecolor", false, "show a 24-bit color ramp too")
	showStyles = flag.Bool("styles", false, "show text styles too")
)

func main() {
	flag.Parse()

	out := bufio.NewWriter(os.Stdout)
	var buf ansi.Buffer
	p := printer{buf: &buf, bg: *showBG}

	p.heading("Named colors (0-15)")
	for c := ansi.Black; c <= ansi.LightWhite; c++ {
		p.swatch(c, fmt.Sprintf(" %3d ", int(c)))
		if c == 7 {
			p.newline()
		}
	}
	p.newline()

	p.heading("RGB cube (16-231)")
	for r := uint8(0); r < 6; r++ {
		for g := uint8(0); g < 6; g++ {
			for b := uint8(0); b < 6; b++ {
				c := ansi.RGBCube(r, g, b)
				p.swatch(c, fmt.Sprintf(" %3d ", int(c)))
			}
			p.newline()
		}
	}

	p.heading("Grayscale (232-255)")
	for shade := uint8(0); shade < 24; shade++ {
		c := ansi.Grayscale(shade)
		p.swatch(c, fmt.Sprintf(" %3d ", int(c)))
		if shade == 11 {
			p.newline()
		}
	}
	p.newline()

	if *trueColor {
		p.heading("24-bit ramp")
		for i := 0; i < 64; i++ {
			v := uint8(i * 4)
			p.swatch(ansi.TrueColor(v, 0, 255-v), " ")
		}
		p.newline()
	}

	if *showStyles {
		p.heading("Styles")
		for _, style := range []struct {
			name    string
			on, off ansi.Seq
		}{
			{"bold", ansi.Bold, ansi.NoBold},
			{"faint", ansi.Faint, ansi.NoFaint},
			{"italic", ansi.Italic, ansi.NoItalic},
			{"underline", ansi.Underline, ansi.NoUnderline},
			{"blink", ansi.Blink, ansi.NoBlink},
			{"invert", ansi.Invert, ansi.NoInvert},
			{"crossed out", ansi.CrossedOut, ansi.NoCrossedOut},
			{"framed", ansi.Framed, ansi.SGRReset},
		} {
			buf.WriteSeq(style.on)
			_, _ = buf.WriteString(style.name)
			buf.WriteSeq(style.off)
			_, _ = buf.WriteString("  ")
		}
		p.newline()
	}

	_, err := buf.WriteTo(out)
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type printer struct {
	buf *ansi.Buffer
	bg  bool
}

func (p printer) heading(s string) {
	p.buf.WriteSeq(ansi.Bold)
	_, _ = p.buf.WriteString(s)
	p.buf.WriteSeq(ansi.SGRReset)
	p.newline()
}

func (p printer) swatch(c ansi.Colorer, label string) {
	if p.bg {
		p.buf.WriteSeq(c.BG())
	} else {
		p.buf.WriteSeq(c.FG())
	}
	_, _ = p.buf.WriteString(label)
	p.buf.WriteSeq(ansi.SGRReset)
}

func (p printer) newline() { _, _ = p.buf.WriteString("\n") }
