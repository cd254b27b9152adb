package main

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"

	"github.com/jcorbin/rawterm/ansi"
	"github.com/jcorbin/rawterm/termkey"
)

// Column widths for the event log; values wider than their column push the
// following columns over, rather than being truncated.
const (
	typeWidth  = 16
	valueWidth = 20
)

// formatEvent renders an event as aligned columns: its type, its value, and
// the raw input bytes that it was decoded from.
func formatEvent(ev termkey.Event, raw []byte) string {
	var value string
	switch ev.Type {
	case termkey.KeyEvent:
		value = ev.Key.String()
		if ev.Key.Kind() == termkey.CharKey {
			value = strconv.QuoteRune(ev.Key.Rune())
		}
	case termkey.MouseEvent:
		value = ev.Mouse.String()
	case termkey.UnsupportedEvent:
		value = "-"
	}
	return runewidth.FillRight(ev.Type.String(), typeWidth) + " " +
		runewidth.FillRight(value, valueWidth) + " " +
		strconv.Quote(string(raw))
}

// writeEvent writes a formatted event line, followed by any note, to buf.
func writeEvent(buf *ansi.Buffer, ev termkey.Event, raw []byte, note string) {
	_, _ = buf.WriteString(formatEvent(ev, raw))
	if note != "" {
		_, _ = buf.WriteString(" ")
		buf.WriteSeq(ansi.Yellow.FG())
		_, _ = buf.WriteString(note)
		buf.WriteSeq(ansi.SGRReset)
	}
	_, _ = buf.WriteString("\r\n")
}

func writeNote(buf *ansi.Buffer, format string, args ...any) {
	buf.WriteSeq(ansi.Cyan.FG())
	_, _ = fmt.Fprintf(buf, "[ "+format+" ]", args...)
	buf.WriteSeq(ansi.SGRReset)
	_, _ = buf.WriteString("\r\n")
}
