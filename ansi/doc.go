/*Package ansi provides ANSI escape and control sequences for driving a
terminal: cursor movement, screen clearing, colors, text styles, scrolling,
and mode switching (mouse reporting, alternate screen, etc).

Sequences are built as Seq values, which encode to their byte form with
AppendTo, or as a plain string with String, so that they may be written
directly with fmt:

	fmt.Print(ansi.CursorTo(ansi.Pt(1, 1)), ansi.ClearAll, ansi.Red.FG(), "hi", ansi.SGRReset)

Decoding of terminal output isn't supported; only the few reports that a
terminal sends back in response to a query (like the cursor position report)
have decoding helpers here.
*/
package ansi
