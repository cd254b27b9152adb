/*Package termkey decodes terminal input into keyboard and mouse events.

Input is read one byte at a time from an io.ByteReader, and decoded as:
plain and control characters; UTF-8 encoded characters; Alt-modified
characters (ESC followed by a character); cursor, editing, and function keys
in their common xterm and rxvt forms; and mouse reports in the X10, URXVT
(mode 1015), and SGR (mode 1006) encodings.

ParseEvent decodes a single event strictly, returning a *ParseError for
anything it doesn't understand. A Decoder instead tolerates such input,
passing it along as an UnsupportedEvent so that a stream of events may be
consumed with a simple loop:

	for ev, err := range termkey.Events(os.Stdin) {
		if err != nil {
			return err
		}
		...
	}

No terminal database is consulted; the sequences decoded are the ones that
xterm compatible terminals send.
*/
package termkey
