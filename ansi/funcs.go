package ansi

// ESC functions.
var (
	// DECSC Save Cursor position and attributes
	DECSC = ESC('7')

	// DECRC Restore Cursor position and attributes
	DECRC = ESC('8')
)

// CSI functions.
var (
	// CUU CUrsor Up n lines
	CUU = CSI('A')

	// CUD CUrsor Down n lines
	CUD = CSI('B')

	// CUF CUrsor Forward n columns
	CUF = CSI('C')

	// CUB CUrsor Backward n columns
	CUB = CSI('D')

	// CUP CUrsor Position to row;column, defaulting to 1;1
	CUP = CSI('H')

	/*ED Erase in Display
	  [J  = clear from cursor to end of screen
	  [1J = clear from start of screen to cursor
	  [2J = clear entire screen */
	ED = CSI('J')

	/*EL Erase in Line
	  [K  = clear from cursor to end of line
	  [1K = clear from start of line to cursor
	  [2K = clear entire line */
	EL = CSI('K')

	// SU Scroll Up n lines
	SU = CSI('S')

	// SD Scroll Down n lines
	SD = CSI('T')

	// SM Set Mode
	SM = CSI('h')

	// SMprivate Set Private Mode, e.g. [?1049h switches to the alternate screen
	SMprivate = SM.With('?')

	// RM Reset Mode
	RM = CSI('l')

	// RMprivate Reset Private Mode
	RMprivate = RM.With('?')

	// SGR Set Graphics Rendition, see Color and the style sequences
	SGR = CSI('m')

	/*DSR Device Status Report
	  [5n = request terminal status
	  [6n = request cursor position, replied to with a CPR */
	DSR = CSI('n')

	// CPR Cursor Position Report, "[row;columnR", sent by the terminal
	CPR = CSI('R')

	// DECSTBM Set Top and Bottom Margins, i.e. the scrolling region
	DECSTBM = CSI('r')

	/*DECSCUSR Set Cursor Style, written as "[Ps q"
	  [0 q, [1 q = blinking block
	  [2 q = steady block
	  [3 q = blinking underline
	  [4 q = steady underline
	  [5 q = blinking bar
	  [6 q = steady bar */
	DECSCUSR = CSI('q').WithIntermediate(' ')
)
