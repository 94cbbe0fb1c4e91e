package edit

// Buffer is the rune-sequence collaborator the core edits against. It is
// implemented by the host; this module only states the contract. Offsets
// are rune offsets, not byte offsets. Rune(pos) returns '\n' at pos == -1
// and throughout "limbo" (the infinite region past end of text); this
// sentinel contract must hold in any implementation, including the
// in-memory one used by this package's own tests.
type Buffer interface {
	// Rune returns the rune at pos. pos == -1 and any pos >= Len() return
	// '\n' (limbo).
	Rune(pos int) rune

	// Insert inserts r at pos, shifting subsequent runes forward.
	Insert(pos int, r rune)

	// Delete removes the half-open range [beg,end).
	Delete(beg, end int)

	// BOL returns the offset of the first rune of the line containing pos.
	BOL(pos int) int

	// EOL returns the offset of the trailing newline of the line containing
	// pos (i.e. the first rune at or after pos that is '\n').
	EOL(pos int) int

	// Line returns the 0-based line number containing pos.
	Line(pos int) int

	// Column returns the 0-based column of pos within its line. The column
	// of a newline is the line's last column; out-of-range columns clamp.
	Column(pos int) int

	// Pos maps a (line, column) pair back to an offset, clamping an
	// out-of-range column to the first or last column of the line.
	Pos(line, col int) int

	// Mark returns the offset of the named mark and whether it is set.
	// Mark names are arbitrary runes; SelBeg/SelEnd are the reserved
	// selection marks maintained by yank.
	Mark(name rune) (int, bool)

	// SetMark sets the named mark to pos.
	SetMark(name rune, pos int)

	// Commit finalizes the edits made since the last Commit into a single
	// undo record.
	Commit()

	// Undo moves one step through the undo log in the given direction
	// (forward == redo) and returns the resulting cursor position.
	Undo(forward bool) int

	// Len returns the number of runes in the buffer (excluding limbo).
	Len() int
}

// Window is the focused editing window collaborator.
type Window interface {
	// Buffer returns the buffer displayed in this window.
	Buffer() Buffer

	// Cursor returns the current cursor offset.
	Cursor() int

	// SetCursor moves the cursor to pos.
	SetCursor(pos int)

	// VisibleLines returns the start offsets of the currently visible
	// lines, topmost first; used by H/M/L and by the default ^U/^D scroll
	// amount.
	VisibleLines() []int

	// Scroll shifts the visible window by delta lines (positive is down).
	Scroll(delta int)

	// SetScrolling marks that a scroll action just ran, so the host should
	// not re-center the view on the cursor on the next redraw.
	SetScrolling(scrolling bool)

	// ToggleTag toggles the host's tag window (^T).
	ToggleTag()

	// Focus moves input focus to the window adjacent in the given direction
	// (^L h/j/k/l), returning whether focus actually moved.
	Focus(dir rune) bool
}

// Searcher is the host's search/run/external-command collaborator.
type Searcher interface {
	// Look searches the buffer displayed in w for text, in the given
	// direction, starting from the cursor. It returns a non-nil error if no
	// match is found.
	Look(w Window, text []rune, reverse bool) error

	// Run executes the line at pos in w as an external command.
	Run(w Window, pos int)

	// Put persists buf via the host, honoring flags.
	Put(buf Buffer, flags int)
}
