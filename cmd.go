package edit

// Cmd is a parsed command fragment, used for both the main command and its
// motion. A zero count means "unspecified" (callers default it to 1 unless
// the keys-table entry is flagged ZeroCount).
type Cmd struct {
	Count int
	Chr   byte
	Arg   rune
}

// motionResult is the outcome of a successful motion: a half-open range
// [Beg,End) into the active buffer, with a flag marking it as line-wise.
// Failure is represented as a separate bool return from the motion function
// rather than folded into this struct, so a failed motion need not construct
// a sentinel value.
type motionResult struct {
	Beg      int
	End      int
	Linewise bool

	// Exact marks a line-wise result whose Beg/End the motion itself has
	// already aligned to exact line boundaries, so runMotion must not
	// apply its usual "expand to the destination line's full extent"
	// treatment. { and } need this: they are exclusive of the boundary
	// line they land on (d} deletes up to but not including the blank
	// line it stops at), unlike _, G, H/M/L, j and k, which are
	// inclusive of their destination line.
	Exact bool
}

// motionFunc implements one motion primitive. asOperand distinguishes a
// standalone cursor move from a motion being consumed by an operator
// (d/c/y/etc); some motions change behavior based on this ($, %, f/t, w/e,
// {/}, n/N, /).
// The caller has already set m.Beg to the cursor position before calling.
type motionFunc func(e *Editor, asOperand bool, c Cmd, m *motionResult) bool

// actionFunc implements one action primitive. buf is the selected register
// name (0 if unspecified/anonymous). mc is the parsed motion fragment; it is
// only meaningful when the keys-table entry for c.Chr carries flagHasMotion.
type actionFunc func(e *Editor, buf rune, c Cmd, mc Cmd) bool
