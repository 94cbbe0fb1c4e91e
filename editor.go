// Package edit implements the command language core of a modal, vi-style
// text editor: a persistent state machine that parses a stream of input
// runes into vi's four-part command syntax (buffer, count, command, motion)
// and dispatches the parsed commands against a focused editing Window.
//
// The package owns no I/O, no terminal rendering, and no file access; it
// consumes runes through Feed and acts on the Buffer/Window/Searcher
// interfaces in host.go. Everything state-carrying lives on an explicitly
// constructed Editor value — there are no package-level mutable globals.
package edit

// Mode is the editor's current input mode.
type Mode int

const (
	ModeCommand Mode = iota
	ModeInsert
)

// target selects which Cmd fragment the parser is currently populating: the
// main command, or (once an operator has been read) its motion.
type target int

const (
	targetMain target = iota
	targetMotion
)

// parserPhase is the command parser's persistent state.
type parserPhase int

const (
	phaseBufferDQuote parserPhase = iota
	phaseBufferName
	phaseCmdChar
	phaseCmdArg
)

// findMemory retains the last t/T/f/F target so ; and , can replay it.
type findMemory struct {
	locked bool
	chr    byte
	arg    rune
	valid  bool
}

// repeatMemory retains the last successfully dispatched non-control action
// for . and the undo/redo direction for u.
type repeatMemory struct {
	valid   bool
	lastBuf rune
	lastCmd Cmd
	lastMot Cmd
	redo    bool
}

// insertLog records typed runes during insert mode so insertions can be
// replayed by count or by the repeat command. Fixed capacity, favoring a
// bounded array over a growable slice for small, bounded per-session state.
const insertLogCap = 512

type insertLog struct {
	runes  [insertLogCap]rune
	len    int
	locked bool
}

func (l *insertLog) append(r rune) {
	if l.locked {
		return
	}
	if l.len >= insertLogCap {
		l.len = 0
		l.locked = true
		return
	}
	l.runes[l.len] = r
	l.len++
}

// Editor holds all command-language state for one focused window. It is
// constructed with New and driven one rune at a time through Feed.
type Editor struct {
	win    Window
	search Searcher
	dbg    *debugger

	mode Mode

	phase  parserPhase
	pbuf   rune
	cur    Cmd
	mot    Cmd
	target target

	find   findMemory
	repeat repeatMemory
	yank   yankRing

	ins          insertLog
	insCount     int  // count for insertion replay (cnti)
	insSkipFirst bool // passed to closeInsertion as skipFirst; no action sets it to true

	scrolling    bool
	scrollCount  int // sticky ^U/^D line count; 0 means "unset, use default"
	quitRequested bool
}

// New constructs an Editor. A Window (and transitively a Buffer) is
// required; Searcher may be nil if n/N/run-line support is not needed.
func New(win Window, opts ...Option) *Editor {
	e := &Editor{win: win, mode: ModeCommand}
	for _, opt := range opts {
		opt.apply(e)
	}
	return e
}

// buf is a convenience accessor for the focused window's buffer.
func (e *Editor) buf() Buffer { return e.win.Buffer() }

// ErrInvalidCommand is returned from Feed when a rune is unexpected for the
// parser's current phase.
type errInvalidCommand struct{}

func (errInvalidCommand) Error() string { return "! invalid command" }

// ErrInvalidCommand is the sentinel compared against with errors.Is.
var ErrInvalidCommand error = errInvalidCommand{}

// ErrQuit is returned from Feed when ^Q requests a graceful exit.
type errQuit struct{}

func (errQuit) Error() string { return "quit requested" }

var ErrQuit error = errQuit{}

// Feed consumes one input rune. In ModeInsert the rune is forwarded to the
// insertion interpreter; in ModeCommand the parser state machine advances.
// Feed runs synchronously to completion, including any dispatch and
// insertion replay, before returning; callers are responsible for
// serializing concurrent input delivery.
func (e *Editor) Feed(r rune) error {
	e.dbg.logf("feed %s (mode=%d)", debugKey(r), e.mode)

	if e.mode == ModeInsert {
		e.insert(r)
		if e.quitRequested {
			return ErrQuit
		}
		return nil
	}

	if r == GKEsc {
		e.resetParser()
		return nil
	}

	e.scrolling = false
	err := e.feedCommand(r)
	e.win.SetScrolling(e.scrolling)
	if err != nil {
		return err
	}
	if e.quitRequested {
		return ErrQuit
	}
	return nil
}

func (e *Editor) resetParser() {
	e.phase = phaseBufferDQuote
	e.pbuf = 0
	e.cur = Cmd{}
	e.mot = Cmd{}
	e.target = targetMain
}

// fragment returns a pointer to the Cmd fragment the parser is currently
// populating (main command or motion).
func (e *Editor) fragment() *Cmd {
	if e.target == targetMotion {
		return &e.mot
	}
	return &e.cur
}
