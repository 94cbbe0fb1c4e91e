package edit

// dispatch runs a fully parsed command: either a standalone motion (cur
// itself, when it carries flagIsMotion and not flagHasMotion) or an action,
// optionally consuming mot. Its only error is ErrInvalidCommand for a
// cur.Chr with no keys-table entry, which the parser has already ruled out;
// whether the command's own semantics succeeded governs repeat-memory
// bookkeeping, not the return error.
func (e *Editor) dispatch(pbuf rune, cur Cmd, mot Cmd) error {
	entry := keysTable[cur.Chr]
	if !entry.valid() {
		return ErrInvalidCommand
	}

	if entry.flags&flagIsMotion != 0 && entry.flags&flagHasMotion == 0 {
		e.runStandaloneMotion(entry, cur)
		return nil
	}

	ok := entry.action(e, pbuf, cur, mot)
	if ok && cur.Chr >= 0x20 && cur.Chr != '.' {
		e.repeat = repeatMemory{
			valid:   true,
			lastBuf: pbuf,
			lastCmd: cur,
			lastMot: mot,
			redo:    e.repeat.redo,
		}
	}
	return nil
}

func (e *Editor) runStandaloneMotion(entry keyEntry, cur Cmd) {
	var m motionResult
	pos := e.win.Cursor()
	m.Beg, m.End = pos, pos
	if entry.motion(e, false, cur, &m) {
		e.win.SetCursor(m.End)
	}
}

// runMotion evaluates a motion as an operand for an operator (y/d/c),
// returning the ordered [beg,end) span and whether it is line-wise.
func (e *Editor) runMotion(cur Cmd) (motionResult, bool) {
	entry := keysTable[cur.Chr]
	var m motionResult
	pos := e.win.Cursor()
	m.Beg, m.End = pos, pos
	if !entry.valid() || entry.motion == nil {
		return m, false
	}
	ok := entry.motion(e, true, cur, &m)
	if !ok {
		return m, false
	}
	if m.End < m.Beg {
		m.Beg, m.End = m.End, m.Beg
	}
	if m.Linewise && !m.Exact {
		// A motion reports Linewise using whatever position it would
		// actually place the cursor on (e.g. the target line's first
		// non-blank): convenient for standalone use, but an operator
		// needs the full lines in between, so expand to line boundaries
		// here rather than in every motion.
		m.Beg = e.buf().BOL(m.Beg)
		m.End = e.buf().EOL(m.End) + 1
	}
	return m, true
}
