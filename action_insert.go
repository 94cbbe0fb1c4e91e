package edit

// actionInsert implements i, I, a, A, o, O: each positions the cursor, then
// enters insert mode with cnti set from the command's count.
func actionInsert(e *Editor, buf rune, c Cmd, mc Cmd) bool {
	pos := e.win.Cursor()

	switch c.Chr {
	case 'i':
		// insert before the cursor: position unchanged
	case 'I':
		pos = e.firstNonBlank(e.buf().BOL(pos))
	case 'a':
		if e.buf().Rune(pos) != '\n' {
			pos++
		}
	case 'A':
		pos = e.buf().EOL(pos)
	case 'o':
		pos = e.buf().EOL(pos)
	case 'O':
		pos = e.buf().BOL(pos)
	default:
		return false
	}

	e.mode = ModeInsert
	e.insCount = c.Count
	e.ins.len = 0
	e.ins.locked = false
	e.insSkipFirst = false

	switch c.Chr {
	case 'o':
		e.win.SetCursor(pos)
		e.insert('\n')
	case 'O':
		e.openLineAbove(pos)
	default:
		e.win.SetCursor(pos)
	}
	return true
}

// firstNonBlank scans forward from bol (a line's start) past leading blanks.
func (e *Editor) firstNonBlank(bol int) int {
	p := bol
	for isBlank(e.buf().Rune(p)) {
		p++
	}
	return p
}

// openLineAbove inserts a fresh, indented blank line directly above the
// line starting at bol and leaves the cursor ready to type on it. Unlike o,
// the split point coincides with the indent being copied, so it cannot
// reuse the generic insertNewline split; the leading newline is still
// recorded into the insertion log (for count-replay and . to see), just not
// applied through insert's default effect.
func (e *Editor) openLineAbove(bol int) {
	indent := []rune{}
	for p := bol; isBlank(e.buf().Rune(p)); p++ {
		indent = append(indent, e.buf().Rune(p))
	}

	pos := bol
	for _, r := range indent {
		e.buf().Insert(pos, r)
		pos++
	}
	e.buf().Insert(pos, '\n')
	e.win.SetCursor(pos)
	e.ins.append('\n')
}
