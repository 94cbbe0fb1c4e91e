package edit

// textRange reads the runes in [beg,end) from the focused buffer.
func (e *Editor) textRange(beg, end int) []rune {
	if end < beg {
		beg, end = end, beg
	}
	out := make([]rune, 0, end-beg)
	for p := beg; p < end; p++ {
		out = append(out, e.buf().Rune(p))
	}
	return out
}

// yankOperand evaluates mc as an operator's operand, multiplying its count
// by the operator's own count, and records the resulting text into the
// named register.
func (e *Editor) yankOperand(buf rune, count int, mc Cmd) (motionResult, bool) {
	mc.Count *= count
	m, ok := e.runMotion(mc)
	if !ok {
		return m, false
	}
	e.yank.storeNamed(buf, e.textRange(m.Beg, m.End), m.Linewise)
	e.buf().SetMark(selBegMark, m.Beg)
	e.buf().SetMark(selEndMark, m.End)
	return m, true
}

func actionYank(e *Editor, buf rune, c Cmd, mc Cmd) bool {
	m, ok := e.yankOperand(buf, c.Count, mc)
	if !ok {
		return false
	}
	e.win.SetCursor(m.Beg)
	return true
}

// actionDelete implements both d (operator) and x (standalone): x
// synthesizes mc = {1,'l',0} so it shares the same yank-then-delete path.
func actionDelete(e *Editor, buf rune, c Cmd, mc Cmd) bool {
	if c.Chr == 'x' {
		mc = Cmd{Count: 1, Chr: 'l'}
	}
	m, ok := e.yankOperand(buf, c.Count, mc)
	if !ok {
		return false
	}
	e.buf().Delete(m.Beg, m.End)
	e.win.SetCursor(m.Beg)
	e.buf().Commit()
	return true
}

// actionChange deletes like d but, for a line-wise span, keeps the final
// newline so the cursor lands on a fresh empty line rather than consuming
// the one below it, then enters insert mode.
func actionChange(e *Editor, buf rune, c Cmd, mc Cmd) bool {
	// cw/cW on a non-blank character changes only through the end of the
	// current word, leaving trailing whitespace alone, unlike dw/dW which
	// consume it: vi's one well-known exception to "c behaves like d".
	if (mc.Chr == 'w' || mc.Chr == 'W') && !isSpace(e.buf().Rune(e.win.Cursor())) {
		if mc.Chr == 'w' {
			mc.Chr = 'e'
		} else {
			mc.Chr = 'E'
		}
	}
	m, ok := e.yankOperand(buf, c.Count, mc)
	if !ok {
		return false
	}
	beg, end := m.Beg, m.End
	if m.Linewise && end > beg && e.buf().Rune(end-1) == '\n' {
		end--
	}
	e.buf().Delete(beg, end)
	e.win.SetCursor(beg)

	e.mode = ModeInsert
	e.insCount = 1
	e.ins.len = 0
	e.ins.locked = false
	e.insSkipFirst = false
	return true
}

// actionPut implements p (lowercase == true) and P.
func actionPut(lowercase bool) actionFunc {
	return func(e *Editor, buf rune, c Cmd, mc Cmd) bool {
		slot := e.yank.slot(buf)
		if len(slot.runes) == 0 {
			return false
		}
		pos := e.win.Cursor()
		switch {
		case slot.linemode && lowercase:
			pos = e.buf().EOL(pos) + 1
		case slot.linemode && !lowercase:
			pos = e.buf().BOL(pos)
		case !slot.linemode && lowercase:
			if e.buf().Rune(pos) != '\n' {
				pos++
			}
		}

		start := pos
		for i := 0; i < c.Count; i++ {
			for _, r := range slot.runes {
				e.buf().Insert(pos, r)
				pos++
			}
		}
		if slot.linemode {
			e.win.SetCursor(start)
		} else if pos > start {
			e.win.SetCursor(pos - 1)
		}
		e.buf().Commit()
		return true
	}
}

func actionSetMark(e *Editor, buf rune, c Cmd, mc Cmd) bool {
	e.buf().SetMark(c.Arg, e.win.Cursor())
	return true
}

// actionUndo steps the host's undo log, toggling the direction used the
// next time u is pressed: a second u redoes rather than undoing further.
func actionUndo(e *Editor, buf rune, c Cmd, mc Cmd) bool {
	pos := e.buf().Undo(e.repeat.redo)
	e.repeat.redo = !e.repeat.redo
	e.win.SetCursor(pos)
	return true
}

// actionRepeat re-dispatches the last successfully recorded command (.),
// optionally overriding its count, and, if that command re-entered insert
// mode, replays the recorded insertion once more before returning to
// command mode.
func actionRepeat(e *Editor, buf rune, c Cmd, mc Cmd) bool {
	if !e.repeat.valid || e.repeat.lastCmd.Chr == '.' {
		return false
	}
	lastBuf := e.repeat.lastBuf
	lastCmd := e.repeat.lastCmd
	lastMot := e.repeat.lastMot

	// actionUndo itself flips e.repeat.redo on every run, including the
	// re-dispatch below, so repeating 'u' must not also flip it here first;
	// doing so would cancel out actionUndo's own flip and repeat the same
	// direction instead of alternating.
	if lastCmd.Chr != 'u' && e.repeat.redo {
		return false
	}

	if c.Count != 0 {
		lastCmd.Count = c.Count
		lastMot.Count = 1
	}

	e.find.locked = true
	e.ins.locked = true
	// The re-dispatched action (if it reopens insert mode) resets e.ins to
	// start its own fresh recording, so the sequence to replay must be
	// captured before dispatch wipes it out from under us.
	recorded := append([]rune(nil), e.ins.runes[:e.ins.len]...)
	err := e.dispatch(lastBuf, lastCmd, lastMot)
	e.find.locked = false
	if err != nil {
		e.ins.locked = false
		return false
	}
	if e.mode == ModeInsert {
		skip := lastCmd.Chr == 'o' || lastCmd.Chr == 'O'
		e.replayInsertionForRepeat(skip, recorded)
	} else {
		e.ins.locked = false
	}
	return true
}

// actionScroll implements ^E/^Y (scroll by ±count) and ^U/^D (scroll by a
// sticky count that defaults to a third of the visible window).
func actionScroll(e *Editor, buf rune, c Cmd, mc Cmd) bool {
	switch rune(c.Chr) {
	case ctrlE:
		e.win.Scroll(c.Count)
	case ctrlY:
		e.win.Scroll(-c.Count)
	case ctrlU, ctrlD:
		n := c.Count
		if n == 0 {
			n = e.scrollCount
			if n == 0 {
				n = len(e.win.VisibleLines()) / 3
				if n < 1 {
					n = 1
				}
			}
		} else {
			e.scrollCount = n
		}
		if rune(c.Chr) == ctrlU {
			n = -n
		}
		e.win.Scroll(n)
	default:
		return false
	}
	e.scrolling = true
	return true
}

func actionToggleTag(e *Editor, buf rune, c Cmd, mc Cmd) bool {
	e.win.ToggleTag()
	return true
}

func actionRunLine(e *Editor, buf rune, c Cmd, mc Cmd) bool {
	if e.search == nil {
		return false
	}
	e.search.Run(e.win, e.win.Cursor())
	return true
}

// actionFocusWindow implements ^L followed by a direction key.
func actionFocusWindow(e *Editor, buf rune, c Cmd, mc Cmd) bool {
	switch c.Arg {
	case 'h', 'j', 'k', 'l':
		return e.win.Focus(c.Arg)
	default:
		return false
	}
}

func actionPersist(e *Editor, buf rune, c Cmd, mc Cmd) bool {
	if e.search == nil {
		return false
	}
	e.search.Put(e.buf(), 0)
	return true
}

func actionQuit(e *Editor, buf rune, c Cmd, mc Cmd) bool {
	e.quitRequested = true
	return true
}
