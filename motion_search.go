package edit

// findKindOf reports the reverse/stopBefore pair encoded by an f/F/t/T
// command rune, so ; and , can replay whichever one last ran.
func findKindOf(chr byte) (reverse, stopBefore bool) {
	switch chr {
	case 'F':
		return true, false
	case 't':
		return false, true
	case 'T':
		return true, true
	default: // 'f'
		return false, false
	}
}

// doFind scans for the count'th occurrence of target on the current line in
// the given direction and returns the landing position itself (where a
// standalone f/F/t/T would leave the cursor). Callers evaluating this as an
// operand range adjust it themselves: forward searches extend one past the
// match so it is included, backward searches already exclude the original
// cursor's own character by landing short of it.
func doFind(e *Editor, reverse, stopBefore bool, target rune, count int, beg int) (int, bool) {
	bol := e.buf().BOL(beg)
	eol := e.buf().EOL(beg)
	dir := 1
	if reverse {
		dir = -1
	}
	p := beg
	remaining := count
	last := -1
	for remaining > 0 {
		p += dir
		if p < bol || p > eol {
			return 0, false
		}
		if e.buf().Rune(p) == target {
			remaining--
			last = p
		}
	}
	if stopBefore {
		last -= dir
	}
	return last, true
}

func motionFind(reverse, stopBefore bool) motionFunc {
	return func(e *Editor, asOperand bool, c Cmd, m *motionResult) bool {
		if !e.find.locked {
			e.find.chr = c.Chr
			e.find.arg = c.Arg
			e.find.valid = true
		}
		last, ok := doFind(e, reverse, stopBefore, c.Arg, c.Count, m.Beg)
		if !ok {
			return false
		}
		m.End = last
		if asOperand && !reverse {
			m.End = last + 1
		}
		return true
	}
}

// motionRepeatFind implements ; (flip==false) and , (flip==true): replay the
// last f/F/t/T search with the current count.
func motionRepeatFind(flip bool) motionFunc {
	return func(e *Editor, asOperand bool, c Cmd, m *motionResult) bool {
		if !e.find.valid {
			return false
		}
		reverse, stopBefore := findKindOf(e.find.chr)
		if flip {
			reverse = !reverse
		}
		last, ok := doFind(e, reverse, stopBefore, e.find.arg, c.Count, m.Beg)
		if !ok {
			return false
		}
		m.End = last
		if asOperand && !reverse {
			m.End = last + 1
		}
		return true
	}
}

// searchText returns the text n/N should look for: the most recent operand
// span if one is marked, else the anonymous register.
func (e *Editor) searchText() []rune {
	if beg, ok := e.buf().Mark(selBegMark); ok {
		if end, ok2 := e.buf().Mark(selEndMark); ok2 && end > beg {
			return e.textRange(beg, end)
		}
	}
	return e.yank.anon.runes
}

// motionSearch implements n (reverse==false) and N (reverse==true): each
// looks for searchText() through the Searcher collaborator, count times. As
// an operand the result is line-wise.
func motionSearch(reverse bool) motionFunc {
	return func(e *Editor, asOperand bool, c Cmd, m *motionResult) bool {
		if e.search == nil {
			return false
		}
		text := e.searchText()
		if len(text) == 0 {
			return false
		}
		for i := 0; i < c.Count; i++ {
			if err := e.search.Look(e.win, text, reverse); err != nil {
				return false
			}
		}
		m.End = e.win.Cursor()
		if asOperand {
			m.Linewise = true
		}
		return true
	}
}

// motionSelection implements / used purely as an operand: it re-selects the
// span recorded by the most recent yank/delete rather than performing a new
// interactive search, which this core — owning no prompt UI — delegates
// entirely to the host.
func motionSelection(e *Editor, asOperand bool, c Cmd, m *motionResult) bool {
	if !asOperand {
		return false
	}
	beg, ok1 := e.buf().Mark(selBegMark)
	end, ok2 := e.buf().Mark(selEndMark)
	if !ok1 || !ok2 {
		return false
	}
	m.Beg, m.End = beg, end
	return true
}
