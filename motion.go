package edit

// selBegMark and selEndMark are the reserved marks yank maintains to record
// the most recent operand span, consumed by motionSelection and, as the
// preferred search text ahead of the anonymous register, by n/N.
const (
	selBegMark rune = '<'
	selEndMark rune = '>'
)

// motionHoriz implements h (dir<0) and l (dir>0): count columns within the
// current line, clamped at either end. A motion that cannot move at all
// (already at column 0, or already on the trailing newline) fails and
// leaves the cursor exactly where it was.
func motionHoriz(dir int) motionFunc {
	return func(e *Editor, asOperand bool, c Cmd, m *motionResult) bool {
		pos := m.Beg
		bol := e.buf().BOL(pos)
		eol := e.buf().EOL(pos)
		target := pos + dir*c.Count
		if target < bol {
			target = bol
		}
		if target > eol {
			target = eol
		}
		if target == pos {
			return false
		}
		m.End = target
		return true
	}
}

// motionVert implements j (dir>0) and k (dir<0): count lines, preserving
// column. Always line-wise as an operand.
func motionVert(dir int) motionFunc {
	return func(e *Editor, asOperand bool, c Cmd, m *motionResult) bool {
		pos := m.Beg
		line := e.buf().Line(pos)
		col := e.buf().Column(pos)
		newLine := line + dir*c.Count
		if newLine < 0 {
			newLine = 0
		}
		if newLine == line {
			return false
		}
		m.End = e.buf().Pos(newLine, col)
		m.Linewise = true
		return true
	}
}

func motionBOL(e *Editor, asOperand bool, c Cmd, m *motionResult) bool {
	m.End = e.buf().BOL(m.Beg)
	return true
}

func motionFirstNonBlank(e *Editor, asOperand bool, c Cmd, m *motionResult) bool {
	m.End = e.firstNonBlank(e.buf().BOL(m.Beg))
	return true
}

// motionEOL implements $. With a count greater than 1 it moves down
// count-1 lines first and becomes line-wise, matching vi's "$ with a count"
// convention.
func motionEOL(e *Editor, asOperand bool, c Cmd, m *motionResult) bool {
	pos := m.Beg
	if c.Count > 1 {
		line := e.buf().Line(pos)
		pos = e.buf().Pos(line+c.Count-1, 0)
		m.Linewise = true
	}
	eol := e.buf().EOL(pos)
	if asOperand {
		// d$/y$ want the exclusive range through the last character;
		// runMotion expands linewise spans to full lines on its own, so
		// the exact column here only matters for the non-linewise case.
		m.End = eol
		return true
	}
	// Standalone $ lands the cursor ON the last character of the line,
	// not on the trailing newline itself.
	bol := e.buf().BOL(pos)
	if eol > bol {
		eol--
	}
	m.End = eol
	return true
}

// motionLine implements _: select the current line (or, with a count, the
// current line plus count-1 more), landing on the first non-blank. Always
// line-wise.
func motionLine(e *Editor, asOperand bool, c Cmd, m *motionResult) bool {
	pos := m.Beg
	if c.Count > 1 {
		var vm motionResult
		vm.Beg = pos
		vc := Cmd{Count: c.Count - 1}
		if !motionVert(1)(e, true, vc, &vm) {
			return false
		}
		pos = vm.End
	}
	m.End = e.firstNonBlank(e.buf().BOL(pos))
	m.Linewise = true
	return true
}

// motionGotoLine implements G. A count of 0 (flagZeroCount) goes to limbo,
// the line just past the buffer's last line; otherwise the count is a
// 1-based line number.
func motionGotoLine(e *Editor, asOperand bool, c Cmd, m *motionResult) bool {
	var line int
	if c.Count == 0 {
		line = e.buf().Line(e.buf().Len())
	} else {
		line = c.Count - 1
	}
	m.End = e.firstNonBlank(e.buf().Pos(line, 0))
	m.Linewise = true
	return true
}

// Indices into Window.VisibleLines() for H/M/L.
const (
	screenTop = iota
	screenMiddle
	screenBottom
)

func motionScreen(which int) motionFunc {
	return func(e *Editor, asOperand bool, c Cmd, m *motionResult) bool {
		lines := e.win.VisibleLines()
		if len(lines) == 0 {
			return false
		}
		var idx int
		switch which {
		case screenTop:
			idx = c.Count - 1
		case screenBottom:
			idx = len(lines) - c.Count
		default:
			idx = len(lines) / 2
		}
		if idx < 0 || idx >= len(lines) {
			return false
		}
		m.End = e.firstNonBlank(lines[idx])
		m.Linewise = true
		return true
	}
}

// motionMark implements ' (linewise==true) and ` (linewise==false).
func motionMark(linewise bool) motionFunc {
	return func(e *Editor, asOperand bool, c Cmd, m *motionResult) bool {
		pos, ok := e.buf().Mark(c.Arg)
		if !ok {
			return false
		}
		if linewise {
			m.End = e.firstNonBlank(e.buf().BOL(pos))
			m.Linewise = true
		} else {
			m.End = pos
		}
		return true
	}
}

var bracketOpen = map[rune]rune{'(': ')', '[': ']', '{': '}', '<': '>'}
var bracketClose = map[rune]rune{')': '(', ']': '[', '}': '{', '>': '<'}

// motionBracketMatch implements %: from the cursor, scan forward on the
// current line to the first bracket character, then jump to its match.
// This editor replicates the source behavior of treating < and > as a
// bracket pair like the others, even though that conflicts with their use
// as comparison operators in most languages (see DESIGN.md).
func motionBracketMatch(e *Editor, asOperand bool, c Cmd, m *motionResult) bool {
	pos := m.Beg
	eol := e.buf().EOL(pos)
	p := pos
	for p <= eol {
		r := e.buf().Rune(p)
		if _, ok := bracketOpen[r]; ok {
			break
		}
		if _, ok := bracketClose[r]; ok {
			break
		}
		p++
	}
	if p > eol {
		return false
	}
	r := e.buf().Rune(p)
	if close, ok := bracketOpen[r]; ok {
		target, found := scanBracket(e, p, r, close, +1)
		if !found {
			return false
		}
		if asOperand {
			// Inclusive of both the opening bracket (wherever the cursor
			// started relative to it) and the match.
			m.Beg = pos
			m.End = target + 1
			promoteBracketLinewise(e, pos, target, m)
		} else {
			m.End = target
		}
		return true
	}
	open := bracketClose[r]
	target, found := scanBracket(e, p, r, open, -1)
	if !found {
		return false
	}
	if asOperand {
		m.Beg = target
		m.End = p + 1
		promoteBracketLinewise(e, target, p, m)
	} else {
		m.End = target
	}
	return true
}

// promoteBracketLinewise matches vi's rule that an otherwise-charwise motion
// whose two endpoints both sit at the start of their line becomes line-wise
// when used as an operand:
// a brace pair opened and closed each on its own line deletes the whole
// span as whole lines, not just the bracket characters themselves.
func promoteBracketLinewise(e *Editor, lo, hi int, m *motionResult) {
	if e.buf().Line(lo) == e.buf().Line(hi) {
		return
	}
	if lo != e.buf().BOL(lo) || hi != e.buf().BOL(hi) {
		return
	}
	m.Linewise = true
	m.Exact = true
	m.Beg = e.buf().BOL(lo)
	m.End = e.buf().EOL(hi) + 1
}

func scanBracket(e *Editor, pos int, open, close rune, dir int) (int, bool) {
	depth := 0
	length := e.buf().Len()
	p := pos
	for p >= -1 && p <= length {
		r := e.buf().Rune(p)
		switch r {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return p, true
			}
		}
		p += dir
	}
	return 0, false
}
