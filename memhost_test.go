package edit

import (
	"errors"

	"github.com/mattn/go-runewidth"
)

// memBuffer is an in-memory Buffer double for tests: a hand-rolled
// collaborator driven entirely through the public interface under test, not
// a mock framework.
type memBuffer struct {
	runes   []rune
	marks   map[rune]int
	history [][]rune
	hpos    int
}

func newMemBuffer(text string) *memBuffer {
	b := &memBuffer{runes: []rune(text), marks: map[rune]int{}}
	b.history = [][]rune{append([]rune(nil), b.runes...)}
	return b
}

func (b *memBuffer) Rune(pos int) rune {
	if pos < 0 || pos >= len(b.runes) {
		return '\n'
	}
	return b.runes[pos]
}

func (b *memBuffer) Insert(pos int, r rune) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.runes) {
		pos = len(b.runes)
	}
	b.runes = append(b.runes[:pos:pos], append([]rune{r}, b.runes[pos:]...)...)
}

func (b *memBuffer) Delete(beg, end int) {
	if end < beg {
		beg, end = end, beg
	}
	if beg < 0 {
		beg = 0
	}
	if end > len(b.runes) {
		end = len(b.runes)
	}
	b.runes = append(b.runes[:beg:beg], b.runes[end:]...)
}

func (b *memBuffer) BOL(pos int) int {
	p := pos
	if p > len(b.runes) {
		p = len(b.runes)
	}
	for p > 0 && b.Rune(p-1) != '\n' {
		p--
	}
	return p
}

func (b *memBuffer) EOL(pos int) int {
	p := pos
	if p < 0 {
		p = 0
	}
	for p < len(b.runes) && b.runes[p] != '\n' {
		p++
	}
	return p
}

func (b *memBuffer) Line(pos int) int {
	limit := pos
	if limit > len(b.runes) {
		limit = len(b.runes)
	}
	line := 0
	for i := 0; i < limit; i++ {
		if b.runes[i] == '\n' {
			line++
		}
	}
	return line
}

func (b *memBuffer) Column(pos int) int {
	bol := b.BOL(pos)
	col := 0
	for p := bol; p < pos; p++ {
		col += runewidth.RuneWidth(b.Rune(p))
	}
	return col
}

func (b *memBuffer) Pos(line, col int) int {
	p := 0
	l := 0
	for l < line && p < len(b.runes) {
		if b.runes[p] == '\n' {
			l++
		}
		p++
	}
	bol := p
	eol := b.EOL(bol)
	target := bol
	w := 0
	for target < eol && w < col {
		w += runewidth.RuneWidth(b.Rune(target))
		target++
	}
	return target
}

func (b *memBuffer) Mark(name rune) (int, bool) {
	p, ok := b.marks[name]
	return p, ok
}

func (b *memBuffer) SetMark(name rune, pos int) { b.marks[name] = pos }

func (b *memBuffer) Commit() {
	b.history = append(b.history[:b.hpos+1], append([]rune(nil), b.runes...))
	b.hpos++
}

func (b *memBuffer) Undo(forward bool) int {
	if forward {
		if b.hpos+1 < len(b.history) {
			b.hpos++
		}
	} else if b.hpos > 0 {
		b.hpos--
	}
	b.runes = append([]rune(nil), b.history[b.hpos]...)
	return 0
}

func (b *memBuffer) Len() int { return len(b.runes) }

// memWindow is an in-memory Window double.
type memWindow struct {
	buf       *memBuffer
	cursor    int
	scrolling bool
	top       int
	height    int
	focused   rune
}

func newMemWindow(buf *memBuffer) *memWindow {
	return &memWindow{buf: buf, height: 24}
}

func (w *memWindow) Buffer() Buffer { return w.buf }
func (w *memWindow) Cursor() int    { return w.cursor }

func (w *memWindow) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > w.buf.Len() {
		pos = w.buf.Len()
	}
	w.cursor = pos
}

func (w *memWindow) VisibleLines() []int {
	var lines []int
	p := w.buf.Pos(w.top, 0)
	for i := 0; i < w.height; i++ {
		lines = append(lines, p)
		if p >= w.buf.Len() {
			break
		}
		p = w.buf.EOL(p) + 1
	}
	return lines
}

func (w *memWindow) Scroll(delta int) {
	w.top += delta
	if w.top < 0 {
		w.top = 0
	}
}

func (w *memWindow) SetScrolling(s bool) { w.scrolling = s }
func (w *memWindow) ToggleTag()          {}

func (w *memWindow) Focus(dir rune) bool {
	w.focused = dir
	return true
}

// memSearcher is an in-memory Searcher double: a plain linear scan, no
// incremental search state.
type memSearcher struct {
	persisted []rune
	ranAt     int
}

func (s *memSearcher) Look(w Window, text []rune, reverse bool) error {
	mw := w.(*memWindow)
	buf := mw.buf.runes
	n := len(text)
	if n == 0 || n > len(buf) {
		return errors.New("not found")
	}
	if !reverse {
		for _, start := range []int{mw.cursor + 1, 0} {
			for i := start; i+n <= len(buf); i++ {
				if runesEqual(buf[i:i+n], text) {
					mw.cursor = i
					return nil
				}
			}
		}
		return errors.New("not found")
	}
	for _, start := range []int{mw.cursor - 1, len(buf) - n} {
		for i := start; i >= 0; i-- {
			if i+n <= len(buf) && runesEqual(buf[i:i+n], text) {
				mw.cursor = i
				return nil
			}
		}
	}
	return errors.New("not found")
}

func (s *memSearcher) Run(w Window, pos int) { s.ranAt = pos }

func (s *memSearcher) Put(buf Buffer, flags int) {
	s.persisted = append([]rune(nil), buf.(*memBuffer).runes...)
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
