// Command vieterm is a minimal interactive demo of the edit package: it puts
// the terminal in raw mode, feeds keystrokes to an Editor wired to a
// process-local buffer, and redraws the buffer after every command.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mjl-/edit"
	"golang.org/x/term"
)

// fileBuffer is a process-local edit.Buffer: a flat rune slice plus a linear
// undo history, the simplest thing satisfying the contract outside of a real
// text-storage engine.
type fileBuffer struct {
	runes   []rune
	marks   map[rune]int
	history [][]rune
	hpos    int
}

func newFileBuffer(text string) *fileBuffer {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	b := &fileBuffer{runes: []rune(text), marks: map[rune]int{}}
	b.history = [][]rune{append([]rune(nil), b.runes...)}
	return b
}

func (b *fileBuffer) Rune(pos int) rune {
	if pos < 0 || pos >= len(b.runes) {
		return '\n'
	}
	return b.runes[pos]
}

func (b *fileBuffer) Insert(pos int, r rune) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.runes) {
		pos = len(b.runes)
	}
	b.runes = append(b.runes[:pos:pos], append([]rune{r}, b.runes[pos:]...)...)
}

func (b *fileBuffer) Delete(beg, end int) {
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

func (b *fileBuffer) BOL(pos int) int {
	p := pos
	if p > len(b.runes) {
		p = len(b.runes)
	}
	for p > 0 && b.Rune(p-1) != '\n' {
		p--
	}
	return p
}

func (b *fileBuffer) EOL(pos int) int {
	p := pos
	if p < 0 {
		p = 0
	}
	for p < len(b.runes) && b.runes[p] != '\n' {
		p++
	}
	return p
}

func (b *fileBuffer) Line(pos int) int {
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

func (b *fileBuffer) Column(pos int) int {
	return pos - b.BOL(pos)
}

func (b *fileBuffer) Pos(line, col int) int {
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
	target := bol + col
	if target > eol {
		target = eol
	}
	return target
}

func (b *fileBuffer) Mark(name rune) (int, bool) {
	p, ok := b.marks[name]
	return p, ok
}

func (b *fileBuffer) SetMark(name rune, pos int) { b.marks[name] = pos }

func (b *fileBuffer) Commit() {
	b.history = append(b.history[:b.hpos+1], append([]rune(nil), b.runes...))
	b.hpos++
}

func (b *fileBuffer) Undo(forward bool) int {
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

func (b *fileBuffer) Len() int { return len(b.runes) }

// termWindow renders fileBuffer to stdout, showing the terminal's rows from
// line top onward; it scrolls only through Scroll, not to follow the cursor.
type termWindow struct {
	buf    *fileBuffer
	cursor int
	top    int
	rows   int
}

func (w *termWindow) Buffer() edit.Buffer { return w.buf }
func (w *termWindow) Cursor() int         { return w.cursor }

func (w *termWindow) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > w.buf.Len() {
		pos = w.buf.Len()
	}
	w.cursor = pos
}

func (w *termWindow) VisibleLines() []int {
	var lines []int
	p := w.buf.Pos(w.top, 0)
	for i := 0; i < w.rows; i++ {
		lines = append(lines, p)
		if p >= w.buf.Len() {
			break
		}
		p = w.buf.EOL(p) + 1
	}
	return lines
}

func (w *termWindow) Scroll(delta int) {
	w.top += delta
	if w.top < 0 {
		w.top = 0
	}
}

func (w *termWindow) SetScrolling(bool) {}
func (w *termWindow) ToggleTag()        {}
func (w *termWindow) Focus(rune) bool   { return false } // single window only

// lineSearcher is a trivial linear-scan Searcher wired to n/N/^I/^W.
type lineSearcher struct{ lastPersist []rune }

func (s *lineSearcher) Look(win edit.Window, text []rune, reverse bool) error {
	tw := win.(*termWindow)
	buf := tw.buf.runes
	n := len(text)
	if n == 0 || n > len(buf) {
		return fmt.Errorf("not found")
	}
	if !reverse {
		for _, start := range []int{tw.cursor + 1, 0} {
			for i := start; i+n <= len(buf); i++ {
				if string(buf[i:i+n]) == string(text) {
					tw.cursor = i
					return nil
				}
			}
		}
		return fmt.Errorf("not found")
	}
	for _, start := range []int{tw.cursor - 1, len(buf) - n} {
		for i := start; i >= 0; i-- {
			if i+n <= len(buf) && string(buf[i:i+n]) == string(text) {
				tw.cursor = i
				return nil
			}
		}
	}
	return fmt.Errorf("not found")
}

func (s *lineSearcher) Run(win edit.Window, pos int) {
	// No external command runner in this demo; ^I simply does nothing.
}

func (s *lineSearcher) Put(buf edit.Buffer, flags int) {
	s.lastPersist = append([]rune(nil), buf.(*fileBuffer).runes...)
}

// readKey decodes the next keystroke from r, translating the common ANSI
// cursor-key escape sequences into edit's GK* sentinels and passing every
// other byte through as a rune.
func readKey(r *bufio.Reader) (rune, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, err
	}
	if b != 0x1b {
		return rune(b), nil
	}
	if r.Buffered() == 0 {
		return edit.GKEsc, nil
	}
	b2, err := r.ReadByte()
	if err != nil || b2 != '[' {
		return edit.GKEsc, nil
	}
	b3, err := r.ReadByte()
	if err != nil {
		return edit.GKEsc, nil
	}
	switch b3 {
	case 'A':
		return edit.GKUp, nil
	case 'B':
		return edit.GKDown, nil
	case 'C':
		return edit.GKRight, nil
	case 'D':
		return edit.GKLeft, nil
	case '5':
		r.ReadByte() // trailing '~'
		return edit.GKPageUp, nil
	case '6':
		r.ReadByte()
		return edit.GKPageDown, nil
	}
	return edit.GKEsc, nil
}

func render(win *termWindow) {
	fmt.Print("\x1b[H\x1b[2J")
	lines := win.VisibleLines()
	cursorLine, cursorCol := 0, 0
	for i, bol := range lines {
		eol := win.buf.EOL(bol)
		fmt.Println(string(win.buf.runes[bol:eol]))
		if win.cursor >= bol && win.cursor <= eol {
			cursorLine = i
			cursorCol = win.cursor - bol
		}
	}
	fmt.Printf("\x1b[%d;%dH", cursorLine+1, cursorCol+1)
}

func main() {
	path := "scratch.txt"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	text := "\n"
	if data, err := os.ReadFile(path); err == nil {
		text = string(data)
	}

	buf := newFileBuffer(text)
	_, rows, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil {
		rows = 24
	}
	win := &termWindow{buf: buf, rows: rows}
	e := edit.New(win, edit.WithSearcher(&lineSearcher{}))

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatal(err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	in := bufio.NewReader(os.Stdin)
	render(win)
	for {
		key, err := readKey(in)
		if err != nil {
			break
		}
		if ferr := e.Feed(key); ferr != nil {
			if ferr == edit.ErrQuit {
				break
			}
		}
		render(win)
	}
}
