package edit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestEditor(text string) (*Editor, *memBuffer, *memWindow) {
	buf := newMemBuffer(text)
	win := newMemWindow(buf)
	e := New(win)
	return e, buf, win
}

func feedString(t *testing.T, e *Editor, s string) {
	t.Helper()
	for _, r := range s {
		err := e.Feed(r)
		require.NotErrorIs(t, err, ErrInvalidCommand, "feeding %q", s)
	}
}

func TestMotionHoriz(t *testing.T) {
	e, _, win := newTestEditor("hello\n")
	feedString(t, e, "l")
	require.Equal(t, 1, win.Cursor())
	feedString(t, e, "3l")
	require.Equal(t, 4, win.Cursor(), "3l from column 1 lands on the line's last column")
	feedString(t, e, "h")
	require.Equal(t, 3, win.Cursor())
}

func TestMotionWordForwardAndBack(t *testing.T) {
	e, _, win := newTestEditor("foo bar.baz\n")
	feedString(t, e, "w")
	require.Equal(t, 4, win.Cursor())
	feedString(t, e, "w")
	require.Equal(t, 7, win.Cursor(), "punctuation is its own word class for w")
	feedString(t, e, "b")
	require.Equal(t, 4, win.Cursor())
}

func TestDeleteWord(t *testing.T) {
	e, buf, _ := newTestEditor("foo bar\n")
	feedString(t, e, "dw")
	require.Equal(t, "bar\n", string(buf.runes))
}

func TestDoubledOperatorDeletesLine(t *testing.T) {
	e, buf, _ := newTestEditor("one\ntwo\nthree\n")
	feedString(t, e, "2dd")
	require.Equal(t, "three\n", string(buf.runes))
}

func TestXDeletesCharAndFillsAnonRegister(t *testing.T) {
	e, buf, win := newTestEditor("abc\n")
	feedString(t, e, "x")
	require.Equal(t, "bc\n", string(buf.runes))
	require.Equal(t, 0, win.Cursor())
	require.Equal(t, []rune("a"), e.yank.anon.runes)
}

func TestPutAfterCharwiseYank(t *testing.T) {
	e, buf, win := newTestEditor("abc\n")
	feedString(t, e, "yl")
	require.Equal(t, 0, win.Cursor())
	feedString(t, e, "p")
	require.Equal(t, "aabc\n", string(buf.runes))
}

func TestInsertWithCountReplays(t *testing.T) {
	e, buf, _ := newTestEditor("\n")
	feedString(t, e, "3ix")
	e.Feed(GKEsc)
	require.Equal(t, "xxx\n", string(buf.runes))
	require.Equal(t, ModeCommand, e.mode)
}

func TestOpenLineBelowPreservesIndent(t *testing.T) {
	e, buf, win := newTestEditor("    x\n")
	feedString(t, e, "$")
	feedString(t, e, "o")
	require.Equal(t, ModeInsert, e.mode)
	require.Equal(t, "    x\n    \n", string(buf.runes))
	require.Equal(t, len("    x\n    "), win.Cursor())
}

func TestRepeatInsertion(t *testing.T) {
	e, buf, _ := newTestEditor("\n")
	feedString(t, e, "ihi")
	e.Feed(GKEsc)
	feedString(t, e, "l.")
	require.Equal(t, "hihi\n", string(buf.runes))
}

func TestUndoRedoAlternates(t *testing.T) {
	e, buf, _ := newTestEditor("abc\n")
	feedString(t, e, "x")
	require.Equal(t, "bc\n", string(buf.runes))
	feedString(t, e, "u")
	require.Equal(t, "abc\n", string(buf.runes))
	feedString(t, e, "u")
	require.Equal(t, "bc\n", string(buf.runes), "a second u redoes the undo")
}

func TestQuitReturnsErrQuit(t *testing.T) {
	e, _, _ := newTestEditor("abc\n")
	err := e.Feed(rune(ctrlQ))
	require.ErrorIs(t, err, ErrQuit)
}

func TestInvalidCommandResetsParser(t *testing.T) {
	e, _, _ := newTestEditor("abc\n")
	err := e.Feed('d')
	require.NoError(t, err)
	err = e.Feed(GKUp)
	require.ErrorIs(t, err, ErrInvalidCommand)
	require.Equal(t, phaseBufferDQuote, e.phase)
}

func TestBracketMatch(t *testing.T) {
	e, _, win := newTestEditor("a(b)c\n")
	feedString(t, e, "l")
	feedString(t, e, "%")
	require.Equal(t, 3, win.Cursor())
}

func TestDollarLandsOnLastCharacterNotNewline(t *testing.T) {
	e, _, win := newTestEditor("abc\n")
	feedString(t, e, "$")
	require.Equal(t, 2, win.Cursor(), "standalone $ lands on the last character, not the trailing newline")
}

func TestChangeWordStopsAtWordEnd(t *testing.T) {
	e, buf, _ := newTestEditor("foo bar baz\n")
	feedString(t, e, "w")
	feedString(t, e, "cwQUUX")
	e.Feed(GKEsc)
	require.Equal(t, "foo QUUX baz\n", string(buf.runes), "cw leaves surrounding spacing alone, unlike dw")
}

func TestParagraphDeleteExcludesBlankLine(t *testing.T) {
	e, buf, _ := newTestEditor("a\n\nb\n\nc\n")
	feedString(t, e, "d}")
	require.Equal(t, "\nb\n\nc\n", string(buf.runes))
	require.Equal(t, []rune("a\n"), e.yank.anon.runes)
}

func TestBracketMatchDeletePromotesLinewiseAcrossLines(t *testing.T) {
	e, buf, _ := newTestEditor("{\n  body\n}\n")
	feedString(t, e, "d%")
	require.Equal(t, "", string(buf.runes))
	require.True(t, e.yank.anon.linemode)
}
