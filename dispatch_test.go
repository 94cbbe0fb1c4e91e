package edit

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
)

// keyRE/keyReplacements translate the <...> notation scenario files use for
// non-printable keys into the runes Feed expects.
var keyRE = regexp.MustCompile(`<[^>]*>`)

var keyReplacements = map[string]string{
	"<esc>":     string(rune(GKEsc)),
	"<up>":      string(rune(GKUp)),
	"<down>":    string(rune(GKDown)),
	"<left>":    string(rune(GKLeft)),
	"<right>":   string(rune(GKRight)),
	"<bs>":      string(rune(GKBackspace)),
	"<cr>":      "\n",
	"<C-d>":     string(rune(ctrlD)),
	"<C-u>":     string(rune(ctrlU)),
	"<C-e>":     string(rune(ctrlE)),
	"<C-y>":     string(rune(ctrlY)),
	"<C-l>":     string(rune(ctrlL)),
	"<C-q>":     string(rune(ctrlQ)),
	"<C-i>":     string(rune(ctrlI)),
	"<C-w>":     string(rune(ctrlW)),
}

func translateKeys(s string) string {
	return keyRE.ReplaceAllStringFunc(s, func(src string) string {
		if r, ok := keyReplacements[src]; ok {
			return r
		}
		return src
	})
}

// renderBuffer shows the buffer's content with the cursor marked by |,
// followed by an anon: line for the anonymous register and a reg 1: line for
// numeric slot 1, each only when non-empty, so scenario files can assert on
// both in one block.
func renderBuffer(e *Editor, buf *memBuffer, win *memWindow) string {
	pos := win.Cursor()
	var sb strings.Builder
	for i, r := range buf.runes {
		if i == pos {
			sb.WriteByte('|')
		}
		sb.WriteRune(r)
	}
	if pos == len(buf.runes) {
		sb.WriteByte('|')
	}
	out := sb.String()
	if e.yank.anon.runes != nil {
		out += fmt.Sprintf("\nanon: %q linemode=%v", string(e.yank.anon.runes), e.yank.anon.linemode)
	}
	if slot1 := e.yank.slot('1'); slot1.runes != nil {
		out += fmt.Sprintf("\nreg 1: %q linemode=%v", string(slot1.runes), slot1.linemode)
	}
	return out
}

// TestScenarios runs worked key-sequence walkthroughs (and regression cases
// discovered while building this module) as cockroachdb/datadriven table
// tests driven through datadriven.Walk/RunTest.
func TestScenarios(t *testing.T) {
	var e *Editor
	var buf *memBuffer
	var win *memWindow

	datadriven.Walk(t, "testdata/scenarios", func(t *testing.T, path string) {
		datadriven.RunTest(t, path, func(t *testing.T, td *datadriven.TestData) string {
			switch td.Cmd {
			case "new-buffer":
				text := td.Input
				if !strings.HasSuffix(text, "\n") {
					text += "\n"
				}
				buf = newMemBuffer(text)
				win = newMemWindow(buf)
				e = New(win)
				return renderBuffer(e, buf, win)

			case "feed":
				keys := translateKeys(td.Input)
				for _, r := range keys {
					if err := e.Feed(r); err != nil && err != ErrQuit {
						return "error: " + err.Error()
					}
				}
				return renderBuffer(e, buf, win)

			case "set-mark":
				var name, at string
				td.ScanArgs(t, "name", &name)
				td.ScanArgs(t, "at", &at)
				var pos int
				fmt.Sscanf(at, "%d", &pos)
				buf.SetMark(rune(name[0]), pos)
				return renderBuffer(e, buf, win)
			}
			return fmt.Sprintf("unknown command %q", td.Cmd)
		})
	})
}
