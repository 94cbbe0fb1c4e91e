package edit

import (
	"fmt"
	"os"
	"sync"
)

// debugger writes trace lines to the file named by EDIT_DEBUG, opened lazily
// on first use. A nil *debugger (the default when WithDebug is not passed to
// New) is a no-op, so Editor can call e.dbg.logf unconditionally.
type debugger struct {
	once sync.Once
	f    *os.File
}

func (d *debugger) logf(format string, args ...interface{}) {
	if d == nil {
		return
	}
	d.once.Do(func() {
		path := os.Getenv("EDIT_DEBUG")
		if path == "" {
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return
		}
		d.f = f
	})
	if d.f == nil {
		return
	}
	fmt.Fprintf(d.f, format+"\n", args...)
}

// debugKey renders a rune the way a human reading a trace log would expect:
// named for the synthetic GK* keys and control characters, verbatim
// otherwise.
func debugKey(r rune) string {
	switch r {
	case GKEsc:
		return "<esc>"
	case GKBackspace:
		return "<backspace>"
	case GKUp:
		return "<up>"
	case GKDown:
		return "<down>"
	case GKLeft:
		return "<left>"
	case GKRight:
		return "<right>"
	case GKPageUp:
		return "<page-up>"
	case GKPageDown:
		return "<page-down>"
	}
	if r >= GKF1 && r <= GKF12 {
		return fmt.Sprintf("<f%d>", int(r-GKF1)+1)
	}
	if r >= 0 && r < 0x20 {
		return "Control-" + string(rune(r+0x60))
	}
	return string(r)
}
