// Command viepty drives cmd/vieterm under a pty with a scripted keystroke
// sequence, teeing all traffic to a debug log. It exists to exercise the
// editor end-to-end without a human at the keyboard.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
)

func debugCopy(dst io.Writer, src io.Reader, debug io.Writer, name string) {
	buf := make([]byte, 4096)
	for {
		nr, errR := src.Read(buf)
		if nr > 0 {
			fmt.Fprintf(debug, "%s: %q\n", name, buf[:nr])
			if _, errW := dst.Write(buf[:nr]); errW != nil {
				fmt.Fprintf(debug, "%s: write error: %+v\n", name, errW)
				break
			}
		}
		if errR != nil {
			if errR != io.EOF {
				fmt.Fprintf(debug, "%s: read error: %+v\n", name, errR)
			}
			break
		}
	}
}

// decodeScript turns the same <esc>/<up>/... notation the test harness
// accepts into literal bytes to write to the pty.
func decodeScript(s string) string {
	repl := map[string]string{
		"<esc>":   "\x1b",
		"<up>":    "\x1b[A",
		"<down>":  "\x1b[B",
		"<right>": "\x1b[C",
		"<left>":  "\x1b[D",
		"<cr>":    "\n",
	}
	for k, v := range repl {
		s = strings.ReplaceAll(s, k, v)
	}
	return s
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <vieterm-binary> <script>\n", os.Args[0])
		os.Exit(1)
	}

	c := exec.Command(os.Args[1])
	script := decodeScript(os.Args[2])

	debug, err := os.Create("viepty-debug.txt")
	if err != nil {
		log.Fatal(err)
	}
	defer debug.Close()

	ptmx, err := pty.Start(c)
	if err != nil {
		log.Fatal(err)
	}
	defer ptmx.Close()

	done := make(chan struct{})
	go func() {
		debugCopy(os.Stdout, ptmx, debug, "stdout")
		close(done)
	}()

	for _, r := range script {
		if _, err := ptmx.Write([]byte(string(r))); err != nil {
			fmt.Fprintf(debug, "stdin: write error: %+v\n", err)
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	<-done
	c.Wait()
}
