//go:build unix

package progtest

import (
	"io"
	"os"

	"github.com/creack/pty"
	"github.com/elves/slist/pkg/must"
	"github.com/elves/slist/pkg/prog"
)

// RunInteractive is like Run, but connects stdin of the program to the slave
// side of a pseudo terminal of the given size, so that the program sees a
// terminal. The input is typed into the terminal followed by an end-of-file
// character, and should therefore end with a newline.
func RunInteractive(p prog.Program, size *pty.Winsize, input string, args ...string) (exit int, stdout, stderr string, err error) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		return 0, "", "", err
	}
	defer ptmx.Close()
	if size != nil {
		if err := pty.Setsize(ptmx, size); err != nil {
			tty.Close()
			return 0, "", "", err
		}
	}
	// Discard the terminal's echo.
	go io.Copy(io.Discard, ptmx)
	go ptmx.WriteString(input + "\x04")

	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	outCh, errCh := readAllAsync(r1), readAllAsync(r2)

	exit = prog.Run([3]*os.File{tty, w1, w2}, append([]string{"slist"}, args...), p)
	tty.Close()
	w1.Close()
	w2.Close()
	return exit, <-outCh, <-errCh, nil
}
