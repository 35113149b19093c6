package shell

import (
	"bufio"
	"fmt"
	"os"

	"github.com/elves/slist/pkg/script"
	"github.com/elves/slist/pkg/sys"
)

const prompt = "slist> "

// Runs an interactive session. Errors are shown and the session continues;
// it ends at the end of input.
func interact(fds [3]*os.File) error {
	m := script.NewMachine(nil, fds[1])
	if _, col := sys.WinSize(fds[0]); col > 0 {
		m.Width = col
	}
	logger.Println("interactive session, width", m.Width)

	scanner := bufio.NewScanner(fds[0])
	for {
		fmt.Fprint(fds[1], prompt)
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if script.IsBlank(line) {
			continue
		}
		op, err := script.ParseLine(0, line)
		if err == nil {
			err = m.Exec(op)
		}
		if err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}
	fmt.Fprintln(fds[1])
	return scanner.Err()
}
