//go:build unix

package shell

import (
	"os"
	"strings"
	"testing"

	"github.com/creack/pty"
	"github.com/elves/slist/pkg/prog/progtest"
	"github.com/elves/slist/pkg/sys"
	"github.com/elves/slist/pkg/testutil"
)

func TestInteract_Terminal(t *testing.T) {
	testutil.Set(t, &isATTY, func(f *os.File) bool { return sys.IsATTY(f.Fd()) })

	input := "push-back 0\npush-back 1\npush-back 2\npush-back 3\npush-back 4\nprint\nfrob\n"
	exit, stdout, stderr, err := progtest.RunInteractive(
		&Program{}, &pty.Winsize{Rows: 24, Cols: 10}, input)
	if err != nil {
		t.Skip("cannot open pty:", err)
	}
	if exit != 0 {
		t.Errorf("got exit %v, want 0", exit)
	}
	if !strings.Contains(stdout, "slist> [0 1 ...]\n") {
		t.Errorf("got stdout %q, want elided list output", stdout)
	}
	if stderr != "unknown operation \"frob\"\n" {
		t.Errorf("got stderr %q", stderr)
	}
}
