package progtest

import (
	"io"
	"os"
	"testing"

	"github.com/elves/slist/pkg/prog"
)

// Verify we don't deadlock if more output is written to stdout than can be
// buffered by a pipe.
func TestOutputCaptureDoesNotDeadlock(t *testing.T) {
	Test(t, noisyProgram{},
		That().WritesStdoutContaining("hello"),
	)
}

type noisyProgram struct{}

func (noisyProgram) RegisterFlags(f *prog.FlagSet) {}

func (noisyProgram) Run(fds [3]*os.File, args []string) error {
	// Pipes typically buffer 8 to 128 KiB.
	bytes := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	for i := 0; i < 128*1024/len(bytes); i++ {
		fds[1].Write(bytes)
	}
	fds[1].WriteString("hello")
	return nil
}

func TestStdinIsProvided(t *testing.T) {
	Test(t, catProgram{},
		That().WithStdin("some input\n").WritesStdout("some input\n"),
		That().WritesStdout(""),
	)
}

type catProgram struct{}

func (catProgram) RegisterFlags(f *prog.FlagSet) {}

func (catProgram) Run(fds [3]*os.File, args []string) error {
	_, err := io.Copy(fds[1], fds[0])
	return err
}
