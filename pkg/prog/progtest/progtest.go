// Package progtest contains utilities for testing [prog.Program]
// implementations by running them with pipes as their file descriptors.
package progtest

import (
	"os"
	"strings"
	"testing"

	"github.com/elves/slist/pkg/must"
	"github.com/elves/slist/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exitStatus int
	out        output
	err        output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + quote(o.content)
	}
	return quote(o.content)
}

// That returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "slist -c print" writes "[]\n" would
// look like:
//
//	That("-c", "print").WritesStdout("[]\n")
func That(args ...string) Case {
	return Case{args: args}
}

// WithStdin returns an altered Case that provides the given input to stdin of
// the program.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise don't
// have any expectations, for example:
//
//	That("-log", "x").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit status.
func (c Case) ExitsWith(code int) Case {
	c.want.exitStatus = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.out = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.out = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.err = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.err = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.stdin, c.args...)
			if exit != c.want.exitStatus {
				t.Errorf("got exit %v, want %v", exit, c.want.exitStatus)
			}
			if !matchOutput(stdout, c.want.out) {
				t.Errorf("got stdout %v, want %v", quote(stdout), c.want.out)
			}
			if !matchOutput(stderr, c.want.err) {
				t.Errorf("got stderr %v, want %v", quote(stderr), c.want.err)
			}
		})
	}
}

// Run runs a Program with the given arguments and stdin content. It returns
// the exit status and what the program wrote to stdout and stderr.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := must.Pipe()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	go func() {
		w0.WriteString(stdin)
		w0.Close()
	}()
	// Drain outputs concurrently, so that programs writing more than a pipe
	// buffer don't block.
	outCh, errCh := readAllAsync(r1), readAllAsync(r2)

	exit = prog.Run([3]*os.File{r0, w1, w2}, append([]string{"slist"}, args...), p)
	r0.Close()
	w1.Close()
	w2.Close()
	return exit, <-outCh, <-errCh
}

func readAllAsync(r *os.File) <-chan string {
	ch := make(chan string, 1)
	go func() { ch <- string(must.ReadAllAndClose(r)) }()
	return ch
}

func matchOutput(s string, o output) bool {
	if o.partial {
		return strings.Contains(s, o.content)
	}
	return s == o.content
}

func quote(s string) string {
	if len(s) == 0 {
		return "nothing"
	}
	if !strings.ContainsRune(s, '`') {
		return "`" + s + "`"
	}
	return strings.ReplaceAll(s, "\n", `\n`)
}
