// Package shell is the entry point for running scripts of list operations,
// either from a file, from the command line or interactively.
package shell

import (
	"os"

	"github.com/elves/slist/pkg/logutil"
	"github.com/elves/slist/pkg/prog"
	"github.com/elves/slist/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram.
type Program struct {
	codeInArg   bool
	yaml        bool
	interactive bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.codeInArg, "c", false,
		"take first argument as operations to execute, separated by ';'")
	fs.BoolVar(&p.yaml, "yaml", false,
		"parse the script as YAML; implied by a .yaml or .yml suffix")
	fs.BoolVar(&p.interactive, "i", false,
		"force interactive mode even if stdin is not a terminal")
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	switch {
	case p.codeInArg:
		if len(args) != 1 {
			return prog.BadUsage("-c requires exactly one argument")
		}
		return runCode(fds, args[0])
	case len(args) > 1:
		return prog.BadUsage("at most one script may be given")
	case len(args) == 1:
		return runFile(fds, args[0], p.yaml)
	case p.interactive || isATTY(fds[0]):
		return interact(fds)
	default:
		logger.Println("reading script from stdin")
		return runReader(fds, fds[0], p.yaml)
	}
}

// Replaced in tests.
var isATTY = func(f *os.File) bool { return sys.IsATTY(f.Fd()) }
