// Package prog supports building the slist program from subprograms.
package prog

// This package sets up the basic environment and calls the appropriate
// subprogram, for example the version printer or the script runner.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/elves/slist/pkg/logutil"
)

var logger = logutil.GetLogger("[prog] ")

// Program represents a subprogram.
type Program interface {
	// RegisterFlags registers the flags the program accepts. It is called
	// before the command line is parsed.
	RegisterFlags(fs *FlagSet)
	// Run runs the subprogram. It may return ErrNotSuitable to let Composite
	// try the next program.
	Run(fds [3]*os.File, args []string) error
}

// FlagSet wraps a flag.FlagSet.
type FlagSet struct {
	*flag.FlagSet
}

type commonFlags struct {
	log  string
	help bool
}

func newFlagSet(p Program) (*FlagSet, *commonFlags) {
	fs := &FlagSet{flag.NewFlagSet("slist", flag.ContinueOnError)}
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)
	var cf commonFlags
	fs.StringVar(&cf.log, "log", "", "a file to write debug log to")
	fs.BoolVar(&cf.help, "help", false, "show usage help and quit")
	p.RegisterFlags(fs)
	return fs, &cf
}

func usage(out io.Writer, fs *FlagSet) {
	fmt.Fprintln(out, "Usage: slist [flags] [script]")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	fs, cf := newFlagSet(p)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// -help is defined but -h is not; treat -h like any undefined
			// flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return 2
	}

	if cf.log != "" {
		if err := logutil.SetOutputFile(cf.log); err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if cf.help {
		usage(fds[1], fs)
		return 0
	}

	logger.Println("running with args", fs.Args())
	err = p.Run(fds, fs.Args())
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var bu badUsageError
	var ex exitError
	switch {
	case errors.As(err, &bu):
		usage(fds[2], fs)
	case errors.As(err, &ex):
		return ex.exit
	}
	return 2
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return ErrNotSuitable.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) RegisterFlags(fs *FlagSet) {
	for _, p := range cp {
		p.RegisterFlags(fs)
	}
}

func (cp compositeProgram) Run(fds [3]*os.File, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	// All subprograms have returned ErrNotSuitable.
	return ErrNotSuitable
}

// ErrNotSuitable is a special error that may be returned by Program.Run, to
// signify that this Program should not be run. It is useful when a Program is
// used in Composite.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
