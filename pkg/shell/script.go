package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/elves/slist/pkg/errutil"
	"github.com/elves/slist/pkg/prog"
	"github.com/elves/slist/pkg/script"
)

// Prints each of several parse errors on its own line. A single error is
// returned unchanged.
func parseFailed(fds [3]*os.File, err error) error {
	errs := errutil.Unpack(err)
	if len(errs) <= 1 {
		return err
	}
	for _, err := range errs {
		fmt.Fprintln(fds[2], err)
	}
	return prog.Exit(2)
}

func runCode(fds [3]*os.File, code string) error {
	s, err := script.ParseCode(code)
	if err != nil {
		return parseFailed(fds, err)
	}
	return script.NewMachine(nil, fds[1]).Run(s)
}

func runFile(fds [3]*os.File, name string, yaml bool) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("cannot read script: %w", err)
	}
	defer f.Close()
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		yaml = true
	}
	logger.Printf("running script %s (yaml: %v)", name, yaml)
	return runReader(fds, f, yaml)
}

func runReader(fds [3]*os.File, r io.Reader, yaml bool) error {
	parse := script.Parse
	if yaml {
		parse = script.ParseYAML
	}
	s, err := parse(r)
	if err != nil {
		return parseFailed(fds, err)
	}
	return script.NewMachine(nil, fds[1]).Run(s)
}
