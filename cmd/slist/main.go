// The slist command runs scripts of singly linked list operations.
package main

import (
	"os"

	"github.com/elves/slist/pkg/buildinfo"
	"github.com/elves/slist/pkg/prog"
	"github.com/elves/slist/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(&buildinfo.Program{}, &shell.Program{})))
}
