// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X github.com/elves/slist/pkg/buildinfo.VersionSuffix=value" to
// "go build".
package buildinfo

import (
	"fmt"
	"os"
	"runtime"

	"github.com/elves/slist/pkg/prog"
)

// Version identifies the version of slist. On development commits, it
// identifies the next release.
const Version = "v0.1.0"

// VersionSuffix is appended to Version to build the full version string. It
// can be overridden when building.
var VersionSuffix = "-dev.unknown"

// Program is the buildinfo subprogram.
type Program struct {
	version, buildinfo bool
}

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	fs.BoolVar(&p.version, "version", false, "show version and quit")
	fs.BoolVar(&p.buildinfo, "buildinfo", false, "show build info and quit")
}

func (p *Program) Run(fds [3]*os.File, _ []string) error {
	fullVersion := Version + VersionSuffix
	switch {
	case p.buildinfo:
		fmt.Fprintln(fds[1], "Version:", fullVersion)
		fmt.Fprintln(fds[1], "Go version:", runtime.Version())
	case p.version:
		fmt.Fprintln(fds[1], fullVersion)
	default:
		return prog.ErrNotSuitable
	}
	return nil
}
