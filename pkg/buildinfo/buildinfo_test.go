package buildinfo

import (
	"runtime"
	"testing"

	. "github.com/elves/slist/pkg/prog/progtest"
)

func TestProgram(t *testing.T) {
	fullVersion := Version + VersionSuffix
	Test(t, &Program{},
		That("-version").WritesStdout(fullVersion+"\n"),
		That("-buildinfo").WritesStdout(
			"Version: "+fullVersion+"\nGo version: "+runtime.Version()+"\n"),
		That().ExitsWith(2).WritesStderr("internal error: no suitable subprogram\n"),
	)
}
