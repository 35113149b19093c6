package must_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	. "github.com/elves/slist/pkg/must"
	"github.com/elves/slist/pkg/testutil"
)

var errMock = errors.New("mock")

func TestOK(t *testing.T) {
	if r := testutil.Recover(func() { OK(nil) }); r != nil {
		t.Errorf("OK(nil) panicked with %v", r)
	}
	if r := testutil.Recover(func() { OK(errMock) }); r != errMock {
		t.Errorf("OK(errMock) panicked with %v, want errMock", r)
	}
}

func TestOK1(t *testing.T) {
	if v := OK1(42, nil); v != 42 {
		t.Errorf("OK1(42, nil) = %v, want 42", v)
	}
	if r := testutil.Recover(func() { OK1(0, errMock) }); r != errMock {
		t.Errorf("OK1(0, errMock) panicked with %v, want errMock", r)
	}
}

func TestWriteFileAndPipe(t *testing.T) {
	dir := testutil.TempDir(t)
	name := filepath.Join(dir, "a", "b")
	WriteFile(name, "content")

	r, w := Pipe()
	go func() {
		w.Write(OK1(os.ReadFile(name)))
		w.Close()
	}()
	if got := string(ReadAllAndClose(r)); got != "content" {
		t.Errorf("got %q, want %q", got, "content")
	}
}
