package script

import (
	"strings"
	"testing"

	"github.com/elves/slist/pkg/slist"
	"github.com/google/go-cmp/cmp"
)

var runTests = []struct {
	name    string
	values  []string
	code    string
	wantOut string
	wantErr string
}{
	{
		name:    "front, back and insert, then remove head",
		code:    "push-front 1; push-back 3; insert 1 2; print; remove 0; print",
		wantOut: "[1 2 3]\n1\n[2 3]\n",
	},
	{
		name:    "repeated removal in the middle",
		values:  []string{"0", "1", "2", "3", "4", "5"},
		code:    "remove 3; print; remove 3; remove 3; print",
		wantOut: "3\n[0 1 2 4 5]\n4\n5\n[0 1 2]\n",
	},
	{
		name:    "removal until empty",
		values:  []string{"0"},
		code:    "remove 0; remove 0; empty",
		wantOut: "0\n(none)\ntrue\n",
	},
	{
		name:    "insert in the middle",
		values:  []string{"0", "1", "2", "3", "4"},
		code:    "insert 1 9; print",
		wantOut: "[0 9 1 2 3 4]\n",
	},
	{
		name:    "pops and gets",
		values:  []string{"a", "b", "c"},
		code:    "pop-back; pop-front; get 0; get 1; len; pop-front; pop-front; pop-back",
		wantOut: "c\na\nb\n(none)\n1\nb\n(none)\n(none)\n",
	},
	{
		name:    "set and clear",
		values:  []string{"a", "b"},
		code:    "set 1 z; print; clear; print; empty",
		wantOut: "[a z]\n[]\ntrue\n",
	},
	{
		name:    "set out of range",
		values:  []string{"a"},
		code:    "print; set 1 z; print",
		wantOut: "[a]\n",
		wantErr: "line 2: index 1 out of range",
	},
}

func TestMachine_Run(t *testing.T) {
	for _, test := range runTests {
		t.Run(test.name, func(t *testing.T) {
			s, err := ParseCode(test.code)
			if err != nil {
				t.Fatal(err)
			}
			s.Values = test.values

			var out strings.Builder
			err = NewMachine(nil, &out).Run(s)
			if diff := cmp.Diff(test.wantOut, out.String()); diff != "" {
				t.Errorf("output (-want +got):\n%s", diff)
			}
			if test.wantErr == "" && err != nil {
				t.Errorf("got error %v", err)
			}
			if test.wantErr != "" && (err == nil || err.Error() != test.wantErr) {
				t.Errorf("got error %v, want %q", err, test.wantErr)
			}
		})
	}
}

func TestMachine_OperatesOnGivenList(t *testing.T) {
	l := slist.Of("x")
	m := NewMachine(l, &strings.Builder{})
	if m.List() != l {
		t.Errorf("List() does not return the given list")
	}
	if err := m.Exec(Op{Name: "push-back", Args: []string{"y"}}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"x", "y"}, l.Slice()); diff != "" {
		t.Errorf("list (-want +got):\n%s", diff)
	}
}

func TestMachine_WrongArgumentCount(t *testing.T) {
	m := NewMachine(slist.Of("a"), &strings.Builder{})
	tests := []struct {
		op      Op
		wantErr string
	}{
		{Op{Line: 1, Name: "insert", Args: []string{"0"}}, "line 1: insert takes 2 argument(s), got 1"},
		{Op{Name: "push-back"}, "push-back takes 1 argument(s), got 0"},
		{Op{Name: "print", Args: []string{"x"}}, "print takes 0 argument(s), got 1"},
	}
	for _, test := range tests {
		err := m.Exec(test.op)
		if err == nil || err.Error() != test.wantErr {
			t.Errorf("Exec(%v) -> %v, want %q", test.op, err, test.wantErr)
		}
	}
	if diff := cmp.Diff([]string{"a"}, m.List().Slice()); diff != "" {
		t.Errorf("list changed by rejected ops (-want +got):\n%s", diff)
	}
}

func TestMachine_UnknownOp(t *testing.T) {
	err := NewMachine(nil, &strings.Builder{}).Exec(Op{Line: 3, Name: "frob"})
	if err == nil || err.Error() != `line 3: unknown operation "frob"` {
		t.Errorf("got error %v", err)
	}
}

func TestElide(t *testing.T) {
	l := slist.Of("0", "1", "2", "3", "4", "5")
	tests := []struct {
		width int
		want  string
	}{
		{0, "[0 1 2 3 4 5]"},
		{13, "[0 1 2 3 4 5]"},
		{12, "[0 1 2 ...]"},
		{11, "[0 1 2 ...]"},
		{5, "[ ...]"},
	}
	for _, test := range tests {
		if got := elide(l, test.width); got != test.want {
			t.Errorf("elide(width=%d) -> %q, want %q", test.width, got, test.want)
		}
	}
}

func TestElide_WideCharacters(t *testing.T) {
	l := slist.Of("你好", "世界", "a")
	tests := []struct {
		width int
		want  string
	}{
		{13, "[你好 世界 a]"},
		{12, "[你好 ...]"},
		{10, "[你好 ...]"},
		{9, "[ ...]"},
	}
	for _, test := range tests {
		if got := elide(l, test.width); got != test.want {
			t.Errorf("elide(width=%d) -> %q, want %q", test.width, got, test.want)
		}
	}
}
