// Package script implements a small language for manipulating a list of
// strings, one operation per line:
//
//	# comments and blank lines are ignored
//	push-front 1
//	push-back 3
//	insert 1 2
//	print
//
// It is used by the slist program and for reproducing list behavior in tests.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/elves/slist/pkg/errutil"
	"gopkg.in/yaml.v3"
)

// Op is a single list operation.
type Op struct {
	// Line is the 1-based line number the operation was parsed from, or 0.
	Line int
	Name string
	Args []string
}

func (op Op) String() string {
	return strings.Join(append([]string{op.Name}, op.Args...), " ")
}

// Script is a parsed script. Values, if any, are the initial content of the
// list.
type Script struct {
	Values []string
	Ops    []Op
}

// Error is a parse or execution error.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

type argKind int

const (
	indexArg argKind = iota
	valueArg
)

var opArgs = map[string][]argKind{
	"push-front": {valueArg},
	"push-back":  {valueArg},
	"pop-front":  nil,
	"pop-back":   nil,
	"insert":     {indexArg, valueArg},
	"remove":     {indexArg},
	"get":        {indexArg},
	"set":        {indexArg, valueArg},
	"len":        nil,
	"empty":      nil,
	"print":      nil,
	"clear":      nil,
}

// IsBlank returns whether a line contains no operation.
func IsBlank(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, "#")
}

// ParseLine parses a single operation. The line number is only used in errors
// and in the Line field of the returned Op.
func ParseLine(lineno int, line string) (Op, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Op{}, &Error{lineno, "empty operation"}
	}
	name, args := fields[0], fields[1:]
	kinds, err := checkArgs(lineno, name, args)
	if err != nil {
		return Op{}, err
	}
	for i, kind := range kinds {
		if kind == indexArg {
			if _, err := parseIndex(args[i]); err != nil {
				return Op{}, &Error{lineno, err.Error()}
			}
		}
	}
	return Op{lineno, name, args}, nil
}

// Checks that name is a known operation taking len(args) arguments, and
// returns the kinds of its arguments.
func checkArgs(lineno int, name string, args []string) ([]argKind, error) {
	kinds, ok := opArgs[name]
	if !ok {
		return nil, &Error{lineno, fmt.Sprintf("unknown operation %q", name)}
	}
	if len(args) != len(kinds) {
		return nil, &Error{lineno, fmt.Sprintf(
			"%s takes %d argument(s), got %d", name, len(kinds), len(args))}
	}
	return kinds, nil
}

func parseIndex(s string) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil || i < 0 {
		return 0, fmt.Errorf("bad index %q: must be a non-negative integer", s)
	}
	return i, nil
}

// Parse parses a script with one operation per line. All syntax errors are
// reported, combined with errutil.Multi.
func Parse(r io.Reader) (*Script, error) {
	var ops []Op
	var errs []error
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := scanner.Text()
		if IsBlank(line) {
			continue
		}
		op, err := ParseLine(lineno, line)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}
	if err := errutil.Multi(errs...); err != nil {
		return nil, err
	}
	return &Script{Ops: ops}, nil
}

// ParseCode parses operations separated by semicolons or newlines, as given
// on the command line.
func ParseCode(code string) (*Script, error) {
	return Parse(strings.NewReader(strings.ReplaceAll(code, ";", "\n")))
}

type yamlScript struct {
	Values []string    `yaml:"values"`
	Ops    []yaml.Node `yaml:"ops"`
}

// ParseYAML parses a script in YAML form:
//
//	values: [a, b, c]
//	ops:
//	  - remove 1
//	  - print
//
// Each entry of ops is an operation in the same syntax as accepted by Parse.
func ParseYAML(r io.Reader) (*Script, error) {
	var ys yamlScript
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ys); err != nil && err != io.EOF {
		return nil, &Error{0, err.Error()}
	}
	var ops []Op
	var errs []error
	for _, node := range ys.Ops {
		if node.Kind != yaml.ScalarNode {
			errs = append(errs, &Error{node.Line, "operation must be a string"})
			continue
		}
		op, err := ParseLine(node.Line, node.Value)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ops = append(ops, op)
	}
	if err := errutil.Multi(errs...); err != nil {
		return nil, err
	}
	return &Script{Values: ys.Values, Ops: ops}, nil
}
