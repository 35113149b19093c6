package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/elves/slist/pkg/logutil"
	"github.com/elves/slist/pkg/slist"
	"github.com/elves/slist/pkg/wcwidth"
)

var logger = logutil.GetLogger("[script] ")

// NoValue is printed when an operation finds no element.
const NoValue = "(none)"

// Machine executes operations against a list, writing results to an output.
type Machine struct {
	list *slist.List[string]
	out  io.Writer
	// If positive, output of print is elided to fit in this many columns.
	Width int
}

// NewMachine creates a Machine operating on l. If l is nil, a new empty list
// is used.
func NewMachine(l *slist.List[string], out io.Writer) *Machine {
	if l == nil {
		l = slist.New[string]()
	}
	return &Machine{list: l, out: out}
}

// List returns the list the Machine operates on.
func (m *Machine) List() *slist.List[string] { return m.list }

// Run seeds the list with the script's values, appending them in order, then
// executes its operations. It stops at the first error.
func (m *Machine) Run(s *Script) error {
	for _, v := range s.Values {
		m.list.PushBack(v)
	}
	for _, op := range s.Ops {
		if err := m.Exec(op); err != nil {
			return err
		}
	}
	return nil
}

// Exec executes one operation. Operations not obtained from a parser are
// validated the same way, so a wrong number of arguments is an error rather
// than a panic.
func (m *Machine) Exec(op Op) error {
	logger.Printf("exec %s (line %d)", op, op.Line)
	if _, err := checkArgs(op.Line, op.Name, op.Args); err != nil {
		return err
	}
	l := m.list
	switch op.Name {
	case "push-front":
		l.PushFront(op.Args[0])
	case "push-back":
		l.PushBack(op.Args[0])
	case "pop-front":
		m.printResult(l.PopFront())
	case "pop-back":
		m.printResult(l.PopBack())
	case "insert":
		i, err := m.index(op)
		if err != nil {
			return err
		}
		l.Insert(i, op.Args[1])
	case "remove":
		i, err := m.index(op)
		if err != nil {
			return err
		}
		m.printResult(l.Remove(i))
	case "get":
		i, err := m.index(op)
		if err != nil {
			return err
		}
		m.printResult(l.Get(i))
	case "set":
		i, err := m.index(op)
		if err != nil {
			return err
		}
		p, ok := l.GetMut(i)
		if !ok {
			return &Error{op.Line, fmt.Sprintf("index %d out of range", i)}
		}
		*p = op.Args[1]
	case "len":
		fmt.Fprintln(m.out, l.Len())
	case "empty":
		fmt.Fprintln(m.out, l.IsEmpty())
	case "print":
		fmt.Fprintln(m.out, elide(l, m.Width))
	case "clear":
		l.Clear()
	}
	return nil
}

func (m *Machine) index(op Op) (int, error) {
	i, err := parseIndex(op.Args[0])
	if err != nil {
		return 0, &Error{op.Line, err.Error()}
	}
	return i, nil
}

func (m *Machine) printResult(v string, ok bool) {
	if ok {
		fmt.Fprintln(m.out, v)
	} else {
		fmt.Fprintln(m.out, NoValue)
	}
}

// Formats the list like slist.List.String, but stops adding elements once the
// output would exceed width columns, ending with " ...]". Widths are display
// widths, so wide characters count as two columns.
func elide(l *slist.List[string], width int) string {
	s := l.String()
	if width <= 0 || wcwidth.Of(s) <= width {
		return s
	}
	const tail = " ...]"
	var sb strings.Builder
	sb.WriteByte('[')
	used := 1
	first := true
	for v := range l.All() {
		w := wcwidth.Of(v)
		if !first {
			w++
		}
		if used+w+len(tail) > width {
			break
		}
		if !first {
			sb.WriteByte(' ')
		}
		sb.WriteString(v)
		used += w
		first = false
	}
	return sb.String() + tail
}
