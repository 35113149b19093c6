package slist

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// FromSeq builds a list from the values of seq, in order. Each value is added
// with PushBack, so this takes quadratic time in the length of seq.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	for v := range seq {
		l.PushBack(v)
	}
	return l
}

// Of builds a list from the arguments.
func Of[T any](vs ...T) *List[T] {
	return FromSeq(slices.Values(vs))
}

// Slice returns the values of the list as a new slice.
func (l *List[T]) Slice() []T {
	var vs []T
	for v := range l.All() {
		vs = append(vs, v)
	}
	return vs
}

// String formats the list like a slice, for example "[1 2 3]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for it := l.Iterator(); it.HasElem(); it.Next() {
		if it.rest != l {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, it.Elem())
	}
	sb.WriteByte(']')
	return sb.String()
}
