package slist

import "iter"

// Iterator walks a list from front to back. It can be used like this:
//
//	for it := l.Iterator(); it.HasElem(); it.Next() {
//	    elem := it.Elem()
//	    // do something with elem...
//	}
//
// An Iterator makes a single pass; create a new one to iterate again. The list
// must not be structurally modified while an Iterator is in use, although
// values may be updated through ElemPtr.
type Iterator[T any] struct {
	rest *List[T]
}

// Iterator returns an iterator positioned at the first element of the list.
func (l *List[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{l}
}

// HasElem returns whether the iterator is pointing to an element.
func (it *Iterator[T]) HasElem() bool {
	return it.rest.head != nil
}

// Elem returns the element at the current position. It panics if HasElem
// returns false.
func (it *Iterator[T]) Elem() T {
	return *it.ElemPtr()
}

// ElemPtr returns a pointer to the element at the current position. It panics
// if HasElem returns false.
func (it *Iterator[T]) ElemPtr() *T {
	if it.rest.head == nil {
		panic("slist: iterator is exhausted")
	}
	return &it.rest.head.value
}

// Next moves the iterator to the next position. It is a no-op when the
// iterator is exhausted.
func (it *Iterator[T]) Next() {
	if it.rest.head != nil {
		it.rest = &it.rest.head.next
	}
}

// All returns an iterator over the values of the list, for use with
// range-over-func.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := l.Iterator(); it.HasElem(); it.Next() {
			if !yield(it.Elem()) {
				return
			}
		}
	}
}

// Pointers is like All, but yields pointers to the values stored in the list.
func (l *List[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for it := l.Iterator(); it.HasElem(); it.Next() {
			if !yield(it.ElemPtr()) {
				return
			}
		}
	}
}
