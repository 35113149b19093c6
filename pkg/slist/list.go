// Package slist implements a singly linked list in which every node is owned
// by exactly one slot.
//
// A List is itself a slot: it is either empty, or holds the first node of a
// chain, and each node in turn holds the List that follows it. Structural
// changes move nodes between slots by detaching them with take, which leaves
// an empty slot behind. No node is ever reachable from two slots, and nodes
// are never copied.
//
// The zero value is a valid empty list. A List must not be copied after first
// use, since the copy would share the chain with the original; constructors
// return pointers for this reason.
//
// Operations that need to find a position walk the chain, so Get, PushBack,
// PopBack, Insert, Remove and Len are O(n). PushFront and PopFront are O(1).
//
// A List is not safe for concurrent use. Callers that share a List between
// goroutines must provide their own locking.
package slist

import "fmt"

// List is a singly linked list, or equivalently a slot that may hold a node.
type List[T any] struct {
	head *node[T]
}

type node[T any] struct {
	value T
	next  List[T]
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// FromValue returns a list containing the single value v.
func FromValue[T any](v T) *List[T] {
	l := filled(v)
	return &l
}

func filled[T any](v T) List[T] {
	return List[T]{&node[T]{value: v}}
}

// IsEmpty returns whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.head == nil
}

// Get returns the value at the 0-based index i. The second return value is
// false if i is negative or the list has no more than i elements.
func (l *List[T]) Get(i int) (T, bool) {
	if i >= 0 {
		n := 0
		for it := l.Iterator(); it.HasElem(); it.Next() {
			if n == i {
				return it.Elem(), true
			}
			n++
		}
	}
	var zero T
	return zero, false
}

// GetMut is like Get, but returns a pointer to the value stored in the list,
// through which the value can be modified in place. The pointer stays valid
// until the element is removed.
func (l *List[T]) GetMut(i int) (*T, bool) {
	if i < 0 {
		return nil, false
	}
	cur := l
	for n := 0; n < i && cur.head != nil; n++ {
		cur = &cur.head.next
	}
	if cur.head == nil {
		return nil, false
	}
	return &cur.head.value, true
}

// MustGet is like Get, but panics if i is out of range.
func (l *List[T]) MustGet(i int) T {
	v, ok := l.Get(i)
	if !ok {
		panic(fmt.Sprintf("slist: index %d out of range", i))
	}
	return v
}

// MustGetMut is like GetMut, but panics if i is out of range.
func (l *List[T]) MustGetMut(i int) *T {
	p, ok := l.GetMut(i)
	if !ok {
		panic(fmt.Sprintf("slist: index %d out of range", i))
	}
	return p
}

// Front returns the first value of the list. The second return value is false
// if the list is empty.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Rest returns the slot following the first node, or nil if the list is
// empty. The returned List is part of l: changes made through it are visible
// in l.
func (l *List[T]) Rest() *List[T] {
	if l.head == nil {
		return nil
	}
	return &l.head.next
}

// PushFront inserts v at the front of the list.
func (l *List[T]) PushFront(v T) {
	front := filled(v)
	front.head.next = l.take()
	*l = front
}

// PushBack appends v to the end of the list.
func (l *List[T]) PushBack(v T) {
	*l.end() = filled(v)
}

// PopFront removes the first element of the list and returns it. The second
// return value is false if the list is empty.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	rest := l.head.next.take()
	v := extractValue(l.take())
	*l = rest
	return v, true
}

// PopBack removes the last element of the list and returns it. The second
// return value is false if the list is empty.
func (l *List[T]) PopBack() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	cur := l
	for cur.head.next.head != nil {
		cur = &cur.head.next
	}
	return extractValue(cur.take()), true
}

// Insert inserts v so that it becomes the element at index i. If i is larger
// than the length of the list, v is appended to the end. It panics if i is
// negative.
func (l *List[T]) Insert(i int, v T) {
	checkIndex(i)
	if i == 0 || l.head == nil {
		l.PushFront(v)
		return
	}
	prev := l
	for k := i - 1; k > 0 && prev.head.next.head != nil; k-- {
		prev = &prev.head.next
	}
	ins := filled(v)
	ins.head.next = prev.head.next.take()
	prev.head.next = ins
}

// Remove removes the element at index i and returns it. If i is not smaller
// than the length of the list, the last element is removed instead. The second
// return value is false if the list is empty. It panics if i is negative.
func (l *List[T]) Remove(i int) (T, bool) {
	checkIndex(i)
	if l.head == nil || i == 0 || l.head.next.head == nil {
		return l.PopFront()
	}
	// Stop at the node before position i, or at the second-to-last node.
	prev := l
	for k := i - 1; k > 0 && prev.head.next.head.next.head != nil; k-- {
		prev = &prev.head.next
	}
	target := prev.head.next.take()
	prev.head.next = target.head.next.take()
	return extractValue(target), true
}

// Len returns the number of elements by walking the list.
func (l *List[T]) Len() int {
	n := 0
	for cur := l; cur.head != nil; cur = &cur.head.next {
		n++
	}
	return n
}

// Clear removes all elements. Nodes are unlinked one at a time, so the cost
// does not depend on the call stack depth.
func (l *List[T]) Clear() {
	for l.head != nil {
		rest := l.head.next.take()
		*l = rest
	}
}

// Replaces the content of the slot with an empty list and returns the old
// content. This is the only way a node leaves a slot.
func (l *List[T]) take() List[T] {
	old := *l
	*l = List[T]{}
	return old
}

// Returns the empty slot at the end of the chain.
func (l *List[T]) end() *List[T] {
	cur := l
	for cur.head != nil {
		cur = &cur.head.next
	}
	return cur
}

// Returns the value held by a detached slot. Whatever still hangs off the node
// is dropped along with it.
func extractValue[T any](l List[T]) T {
	if l.head == nil {
		panic("slist: extracting value from an empty slot")
	}
	return l.head.value
}

func checkIndex(i int) {
	if i < 0 {
		panic(fmt.Sprintf("slist: negative index %d", i))
	}
}
