// Package slist implements a generic singly linked list with positional
// access, insertion, removal and search.
package slist

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrIndexOutOfRange is returned by positional operations when the index does
// not resolve to a position of the list. The wrapped message carries the
// offending index together with the list size.
var ErrIndexOutOfRange = errors.New("index out of range")

// List is a singly linked list of comparable elements. The zero value is an
// empty list ready to use.
//
// A List is not safe for concurrent use: every operation walks or rewires the
// chain without locking, so a list shared between goroutines needs external
// synchronization.
type List[E comparable] struct {
	head *node[E]
	size int
}

// New returns an empty list.
func New[E comparable]() *List[E] {
	return &List[E]{}
}

// Len returns the number of elements in the list.
func (l *List[E]) Len() int {
	return l.size
}

// Size returns the number of elements by walking the chain from the head to
// the terminal link. It always equals Len, which reads the tracked count in
// constant time instead.
func (l *List[E]) Size() int {
	counted := 0
	for cur := l.head; cur != nil; cur = cur.next {
		counted++
	}
	return counted
}

// AddFirst inserts v at the head of the list. The previous head becomes the
// successor of the new node.
func (l *List[E]) AddFirst(v E) {
	l.head = newNode(v, l.head)
	l.size++
}

// Add appends v at the end of the list and reports whether it was added.
func (l *List[E]) Add(v E) bool {
	return l.Insert(l.size, v) == nil
}

// Insert inserts v at index, shifting the elements at index and beyond one
// position toward the end. Valid indices run from 0 through Len inclusive;
// inserting at Len appends. Any other index returns ErrIndexOutOfRange.
func (l *List[E]) Insert(index int, v E) error {
	if index < 0 || index > l.size {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, l.size)
	}
	if index == 0 {
		l.AddFirst(v)
		return nil
	}
	l.addAfter(l.nodeAt(index-1), v)
	return nil
}

// Get returns the element at index, or ErrIndexOutOfRange if index is
// outside [0, Len).
func (l *List[E]) Get(index int) (E, error) {
	if err := l.checkIndex(index); err != nil {
		var zero E
		return zero, err
	}
	return l.nodeAt(index).entry, nil
}

// Set replaces the element at index with v and returns the value it
// replaced, or ErrIndexOutOfRange if index is outside [0, Len).
func (l *List[E]) Set(index int, v E) (E, error) {
	if err := l.checkIndex(index); err != nil {
		var zero E
		return zero, err
	}
	n := l.nodeAt(index)
	previous := n.entry
	n.entry = v
	return previous, nil
}

// Remove removes the element at index and returns it. The second return
// value is false when index does not resolve to an element; the list is left
// untouched then.
func (l *List[E]) Remove(index int) (E, bool) {
	if index < 0 || index >= l.size {
		var zero E
		return zero, false
	}
	if index == 0 {
		return l.removeFirst()
	}
	return l.removeAfter(l.nodeAt(index - 1))
}

// IndexOf returns the index of the first element equal to target. If target
// is not in the list, it returns Len, the index just past the last element.
func (l *List[E]) IndexOf(target E) int {
	position := 0
	for cur := l.head; cur != nil && cur.entry != target; cur = cur.next {
		position++
	}
	return position
}

// String renders the list as a bracketed, space-separated sequence of its
// elements in chain order.
func (l *List[E]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for cur := l.head; cur != nil; cur = cur.next {
		if cur != l.head {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v", cur.entry)
	}
	b.WriteByte(']')
	return b.String()
}

// addAfter links a new node holding v directly after anchor. The new node
// takes over the anchor's old successor. The anchor must not be nil; that is
// the caller's contract and is not re-checked here.
func (l *List[E]) addAfter(anchor *node[E], v E) {
	anchor.next = newNode(v, anchor.next)
	l.size++
}

// removeAfter unlinks the successor of anchor and returns its entry. When
// the anchor is the last node there is nothing to remove and it returns
// false without touching the list.
func (l *List[E]) removeAfter(anchor *node[E]) (E, bool) {
	removed := anchor.next
	if removed == nil {
		var zero E
		return zero, false
	}
	anchor.next = removed.next
	// the removed cell must not keep the rest of the chain alive
	removed.next = nil
	l.size--
	return removed.entry, true
}

// removeFirst unlinks the head node and returns its entry, or false on an
// empty list.
func (l *List[E]) removeFirst() (E, bool) {
	if l.head == nil {
		var zero E
		return zero, false
	}
	removed := l.head
	l.head = removed.next
	removed.next = nil
	l.size--
	return removed.entry, true
}

// nodeAt resolves the node at index by advancing index times from the head,
// returning nil when the chain ends first. Every positional operation
// resolves its target through here so that walking off the end behaves the
// same everywhere. A non-positive index yields the head unchanged.
func (l *List[E]) nodeAt(index int) *node[E] {
	cur := l.head
	for i := 0; i < index && cur != nil; i++ {
		cur = cur.next
	}
	return cur
}

func (l *List[E]) checkIndex(index int) error {
	if index < 0 || index >= l.size {
		return errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, l.size)
	}
	return nil
}
