// Package forwardlist provides a generic singly linked list with forward
// iterators, insertion and removal after a position, and copy assignment that
// either fully succeeds or leaves the destination untouched.
//
// A List is not safe for concurrent use.
package forwardlist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/containers"
)

var _ containers.Container = (*List[int])(nil)

// List is a singly linked sequence. The zero value is an empty list ready to
// use. A List must not be copied by value once it holds elements or has
// handed out iterators; use Clone or Assign instead.
type List[T any] struct {
	head node[T] // sentinel; head.next is the first element
	size int

	cloner   func(T) (T, error)
	releaser func(T)
}

// New returns an empty list configured with opts.
func New[T any](opts ...Option[T]) *List[T] {
	l := &List[T]{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Of returns a list holding values in the given order.
func Of[T any](values ...T) *List[T] {
	l := New[T]()
	l.fill(values)
	return l
}

// FromSeq returns a list holding the elements of seq in traversal order.
func FromSeq[T any](seq iter.Seq[T], opts ...Option[T]) *List[T] {
	var buf []T
	for v := range seq {
		buf = append(buf, v)
	}
	l := New(opts...)
	l.fill(buf)
	return l
}

// FromRange returns a list holding the elements in [first, last). last must
// be reachable from first.
func FromRange[T any](first, last Position[T], opts ...Option[T]) *List[T] {
	var buf []T
	for n, stop := first.ref(), last.ref(); n != stop; n = n.next {
		if n == nil {
			panic(ErrPastEnd)
		}
		buf = append(buf, n.value)
	}
	l := New(opts...)
	l.fill(buf)
	return l
}

// fill pushes values in reverse so the list ends up in slice order.
func (l *List[T]) fill(values []T) {
	for i := len(values) - 1; i >= 0; i-- {
		l.PushFront(values[i])
	}
}

// Size returns the number of elements in O(1).
func (l *List[T]) Size() int { return l.size }

// Len is an alias of Size.
func (l *List[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.size == 0 }

// Empty is an alias of IsEmpty.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Front returns the first element, or false if the list is empty.
func (l *List[T]) Front() (T, bool) {
	if l.head.next == nil {
		var zero T
		return zero, false
	}
	return l.head.next.value, true
}

// PushFront inserts v at the beginning of the list.
func (l *List[T]) PushFront(v T) {
	l.head.next = &node[T]{value: v, next: l.head.next}
	l.size++
}

// PopFront removes the first element. It panics if the list is empty.
func (l *List[T]) PopFront() {
	if l.size == 0 {
		panic(ErrEmptyList)
	}
	l.unlinkAfter(&l.head)
}

// InsertAfter inserts v after the element addressed by pos and returns an
// iterator to the new element. pos may be the before-begin anchor but not the
// end position.
func (l *List[T]) InsertAfter(pos Position[T], v T) Iterator[T] {
	p := pos.ref()
	if p == nil {
		panic(ErrPastEnd)
	}
	n := &node[T]{value: v, next: p.next}
	p.next = n
	l.size++
	return Iterator[T]{n: n}
}

// EraseAfter removes the element following pos and returns an iterator to
// the element after the removed one, or End if there is none. It panics if
// nothing follows pos.
func (l *List[T]) EraseAfter(pos Position[T]) Iterator[T] {
	p := pos.ref()
	if p == nil || p.next == nil {
		panic(ErrNoSuccessor)
	}
	l.unlinkAfter(p)
	return Iterator[T]{n: p.next}
}

func (l *List[T]) unlinkAfter(p *node[T]) {
	victim := p.next
	p.next = victim.next
	victim.next = nil
	l.size--
	l.release(victim.value)
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	n := l.head.next
	l.head.next = nil
	l.size = 0
	for n != nil {
		next := n.next
		n.next = nil
		l.release(n.value)
		n = next
	}
}

func (l *List[T]) release(v T) {
	if l.releaser != nil {
		l.releaser(v)
	}
}

// Begin returns an iterator to the first element, equal to End when the
// list is empty.
func (l *List[T]) Begin() Iterator[T] { return Iterator[T]{n: l.head.next} }

// End returns the position one past the last element. It must not be
// dereferenced or advanced.
func (l *List[T]) End() Iterator[T] { return Iterator[T]{} }

// BeforeBegin returns the anchor positioned before the first element. It is
// only valid as an argument to InsertAfter and EraseAfter, or to be advanced.
func (l *List[T]) BeforeBegin() Iterator[T] { return Iterator[T]{n: &l.head, anchor: true} }

// CBegin is the read-only counterpart of Begin.
func (l *List[T]) CBegin() ConstIterator[T] { return ConstIterator[T]{n: l.head.next} }

// CEnd is the read-only counterpart of End.
func (l *List[T]) CEnd() ConstIterator[T] { return ConstIterator[T]{} }

// CBeforeBegin is the read-only counterpart of BeforeBegin.
func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{n: &l.head, anchor: true}
}

// All yields the elements from first to last.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Slice returns the elements in order. The result is never nil.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// Values returns the elements boxed as interfaces.
func (l *List[T]) Values() []interface{} {
	out := make([]interface{}, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

func (l *List[T]) String() string {
	parts := make([]string, 0, l.size)
	for v := range l.All() {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	return "ForwardList\n" + strings.Join(parts, ", ")
}

// Clone returns an independent copy of l carrying the same options.
func (l *List[T]) Clone() (*List[T], error) {
	out := &List[T]{cloner: l.cloner, releaser: l.releaser}
	buf, err := l.copyValues(l.cloner)
	if err != nil {
		out.discard(buf)
		return nil, err
	}
	out.fill(buf)
	return out, nil
}

// Assign replaces the contents of l with copies of the elements of src.
// Elements are copied with l's cloner. If copying fails, l keeps its prior
// contents and the error is returned.
func (l *List[T]) Assign(src *List[T]) error {
	if l == src {
		return nil
	}
	if src.size == 0 {
		l.Clear()
		return nil
	}
	buf, err := src.copyValues(l.cloner)
	if err != nil {
		l.discard(buf)
		return err
	}
	tmp := List[T]{releaser: l.releaser}
	tmp.fill(buf)
	l.Swap(&tmp)
	tmp.Clear()
	return nil
}

func (l *List[T]) copyValues(clone func(T) (T, error)) ([]T, error) {
	buf := make([]T, 0, l.size)
	i := 0
	for n := l.head.next; n != nil; n = n.next {
		v := n.value
		if clone != nil {
			var err error
			if v, err = clone(v); err != nil {
				return buf, &CopyError{Index: i, Err: err}
			}
		}
		buf = append(buf, v)
		i++
	}
	return buf, nil
}

// discard releases copies made before a failed copy.
func (l *List[T]) discard(partial []T) {
	for _, v := range partial {
		l.release(v)
	}
}

// Swap exchanges the contents of l and other in O(1). Iterators keep
// addressing the same elements, which now belong to the other list.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}
