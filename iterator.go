package forwardlist

// Position is implemented by both iterator variants. It lets a read-only and
// a mutable iterator be compared with each other and used interchangeably as
// insertion or removal anchors.
type Position[T any] interface {
	ref() *node[T]
}

// Iterator is a forward iterator with read/write access to the element it
// addresses. The zero value is the end position.
//
// Iterators do not own the nodes they reference. An iterator is invalidated
// only when its node is erased or the list is cleared.
type Iterator[T any] struct {
	n      *node[T]
	anchor bool
}

func (it Iterator[T]) ref() *node[T] { return it.n }

// Equal reports whether it and other address the same node, or are both at
// the end position.
func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.n == other.ref()
}

// Next returns the iterator to the following element without moving it.
// Calling Next on the end position panics.
func (it Iterator[T]) Next() Iterator[T] {
	it.Inc()
	return it
}

// Inc advances it to the next element and returns the new position.
func (it *Iterator[T]) Inc() Iterator[T] {
	if it.n == nil {
		panic(ErrPastEnd)
	}
	it.n = it.n.next
	it.anchor = false
	return *it
}

// PostInc advances it to the next element and returns the position it had
// before the call.
func (it *Iterator[T]) PostInc() Iterator[T] {
	old := *it
	it.Inc()
	return old
}

// Value returns a copy of the addressed element.
func (it Iterator[T]) Value() T {
	return *it.Ptr()
}

// Ptr returns a pointer to the addressed element. The pointer remains valid
// for as long as the iterator does.
func (it Iterator[T]) Ptr() *T {
	it.check()
	return &it.n.value
}

// Set replaces the addressed element.
func (it Iterator[T]) Set(v T) {
	*it.Ptr() = v
}

// Const returns the read-only view of the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n, anchor: it.anchor}
}

func (it Iterator[T]) check() {
	switch {
	case it.n == nil:
		panic(ErrPastEnd)
	case it.anchor:
		panic(ErrBeforeBegin)
	}
}

// ConstIterator is a forward iterator with read-only access.
type ConstIterator[T any] struct {
	n      *node[T]
	anchor bool
}

func (it ConstIterator[T]) ref() *node[T] { return it.n }

// Equal reports whether it and other address the same node, or are both at
// the end position.
func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.n == other.ref()
}

// Next returns the iterator to the following element without moving it.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	it.Inc()
	return it
}

// Inc advances it to the next element and returns the new position.
func (it *ConstIterator[T]) Inc() ConstIterator[T] {
	if it.n == nil {
		panic(ErrPastEnd)
	}
	it.n = it.n.next
	it.anchor = false
	return *it
}

// PostInc advances it and returns the position it had before the call.
func (it *ConstIterator[T]) PostInc() ConstIterator[T] {
	old := *it
	it.Inc()
	return old
}

// Value returns a copy of the addressed element.
func (it ConstIterator[T]) Value() T {
	switch {
	case it.n == nil:
		panic(ErrPastEnd)
	case it.anchor:
		panic(ErrBeforeBegin)
	}
	return it.n.value
}
