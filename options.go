package forwardlist

// Option configures a List at construction time.
type Option[T any] func(l *List[T])

// WithCloner sets the function used to copy elements into the list by Clone
// and Assign. An error returned by fn aborts the copy; the destination is
// left as it was.
func WithCloner[T any](fn func(T) (T, error)) Option[T] {
	return func(l *List[T]) {
		l.cloner = fn
	}
}

// WithReleaser sets a hook called once for every element the list destroys,
// in head-to-tail order.
func WithReleaser[T any](fn func(T)) Option[T] {
	return func(l *List[T]) {
		l.releaser = fn
	}
}
