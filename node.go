package forwardlist

// node is a single link of the chain. The list's sentinel is a node whose
// value is never read.
type node[T any] struct {
	value T
	next  *node[T]
}
