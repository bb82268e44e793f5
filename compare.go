package forwardlist

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
)

// Equal reports whether a and b have the same length and pairwise equal
// elements. A list is always equal to itself.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a == b {
		return true
	}
	if a.size != b.size {
		return false
	}
	for x, y := a.head.next, b.head.next; x != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

// Less reports whether a orders before b.
//
// Lists of different lengths order by length alone. Lists of equal length
// satisfy a < b only when every paired element satisfies x < y. This is not
// lexicographic ordering.
func Less[T cmp.Ordered](a, b *List[T]) bool {
	return less(a, b, func(x, y T) bool { return x >= y })
}

// LessEqual reports whether a orders before or together with b: by length
// when lengths differ, otherwise when no paired element has x > y.
func LessEqual[T cmp.Ordered](a, b *List[T]) bool {
	return lessEqual(a, b, func(x, y T) bool { return x > y })
}

// Greater is the negation of LessEqual.
func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return !LessEqual(a, b)
}

// GreaterEqual is the negation of Less.
func GreaterEqual[T cmp.Ordered](a, b *List[T]) bool {
	return !Less(a, b)
}

// LessFunc is Less using compare, which returns a negative, zero or
// positive result like cmp.Compare.
func LessFunc[T any](a, b *List[T], compare func(x, y T) int) bool {
	return less(a, b, func(x, y T) bool { return compare(x, y) >= 0 })
}

// LessEqualFunc is LessEqual using compare.
func LessEqualFunc[T any](a, b *List[T], compare func(x, y T) int) bool {
	return lessEqual(a, b, func(x, y T) bool { return compare(x, y) > 0 })
}

// GreaterFunc is the negation of LessEqualFunc.
func GreaterFunc[T any](a, b *List[T], compare func(x, y T) int) bool {
	return !LessEqualFunc(a, b, compare)
}

// GreaterEqualFunc is the negation of LessFunc.
func GreaterEqualFunc[T any](a, b *List[T], compare func(x, y T) int) bool {
	return !LessFunc(a, b, compare)
}

// Comparator adapts a gods comparator for use with the Func comparisons.
func Comparator[T any](c utils.Comparator) func(x, y T) int {
	return func(x, y T) int {
		return c(x, y)
	}
}

// less holds when no paired element satisfies geq.
func less[T any](a, b *List[T], geq func(x, y T) bool) bool {
	if a == b {
		return false
	}
	if a.size == b.size {
		return !anyPair(a, b, geq)
	}
	return a.size < b.size
}

// lessEqual holds when no paired element satisfies gt.
func lessEqual[T any](a, b *List[T], gt func(x, y T) bool) bool {
	if a == b {
		return true
	}
	if a.size == b.size {
		return !anyPair(a, b, gt)
	}
	return a.size < b.size
}

// anyPair reports whether pred holds for some pair of elements at the same
// position, stopping at the end of the shorter list.
func anyPair[T any](a, b *List[T], pred func(x, y T) bool) bool {
	for x, y := a.head.next, b.head.next; x != nil && y != nil; x, y = x.next, y.next {
		if pred(x.value, y.value) {
			return true
		}
	}
	return false
}
