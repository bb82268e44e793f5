package forwardlist

import (
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestIterator(t *testing.T) {
	t.Run("PreIncrement", func(t *testing.T) {
		l := Of(1, 2, 3)
		it := l.Begin()
		next := it.Inc()
		check.Equal(t, 2, it.Value())
		check.Equal(t, 2, next.Value())
	})

	t.Run("PostIncrement", func(t *testing.T) {
		l := Of(1, 2, 3)
		it := l.Begin()
		old := it.PostInc()
		check.Equal(t, 1, old.Value())
		check.Equal(t, 2, it.Value())
	})

	t.Run("NextDoesNotMove", func(t *testing.T) {
		l := Of(1, 2)
		it := l.Begin()
		check.Equal(t, 2, it.Next().Value())
		check.Equal(t, 1, it.Value())
	})

	t.Run("Traversal", func(t *testing.T) {
		l := Of(1, 2, 3)
		sum := 0
		for it := l.CBegin(); !it.Equal(l.CEnd()); it.Inc() {
			sum += it.Value()
		}
		check.Equal(t, 6, sum)
	})

	t.Run("WriteThrough", func(t *testing.T) {
		l := Of(1, 2, 3)
		for it := l.Begin(); !it.Equal(l.End()); it.Inc() {
			*it.Ptr() *= 2
		}
		l.Begin().Set(0)
		check.Equal(t, "ForwardList\n0, 4, 6", l.String())
	})

	t.Run("MemberAccess", func(t *testing.T) {
		type pair struct{ a, b int }
		l := Of(pair{1, 2})
		l.Begin().Ptr().b = 5
		check.Equal(t, 5, l.CBegin().Value().b)
	})

	t.Run("CrossVariantEquality", func(t *testing.T) {
		l := Of(1, 2)
		check.True(t, l.Begin().Equal(l.CBegin()))
		check.True(t, l.CBegin().Equal(l.Begin()))
		check.True(t, l.End().Equal(l.CEnd()))
		check.True(t, l.BeforeBegin().Equal(l.CBeforeBegin()))
		check.True(t, !l.Begin().Equal(l.CEnd()))
		check.True(t, l.Begin().Const().Equal(l.Begin()))
	})

	t.Run("EndOfDifferentListsEqual", func(t *testing.T) {
		a, b := Of(1), Of(2)
		check.True(t, a.End().Equal(b.CEnd()))
		check.True(t, !a.Begin().Equal(b.Begin()))
	})

	t.Run("ZeroValueIsEnd", func(t *testing.T) {
		var it Iterator[int]
		l := Of(1)
		check.True(t, it.Equal(l.End()))
	})

	t.Run("BeforeBeginAdvancesToBegin", func(t *testing.T) {
		l := Of(1, 2)
		it := l.BeforeBegin()
		it.Inc()
		check.True(t, it.Equal(l.Begin()))
		check.Equal(t, 1, it.Value())

		cit := l.CBeforeBegin()
		check.Equal(t, 1, cit.Next().Value())

		empty := New[int]()
		check.True(t, empty.BeforeBegin().Next().Equal(empty.End()))
	})

	t.Run("ContractViolations", func(t *testing.T) {
		l := Of(1)
		end := l.End()
		assert.Panic(t, func() { end.Inc() })
		assert.Panic(t, func() { _ = l.End().Value() })
		assert.Panic(t, func() { _ = l.CEnd().Value() })
		assert.Panic(t, func() { _ = l.BeforeBegin().Value() })
		assert.Panic(t, func() { _ = l.CBeforeBegin().Value() })
		assert.Panic(t, func() { l.BeforeBegin().Set(3) })
		cend := l.CEnd()
		assert.Panic(t, func() { cend.PostInc() })
	})

	t.Run("PanicValues", func(t *testing.T) {
		l := Of(1)
		var got any
		func() {
			defer func() { got = recover() }()
			_ = l.BeforeBegin().Value()
		}()
		check.True(t, got == ErrBeforeBegin)
	})

	t.Run("EraseInvalidatesOnlyErased", func(t *testing.T) {
		l := Of(1, 2, 3)
		first := l.Begin()
		third := first.Next().Next()
		l.EraseAfter(first)
		check.Equal(t, 1, first.Value())
		check.Equal(t, 3, third.Value())
		check.True(t, first.Next().Equal(third))
	})
}
