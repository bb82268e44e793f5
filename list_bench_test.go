package forwardlist

import (
	"fmt"
	"testing"
)

// BenchmarkPushFront measures a single node allocation and link.
func BenchmarkPushFront(b *testing.B) {
	l := New[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.PushFront(i)
	}
}

func BenchmarkInsertEraseAfter(b *testing.B) {
	l := Of(1, 2, 3)
	pos := l.Begin()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.InsertAfter(pos, i)
		l.EraseAfter(pos)
	}
}

func BenchmarkTraverse(b *testing.B) {
	for _, n := range []int{10, 1000, 100000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			l := New[int]()
			for i := 0; i < n; i++ {
				l.PushFront(i)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sum := 0
				for it := l.CBegin(); !it.Equal(l.CEnd()); it.Inc() {
					sum += it.Value()
				}
				_ = sum
			}
		})
	}
}

func BenchmarkAssign(b *testing.B) {
	for _, n := range []int{10, 1000} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := New[int]()
			for i := 0; i < n; i++ {
				src.PushFront(i)
			}
			dst := New[int]()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := dst.Assign(src); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSwap(b *testing.B) {
	x, y := Of(1, 2, 3), Of(4)
	for i := 0; i < b.N; i++ {
		x.Swap(y)
	}
}
