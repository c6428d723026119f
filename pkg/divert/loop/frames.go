package loop

import (
	"iter"
	"slices"
)

func Range[T any](seq iter.Seq[T], body func(l *Label, v T)) {
	l := newLabel()
	defer l.close()

	for v := range seq {
		if l.step(func() { body(l, v) }) {
			break
		}
	}
}

func Range2[K, V any](seq iter.Seq2[K, V], body func(l *Label, k K, v V)) {
	l := newLabel()
	defer l.close()

	for k, v := range seq {
		if l.step(func() { body(l, k, v) }) {
			break
		}
	}
}

func Each[T any](items []T, body func(l *Label, v T)) {
	Range(slices.Values(items), body)
}

// Times runs body for i = 0 .. n-1.
func Times(n int, body func(l *Label, i int)) {
	Range(func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}, body)
}

// While runs body as long as cond holds. cond is checked again after a
// continue.
func While(cond func() bool, body func(l *Label)) {
	l := newLabel()
	defer l.close()

	for cond() {
		if l.step(func() { body(l) }) {
			break
		}
	}
}
