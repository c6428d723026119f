package loop

import (
	"github.com/ib-77/divert/pkg/divert"
	"github.com/ib-77/divert/pkg/divert/core"
)

func SomeOrBreak[T any](from divert.Maybe[T]) T {
	v, ok := divert.Unwrap(from)
	if !ok {
		core.Raise(core.Break, nil)
	}
	return v
}

func SomeOrBreakTo[T any](from divert.Maybe[T], l *Label) T {
	v, ok := divert.Unwrap(from)
	if !ok {
		core.Raise(core.Break, l)
	}
	return v
}

func SomeOrContinue[T any](from divert.Maybe[T]) T {
	v, ok := divert.Unwrap(from)
	if !ok {
		core.Raise(core.Continue, nil)
	}
	return v
}

func SomeOrContinueTo[T any](from divert.Maybe[T], l *Label) T {
	v, ok := divert.Unwrap(from)
	if !ok {
		core.Raise(core.Continue, l)
	}
	return v
}

func OkOrBreak[T any](from divert.Outcome[T]) T {
	v, ok := divert.UnwrapOk(from)
	if !ok {
		core.Raise(core.Break, nil)
	}
	return v
}

func OkOrBreakTo[T any](from divert.Outcome[T], l *Label) T {
	v, ok := divert.UnwrapOk(from)
	if !ok {
		core.Raise(core.Break, l)
	}
	return v
}

func OkOrContinue[T any](from divert.Outcome[T]) T {
	v, ok := divert.UnwrapOk(from)
	if !ok {
		core.Raise(core.Continue, nil)
	}
	return v
}

func OkOrContinueTo[T any](from divert.Outcome[T], l *Label) T {
	v, ok := divert.UnwrapOk(from)
	if !ok {
		core.Raise(core.Continue, l)
	}
	return v
}
