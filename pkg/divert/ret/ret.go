package ret

import (
	"github.com/ib-77/divert/pkg/divert"
	"github.com/ib-77/divert/pkg/divert/core"
)

func SomeOrReturn[T any](r *Routine, from divert.Maybe[T]) T {
	v, ok := divert.Unwrap(from)
	if !ok {
		core.Raise(core.Return, r)
	}
	return v
}

func OkOrReturn[T any](r *Routine, from divert.Outcome[T]) T {
	v, ok := divert.UnwrapOk(from)
	if !ok {
		core.Raise(core.Return, r)
	}
	return v
}

// SomeOrReturnWith ends the routine with def() when from is absent.
// def is not called otherwise.
func SomeOrReturnWith[T, R any](f *Func[R], from divert.Maybe[T], def func() R) T {
	v, ok := divert.Unwrap(from)
	if !ok {
		f.divert(def)
	}
	return v
}

// OkOrReturnWith ends the routine with def() when from failed.
// def is not called otherwise.
func OkOrReturnWith[T, R any](f *Func[R], from divert.Outcome[T], def func() R) T {
	v, ok := divert.UnwrapOk(from)
	if !ok {
		f.divert(def)
	}
	return v
}

func SomeOrReturnValue[T, R any](f *Func[R], from divert.Maybe[T], def R) T {
	return SomeOrReturnWith(f, from, func() R { return def })
}

func OkOrReturnValue[T, R any](f *Func[R], from divert.Outcome[T], def R) T {
	return OkOrReturnWith(f, from, func() R { return def })
}
