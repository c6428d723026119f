package ret

import (
	"github.com/google/uuid"

	"github.com/ib-77/divert/pkg/divert/core"
)

// Routine is the token of a routine without a result.
type Routine struct {
	scope *core.Scope
}

func (r *Routine) ID() uuid.UUID {
	if r == nil {
		return uuid.Nil
	}
	return r.scope.ID()
}

func (r *Routine) Active() bool {
	return r != nil && r.scope.Active()
}

// Func is the token of a routine producing an R.
type Func[R any] struct {
	scope  *core.Scope
	result R
}

func (f *Func[R]) ID() uuid.UUID {
	if f == nil {
		return uuid.Nil
	}
	return f.scope.ID()
}

func (f *Func[R]) Active() bool {
	return f != nil && f.scope.Active()
}

func (f *Func[R]) divert(def func() R) {
	core.Check(core.Return, f)
	f.result = def()
	core.Raise(core.Return, f)
}

// Run executes body as a routine with no result.
func Run(body func(r *Routine)) {
	r := &Routine{scope: core.Open()}
	defer func() {
		r.scope.Close()
		settle(recover(), r)
	}()

	body(r)
}

// Eval executes body as a routine and returns either what body returns or
// the default of the combinator that ended it.
func Eval[R any](body func(f *Func[R]) R) (out R) {
	f := &Func[R]{scope: core.Open()}
	defer func() {
		f.scope.Close()
		if settle(recover(), f) {
			out = f.result
		}
	}()

	return body(f)
}

// settle reports whether the recovered value v ended the routine self.
// Anything else is re-raised.
func settle(v any, self core.Frame) bool {
	if v == nil {
		return false
	}

	sig, ok := core.AsSignal(v)
	if !ok {
		panic(v)
	}

	if sig.Kind != core.Return {
		panic(core.Misuse("%s crossed the boundary of routine %s", sig.Kind, self.ID()))
	}

	if sig.Target != self {
		panic(core.Misuse("return targets routine %s from inside routine %s", sig.Target.ID(), self.ID()))
	}

	return true
}
