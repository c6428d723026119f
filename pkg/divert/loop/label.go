package loop

import (
	"github.com/google/uuid"

	"github.com/ib-77/divert/pkg/divert/core"
)

// Label names a running loop frame.
type Label struct {
	scope *core.Scope
}

func newLabel() *Label {
	return &Label{scope: core.Open()}
}

func (l *Label) ID() uuid.UUID {
	if l == nil {
		return uuid.Nil
	}
	return l.scope.ID()
}

func (l *Label) Active() bool {
	return l != nil && l.scope.Active()
}

func (l *Label) close() {
	l.scope.Close()
}

// step runs one iteration and reports whether the loop must stop.
func (l *Label) step(iteration func()) (stop bool) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}

		sig, ok := core.AsSignal(v)
		if !ok || !sig.Loop(l) {
			panic(v)
		}

		stop = sig.Kind == core.Break
	}()

	iteration()
	return false
}
