package core

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrMisuse = errors.New("divert: misuse")

type Kind uint8

const (
	Return Kind = iota
	Break
	Continue
)

func (k Kind) String() string {
	switch k {
	case Return:
		return "return"
	case Break:
		return "break"
	case Continue:
		return "continue"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Frame is the owner of a divert target: a loop label or a routine token.
type Frame interface {
	ID() uuid.UUID
	Active() bool
}

// Signal travels up the stack as a panic value until the frame it targets
// recovers it. A nil Target selects the innermost loop.
type Signal struct {
	Kind   Kind
	Target Frame
}

// Error is only ever seen when a signal escapes every frame.
func (s *Signal) Error() string {
	if s.Target == nil {
		return fmt.Sprintf("%s: %s with no enclosing loop", ErrMisuse, s.Kind)
	}
	return fmt.Sprintf("%s: %s targeting %s escaped its frame", ErrMisuse, s.Kind, s.Target.ID())
}

func (s *Signal) Unwrap() error {
	return ErrMisuse
}

// Loop reports whether a loop frame owning label should consume the signal.
func (s *Signal) Loop(label Frame) bool {
	if s.Kind == Return {
		return false
	}
	return s.Target == nil || s.Target == label
}

func Misuse(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMisuse, fmt.Sprintf(format, args...))
}

// Check panics with a misuse error when target belongs to a frame that is
// no longer running.
func Check(kind Kind, target Frame) {
	if target != nil && !target.Active() {
		panic(Misuse("%s targets %s which is not running", kind, target.ID()))
	}
}

// Raise performs the control transfer. It never returns.
func Raise(kind Kind, target Frame) {
	Check(kind, target)
	panic(&Signal{Kind: kind, Target: target})
}

// AsSignal inspects a recovered panic value.
func AsSignal(v any) (*Signal, bool) {
	s, ok := v.(*Signal)
	return s, ok
}
