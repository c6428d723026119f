package core

import (
	"sync"

	"github.com/google/uuid"
)

// Scope is the bookkeeping every frame carries: whether the frame is still
// on the stack and an identity for diagnostics, drawn on first use.
type Scope struct {
	open   bool
	idOnce sync.Once
	id     uuid.UUID
}

func Open() *Scope {
	return &Scope{open: true}
}

func (s *Scope) Close() {
	s.open = false
}

func (s *Scope) Active() bool {
	return s != nil && s.open
}

// ID stays uuid.Nil if the random source fails.
func (s *Scope) ID() uuid.UUID {
	if s == nil {
		return uuid.Nil
	}
	s.idOnce.Do(func() {
		if id, err := uuid.NewRandom(); err == nil {
			s.id = id
		}
	})
	return s.id
}
