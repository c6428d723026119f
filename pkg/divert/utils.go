package divert

import (
	"errors"
	"reflect"
)

// ErrNilPayload marks a Success whose pointer payload was nil.
var ErrNilPayload = errors.New("divert: nil payload")

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Unwrap applies the extraction rule shared by every combinator: the payload
// and true when from is present, the zero value and false otherwise.
func Unwrap[T any](from Maybe[T]) (T, bool) {
	switch o := from.(type) {
	case Option[T]:
		return o.Get()
	case *Option[T]:
		if o != nil {
			return o.Get()
		}
		var zero T
		return zero, false
	}

	if IsNil(from) {
		var zero T
		return zero, false
	}
	return from.Get()
}

// UnwrapOk is Unwrap for outcomes. The failure payload is not looked at.
func UnwrapOk[T any](from Outcome[T]) (T, bool) {
	switch r := from.(type) {
	case Result[T]:
		return r.result, r.isSuccess
	case *Result[T]:
		if r != nil {
			return r.result, r.isSuccess
		}
		var zero T
		return zero, false
	}

	if IsNil(from) || !from.IsSuccess() {
		var zero T
		return zero, false
	}
	return from.Result(), true
}

// DerefSome flattens a pointer payload. Some(nil) becomes None.
func DerefSome[T any](from Maybe[*T]) Option[T] {
	p, ok := Unwrap(from)
	if !ok {
		return None[T]()
	}
	return FromPtr(p)
}

// DerefOk flattens a pointer payload. A failure keeps its error when from
// exposes one; Success(nil) fails with ErrNilPayload.
func DerefOk[T any](from Outcome[*T]) Result[T] {
	p, ok := UnwrapOk(from)
	if !ok {
		if e, hasErr := from.(interface{ Err() error }); hasErr && !IsNil(from) {
			return Fail[T](e.Err())
		}
		return Fail[T](ErrNilPayload)
	}
	if p == nil {
		return Fail[T](ErrNilPayload)
	}
	return Success(*p)
}
