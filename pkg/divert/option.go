package divert

// Option is either Some(value) or None.
type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPair lifts Go's comma-ok shape, e.g. FromPair(lookup(key)).
func FromPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr treats a nil pointer as None and copies the pointee otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Ref borrows the payload: the returned option points into o.
func Ref[T any](o *Option[T]) Option[*T] {
	if o == nil || !o.ok {
		return None[*T]()
	}
	return Some(&o.value)
}
