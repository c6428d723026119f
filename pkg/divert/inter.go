package divert

// Maybe is anything that may or may not hold a T.
// Option[T] and *Option[T] both satisfy it.
type Maybe[T any] interface {
	// Get returns the payload and whether it is present
	Get() (T, bool)
}

// Outcome is anything that either succeeded with a T or failed.
// Result[T] and *Result[T] both satisfy it. The failure payload is
// deliberately absent from the contract.
type Outcome[T any] interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// Result returns the successful result value
	Result() T
}
