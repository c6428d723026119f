// Package divert holds the sum types consumed by the unwrap-or-divert
// combinators and the rule used to take them apart.
//
// Two shapes are understood:
// - Option[T]: Some(v) or None, also built from Go's (v, ok) pair or a pointer
// - Result[T]: Success(v) or Fail(err)/Cancel(err), also built from (v, err)
//
// Both are accepted by value, by pointer (a nil pointer counts as absent or
// failed) and with a pointer payload, see DerefSome and DerefOk.
//
// The combinators themselves live in the ret and loop packages.
package divert
