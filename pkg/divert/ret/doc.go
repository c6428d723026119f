// Package ret provides the unwrap-or-return combinators.
//
// A routine frame is opened with Run (no result) or Eval (result of type R)
// and hands its body a token. Passing that token to a combinator either
// yields the payload or ends the routine on the spot:
// - SomeOrReturn/OkOrReturn: bare return, only from a Run routine
// - SomeOrReturnWith/OkOrReturnWith: return a lazily built default from Eval
// - SomeOrReturnValue/OkOrReturnValue: return a ready default from Eval
//
//	ret.Run(func(r *ret.Routine) {
//		n := ret.SomeOrReturn(r, lookup(key))
//		fmt.Println(n)
//	})
//
// Returning from inside the loop package's frames is allowed and leaves the
// loops. Break or continue signals that reach a routine frame, and tokens
// used after their routine has finished, panic with core.ErrMisuse.
package ret
