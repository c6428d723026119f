// Package loop provides loop frames and the unwrap-or-break and
// unwrap-or-continue combinators.
//
// Every frame (Range, Range2, Each, Times, While) hands its body the *Label
// of that loop. The bare combinators act on the innermost running loop, the
// To variants on the loop owning the given label:
//
//	loop.Each(rows, func(outer *loop.Label, row Row) {
//		loop.Each(row.Cells, func(_ *loop.Label, c Cell) {
//			v := loop.OkOrContinueTo(parse(c), outer) // next row
//			sum += v
//		})
//	})
//
// A bare break in an inner loop only ends that loop, the outer one goes on.
// Signals may not cross a ret routine frame, and a label whose loop has
// finished panics with core.ErrMisuse when used.
package loop
