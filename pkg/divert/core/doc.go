// Package core contains the plumbing shared by the ret and loop packages:
// the divert signal raised by a combinator, the scope each frame owns and the
// misuse errors reported when a signal has no legal place to land. It holds
// no combinators itself.
package core
