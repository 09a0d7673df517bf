// Package invariant provides runtime assertion checking for programmer-error invariants.
//
// A violated invariant is a bug in the caller, not a recoverable condition: spec §7 classifies
// these as programmer errors that abort the current format run with a descriptive diagnostic
// rather than an error value threaded through every call site.
package invariant

import "fmt"

// That panics if cond is false. msg is used as a format string for args when args is non-empty,
// otherwise it is used verbatim.
func That(cond bool, msg string, args ...any) {
	if cond {
		return
	}
	if len(args) > 0 {
		panic(fmt.Sprintf(msg, args...))
	}
	panic(msg)
}
