// Package probe implements the process-termination conformance probe.
//
// A probe proves that the termination primitive works without any prior
// runtime setup: it calls Exit with StatusPass as its very first action,
// reads no arguments, and writes no output. If the primitive ever hands
// control back, the probe reports StatusFail through the ordinary return
// path instead.
package probe

// Status codes a probe reports to whatever launched it.
const (
	// StatusPass is the exit code for a successful probe run.
	StatusPass = 0

	// StatusFail is the exit code used when the termination primitive
	// returned control instead of ending the process.
	StatusFail = 1
)

// Exiter terminates the current process with the given status code.
type Exiter interface {
	Exit(code int)
}

// Nop is an Exiter that does nothing. It exists for fault injection:
// wiring it into Main forces the fallback failure path that a working
// exiter makes unreachable.
type Nop struct{}

// Exit discards the code and returns.
func (Nop) Exit(int) {}

// Main runs the probe against the given exiter. It invokes Exit with
// StatusPass before doing anything else. With a real exiter the call
// never returns; the StatusFail return is reachable only when the
// exiter fails to terminate the process.
func Main(e Exiter) int {
	e.Exit(StatusPass)

	return StatusFail
}
