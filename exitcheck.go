// Package exitcheck runs process-termination conformance probes and
// judges them against the exit contract: the probe must end itself with
// the success status as its first action and produce no output.
package exitcheck

import (
	"context"
	"path/filepath"

	"github.com/probeware/exitcheck/internal/discover"
	"github.com/probeware/exitcheck/internal/harness"
	"github.com/probeware/exitcheck/probe"
)

// Re-exported harness types, so library users don't reach into internal.
type (
	// Case describes one probe run and the contract it must meet.
	Case = harness.Case

	// Outcome captures what actually happened when a case ran.
	Outcome = harness.Outcome

	// Verdict is the evaluation of an Outcome against its Case.
	Verdict = harness.Verdict
)

// Discover expands glob patterns (** and {a,b} supported) into a sorted
// list of probe binary paths.
func Discover(patterns ...string) ([]string, error) {
	return discover.Probes(patterns...)
}

// Evaluate judges an outcome against its case without running anything.
func Evaluate(c Case, o Outcome) Verdict {
	return harness.Evaluate(c, o)
}

// ProbeCase returns the standard contract case for a probe binary: exit
// with the success status, write nothing.
func ProbeCase(binary string) Case {
	return Case{
		Name:     filepath.Base(binary),
		Binary:   binary,
		WantCode: probe.StatusPass,
	}
}

// Run executes one case against the real OS and returns its verdict.
func Run(ctx context.Context, c Case) Verdict {
	return harness.NewRunner().Run(ctx, c)
}
