// Package harness runs probe binaries and judges them against the
// process-termination contract.
package harness

import (
	"context"
	"fmt"
	"time"

	"github.com/akedrou/textdiff"

	"github.com/probeware/exitcheck/internal/status"
)

// DefaultTimeout bounds a single probe run. A conforming probe exits
// immediately; anything that lives this long has hung.
const DefaultTimeout = 10 * time.Second

// Case describes one probe run and the exit contract it must meet.
type Case struct {
	Name       string
	Binary     string
	Args       []string
	WantCode   int
	WantOutput string        // exact combined stdout+stderr, usually empty
	Timeout    time.Duration // zero means DefaultTimeout
}

// Outcome captures what actually happened when a case ran.
type Outcome struct {
	Status   status.Status
	Output   string
	Duration time.Duration
	Err      error // start or cancellation failure, not a nonzero exit
}

// Verdict is the evaluation of an Outcome against its Case.
type Verdict struct {
	Case    Case
	Outcome Outcome
	Passed  bool
	Reasons []string
}

// RunEnv abstracts process execution for dependency injection in tests.
type RunEnv interface {
	Run(ctx context.Context, binary string, args []string) (status.Status, string, error)
}

// Runner executes cases through a RunEnv.
type Runner struct {
	Env RunEnv
}

// NewRunner returns a Runner backed by real process execution.
func NewRunner() *Runner {
	return &Runner{Env: OSRunEnv{}}
}

// Run executes the case under its timeout and evaluates the result.
func (r *Runner) Run(ctx context.Context, c Case) Verdict {
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	st, out, err := r.Env.Run(runCtx, c.Binary, c.Args)

	return Evaluate(c, Outcome{
		Status:   st,
		Output:   out,
		Duration: time.Since(start),
		Err:      err,
	})
}

// Evaluate judges an outcome against its case. A verdict passes only when
// the process exited on its own with the wanted code and produced exactly
// the wanted output.
func Evaluate(c Case, o Outcome) Verdict {
	v := Verdict{Case: c, Outcome: o}

	switch {
	case o.Err != nil:
		v.Reasons = append(v.Reasons, o.Err.Error())
	case o.Status.Signaled:
		v.Reasons = append(v.Reasons, "terminated by "+o.Status.String())
	case o.Status.Code != c.WantCode:
		v.Reasons = append(
			v.Reasons,
			fmt.Sprintf("exit code %d, want %d", o.Status.Code, c.WantCode),
		)
	}

	if o.Err == nil && o.Output != c.WantOutput {
		v.Reasons = append(v.Reasons, describeOutputMismatch(c.WantOutput, o.Output))
	}

	v.Passed = len(v.Reasons) == 0

	return v
}

func describeOutputMismatch(want, got string) string {
	if want == "" {
		return fmt.Sprintf("wrote %d bytes of output, want none:\n%s", len(got), got)
	}

	return "output mismatch:\n" + textdiff.Unified("want", "got", want, got)
}
