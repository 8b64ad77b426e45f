// Package report rendering functions.
// This file writes verdict lines and the run summary with proper styling.

package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/probeware/exitcheck/internal/harness"
)

// Renderer writes verdicts and summaries to a single output writer.
type Renderer struct {
	Out     io.Writer
	Styles  Styles
	Verbose bool
}

// New returns a Renderer with the default styles.
func New(out io.Writer) *Renderer {
	return &Renderer{Out: out, Styles: DefaultStyles()}
}

// Verdict writes one line per case: a PASS/FAIL marker, the probe name,
// and the run duration. Failure reasons follow, indented, one per line.
func (r *Renderer) Verdict(v harness.Verdict) {
	marker := r.Styles.Pass.Render("PASS")
	if !v.Passed {
		marker = r.Styles.Fail.Render("FAIL")
	}

	_, _ = fmt.Fprintf(
		r.Out,
		"%s %s (%s)\n",
		marker,
		r.Styles.Name.Render(v.Case.Name),
		v.Outcome.Duration.Round(time.Millisecond),
	)

	if v.Passed && !r.Verbose {
		return
	}

	if r.Verbose {
		_, _ = fmt.Fprintf(r.Out, "    %s\n", v.Outcome.Status)
	}

	for _, reason := range v.Reasons {
		for _, line := range strings.Split(strings.TrimRight(reason, "\n"), "\n") {
			_, _ = fmt.Fprintf(r.Out, "    %s\n", r.Styles.Reason.Render(line))
		}
	}
}

// Summary writes the closing pass/fail counts.
func (r *Renderer) Summary(passed, failed int) {
	text := fmt.Sprintf("%d passed, %d failed", passed, failed)
	if failed == 0 {
		text = fmt.Sprintf("%d passed", passed)
	}

	_, _ = fmt.Fprintln(r.Out, r.Styles.Summary.Render(text))
}
