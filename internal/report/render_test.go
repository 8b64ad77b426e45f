package report_test

import (
	"bytes"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"github.com/probeware/exitcheck/internal/harness"
	"github.com/probeware/exitcheck/internal/report"
	"github.com/probeware/exitcheck/internal/status"
)

func TestVerdict_PassLine(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var buf bytes.Buffer

	r := report.New(&buf)
	r.Verdict(harness.Verdict{
		Case:    harness.Case{Name: "exitprobe"},
		Outcome: harness.Outcome{Duration: 3 * time.Millisecond},
		Passed:  true,
	})

	g.Expect(buf.String()).To(ContainSubstring("PASS"))
	g.Expect(buf.String()).To(ContainSubstring("exitprobe"))
	g.Expect(buf.String()).To(ContainSubstring("3ms"))
}

func TestVerdict_FailLineIncludesReasons(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var buf bytes.Buffer

	r := report.New(&buf)
	r.Verdict(harness.Verdict{
		Case:    harness.Case{Name: "exitprobe"},
		Reasons: []string{"exit code 1, want 0", "wrote 5 bytes of output, want none:\nhello"},
	})

	out := buf.String()
	g.Expect(out).To(ContainSubstring("FAIL"))
	g.Expect(out).To(ContainSubstring("exit code 1, want 0"))
	g.Expect(out).To(ContainSubstring("hello"))
}

func TestVerdict_VerboseShowsStatusForPasses(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var buf bytes.Buffer

	r := report.New(&buf)
	r.Verbose = true
	r.Verdict(harness.Verdict{
		Case:    harness.Case{Name: "exitprobe"},
		Outcome: harness.Outcome{Status: status.Status{Code: 0}},
		Passed:  true,
	})

	g.Expect(buf.String()).To(ContainSubstring("exit code 0"))
}

func TestSummary_CountsBothWays(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var buf bytes.Buffer

	r := report.New(&buf)
	r.Summary(3, 0)
	r.Summary(2, 1)

	g.Expect(buf.String()).To(ContainSubstring("3 passed"))
	g.Expect(buf.String()).NotTo(ContainSubstring("3 passed, 0 failed"))
	g.Expect(buf.String()).To(ContainSubstring("2 passed, 1 failed"))
}
