package flags_test

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/probeware/exitcheck/internal/flags"
)

func TestParse_NoArgs(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	opts, patterns, err := flags.Parse(nil)

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(opts).To(Equal(flags.Options{}))
	g.Expect(patterns).To(BeEmpty())
}

func TestParse_PatternsPassThrough(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, patterns, err := flags.Parse([]string{"bin/*.probe", "other"})

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(patterns).To(Equal([]string{"bin/*.probe", "other"}))
}

func TestParse_TimeoutForms(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	for _, args := range [][]string{
		{"--timeout", "5s"},
		{"--timeout=5s"},
		{"-timeout", "5s"},
	} {
		opts, _, err := flags.Parse(args)

		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(opts.Timeout).To(Equal(5 * time.Second))
	}
}

func TestParse_BadTimeoutValue(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, _, err := flags.Parse([]string{"--timeout", "soon"})

	g.Expect(err).To(HaveOccurred())
}

func TestParse_MissingTimeoutValue(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, _, err := flags.Parse([]string{"--timeout"})

	g.Expect(err).To(MatchError(flags.ErrMissingValue))
}

func TestParse_BoolFlags(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	opts, _, err := flags.Parse([]string{"-v", "--list", "--help"})

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(opts.Verbose).To(BeTrue())
	g.Expect(opts.List).To(BeTrue())
	g.Expect(opts.Help).To(BeTrue())
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, _, err := flags.Parse([]string{"--frobnicate"})

	g.Expect(err).To(MatchError(flags.ErrUnknownFlag))
}

func TestParse_DoubleDashEndsFlagParsing(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	opts, patterns, err := flags.Parse([]string{"-v", "--", "-looks-like-a-flag"})

	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(opts.Verbose).To(BeTrue())
	g.Expect(patterns).To(Equal([]string{"-looks-like-a-flag"}))
}

func TestFind_MatchesLongAndShortForms(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	g.Expect(flags.Find("--timeout")).NotTo(BeNil())
	g.Expect(flags.Find("--timeout=5s").Long).To(Equal("timeout"))
	g.Expect(flags.Find("-h").Long).To(Equal("help"))
	g.Expect(flags.Find("--nope")).To(BeNil())
}

func TestUsage_ListsEveryFlag(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	usage := flags.Usage()

	for _, f := range flags.All {
		g.Expect(usage).To(ContainSubstring("--" + f.Long))
	}
}

func TestProperty_NonFlagArgsAreNeverDropped(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		g := NewWithT(t)

		args := rapid.SliceOfN(
			rapid.StringMatching(`[a-z./*]{1,10}`),
			0, 5,
		).Draw(t, "args")

		_, patterns, err := flags.Parse(args)

		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(patterns).To(HaveLen(len(args)))

		for i, arg := range args {
			g.Expect(patterns[i]).To(Equal(arg))
		}
	})
}
