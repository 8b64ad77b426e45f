// Package main provides the exitcheck CLI for running process-termination
// conformance probes.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/probeware/exitcheck/internal/discover"
	"github.com/probeware/exitcheck/internal/flags"
	"github.com/probeware/exitcheck/internal/harness"
	"github.com/probeware/exitcheck/internal/report"
	"github.com/probeware/exitcheck/internal/status"
	"github.com/probeware/exitcheck/probe"
)

func main() {
	os.Exit(runMain())
}

func runMain() int {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	c := &checkRunner{
		args:   os.Args[1:],
		out:    os.Stdout,
		errOut: os.Stderr,
		env:    harness.OSRunEnv{},
	}

	return c.run(ctx)
}

// checkRunner holds state for a single exitcheck invocation.
type checkRunner struct {
	args   []string
	out    io.Writer
	errOut io.Writer
	env    harness.RunEnv
}

func (c *checkRunner) run(ctx context.Context) int {
	opts, patterns, err := flags.Parse(c.args)
	if err != nil {
		fmt.Fprintln(c.errOut, "error:", err)

		return status.ExitUsage
	}

	if opts.Help {
		c.printUsage()

		return status.ExitPass
	}

	probes, err := discover.Probes(patterns...)
	if err != nil {
		fmt.Fprintln(c.errOut, "error:", err)

		return status.ExitUsage
	}

	if len(probes) == 0 {
		fmt.Fprintln(c.errOut, "error: no probe binaries matched")

		return status.ExitUsage
	}

	if opts.List {
		for _, p := range probes {
			fmt.Fprintln(c.out, p)
		}

		return status.ExitPass
	}

	return c.runProbes(ctx, opts, probes)
}

func (c *checkRunner) runProbes(ctx context.Context, opts flags.Options, probes []string) int {
	runner := &harness.Runner{Env: c.env}
	renderer := report.New(c.out)
	renderer.Verbose = opts.Verbose

	passed, failed := 0, 0

	for _, binary := range probes {
		verdict := runner.Run(ctx, harness.Case{
			Name:     filepath.Base(binary),
			Binary:   binary,
			WantCode: probe.StatusPass,
			Timeout:  opts.Timeout,
		})

		renderer.Verdict(verdict)

		if verdict.Passed {
			passed++
		} else {
			failed++
		}
	}

	renderer.Summary(passed, failed)

	if failed > 0 {
		return status.ExitFail
	}

	return status.ExitPass
}

func (c *checkRunner) printUsage() {
	fmt.Fprintln(c.out, "Usage: exitcheck [flags] PATTERN...")
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Runs each probe binary matched by the patterns and checks that it")
	fmt.Fprintln(c.out, "exits with the success status without writing any output.")
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Flags:")
	fmt.Fprint(c.out, flags.Usage())
}
