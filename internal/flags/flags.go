// Package flags provides the centralized flag registry for exitcheck.
// Parsing, help text, and detection logic all derive from this registry.
package flags

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// All is the complete registry of exitcheck flags.
//
//nolint:gochecknoglobals // Read-only flag registry, initialized once.
var All = []Def{
	{Long: "help", Short: "h", Desc: "Show help"},
	{
		Long:        "timeout",
		Desc:        "Per-probe execution timeout",
		Placeholder: "DURATION",
		TakesValue:  true,
	},
	{Long: "verbose", Short: "v", Desc: "Show exit status for passing probes too"},
	{Long: "list", Short: "l", Desc: "List matched probe binaries without running them"},
}

// Exported errors for flag parsing failures.
var (
	ErrMissingValue = errors.New("flag requires a value")
	ErrUnknownFlag  = errors.New("unknown flag")
)

// Def describes a CLI flag for parsing and help.
type Def struct {
	Long        string // without "--", e.g. "timeout"
	Short       string // without "-", e.g. "v" (empty if none)
	Desc        string // help text
	Placeholder string // value placeholder (empty if TakesValue is false)
	TakesValue  bool   // consumes next arg as value
}

// Options holds the parsed flag values.
type Options struct {
	Timeout time.Duration
	Verbose bool
	List    bool
	Help    bool
}

// Find returns the flag def matching arg (e.g. "--timeout", "-v"), or nil.
// Single-dash long forms ("-timeout") are accepted too.
func Find(arg string) *Def {
	name := strings.TrimLeft(arg, "-")
	if idx := strings.Index(name, "="); idx >= 0 {
		name = name[:idx]
	}

	for i := range All {
		if All[i].Long == name || All[i].Short == name {
			return &All[i]
		}
	}

	return nil
}

// Parse splits args into parsed options and positional probe patterns.
// A bare "--" ends flag parsing; everything after it is positional.
func Parse(args []string) (Options, []string, error) {
	var (
		opts     Options
		patterns []string
	)

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			patterns = append(patterns, args[i+1:]...)

			break
		}

		if !strings.HasPrefix(arg, "-") {
			patterns = append(patterns, arg)

			continue
		}

		def := Find(arg)
		if def == nil {
			return Options{}, nil, fmt.Errorf("%w: %s", ErrUnknownFlag, arg)
		}

		value := ""

		if def.TakesValue {
			if idx := strings.Index(arg, "="); idx >= 0 {
				value = arg[idx+1:]
			} else {
				i++
				if i >= len(args) {
					return Options{}, nil, fmt.Errorf("%w: --%s", ErrMissingValue, def.Long)
				}

				value = args[i]
			}
		}

		err := apply(&opts, def, value)
		if err != nil {
			return Options{}, nil, err
		}
	}

	return opts, patterns, nil
}

// Usage returns the flag help lines, one flag per line.
func Usage() string {
	var b strings.Builder

	for _, f := range All {
		name := "--" + f.Long
		if f.Short != "" {
			name += ", -" + f.Short
		}

		if f.TakesValue {
			name += " " + f.Placeholder
		}

		_, _ = fmt.Fprintf(&b, "  %-24s %s\n", name, f.Desc)
	}

	return b.String()
}

func apply(opts *Options, def *Def, value string) error {
	switch def.Long {
	case "help":
		opts.Help = true
	case "verbose":
		opts.Verbose = true
	case "list":
		opts.List = true
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("parsing --timeout: %w", err)
		}

		opts.Timeout = d
	}

	return nil
}
