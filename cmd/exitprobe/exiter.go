//go:build !faultinject

package main

import "github.com/probeware/exitcheck/probe"

// The real probe terminates through the raw primitive.
//
//nolint:gochecknoglobals // build-tag selected wiring
var exiter probe.Exiter = probe.RawExiter{}
