//go:build faultinject

package main

import "github.com/probeware/exitcheck/probe"

// Fault-injected build: the exiter does nothing, so the probe falls
// through to the failure status. Used to validate that the harness can
// tell a broken termination primitive from a working one.
//
//nolint:gochecknoglobals // build-tag selected wiring
var exiter probe.Exiter = probe.Nop{}
