// Command exitprobe is a positive conformance probe for process
// termination. It ends its own process with the success status before
// doing anything else: no arguments are read, no output is written, and
// no setup of any kind runs first. The final os.Exit carries the failure
// status and is reachable only when the exiter fails to terminate the
// process (see exiter_fault.go).
package main

import (
	"os"

	"github.com/probeware/exitcheck/probe"
)

func main() {
	os.Exit(probe.Main(exiter))
}
