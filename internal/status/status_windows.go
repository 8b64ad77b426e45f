//go:build windows

package status

import "os"

// Windows has no signal-death notion; the exit code carries everything.
func decodeSignal(*os.ProcessState) Status {
	return Status{}
}
