//go:build !windows

package status

import (
	"os"
	"syscall"
)

// signalExitBase follows the shell convention of reporting signal death
// as 128 plus the signal number.
const signalExitBase = 128

func decodeSignal(state *os.ProcessState) Status {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return Status{}
	}

	sig := ws.Signal()

	return Status{
		Code:     signalExitBase + int(sig),
		Signal:   sig.String(),
		Signaled: true,
	}
}
