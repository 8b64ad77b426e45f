// Package status decodes how a finished child process exited.
package status

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Exit codes the exitcheck harness itself reports.
const (
	ExitPass  = 0 // every probe honored the contract
	ExitFail  = 1 // at least one probe failed
	ExitUsage = 2 // bad flags or patterns
)

// Status describes how a process exited: its exit code and, on platforms
// that report it, the signal that killed it.
type Status struct {
	Code     int
	Signal   string
	Signaled bool
}

// FromError extracts a Status from the error returned by exec.Cmd.Wait or
// exec.Cmd.Run. A nil error is a clean zero exit. The second return is
// false when the error does not describe a finished process (e.g. a start
// failure), in which case the Status is meaningless.
func FromError(err error) (Status, bool) {
	if err == nil {
		return Status{}, true
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return FromState(exitErr.ProcessState), true
	}

	return Status{}, false
}

// FromState decodes a finished process state.
func FromState(state *os.ProcessState) Status {
	if st := decodeSignal(state); st.Signaled {
		return st
	}

	return Status{Code: state.ExitCode()}
}

// String renders the status for failure reasons.
func (s Status) String() string {
	if s.Signaled {
		return fmt.Sprintf("signal: %s (code %d)", s.Signal, s.Code)
	}

	return fmt.Sprintf("exit code %d", s.Code)
}
