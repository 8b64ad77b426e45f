//go:build !windows

package harness

import (
	"os/exec"
	"syscall"
)

// setProcGroup configures the probe to run in its own process group so
// the whole tree can be killed on cancellation.
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcessGroup kills the probe and all its children.
func killProcessGroup(cmd *exec.Cmd) {
	if cmd.Process != nil {
		// Kill the entire process group (negative PID)
		_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
