//go:build windows

package harness

import "os/exec"

// setProcGroup is a no-op on Windows. Job Objects would be needed for
// full process tree management.
func setProcGroup(*exec.Cmd) {}

// killProcessGroup kills the probe on Windows. Children may survive;
// Job Objects would be needed for full tree cleanup.
func killProcessGroup(cmd *exec.Cmd) {
	if cmd.Process != nil {
		_ = cmd.Process.Kill()
	}
}
