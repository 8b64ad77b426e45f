package probe

import "syscall"

// RawExiter terminates the process through syscall.Exit. Unlike os.Exit,
// syscall.Exit skips the Go runtime's exit hooks (profile flushing,
// os.Exit handlers), so the process ends without any runtime teardown.
// That makes it the closest match for a termination primitive that must
// not depend on runtime initialization having happened.
type RawExiter struct{}

// Exit ends the process immediately with the given status code.
func (RawExiter) Exit(code int) {
	syscall.Exit(code)
}
