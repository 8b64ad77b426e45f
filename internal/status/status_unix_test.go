//go:build !windows

package status_test

import (
	"syscall"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/probeware/exitcheck/internal/status"
)

func TestFromError_SignaledProcess(t *testing.T) {
	g := NewWithT(t)

	cmd := helperCommand("hang", "")

	err := cmd.Start()
	g.Expect(err).NotTo(HaveOccurred())

	err = cmd.Process.Kill()
	g.Expect(err).NotTo(HaveOccurred())

	waitErr := cmd.Wait()

	st, ok := status.FromError(waitErr)
	g.Expect(ok).To(BeTrue())
	g.Expect(st.Signaled).To(BeTrue())
	g.Expect(st.Signal).To(Equal(syscall.SIGKILL.String()))
	g.Expect(st.Code).To(Equal(128 + int(syscall.SIGKILL)))
	g.Expect(st.String()).To(ContainSubstring("signal"))
}
