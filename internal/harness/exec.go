package harness

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sync"

	"github.com/probeware/exitcheck/internal/status"
)

// OSRunEnv runs probe binaries as real child processes.
type OSRunEnv struct{}

// Run starts the binary in its own process group, captures combined
// stdout/stderr, and waits for it to finish. When ctx is cancelled the
// whole process group is killed.
func (OSRunEnv) Run(ctx context.Context, binary string, args []string) (status.Status, string, error) {
	cmd := exec.Command(binary, args...)

	var buf safeBuffer

	cmd.Stdout = &buf
	cmd.Stderr = &buf
	setProcGroup(cmd)

	err := cmd.Start()
	if err != nil {
		return status.Status{}, "", fmt.Errorf("starting probe: %w", err)
	}

	done := make(chan error, 1)

	go func() {
		done <- cmd.Wait()
	}()

	select {
	case err := <-done:
		st, ok := status.FromError(err)
		if !ok {
			return status.Status{}, buf.String(), fmt.Errorf("waiting for probe: %w", err)
		}

		return st, buf.String(), nil
	case <-ctx.Done():
		killProcessGroup(cmd)
		<-done

		return status.Status{}, buf.String(), fmt.Errorf("probe cancelled: %w", ctx.Err())
	}
}

// safeBuffer is a thread-safe buffer for concurrent writes from the
// child's stdout and stderr pipes.
type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n, err := b.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to buffer: %w", err)
	}

	return n, nil
}
