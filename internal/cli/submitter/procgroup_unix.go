//go:build unix

package submitter

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// isolate starts cmd in its own process group. Cancellation kills the
// whole group, including children that still hold the output pipes.
func isolate(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	}
}
