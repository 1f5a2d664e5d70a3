//go:build !windows

package printer

import "syscall"

// killProcessGroup sends SIGKILL to the process group led by pid.
func killProcessGroup(pid int) {
	// launcher.Kill runs afterwards, so the error can be ignored.
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}
