//go:build windows

package printer

import (
	"os/exec"
	"strconv"
)

// killProcessGroup force-kills pid and its child processes.
func killProcessGroup(pid int) {
	// launcher.Kill runs afterwards, so the error can be ignored.
	_ = exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(pid)).Run()
}
