//go:build !windows

package daemon

import (
	"os"
	"syscall"
)

// processAlive reports whether pid names a running process. Signal 0
// performs the permission and existence checks without delivering
// anything.
func processAlive(pid int) bool {
	p, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return p.Signal(syscall.Signal(0)) == nil
}
