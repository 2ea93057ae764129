//go:build darwin

package input

import (
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// osIdleDuration returns how long the user has been idle on macOS.
// Uses ioreg to query HIDIdleTime (in nanoseconds).
func osIdleDuration() time.Duration {
	out, err := exec.Command("ioreg", "-c", "IOHIDSystem", "-d", "4").Output()
	if err != nil {
		return 0
	}
	for _, line := range strings.Split(string(out), "\n") {
		if !strings.Contains(line, "HIDIdleTime") {
			continue
		}
		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			continue
		}
		ns, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err == nil {
			return time.Duration(ns)
		}
	}
	return 0
}
