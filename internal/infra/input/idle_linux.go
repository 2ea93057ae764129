//go:build linux

package input

import (
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// osIdleDuration returns how long the user has been idle on Linux.
// Prefers xprintidle (X11 idle time in milliseconds); without it the
// framebuffer modification time serves as a rough heuristic. When
// neither works it reports 0, which the engine treats as active: a
// session we cannot observe is never forced away.
func osIdleDuration() time.Duration {
	if out, err := exec.Command("xprintidle").Output(); err == nil {
		ms, perr := strconv.ParseInt(strings.TrimSpace(string(out)), 10, 64)
		if perr == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}

	if info, err := os.Stat("/sys/class/graphics/fb0"); err == nil {
		return time.Since(info.ModTime())
	}
	return 0
}
