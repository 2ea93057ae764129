package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/planshift/planshift/internal/domain"
)

// lockFile guards against two daemons reconciling the same machine.
type lockFile struct {
	path     string
	released bool
}

// acquireLock claims the pidfile in dir. A pidfile whose owner is no
// longer running is stale and gets replaced; a live owner means a
// second daemon, which is refused with ErrAlreadyRunning.
func acquireLock(dir string) (*lockFile, error) {
	path := filepath.Join(dir, "planshift.pid")

	if data, err := os.ReadFile(path); err == nil {
		pid, perr := strconv.Atoi(strings.TrimSpace(string(data)))
		if perr == nil && pid != os.Getpid() && processAlive(pid) {
			return nil, fmt.Errorf("%w (pid %d)", domain.ErrAlreadyRunning, pid)
		}
		// Stale leftover from a crashed run.
		_ = os.Remove(path)
	}

	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0644); err != nil {
		return nil, fmt.Errorf("write pidfile: %w", err)
	}
	return &lockFile{path: path}, nil
}

func (l *lockFile) release() {
	if l.released {
		return
	}
	l.released = true
	_ = os.Remove(l.path)
}
