package daemon

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/planshift/planshift/internal/domain"
)

func TestAcquireAndRelease(t *testing.T) {
	dir := t.TempDir()

	lock, err := acquireLock(dir)
	if err != nil {
		t.Fatalf("acquireLock() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "planshift.pid"))
	if err != nil {
		t.Fatalf("pidfile not written: %v", err)
	}
	if string(data) != strconv.Itoa(os.Getpid()) {
		t.Errorf("pidfile = %q, want own pid", data)
	}

	lock.release()
	if _, err := os.Stat(filepath.Join(dir, "planshift.pid")); !os.IsNotExist(err) {
		t.Error("pidfile still present after release")
	}
	lock.release() // second release is a no-op
}

func TestLiveOwnerRefused(t *testing.T) {
	dir := t.TempDir()

	// The test runner's parent process is certainly alive.
	ppid := strconv.Itoa(os.Getppid())
	if err := os.WriteFile(filepath.Join(dir, "planshift.pid"), []byte(ppid), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := acquireLock(dir)
	if !errors.Is(err, domain.ErrAlreadyRunning) {
		t.Errorf("acquireLock() error = %v, want ErrAlreadyRunning", err)
	}
}

func TestStalePidfileReplaced(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "planshift.pid"), []byte("not-a-pid"), 0644); err != nil {
		t.Fatal(err)
	}

	lock, err := acquireLock(dir)
	if err != nil {
		t.Fatalf("acquireLock() over stale pidfile: %v", err)
	}
	lock.release()
}
