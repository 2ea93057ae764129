//go:build linux

package power

import (
	"github.com/fsnotify/fsnotify"

	"github.com/planshift/planshift/internal/domain"
)

// Notifier watches the platform_profile sysfs node and emits an event
// whenever it is written. Not every kernel raises inotify events on
// sysfs writes, so this only shortens reconciliation latency; the
// periodic poll remains authoritative.
type Notifier struct {
	watcher *fsnotify.Watcher
	events  chan struct{}
	done    chan struct{}
}

// NewChangeNotifier starts watching the active platform profile.
func NewChangeNotifier() (domain.ChangeNotifier, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(profilePath); err != nil {
		w.Close()
		return nil, err
	}
	n := &Notifier{
		watcher: w,
		events:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go n.loop()
	return n, nil
}

func (n *Notifier) loop() {
	for {
		select {
		case <-n.done:
			return
		case ev, ok := <-n.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Chmod) != 0 {
				// Coalesce: one pending event is enough, the handler
				// re-reads the current state anyway.
				select {
				case n.events <- struct{}{}:
				default:
				}
			}
		case _, ok := <-n.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (n *Notifier) Events() <-chan struct{} { return n.events }

func (n *Notifier) Close() error {
	close(n.done)
	return n.watcher.Close()
}
