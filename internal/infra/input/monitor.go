// Package input reports user inactivity through platform input APIs
// (Windows GetLastInputInfo, macOS HIDIdleTime, X11 xprintidle).
package input

import "time"

// Monitor reports seconds since the last user input event. It wraps the
// per-platform probe and clamps failures and clock skew to zero, which
// the AFK engine treats as "active".
type Monitor struct{}

// NewMonitor creates an idle monitor.
func NewMonitor() *Monitor { return &Monitor{} }

// IdleSeconds implements domain.IdleMonitor.
func (m *Monitor) IdleSeconds() uint64 {
	d := osIdleDuration()
	if d < 0 {
		return 0
	}
	return uint64(d / time.Second)
}
