package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Plan registry errors
	ErrPlanNotFound  = errors.New("power plan not found")
	ErrActiveUnknown = errors.New("active power plan could not be read")
	ErrUnsupported   = errors.New("power plans are not supported on this platform")

	// Daemon errors
	ErrAlreadyRunning = errors.New("planshift daemon is already running")
	ErrDaemonDown     = errors.New("planshift daemon is not running")
)
