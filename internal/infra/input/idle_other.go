//go:build !windows && !linux && !darwin

package input

import "time"

// osIdleDuration has no probe on this platform; report active.
func osIdleDuration() time.Duration { return 0 }
