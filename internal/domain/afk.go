package domain

import "github.com/google/uuid"

// AfkConfig is the persisted AFK configuration. It is the sole source of
// truth across restarts; runtime state never persists.
type AfkConfig struct {
	TimeoutMinutes uint      `json:"timeout_minutes"` // 0 disables the feature
	TargetPlan     uuid.UUID `json:"target_plan"`     // NoPlan = no target chosen
}

// Enabled reports whether the AFK switch is active.
func (c AfkConfig) Enabled() bool { return c.TimeoutMinutes > 0 }

// ThresholdSeconds returns the idle threshold in seconds.
func (c AfkConfig) ThresholdSeconds() uint64 { return uint64(c.TimeoutMinutes) * 60 }

// AfkPhase is the AFK engine state.
type AfkPhase int

const (
	AfkInactive AfkPhase = iota // engine has not touched the active plan
	AfkForced                   // engine switched to the away plan itself
)

// String returns the human-readable phase name.
func (p AfkPhase) String() string {
	switch p {
	case AfkInactive:
		return "inactive"
	case AfkForced:
		return "forced"
	default:
		return "unknown"
	}
}

// AfkState is the transient engine state, process lifetime only.
// PreviousPlan is meaningful only while Phase == AfkForced and holds the
// plan that was active immediately before the forced switch.
type AfkState struct {
	Phase        AfkPhase  `json:"phase"`
	PreviousPlan uuid.UUID `json:"previous_plan"`
}
