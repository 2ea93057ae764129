// Package domain holds the planshift data model: power plans, AFK
// configuration, and the interfaces between layers. Domain types are
// pure — no infrastructure dependency beyond plan identifiers.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// NoPlan is the unset plan identifier (the all-zero GUID).
var NoPlan = uuid.Nil

// PowerPlan is one OS power configuration. The ID is the stable 128-bit
// identifier the OS uses (a real GUID on Windows, a derived UUIDv5 on
// platforms that name profiles by string).
type PowerPlan struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Change sources recorded in the plan-change journal.
const (
	ChangeManual   = "manual"   // user action through CLI or API
	ChangeAfk      = "afk"      // AFK engine forced the away plan
	ChangeRestore  = "restore"  // AFK engine restored the prior plan
	ChangeExternal = "external" // observed by reconciliation, cause unknown
)

// PlanChange is one observed change of the active plan.
type PlanChange struct {
	Plan      uuid.UUID `json:"plan"`
	Name      string    `json:"name"`
	Source    string    `json:"source"`
	ChangedAt time.Time `json:"changed_at"`
}
