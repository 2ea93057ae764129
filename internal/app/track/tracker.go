// Package track keeps the last known active power plan current,
// whatever caused it to change: this process, another program, or the
// OS itself. Reconciliation runs from two triggers — a periodic poll
// and an asynchronous change notification — feeding one idempotent
// entry point.
package track

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/planshift/planshift/internal/domain"
)

// Tracker owns the shared last-known-active-plan value.
type Tracker struct {
	mu       sync.Mutex
	registry domain.PlanRegistry
	last     uuid.UUID
	onChange func(domain.PlanChange)
}

// New creates a tracker and seeds the last known value from the
// registry. Seeding does not signal: startup is not a change.
func New(registry domain.PlanRegistry, onChange func(domain.PlanChange)) *Tracker {
	t := &Tracker{registry: registry, onChange: onChange}
	if id, err := registry.Active(); err == nil {
		t.last = id
	}
	return t
}

// Reconcile reads the current active plan and compares it to the last
// known value. On mismatch it stores the new value and signals the
// change callback with source "external". Safe to call from any
// trigger, any number of times; most recent read wins. Read failures
// leave the last known value alone.
func (t *Tracker) Reconcile() {
	id, err := t.registry.Active()
	if err != nil {
		return
	}
	t.update(id, domain.ChangeExternal)
}

// Note records a plan change this process caused itself, keeping the
// shared value in sync and attributing the journal entry to source.
func (t *Tracker) Note(id uuid.UUID, source string) {
	t.update(id, source)
}

func (t *Tracker) update(id uuid.UUID, source string) {
	t.mu.Lock()
	changed := id != t.last
	if changed {
		t.last = id
	}
	t.mu.Unlock()

	if changed && t.onChange != nil {
		t.onChange(domain.PlanChange{
			Plan:      id,
			Name:      t.planName(id),
			Source:    source,
			ChangedAt: time.Now(),
		})
	}
}

// Last returns the last known active plan identifier.
func (t *Tracker) Last() uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// ActivePlanName resolves the last known active plan to its display
// name against a fresh enumeration. Empty when unknown.
func (t *Tracker) ActivePlanName() string {
	return t.planName(t.Last())
}

func (t *Tracker) planName(id uuid.UUID) string {
	plans, err := t.registry.Plans()
	if err != nil {
		return ""
	}
	for _, p := range plans {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}
