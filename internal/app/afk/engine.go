// Package afk implements the away-from-keyboard plan switch: a
// two-state machine evaluated once per tick that forces a designated
// plan after sustained inactivity and restores the prior plan when
// activity resumes.
package afk

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/planshift/planshift/internal/app/track"
	"github.com/planshift/planshift/internal/domain"
	"github.com/planshift/planshift/internal/infra/metrics"
)

// Engine holds the AFK configuration and transient runtime state.
// All OS calls are best-effort: failures never stop a tick, and the
// state machine transitions optimistically even when an activation
// request fails (see DESIGN.md).
type Engine struct {
	registry domain.PlanRegistry
	idle     domain.IdleMonitor
	store    domain.SettingsStore
	tracker  *track.Tracker

	// mu guards cfg and state. Ticks run on the scheduler goroutine;
	// mutations arrive from API handlers.
	mu    sync.Mutex
	cfg   domain.AfkConfig
	state domain.AfkState
}

// NewEngine creates the engine and loads the persisted configuration.
// Runtime state always starts at {inactive, no previous plan}.
func NewEngine(registry domain.PlanRegistry, idle domain.IdleMonitor, store domain.SettingsStore, tracker *track.Tracker) *Engine {
	e := &Engine{
		registry: registry,
		idle:     idle,
		store:    store,
		tracker:  tracker,
	}
	cfg, err := store.LoadAfkConfig()
	if err != nil {
		log.Printf("[afk] load settings: %v (starting disabled)", err)
		cfg = domain.AfkConfig{}
	}
	e.cfg = cfg
	return e
}

// Tick evaluates the state machine once. Called on a 1-second cadence.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.cfg.Enabled() {
		// Disabling is an immediate restore obligation.
		if e.state.Phase == domain.AfkForced {
			e.restoreLocked()
		}
		return
	}

	idle := e.idle.IdleSeconds()
	metrics.IdleSeconds.Set(float64(idle))
	threshold := e.cfg.ThresholdSeconds()

	switch {
	case e.state.Phase == domain.AfkInactive && idle >= threshold:
		e.forceLocked()
	case e.state.Phase == domain.AfkForced && idle < threshold:
		e.restoreLocked()
	}
	// Repeated ticks in either steady state are no-ops: once forced,
	// no further activation requests until conditions change.
}

// forceLocked switches to the target plan, recording the prior one.
// With no target chosen nothing happens; idle time alone never causes
// an activation request.
func (e *Engine) forceLocked() {
	if e.cfg.TargetPlan == domain.NoPlan {
		return
	}

	cur, err := e.registry.Active()
	if err != nil {
		cur = domain.NoPlan // previous unreadable; restore becomes a no-op
	}
	if cur != e.cfg.TargetPlan {
		if err := e.registry.SetActive(e.cfg.TargetPlan); err != nil {
			log.Printf("[afk] activate away plan: %v", err)
		}
		e.tracker.Note(e.cfg.TargetPlan, domain.ChangeAfk)
		metrics.AfkSwitches.WithLabelValues("force").Inc()
	}

	e.state = domain.AfkState{Phase: domain.AfkForced, PreviousPlan: cur}
	metrics.AfkForced.Set(1)
}

// restoreLocked reactivates the pre-forced plan and clears the state.
// With no recorded previous plan, or when it is already active, no
// activation request is issued.
func (e *Engine) restoreLocked() {
	prev := e.state.PreviousPlan
	if prev != domain.NoPlan {
		cur, _ := e.registry.Active()
		if cur != prev {
			if err := e.registry.SetActive(prev); err != nil {
				log.Printf("[afk] restore plan: %v", err)
			}
			e.tracker.Note(prev, domain.ChangeRestore)
			metrics.AfkSwitches.WithLabelValues("restore").Inc()
		}
	}

	e.state = domain.AfkState{Phase: domain.AfkInactive}
	metrics.AfkForced.Set(0)
}

// SetTimeout updates the idle threshold and persists immediately.
// The new value takes effect on the next tick; a running forced state
// is not re-evaluated retroactively.
func (e *Engine) SetTimeout(minutes uint) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.TimeoutMinutes = minutes
	e.saveLocked()
}

// SetTarget updates the away plan and persists immediately.
func (e *Engine) SetTarget(id uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.TargetPlan = id
	e.saveLocked()
}

// Disable turns the feature off. If the away plan is currently forced,
// the prior plan is restored synchronously before timeout 0 persists.
func (e *Engine) Disable() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg.TimeoutMinutes = 0
	if e.state.Phase == domain.AfkForced {
		e.restoreLocked()
	}
	e.saveLocked()
}

// saveLocked persists the config. Failure is logged and otherwise
// ignored; the in-memory change stays effective for this session.
func (e *Engine) saveLocked() {
	if err := e.store.SaveAfkConfig(e.cfg); err != nil {
		log.Printf("[afk] save settings: %v", err)
	}
}

// Config returns the current AFK configuration.
func (e *Engine) Config() domain.AfkConfig {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cfg
}

// State returns the transient runtime state.
func (e *Engine) State() domain.AfkState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}
