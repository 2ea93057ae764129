package domain

import "github.com/google/uuid"

// ─── Service Interfaces ─────────────────────────────────────────────────────
// These interfaces define boundaries between layers.
// Infrastructure implements them; the application layer depends on them.

// PlanRegistry abstracts the OS power-plan store.
type PlanRegistry interface {
	// Plans enumerates available plans in OS enumeration order.
	// The order may change between calls.
	Plans() ([]PowerPlan, error)

	// Active returns the currently active plan identifier.
	Active() (uuid.UUID, error)

	// SetActive requests activation of the given plan. Best-effort:
	// callers must tolerate failure.
	SetActive(id uuid.UUID) error
}

// IdleMonitor reports elapsed seconds since the last user input event.
// Never negative; failures and clock skew clamp to 0.
type IdleMonitor interface {
	IdleSeconds() uint64
}

// SettingsStore persists the AFK configuration across restarts.
type SettingsStore interface {
	// LoadAfkConfig returns the stored config. Missing or malformed
	// fields default to a disabled config with no target.
	LoadAfkConfig() (AfkConfig, error)

	// SaveAfkConfig writes the config. Fire-and-forget from the
	// engine's perspective.
	SaveAfkConfig(AfkConfig) error
}

// ChangeNotifier delivers asynchronous "power configuration changed"
// events from the OS. Used only to shorten reconciliation latency;
// polling is the authoritative fallback.
type ChangeNotifier interface {
	Events() <-chan struct{}
	Close() error
}
