// Package metrics provides Prometheus metrics for planshift: idle
// state, AFK engine transitions, and active-plan reconciliation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Idle ───────────────────────────────────────────────────────────────────

// IdleSeconds tracks the last observed idle duration.
var IdleSeconds = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "planshift",
	Name:      "idle_seconds",
	Help:      "Seconds since the last user input event, as of the last AFK tick.",
})

// ─── AFK Engine ─────────────────────────────────────────────────────────────

// AfkForced reports whether the engine currently holds the away plan
// (1=forced, 0=inactive).
var AfkForced = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "planshift",
	Name:      "afk_forced",
	Help:      "Whether the AFK engine has forced the away plan (1=forced).",
})

// AfkSwitches counts engine-initiated plan switches by direction.
var AfkSwitches = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "planshift",
	Name:      "afk_switches_total",
	Help:      "Engine-initiated plan switches.",
}, []string{"direction"}) // "force" or "restore"

// ─── Reconciliation ─────────────────────────────────────────────────────────

// Reconciles counts tracker reconcile runs by trigger.
var Reconciles = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "planshift",
	Name:      "reconciles_total",
	Help:      "Active-plan reconcile runs.",
}, []string{"trigger"}) // "poll" or "notify"

// PlanChanges counts observed active-plan changes by source.
var PlanChanges = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "planshift",
	Name:      "plan_changes_total",
	Help:      "Observed changes of the active power plan.",
}, []string{"source"})
