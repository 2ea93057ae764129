package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestAfkPhaseString(t *testing.T) {
	tests := []struct {
		phase AfkPhase
		want  string
	}{
		{AfkInactive, "inactive"},
		{AfkForced, "forced"},
		{AfkPhase(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.phase.String(); got != tt.want {
			t.Errorf("AfkPhase(%d).String() = %q, want %q", tt.phase, got, tt.want)
		}
	}
}

func TestAfkConfigEnabled(t *testing.T) {
	if (AfkConfig{}).Enabled() {
		t.Error("zero config should be disabled")
	}
	if !(AfkConfig{TimeoutMinutes: 5}).Enabled() {
		t.Error("timeout 5 should be enabled")
	}
}

func TestAfkConfigThresholdSeconds(t *testing.T) {
	cfg := AfkConfig{TimeoutMinutes: 5, TargetPlan: uuid.New()}
	if got := cfg.ThresholdSeconds(); got != 300 {
		t.Errorf("ThresholdSeconds() = %d, want 300", got)
	}
}
