package sqlite

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/planshift/planshift/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

var _ domain.SettingsStore = (*DB)(nil)

// ─── Settings Tests ─────────────────────────────────────────────────────────

func TestLoadAfkConfigDefaults(t *testing.T) {
	db := newTestDB(t)

	cfg, err := db.LoadAfkConfig()
	if err != nil {
		t.Fatalf("LoadAfkConfig() error: %v", err)
	}
	if cfg.TimeoutMinutes != 0 {
		t.Errorf("TimeoutMinutes = %d, want 0", cfg.TimeoutMinutes)
	}
	if cfg.TargetPlan != domain.NoPlan {
		t.Errorf("TargetPlan = %s, want unset", cfg.TargetPlan)
	}
}

func TestAfkConfigRoundTrip(t *testing.T) {
	db := newTestDB(t)

	want := domain.AfkConfig{
		TimeoutMinutes: 15,
		TargetPlan:     uuid.MustParse("a1841308-3541-4fab-bc81-f71556f20b4a"),
	}
	if err := db.SaveAfkConfig(want); err != nil {
		t.Fatalf("SaveAfkConfig() error: %v", err)
	}

	got, err := db.LoadAfkConfig()
	if err != nil {
		t.Fatalf("LoadAfkConfig() error: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}

	// save(load()) is a fixed point: persisted bytes stay identical.
	if err := db.SaveAfkConfig(got); err != nil {
		t.Fatalf("second SaveAfkConfig() error: %v", err)
	}
	again, err := db.LoadAfkConfig()
	if err != nil {
		t.Fatalf("second LoadAfkConfig() error: %v", err)
	}
	if again != want {
		t.Errorf("second round trip = %+v, want %+v", again, want)
	}
}

func TestSaveAfkConfigOverwrites(t *testing.T) {
	db := newTestDB(t)

	first := domain.AfkConfig{TimeoutMinutes: 5, TargetPlan: uuid.New()}
	if err := db.SaveAfkConfig(first); err != nil {
		t.Fatalf("SaveAfkConfig() error: %v", err)
	}

	second := domain.AfkConfig{TimeoutMinutes: 0, TargetPlan: domain.NoPlan}
	if err := db.SaveAfkConfig(second); err != nil {
		t.Fatalf("SaveAfkConfig() error: %v", err)
	}

	got, err := db.LoadAfkConfig()
	if err != nil {
		t.Fatalf("LoadAfkConfig() error: %v", err)
	}
	if got != second {
		t.Errorf("config = %+v, want %+v", got, second)
	}
}

func TestLoadAfkConfigMalformed(t *testing.T) {
	db := newTestDB(t)

	// Garbage timeout and a truncated target must degrade to defaults.
	if _, err := db.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?), (?, ?)`,
		keyAfkTimeoutMinutes, []byte("not-a-number"),
		keyAfkTargetPlan, []byte{0x01, 0x02},
	); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cfg, err := db.LoadAfkConfig()
	if err != nil {
		t.Fatalf("LoadAfkConfig() error: %v", err)
	}
	if cfg.TimeoutMinutes != 0 || cfg.TargetPlan != domain.NoPlan {
		t.Errorf("malformed settings should default, got %+v", cfg)
	}
}

// ─── Journal Tests ──────────────────────────────────────────────────────────

func TestPlanHistoryNewestFirst(t *testing.T) {
	db := newTestDB(t)

	base := time.Now().Add(-time.Hour)
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for i, id := range ids {
		err := db.RecordPlanChange(domain.PlanChange{
			Plan:      id,
			Name:      "Plan",
			Source:    domain.ChangeExternal,
			ChangedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("RecordPlanChange() error: %v", err)
		}
	}

	changes, err := db.PlanHistory(10)
	if err != nil {
		t.Fatalf("PlanHistory() error: %v", err)
	}
	if len(changes) != 3 {
		t.Fatalf("PlanHistory() = %d entries, want 3", len(changes))
	}
	if changes[0].Plan != ids[2] {
		t.Errorf("newest entry = %s, want %s", changes[0].Plan, ids[2])
	}
}

func TestPlanHistoryLimit(t *testing.T) {
	db := newTestDB(t)

	for i := 0; i < 5; i++ {
		if err := db.RecordPlanChange(domain.PlanChange{
			Plan:   uuid.New(),
			Source: domain.ChangeAfk,
		}); err != nil {
			t.Fatalf("RecordPlanChange() error: %v", err)
		}
	}

	changes, err := db.PlanHistory(2)
	if err != nil {
		t.Fatalf("PlanHistory() error: %v", err)
	}
	if len(changes) != 2 {
		t.Errorf("PlanHistory(2) = %d entries, want 2", len(changes))
	}
}
