package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/planshift/planshift/internal/app/afk"
	"github.com/planshift/planshift/internal/app/track"
	"github.com/planshift/planshift/internal/domain"
	"github.com/planshift/planshift/internal/infra/power"
)

type stubIdle struct{ secs uint64 }

func (s *stubIdle) IdleSeconds() uint64 { return s.secs }

type memStore struct{ cfg domain.AfkConfig }

func (s *memStore) LoadAfkConfig() (domain.AfkConfig, error) { return s.cfg, nil }
func (s *memStore) SaveAfkConfig(cfg domain.AfkConfig) error { s.cfg = cfg; return nil }

type fakeHistory struct{ changes []domain.PlanChange }

func (f *fakeHistory) PlanHistory(limit int) ([]domain.PlanChange, error) {
	if limit < len(f.changes) {
		return f.changes[:limit], nil
	}
	return f.changes, nil
}

type fixture struct {
	reg    *power.MockRegistry
	idle   *stubIdle
	engine *afk.Engine
	server *Server
	plans  []domain.PowerPlan
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	reg := power.NewMockRegistry()
	plans, err := reg.Plans()
	if err != nil {
		t.Fatalf("Plans() error: %v", err)
	}

	idle := &stubIdle{}
	tr := track.New(reg, nil)
	engine := afk.NewEngine(reg, idle, &memStore{}, tr)
	srv := NewServer(reg, idle, engine, tr, &fakeHistory{})

	return &fixture{reg: reg, idle: idle, engine: engine, server: srv, plans: plans}
}

func (f *fixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
	return out
}

func TestHealthWithoutChecker(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health = %d, want 200", rec.Code)
	}
}

func TestListPlans(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/api/plans", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/plans = %d, want 200", rec.Code)
	}
	out := decode(t, rec)
	plans, ok := out["plans"].([]interface{})
	if !ok || len(plans) != len(f.plans) {
		t.Errorf("plans = %v, want %d entries", out["plans"], len(f.plans))
	}
}

func TestSetActivePlan(t *testing.T) {
	f := newFixture(t)
	target := f.plans[1]

	rec := f.do(t, http.MethodPut, "/api/plans/active", `{"id":"`+target.ID.String()+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT /api/plans/active = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	active, err := f.reg.Active()
	if err != nil {
		t.Fatalf("Active() error: %v", err)
	}
	if active != target.ID {
		t.Errorf("active = %s, want %s", active, target.ID)
	}
	out := decode(t, rec)
	if out["name"] != target.Name {
		t.Errorf("name = %v, want %q", out["name"], target.Name)
	}
}

func TestSetActivePlanErrors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"bad json", `{`, http.StatusBadRequest},
		{"bad uuid", `{"id":"not-a-uuid"}`, http.StatusBadRequest},
		{"unknown plan", `{"id":"00000000-0000-0000-0000-000000000001"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := f.do(t, http.MethodPut, "/api/plans/active", tt.body)
			if rec.Code != tt.code {
				t.Errorf("code = %d, want %d", rec.Code, tt.code)
			}
		})
	}
}

func TestUpdateAfkConfig(t *testing.T) {
	f := newFixture(t)
	target := f.plans[2]

	body := `{"timeout_minutes":15,"target_plan":"` + target.ID.String() + `"}`
	rec := f.do(t, http.MethodPut, "/api/afk", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT /api/afk = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	cfg := f.engine.Config()
	if cfg.TimeoutMinutes != 15 {
		t.Errorf("timeout = %d, want 15", cfg.TimeoutMinutes)
	}
	if cfg.TargetPlan != target.ID {
		t.Errorf("target = %s, want %s", cfg.TargetPlan, target.ID)
	}
}

func TestUpdateAfkConfigEmptyBody(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodPut, "/api/afk", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("PUT /api/afk {} = %d, want 400", rec.Code)
	}
}

func TestClearAfkTarget(t *testing.T) {
	f := newFixture(t)
	f.engine.SetTarget(f.plans[1].ID)

	rec := f.do(t, http.MethodPut, "/api/afk", `{"target_plan":""}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT /api/afk = %d, want 200", rec.Code)
	}
	if got := f.engine.Config().TargetPlan; got != domain.NoPlan {
		t.Errorf("target = %s, want unset", got)
	}
}

func TestDisableRestoresForcedPlan(t *testing.T) {
	f := newFixture(t)

	// Arm and force: away plan is plans[1], idle above threshold.
	f.engine.SetTimeout(5)
	f.engine.SetTarget(f.plans[1].ID)
	f.idle.secs = 301
	f.engine.Tick()
	if f.engine.State().Phase != domain.AfkForced {
		t.Fatal("engine should be forced before disable")
	}

	rec := f.do(t, http.MethodPost, "/api/afk/disable", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /api/afk/disable = %d, want 200", rec.Code)
	}

	if f.engine.State().Phase != domain.AfkInactive {
		t.Error("engine still forced after disable")
	}
	active, _ := f.reg.Active()
	if active != f.plans[0].ID {
		t.Errorf("active = %s, want restored %s", active, f.plans[0].ID)
	}
	if f.engine.Config().TimeoutMinutes != 0 {
		t.Error("disable did not zero the timeout")
	}
}

func TestStatusReportsAfkAndIdle(t *testing.T) {
	f := newFixture(t)
	f.idle.secs = 42

	rec := f.do(t, http.MethodGet, "/api/status", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /api/status = %d, want 200", rec.Code)
	}
	out := decode(t, rec)
	if out["idle_seconds"].(float64) != 42 {
		t.Errorf("idle_seconds = %v, want 42", out["idle_seconds"])
	}
	afkOut := out["afk"].(map[string]interface{})
	state := afkOut["state"].(map[string]interface{})
	if state["phase"] != "inactive" {
		t.Errorf("phase = %v, want inactive", state["phase"])
	}
	if _, present := state["previous_plan"]; present {
		t.Error("previous_plan should be omitted while inactive")
	}
}

func TestHistoryLimitValidation(t *testing.T) {
	f := newFixture(t)

	if rec := f.do(t, http.MethodGet, "/api/history?limit=abc", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("bad limit = %d, want 400", rec.Code)
	}
	if rec := f.do(t, http.MethodGet, "/api/history?limit=5", ""); rec.Code != http.StatusOK {
		t.Errorf("good limit = %d, want 200", rec.Code)
	}
}
