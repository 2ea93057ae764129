package power

import (
	"sync"

	"github.com/google/uuid"

	"github.com/planshift/planshift/internal/domain"
)

// ─── Mock Registry (for tests and unsupported platforms) ────────────────────

// MockRegistry is an in-memory PlanRegistry. It records every activation
// request so tests can assert on exact call counts.
type MockRegistry struct {
	mu     sync.Mutex
	plans  []domain.PowerPlan
	active uuid.UUID

	activeErr error
	setErr    error

	setCalls []uuid.UUID
}

// NewMockRegistry creates a mock registry over the given plans. With no
// plans it seeds a conventional trio and activates the first one.
func NewMockRegistry(plans ...domain.PowerPlan) *MockRegistry {
	if len(plans) == 0 {
		plans = []domain.PowerPlan{
			{ID: ProfileID("balanced"), Name: "Balanced"},
			{ID: ProfileID("performance"), Name: "Performance"},
			{ID: ProfileID("low-power"), Name: "Power saver"},
		}
	}
	return &MockRegistry{plans: plans, active: plans[0].ID}
}

func (m *MockRegistry) Plans() ([]domain.PowerPlan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.PowerPlan, len(m.plans))
	copy(out, m.plans)
	return out, nil
}

func (m *MockRegistry) Active() (uuid.UUID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.activeErr != nil {
		return domain.NoPlan, m.activeErr
	}
	return m.active, nil
}

// SetActive records the request before validating it, so call counts
// reflect requests issued rather than requests honored.
func (m *MockRegistry) SetActive(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls = append(m.setCalls, id)
	if m.setErr != nil {
		return m.setErr
	}
	for _, p := range m.plans {
		if p.ID == id {
			m.active = id
			return nil
		}
	}
	return domain.ErrPlanNotFound
}

// SetActiveCalls returns a copy of all recorded activation requests.
func (m *MockRegistry) SetActiveCalls() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uuid.UUID, len(m.setCalls))
	copy(out, m.setCalls)
	return out
}

// ForceActive overrides the active plan without recording a request,
// simulating an external change.
func (m *MockRegistry) ForceActive(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = id
}

// FailActive makes Active return err until cleared with nil.
func (m *MockRegistry) FailActive(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeErr = err
}

// FailSetActive makes SetActive return err until cleared with nil.
// Requests are still recorded.
func (m *MockRegistry) FailSetActive(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setErr = err
}
