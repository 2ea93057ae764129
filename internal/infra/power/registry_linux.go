//go:build linux

package power

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/planshift/planshift/internal/domain"
)

const (
	profilePath        = "/sys/firmware/acpi/platform_profile"
	profileChoicesPath = "/sys/firmware/acpi/platform_profile_choices"
)

// systemRegistry maps ACPI platform profiles to power plans. Profile
// names come from platform_profile_choices; identifiers are derived
// UUIDv5 values so the rest of the system sees stable 128-bit IDs.
type systemRegistry struct {
	profilePath string
	choicesPath string
}

// NewSystemRegistry returns the ACPI platform-profile registry, or
// ErrUnsupported when the kernel does not expose one.
func NewSystemRegistry() (domain.PlanRegistry, error) {
	r := &systemRegistry{profilePath: profilePath, choicesPath: profileChoicesPath}
	if _, err := os.Stat(r.choicesPath); err != nil {
		return nil, domain.ErrUnsupported
	}
	return r, nil
}

func (r *systemRegistry) Plans() ([]domain.PowerPlan, error) {
	raw, err := os.ReadFile(r.choicesPath)
	if err != nil {
		return nil, fmt.Errorf("read profile choices: %w", err)
	}
	return parseChoices(string(raw)), nil
}

func (r *systemRegistry) Active() (uuid.UUID, error) {
	raw, err := os.ReadFile(r.profilePath)
	if err != nil {
		return domain.NoPlan, domain.ErrActiveUnknown
	}
	name := strings.TrimSpace(string(raw))
	if name == "" {
		return domain.NoPlan, domain.ErrActiveUnknown
	}
	return ProfileID(name), nil
}

func (r *systemRegistry) SetActive(id uuid.UUID) error {
	plans, err := r.Plans()
	if err != nil {
		return err
	}
	for _, p := range plans {
		if p.ID == id {
			if err := os.WriteFile(r.profilePath, []byte(p.Name), 0o644); err != nil {
				return fmt.Errorf("write platform profile: %w", err)
			}
			return nil
		}
	}
	return domain.ErrPlanNotFound
}
