package power

import (
	"strings"

	"github.com/google/uuid"

	"github.com/planshift/planshift/internal/domain"
)

// profileNamespace seeds the UUIDv5 derivation of plan identifiers on
// platforms that name profiles by string instead of GUID. Fixed so the
// same profile name always maps to the same 128-bit identifier.
var profileNamespace = uuid.MustParse("b4f9c7d2-1d0a-4b6e-9f35-8c2f6a1d7e90")

// ProfileID derives the stable plan identifier for a profile name.
func ProfileID(name string) uuid.UUID {
	return uuid.NewSHA1(profileNamespace, []byte(name))
}

// parseChoices splits a space-separated profile list (the format of
// platform_profile_choices) into plans in listed order.
func parseChoices(s string) []domain.PowerPlan {
	var plans []domain.PowerPlan
	for _, name := range strings.Fields(s) {
		plans = append(plans, domain.PowerPlan{ID: ProfileID(name), Name: name})
	}
	return plans
}
