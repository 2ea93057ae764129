//go:build !windows && !linux

package power

import "github.com/planshift/planshift/internal/domain"

// NewSystemRegistry has no native backend on this platform. The daemon
// falls back to the in-memory mock registry with a startup warning.
func NewSystemRegistry() (domain.PlanRegistry, error) {
	return nil, domain.ErrUnsupported
}
