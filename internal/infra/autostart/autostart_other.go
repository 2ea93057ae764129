//go:build !windows && !linux

package autostart

import "github.com/planshift/planshift/internal/domain"

func enable(string) error    { return domain.ErrUnsupported }
func disable() error         { return domain.ErrUnsupported }
func enabled() (bool, error) { return false, domain.ErrUnsupported }
