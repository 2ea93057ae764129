//go:build !linux

package power

import "github.com/planshift/planshift/internal/domain"

// NewChangeNotifier returns the no-op notifier. Windows power-setting
// notifications require a message window, which a headless process does
// not carry; polling covers the gap there and on macOS.
func NewChangeNotifier() (domain.ChangeNotifier, error) {
	return NewNoopNotifier(), nil
}
