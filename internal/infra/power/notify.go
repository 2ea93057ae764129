package power

import "github.com/planshift/planshift/internal/domain"

// noopNotifier satisfies ChangeNotifier on platforms without a push
// source. Its nil event channel never fires, leaving the poll as the
// only reconciliation trigger.
type noopNotifier struct{}

func (noopNotifier) Events() <-chan struct{} { return nil }
func (noopNotifier) Close() error            { return nil }

// NewNoopNotifier returns a notifier that never emits events.
func NewNoopNotifier() domain.ChangeNotifier { return noopNotifier{} }
