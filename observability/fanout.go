package observability

import "context"

// Fanout forwards each event to multiple observers in registration order.
// It lets a store feed logging, metrics, and a history recorder from a
// single observer slot.
type Fanout struct {
	observers []Observer
}

// NewFanout creates a Fanout over all non-nil observers.
func NewFanout(observers ...Observer) *Fanout {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &Fanout{observers: filtered}
}

func (f *Fanout) OnEvent(ctx context.Context, event Event) {
	for _, obs := range f.observers {
		obs.OnEvent(ctx, event)
	}
}
