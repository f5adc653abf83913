package observability

import "context"

// NoOpObserver discards all events with zero overhead. Stores fall back to
// it when constructed without an observer.
type NoOpObserver struct{}

func (NoOpObserver) OnEvent(ctx context.Context, event Event) {}
