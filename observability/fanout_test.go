package observability_test

import (
	"context"
	"testing"

	"github.com/statekit/flow/observability"
)

func TestFanout(t *testing.T) {
	first := observability.NewRecorder(0)
	second := observability.NewRecorder(0)
	fanout := observability.NewFanout(first, nil, second)

	fanout.OnEvent(context.Background(), observability.Event{Type: "store.dispatch"})
	fanout.OnEvent(context.Background(), observability.Event{Type: "store.subscribe"})

	if first.Len() != 2 {
		t.Errorf("first observer recorded %d events, want 2", first.Len())
	}
	if second.Len() != 2 {
		t.Errorf("second observer recorded %d events, want 2", second.Len())
	}
}

func TestFanout_Empty(t *testing.T) {
	// A fanout over no observers must still accept events.
	observability.NewFanout().OnEvent(context.Background(), observability.Event{Type: "store.dispatch"})
}
