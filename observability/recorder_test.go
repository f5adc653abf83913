package observability_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/statekit/flow/observability"
)

func record(r *observability.Recorder, n int) {
	for i := 0; i < n; i++ {
		r.OnEvent(context.Background(), observability.Event{
			Type: observability.EventType(fmt.Sprintf("event.%d", i)),
		})
	}
}

func TestRecorder_KeepsHistoryInOrder(t *testing.T) {
	recorder := observability.NewRecorder(0)
	record(recorder, 3)

	events := recorder.Events()
	if len(events) != 3 {
		t.Fatalf("recorded %d events, want 3", len(events))
	}
	for i, event := range events {
		want := observability.EventType(fmt.Sprintf("event.%d", i))
		if event.Type != want {
			t.Errorf("event %d Type = %q, want %q", i, event.Type, want)
		}
	}
}

func TestRecorder_DropsOldestBeyondLimit(t *testing.T) {
	recorder := observability.NewRecorder(2)
	record(recorder, 5)

	events := recorder.Events()
	if len(events) != 2 {
		t.Fatalf("recorded %d events, want 2", len(events))
	}
	if events[0].Type != "event.3" || events[1].Type != "event.4" {
		t.Errorf("kept events %q, %q; want the two newest", events[0].Type, events[1].Type)
	}
}

func TestRecorder_EventsIsACopy(t *testing.T) {
	recorder := observability.NewRecorder(0)
	record(recorder, 1)

	events := recorder.Events()
	events[0].Type = "mutated"

	if recorder.Events()[0].Type != "event.0" {
		t.Error("mutating the returned slice changed recorded history")
	}
}

func TestRecorder_Reset(t *testing.T) {
	recorder := observability.NewRecorder(0)
	record(recorder, 4)

	recorder.Reset()
	if recorder.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", recorder.Len())
	}
}
