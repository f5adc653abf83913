package store_test

import (
	"context"
	"slices"
	"testing"

	"github.com/statekit/flow/counter"
	"github.com/statekit/flow/store"
)

func TestCompose(t *testing.T) {
	double := func(v int64) int64 { return v * 2 }
	sel := store.Compose(counter.SelectCount, double)

	if got := sel(counter.State{Count: 21}); got != 42 {
		t.Errorf("composed selector = %d, want 42", got)
	}
}

func TestWatch_ReplaysCurrentValue(t *testing.T) {
	st := newCounterStore(t)

	var seen []int64
	store.Watch(st, counter.SelectCount, func(v int64) {
		seen = append(seen, v)
	})

	want := []int64{0}
	if !slices.Equal(seen, want) {
		t.Errorf("seen = %v, want %v", seen, want)
	}
}

func TestWatch_SkipsUnchangedValues(t *testing.T) {
	ctx := context.Background()
	st := newCounterStore(t)

	var watched []int64
	store.Watch(st, counter.SelectCount, func(v int64) {
		watched = append(watched, v)
	})

	plain := 0
	st.Subscribe(func(counter.State) { plain++ })

	st.Dispatch(ctx, counter.Increment)
	st.Dispatch(ctx, counter.Action("counter.noop")) // identity transition
	st.Dispatch(ctx, counter.Action("counter.noop"))
	st.Dispatch(ctx, counter.Decrement)

	// The plain subscriber hears every transition, the watcher only changes.
	if plain != 5 {
		t.Errorf("plain notifications = %d, want 5", plain)
	}
	want := []int64{0, 1, 0}
	if !slices.Equal(watched, want) {
		t.Errorf("watched values = %v, want %v", watched, want)
	}
}

func TestWatch_Unsubscribe(t *testing.T) {
	ctx := context.Background()
	st := newCounterStore(t)

	var watched []int64
	unsub := store.Watch(st, counter.SelectCount, func(v int64) {
		watched = append(watched, v)
	})

	st.Dispatch(ctx, counter.Increment)
	unsub()
	st.Dispatch(ctx, counter.Increment)

	want := []int64{0, 1}
	if !slices.Equal(watched, want) {
		t.Errorf("watched values = %v, want %v", watched, want)
	}
}
