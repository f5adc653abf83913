package store_test

import (
	"context"
	"testing"

	"github.com/statekit/flow/counter"
	"github.com/statekit/flow/journal"
	"github.com/statekit/flow/store"
)

func TestRehydrate(t *testing.T) {
	ctx := context.Background()
	jrnl := journal.NewMemory()

	st := newCounterStore(t, store.WithJournal(jrnl))
	for _, action := range []counter.Action{
		counter.Increment,
		counter.Increment,
		counter.Increment,
		counter.Decrement,
	} {
		st.Dispatch(ctx, action)
	}

	state, err := store.Rehydrate(ctx, jrnl, counter.FeatureKey, counter.Reduce, counter.Initial())
	if err != nil {
		t.Fatalf("Rehydrate() error = %v", err)
	}
	if state.Count != 2 {
		t.Errorf("rehydrated count = %d, want 2", state.Count)
	}
}

func TestRehydrate_EmptyStream(t *testing.T) {
	ctx := context.Background()

	state, err := store.Rehydrate(ctx, journal.NewMemory(), counter.FeatureKey, counter.Reduce, counter.Initial())
	if err != nil {
		t.Fatalf("Rehydrate() error = %v", err)
	}
	if state != counter.Initial() {
		t.Errorf("rehydrated state = %+v, want initial", state)
	}
}

func TestRehydrate_DecodeError(t *testing.T) {
	ctx := context.Background()
	jrnl := journal.NewMemory()

	if _, err := jrnl.Append(ctx, journal.Record{
		Stream: counter.FeatureKey,
		Action: []byte("{not json"),
		State:  []byte(`{"count":1}`),
	}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	_, err := store.Rehydrate(ctx, jrnl, counter.FeatureKey, counter.Reduce, counter.Initial())
	if err == nil {
		t.Fatal("Rehydrate() accepted an undecodable action")
	}
}
