package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/statekit/flow/journal"
)

// Rehydrate folds a journal stream's action log through the reducer,
// starting from initial, and returns the state the stream left off at.
// Because reducers are pure, replaying the same actions always rebuilds the
// same state.
func Rehydrate[S, A any](ctx context.Context, j journal.Journal, stream string, reducer Reducer[S, A], initial S) (S, error) {
	state := initial

	err := j.Replay(ctx, stream, func(rec journal.Record) error {
		var action A
		if err := json.Unmarshal(rec.Action, &action); err != nil {
			return fmt.Errorf("decode action: %w", err)
		}
		state = reducer(state, action)
		return nil
	})
	if err != nil {
		return initial, fmt.Errorf("rehydrate %s: %w", stream, err)
	}

	return state, nil
}
