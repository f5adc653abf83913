// Package counter is the reference feature built on the flow state
// container: a single integer counter driven by two actions. It demonstrates
// the full unidirectional cycle — action, reducer, store, selector — in the
// smallest useful shape.
package counter

import (
	"github.com/statekit/flow/store"
)

// FeatureKey names the counter store and its journal stream.
const FeatureKey = "counter"

// Action identifies an intended counter transition. The reducer recognizes
// Increment and Decrement; any other value falls through to the identity
// case.
type Action string

const (
	Increment Action = "counter.increment"
	Decrement Action = "counter.decrement"
)

// State is the counter's entire state. It is a value replaced on every
// transition, never mutated in place.
type State struct {
	Count int64 `json:"count"`
}

// Initial returns the counter's starting state.
func Initial() State {
	return State{}
}

// Reduce maps the current state and an action to the next state. It is pure
// and never fails: unrecognized actions return the input state unchanged.
// Count follows Go int64 arithmetic and wraps on overflow.
func Reduce(s State, a Action) State {
	switch a {
	case Increment:
		return State{Count: s.Count + 1}
	case Decrement:
		return State{Count: s.Count - 1}
	default:
		return s
	}
}

// SelectCount projects the counter value from state.
func SelectCount(s State) int64 {
	return s.Count
}

// NewStore constructs the canonical counter store with count 0.
func NewStore(opts ...store.Option) (*store.Store[State, Action], error) {
	return store.New(FeatureKey, Reduce, Initial(), opts...)
}
