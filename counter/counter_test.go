package counter_test

import (
	"testing"

	"github.com/statekit/flow/counter"
)

func TestReduce(t *testing.T) {
	tests := []struct {
		name   string
		state  counter.State
		action counter.Action
		want   int64
	}{
		{name: "increment from zero", state: counter.State{}, action: counter.Increment, want: 1},
		{name: "increment from negative", state: counter.State{Count: -3}, action: counter.Increment, want: -2},
		{name: "decrement from zero", state: counter.State{}, action: counter.Decrement, want: -1},
		{name: "decrement from positive", state: counter.State{Count: 7}, action: counter.Decrement, want: 6},
		{name: "unknown action is identity", state: counter.State{Count: 42}, action: counter.Action("counter.reset"), want: 42},
		{name: "empty action is identity", state: counter.State{Count: 42}, action: counter.Action(""), want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := tt.state

			got := counter.Reduce(tt.state, tt.action)
			if got.Count != tt.want {
				t.Errorf("Reduce(%+v, %q).Count = %d, want %d", tt.state, tt.action, got.Count, tt.want)
			}
			if tt.state != input {
				t.Errorf("Reduce mutated its input: %+v != %+v", tt.state, input)
			}
		})
	}
}

func TestReduce_RoundTrip(t *testing.T) {
	for _, start := range []int64{-100, -1, 0, 1, 99} {
		s := counter.State{Count: start}
		got := counter.Reduce(counter.Reduce(s, counter.Increment), counter.Decrement)
		if got != s {
			t.Errorf("increment then decrement from %d = %+v, want %+v", start, got, s)
		}
	}
}

func TestReduce_Deterministic(t *testing.T) {
	s := counter.State{Count: 5}
	first := counter.Reduce(s, counter.Increment)
	second := counter.Reduce(s, counter.Increment)
	if first != second {
		t.Errorf("Reduce is not deterministic: %+v != %+v", first, second)
	}
}

func TestInitial(t *testing.T) {
	if got := counter.Initial(); got.Count != 0 {
		t.Errorf("Initial().Count = %d, want 0", got.Count)
	}
}

func TestSelectCount(t *testing.T) {
	if got := counter.SelectCount(counter.State{Count: 17}); got != 17 {
		t.Errorf("SelectCount = %d, want 17", got)
	}
}

func TestNewStore(t *testing.T) {
	st, err := counter.NewStore()
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	if st.Name() != counter.FeatureKey {
		t.Errorf("Name() = %q, want %q", st.Name(), counter.FeatureKey)
	}
	if got := st.GetState().Count; got != 0 {
		t.Errorf("initial count = %d, want 0", got)
	}
}
