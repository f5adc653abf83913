package store

import "sync"

// Selector is a pure projection from state to a derived value. Selectors
// must be referentially transparent: equal states yield equal values, so
// observers can skip redundant notifications when the projection is
// unchanged.
type Selector[S, V any] func(S) V

// Compose chains two selectors into one, projecting through an intermediate
// shape. Useful when a feature's state lives under a key of a larger
// aggregate.
func Compose[S, U, V any](first Selector[S, U], second Selector[U, V]) Selector[S, V] {
	return func(s S) V {
		return second(first(s))
	}
}

// Watch subscribes to the store through a selector, invoking fn only when
// the derived value differs from the previously delivered one. The current
// derived value is always delivered immediately on subscription.
func Watch[S, A any, V comparable](s *Store[S, A], sel Selector[S, V], fn func(V)) Unsubscribe {
	var (
		mu   sync.Mutex
		seen bool
		last V
	)

	return s.Subscribe(func(state S) {
		v := sel(state)

		mu.Lock()
		if seen && v == last {
			mu.Unlock()
			return
		}
		seen = true
		last = v
		mu.Unlock()

		fn(v)
	})
}
