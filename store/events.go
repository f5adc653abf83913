package store

import "github.com/statekit/flow/observability"

// Store event types emitted through the wired observer.
const (
	EventDispatch     observability.EventType = "store.dispatch"
	EventSubscribe    observability.EventType = "store.subscribe"
	EventUnsubscribe  observability.EventType = "store.unsubscribe"
	EventJournalError observability.EventType = "store.journal.error"
)
