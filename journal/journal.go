// Package journal persists an append-only log of dispatched actions and the
// states they produced, keyed by stream. A store wired to a journal records
// every transition; replaying a stream through the store's reducer rebuilds
// the state it left off at.
package journal

import (
	"context"
	"encoding/json"
	"time"
)

// Record is one journaled transition. Action and State hold the JSON
// encodings of the dispatched action and the state it produced.
type Record struct {
	ID        string          `json:"id"`
	Stream    string          `json:"stream"`
	Seq       uint64          `json:"seq"`
	Action    json.RawMessage `json:"action"`
	State     json.RawMessage `json:"state"`
	CreatedAt time.Time       `json:"created_at"`
}

// Journal is an append-only transition log. Implementations assign each
// record a per-stream sequence number that increases by one per append,
// and must be safe for concurrent use.
type Journal interface {
	// Append persists a record, assigning the next Seq for its stream and
	// filling in ID and CreatedAt when unset. Returns the stored record.
	Append(ctx context.Context, rec Record) (Record, error)
	// Replay invokes fn for every record in the stream in Seq order.
	// Replay stops and returns the first error fn reports. An unknown
	// stream is not an error; fn is simply never called.
	Replay(ctx context.Context, stream string, fn func(Record) error) error
	// Close releases backend resources.
	Close() error
}
