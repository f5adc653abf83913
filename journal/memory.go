package journal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryJournal struct {
	mu      sync.RWMutex
	streams map[string][]Record
	now     func() time.Time
}

// NewMemory creates a Journal backed by in-memory slices. Records are lost
// when the process terminates, which suits tests and single-run tooling.
func NewMemory() Journal {
	return &memoryJournal{
		streams: make(map[string][]Record),
		now:     time.Now,
	}
}

func (m *memoryJournal) Append(_ context.Context, rec Record) (Record, error) {
	if rec.Stream == "" {
		return Record{}, fmt.Errorf("%w: record has no stream", ErrStreamRequired)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rec.Seq = uint64(len(m.streams[rec.Stream])) + 1
	if rec.ID == "" {
		rec.ID = uuid.Must(uuid.NewV7()).String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = m.now().UTC()
	}

	m.streams[rec.Stream] = append(m.streams[rec.Stream], rec)
	return rec, nil
}

func (m *memoryJournal) Replay(_ context.Context, stream string, fn func(Record) error) error {
	if stream == "" {
		return fmt.Errorf("%w: replay has no stream", ErrStreamRequired)
	}

	m.mu.RLock()
	records := make([]Record, len(m.streams[stream]))
	copy(records, m.streams[stream])
	m.mu.RUnlock()

	for _, rec := range records {
		if err := fn(rec); err != nil {
			return fmt.Errorf("%w: seq %d: %v", ErrReplayFailed, rec.Seq, err)
		}
	}
	return nil
}

func (m *memoryJournal) Close() error {
	return nil
}
