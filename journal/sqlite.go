package journal

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS records (
	stream     TEXT NOT NULL,
	seq        INTEGER NOT NULL,
	id         TEXT NOT NULL,
	action     TEXT NOT NULL,
	state      TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	PRIMARY KEY (stream, seq)
);`

type sqliteJournal struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// OpenSQLite opens (creating if needed) a SQLite-backed Journal at path.
func OpenSQLite(path string) (Journal, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("journal path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite journal: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite journal: %w", err)
	}

	if _, err := sqlDB.Exec(sqliteSchema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("bootstrap journal schema: %w", err)
	}

	return &sqliteJournal{sqlDB: sqlDB, now: time.Now}, nil
}

func (j *sqliteJournal) Append(ctx context.Context, rec Record) (Record, error) {
	if rec.Stream == "" {
		return Record{}, fmt.Errorf("%w: record has no stream", ErrStreamRequired)
	}

	if rec.ID == "" {
		rec.ID = uuid.Must(uuid.NewV7()).String()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = j.now().UTC()
	}
	rec.CreatedAt = rec.CreatedAt.UTC().Truncate(time.Millisecond)

	tx, err := j.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return Record{}, fmt.Errorf("%w: begin tx: %v", ErrAppendFailed, err)
	}
	defer tx.Rollback()

	var seq int64
	row := tx.QueryRowContext(
		ctx,
		`SELECT COALESCE(MAX(seq), 0) + 1 FROM records WHERE stream = ?`,
		rec.Stream,
	)
	if err := row.Scan(&seq); err != nil {
		return Record{}, fmt.Errorf("%w: next seq: %v", ErrAppendFailed, err)
	}
	rec.Seq = uint64(seq)

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO records (stream, seq, id, action, state, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Stream,
		seq,
		rec.ID,
		string(rec.Action),
		string(rec.State),
		rec.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return Record{}, fmt.Errorf("%w: insert record: %v", ErrAppendFailed, err)
	}

	if err := tx.Commit(); err != nil {
		return Record{}, fmt.Errorf("%w: commit: %v", ErrAppendFailed, err)
	}
	return rec, nil
}

func (j *sqliteJournal) Replay(ctx context.Context, stream string, fn func(Record) error) error {
	if stream == "" {
		return fmt.Errorf("%w: replay has no stream", ErrStreamRequired)
	}

	rows, err := j.sqlDB.QueryContext(
		ctx,
		`SELECT stream, seq, id, action, state, created_at
		 FROM records
		 WHERE stream = ?
		 ORDER BY seq`,
		stream,
	)
	if err != nil {
		return fmt.Errorf("%w: query stream: %v", ErrReplayFailed, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rec       Record
			seq       int64
			action    string
			state     string
			createdAt int64
		)
		if err := rows.Scan(&rec.Stream, &seq, &rec.ID, &action, &state, &createdAt); err != nil {
			return fmt.Errorf("%w: scan record: %v", ErrReplayFailed, err)
		}
		rec.Seq = uint64(seq)
		rec.Action = []byte(action)
		rec.State = []byte(state)
		rec.CreatedAt = time.UnixMilli(createdAt).UTC()

		if err := fn(rec); err != nil {
			return fmt.Errorf("%w: seq %d: %v", ErrReplayFailed, rec.Seq, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: iterate stream: %v", ErrReplayFailed, err)
	}
	return nil
}

func (j *sqliteJournal) Close() error {
	if j == nil || j.sqlDB == nil {
		return nil
	}
	return j.sqlDB.Close()
}
