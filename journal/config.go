package journal

import "fmt"

// Journal backend names accepted by Config.Backend.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds journal initialization parameters.
type Config struct {
	// Backend selects the storage implementation ("memory" or "sqlite").
	Backend string `json:"backend" env:"FLOW_JOURNAL_BACKEND"`

	// Path locates the database file. Required for the sqlite backend,
	// ignored by the memory backend.
	Path string `json:"path" env:"FLOW_JOURNAL_PATH"`
}

// DefaultConfig returns the default journal configuration: the in-memory
// backend, which needs no path.
func DefaultConfig() Config {
	return Config{Backend: BackendMemory}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Backend != "" {
		c.Backend = source.Backend
	}
	if source.Path != "" {
		c.Path = source.Path
	}
}

// New creates a Journal from configuration.
func New(cfg *Config) (Journal, error) {
	switch cfg.Backend {
	case BackendMemory, "":
		return NewMemory(), nil
	case BackendSQLite:
		return OpenSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown journal backend: %s", cfg.Backend)
	}
}
