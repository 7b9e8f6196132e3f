package sources

import (
	"context"
	"errors"
)

// KindPlugin marks entries whose directory carries a commands/ folder.
const KindPlugin = "plugin"

// Entry is one row of the configuration store.
type Entry struct {
	Name     string `yaml:"name" json:"name"`
	Kind     string `yaml:"kind" json:"kind"`
	Path     string `yaml:"path" json:"path"`
	Priority int    `yaml:"priority" json:"priority"`
	Enabled  bool   `yaml:"enabled" json:"enabled"`
}

// PluginSource is an enabled plugin directory as seen by the catalog.
type PluginSource struct {
	Name     string
	Path     string
	Priority int
}

// Store is the configuration store holding source entries.
type Store interface {
	// Entries returns every entry in store order.
	Entries(ctx context.Context) ([]Entry, error)
	Add(ctx context.Context, e Entry) error
	Remove(ctx context.Context, name string) error
	SetEnabled(ctx context.Context, name string, enabled bool) error
}

var (
	// ErrExists is returned by Add when the name is already taken.
	ErrExists = errors.New("source already exists")
	// ErrNotFound is returned when no entry has the given name.
	ErrNotFound = errors.New("source not found")
)
