package sources

import (
	"context"
	"fmt"
	"sort"
)

// Registry adapts a Store to the catalog's view of plugin sources.
type Registry struct {
	store Store
}

// NewRegistry returns a Registry reading from store.
func NewRegistry(store Store) *Registry {
	return &Registry{store: store}
}

// EnabledPluginSources returns enabled plugin entries ordered by ascending
// priority. Entries with equal priority keep their store order.
func (r *Registry) EnabledPluginSources(ctx context.Context) ([]PluginSource, error) {
	entries, err := r.store.Entries(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading plugin sources: %w", err)
	}
	return filterPlugins(entries), nil
}

func filterPlugins(entries []Entry) []PluginSource {
	var result []PluginSource
	for _, e := range entries {
		if e.Kind != KindPlugin || !e.Enabled {
			continue
		}
		result = append(result, PluginSource{
			Name:     e.Name,
			Path:     e.Path,
			Priority: e.Priority,
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority < result[j].Priority
	})
	return result
}
