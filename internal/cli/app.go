package cli

import (
	"context"
	"fmt"

	"github.com/agentx-labs/cmdlayer/internal/commands"
	"github.com/agentx-labs/cmdlayer/internal/config"
	"github.com/agentx-labs/cmdlayer/internal/sources"
	"github.com/agentx-labs/cmdlayer/internal/sources/sqlite"
	"github.com/agentx-labs/cmdlayer/internal/userdata"
)

// openStore opens the plugin source store selected by sources.backend.
// The returned func releases it.
func openStore(ctx context.Context) (sources.Store, func() error, error) {
	switch settings.SourcesBackend {
	case config.BackendSQLite:
		path, err := userdata.GetSourcesDB()
		if err != nil {
			return nil, nil, err
		}
		store, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sources database: %w", err)
		}
		return store, store.Close, nil

	default:
		path, err := userdata.GetSourcesFile()
		if err != nil {
			return nil, nil, err
		}
		return sources.NewFileStore(path), func() error { return nil }, nil
	}
}

// newCatalog builds a catalog over the user's home and the given store.
func newCatalog(store sources.Store) (*commands.Catalog, error) {
	home, err := userdata.GetHomeDir(settings.Home)
	if err != nil {
		return nil, err
	}
	return commands.New(commands.Options{
		HomeDir:  home,
		Registry: sources.NewRegistry(store),
		Logger:   logger,
	}), nil
}

// withCatalog opens the store, builds a catalog and runs fn.
func withCatalog(ctx context.Context, fn func(*commands.Catalog) error) error {
	store, closeStore, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	catalog, err := newCatalog(store)
	if err != nil {
		return err
	}
	return fn(catalog)
}
