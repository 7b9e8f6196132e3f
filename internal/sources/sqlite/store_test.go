package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/agentx-labs/cmdlayer/internal/sources"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db", "sources.db")
	store, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestStore_EmptyOnOpen(t *testing.T) {
	store, _ := openTestStore(t)

	entries, err := store.Entries(context.Background())
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty store, got %+v", entries)
	}
}

func TestStore_OrdersByPriorityThenInsertion(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	for _, e := range []sources.Entry{
		{Name: "c", Kind: sources.KindPlugin, Path: "/c", Priority: 20, Enabled: true},
		{Name: "a", Kind: sources.KindPlugin, Path: "/a", Priority: 10, Enabled: true},
		{Name: "b", Kind: sources.KindPlugin, Path: "/b", Priority: 10, Enabled: false},
	} {
		if err := store.Add(ctx, e); err != nil {
			t.Fatalf("Add %s: %v", e.Name, err)
		}
	}

	entries, err := store.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	want := []string{"a", "b", "c"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Name, name)
		}
	}
	if entries[1].Enabled {
		t.Error("entry b should be disabled")
	}
}

func TestStore_DuplicateAndMissing(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	e := sources.Entry{Name: "dup", Kind: sources.KindPlugin, Path: "/dup", Enabled: true}
	if err := store.Add(ctx, e); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Add(ctx, e); !errors.Is(err, sources.ErrExists) {
		t.Errorf("duplicate Add error = %v, want ErrExists", err)
	}
	if err := store.Remove(ctx, "ghost"); !errors.Is(err, sources.ErrNotFound) {
		t.Errorf("Remove error = %v, want ErrNotFound", err)
	}
	if err := store.SetEnabled(ctx, "ghost", true); !errors.Is(err, sources.ErrNotFound) {
		t.Errorf("SetEnabled error = %v, want ErrNotFound", err)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	store, path := openTestStore(t)

	if err := store.Add(ctx, sources.Entry{Name: "keep", Kind: sources.KindPlugin, Path: "/keep", Priority: 3, Enabled: true}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.SetEnabled(ctx, "keep", false); err != nil {
		t.Fatalf("SetEnabled: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.Entries(ctx)
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "keep" || entries[0].Enabled || entries[0].Priority != 3 {
		t.Errorf("entries = %+v, want one disabled 'keep' with priority 3", entries)
	}

	if err := reopened.Remove(ctx, "keep"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
}

func TestStore_FeedsRegistry(t *testing.T) {
	ctx := context.Background()
	store, _ := openTestStore(t)

	_ = store.Add(ctx, sources.Entry{Name: "skill", Kind: "skill", Path: "/s", Enabled: true})
	_ = store.Add(ctx, sources.Entry{Name: "p2", Kind: sources.KindPlugin, Path: "/p2", Priority: 2, Enabled: true})
	_ = store.Add(ctx, sources.Entry{Name: "p1", Kind: sources.KindPlugin, Path: "/p1", Priority: 1, Enabled: true})

	got, err := sources.NewRegistry(store).EnabledPluginSources(ctx)
	if err != nil {
		t.Fatalf("EnabledPluginSources: %v", err)
	}
	if len(got) != 2 || got[0].Name != "p1" || got[1].Name != "p2" {
		t.Errorf("got %+v, want p1 then p2", got)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(context.Background(), "  "); err == nil {
		t.Error("expected error for empty path")
	}
}
