package userdata

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/agentx-labs/cmdlayer/internal/commands"
)

// RootStatus is the health of one command root.
type RootStatus struct {
	Root     commands.Root
	Exists   bool
	Commands int   // number of command documents found
	Err      error // set when the root exists but cannot be read
}

// InspectRoot checks a single root and counts the commands the catalog
// would list from it.
func InspectRoot(ctx context.Context, root commands.Root) RootStatus {
	status := RootStatus{Root: root}

	info, err := os.Stat(root.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return status
	}
	if err != nil {
		status.Err = err
		return status
	}
	status.Exists = true
	if !info.IsDir() {
		status.Err = fmt.Errorf("%s is not a directory", root.Dir)
		return status
	}
	if _, err := os.ReadDir(root.Dir); err != nil {
		status.Err = err
		return status
	}

	status.Commands = len(commands.NewScanner(nil).Scan(ctx, root.Dir, root.Source))
	return status
}

// CheckRoots prints one status line per root.
func CheckRoots(ctx context.Context, w io.Writer, roots []commands.Root) {
	fmt.Fprintln(w, "Command roots:")
	if len(roots) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, root := range roots {
		s := InspectRoot(ctx, root)
		label := string(root.Source)
		if root.Plugin != "" {
			label += ":" + root.Plugin
		}
		switch {
		case s.Err != nil:
			fmt.Fprintf(w, "  [FAIL] %-16s %s: %v\n", label, root.Dir, s.Err)
		case !s.Exists:
			fmt.Fprintf(w, "  [MISS] %-16s %s\n", label, root.Dir)
		default:
			fmt.Fprintf(w, "  [ OK ] %-16s %s (%d commands)\n", label, root.Dir, s.Commands)
		}
	}
}
