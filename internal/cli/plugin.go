package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/agentx-labs/cmdlayer/internal/commands"
	"github.com/agentx-labs/cmdlayer/internal/sources"
	"github.com/spf13/cobra"
)

var (
	pluginName     string
	pluginPriority int
	pluginKind     string
	pluginDisabled bool
	pluginListJSON bool
)

var pluginCmd = &cobra.Command{
	Use:   "plugin",
	Short: "Manage plugin directories",
	Long: `Register, remove, enable, and disable plugin directories.

Each plugin directory contributes the command documents under its commands/
folder. Plugins with a lower priority value take precedence.`,
}

var pluginAddCmd = &cobra.Command{
	Use:   "add <dir>",
	Short: "Register a plugin directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runPluginAdd,
}

var pluginRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a registered plugin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(store sources.Store) error {
			if err := store.Remove(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("removing plugin %q: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		})
	},
}

var pluginEnableCmd = &cobra.Command{
	Use:   "enable <name>",
	Short: "Enable a registered plugin",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setPluginEnabled(cmd, args[0], true) },
}

var pluginDisableCmd = &cobra.Command{
	Use:   "disable <name>",
	Short: "Disable a registered plugin",
	Args:  cobra.ExactArgs(1),
	RunE:  func(cmd *cobra.Command, args []string) error { return setPluginEnabled(cmd, args[0], false) },
}

var pluginListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered plugin directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(store sources.Store) error {
			entries, err := store.Entries(cmd.Context())
			if err != nil {
				return err
			}
			if pluginListJSON {
				return printEntriesJSON(cmd.OutOrStdout(), entries)
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No plugins registered.")
				return nil
			}
			return printEntriesTable(cmd.OutOrStdout(), entries)
		})
	},
}

func init() {
	pluginAddCmd.Flags().StringVar(&pluginName, "name", "", "Plugin name (defaults to the directory name)")
	pluginAddCmd.Flags().IntVar(&pluginPriority, "priority", 0, "Priority; lower wins (defaults to after every existing entry)")
	pluginAddCmd.Flags().StringVar(&pluginKind, "kind", sources.KindPlugin, "Entry kind")
	pluginAddCmd.Flags().BoolVar(&pluginDisabled, "disabled", false, "Register without enabling")
	pluginListCmd.Flags().BoolVar(&pluginListJSON, "json", false, "Output in JSON format")

	pluginCmd.AddCommand(pluginAddCmd)
	pluginCmd.AddCommand(pluginRemoveCmd)
	pluginCmd.AddCommand(pluginEnableCmd)
	pluginCmd.AddCommand(pluginDisableCmd)
	pluginCmd.AddCommand(pluginListCmd)
	rootCmd.AddCommand(pluginCmd)
}

// withStore opens the configured store for the duration of fn.
func withStore(cmd *cobra.Command, fn func(sources.Store) error) error {
	store, closeStore, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	defer closeStore()
	return fn(store)
}

func runPluginAdd(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving %s: %w", args[0], err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("plugin directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	name := pluginName
	if name == "" {
		name = filepath.Base(dir)
	}

	return withStore(cmd, func(store sources.Store) error {
		ctx := cmd.Context()
		priority := pluginPriority
		if !cmd.Flags().Changed("priority") {
			entries, err := store.Entries(ctx)
			if err != nil {
				return err
			}
			priority = nextPriority(entries)
		}

		entry := sources.Entry{
			Name:     name,
			Kind:     pluginKind,
			Path:     dir,
			Priority: priority,
			Enabled:  !pluginDisabled,
		}
		if err := store.Add(ctx, entry); err != nil {
			return fmt.Errorf("adding plugin %q: %w", name, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Added %s (priority %d) -> %s\n", name, priority, dir)
		if _, err := os.Stat(commands.PluginRoot(dir)); errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(out, "Note: %s has no %s/ directory yet\n", dir, commands.CommandsDir)
		}
		return nil
	})
}

func setPluginEnabled(cmd *cobra.Command, name string, enabled bool) error {
	return withStore(cmd, func(store sources.Store) error {
		if err := store.SetEnabled(cmd.Context(), name, enabled); err != nil {
			return fmt.Errorf("updating plugin %q: %w", name, err)
		}
		state := "Disabled"
		if enabled {
			state = "Enabled"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", state, name)
		return nil
	})
}

// nextPriority returns one past the largest priority in entries, or 0.
func nextPriority(entries []sources.Entry) int {
	if len(entries) == 0 {
		return 0
	}
	highest := entries[0].Priority
	for _, e := range entries[1:] {
		if e.Priority > highest {
			highest = e.Priority
		}
	}
	return highest + 1
}

func printEntriesTable(w io.Writer, entries []sources.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tPRIORITY\tENABLED\tPATH")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%t\t%s\n", e.Name, e.Kind, e.Priority, e.Enabled, e.Path)
	}
	return tw.Flush()
}

func printEntriesJSON(w io.Writer, entries []sources.Entry) error {
	if entries == nil {
		entries = []sources.Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
