package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/agentx-labs/cmdlayer/internal/commands"
	"github.com/spf13/cobra"
)

var (
	listProject      string
	listSourceFilter string
	listJSON         bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available commands",
	Long: `List every command visible from the given project, merged across scopes.

Project commands shadow user commands, and user commands shadow plugin
commands. Among plugins, the lower priority value wins.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listProject, "project", "p", "", "Project directory whose .claude/commands is included")
	listCmd.Flags().StringVar(&listSourceFilter, "source", "", "Filter by source (project, user, custom)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	var source commands.Source
	if listSourceFilter != "" {
		s, ok := commands.ParseSource(listSourceFilter)
		if !ok {
			return fmt.Errorf("unknown source %q (want project, user, or custom)", listSourceFilter)
		}
		source = s
	}

	ctx := cmd.Context()
	return withCatalog(ctx, func(catalog *commands.Catalog) error {
		records := filterRecords(catalog.List(ctx, listProject), source)

		if listJSON {
			return printListJSON(cmd.OutOrStdout(), records)
		}
		if len(records) == 0 {
			if source != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "No commands found with --source=%s\n", source)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "No commands found.")
			}
			return nil
		}
		return printListTable(cmd.OutOrStdout(), records)
	})
}

// filterRecords keeps records from source. An empty source keeps everything.
func filterRecords(records []commands.Record, source commands.Source) []commands.Record {
	if source == "" {
		return records
	}
	filtered := []commands.Record{}
	for _, r := range records {
		if r.Source == source {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func printListTable(w io.Writer, records []commands.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSOURCE\tARGS\tDESCRIPTION")
	for _, r := range records {
		hint := r.ArgumentHint
		if hint == "" {
			hint = "-"
		}
		desc := r.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		fmt.Fprintf(tw, "/%s\t%s\t%s\t%s\n", r.Name, r.Source, hint, desc)
	}
	return tw.Flush()
}

func printListJSON(w io.Writer, records []commands.Record) error {
	if records == nil {
		records = []commands.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
